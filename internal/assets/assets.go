// Package assets lists and checks the piece texture files a GUI build ships.
package assets

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/lgbarn/chess-pieces-go/internal/errors"
	"github.com/lgbarn/chess-pieces-go/internal/piece"
)

// Manifest returns the texture path of every colour and kind at every size,
// sorted and without duplicates.
func Manifest(sizes []int) []string {
	seen := make(map[string]bool)
	var paths []string
	for _, size := range sizes {
		for _, colour := range piece.Colours() {
			for _, kind := range piece.Kinds() {
				p := piece.TexturePath(colour, kind, size)
				if !seen[p] {
					seen[p] = true
					paths = append(paths, p)
				}
			}
		}
	}
	sort.Strings(paths)
	return paths
}

// Verify checks that every path exists as a regular file under root.
// All problems are reported together; each is an *errors.AssetError and
// missing files match errors.ErrMissingTexture.
func Verify(root string, paths []string) error {
	var errs []error
	for _, p := range paths {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(p)))
		switch {
		case stderrors.Is(err, fs.ErrNotExist):
			errs = append(errs, &errors.AssetError{Err: errors.ErrMissingTexture, Path: p})
		case err != nil:
			errs = append(errs, &errors.AssetError{Err: err, Path: p})
		case !info.Mode().IsRegular():
			errs = append(errs, &errors.AssetError{Err: errors.ErrMissingTexture, Path: p})
		}
	}
	return stderrors.Join(errs...)
}
