package piece

import (
	"fmt"
	"path"
)

const (
	// DefaultTextureSize is the pixel size textures are set to on construction.
	DefaultTextureSize = 80

	// TextureDir is the root of the piece images, relative to the game directory.
	TextureDir = "assets/images"
)

// TexturePath returns the image path for a piece of the given colour and kind
// at the given pixel size:
//
//	assets/images/imgs-{size}px/{colour}_{name}.png
func TexturePath(colour Colour, kind Kind, size int) string {
	return path.Join(TextureDir, fmt.Sprintf("imgs-%dpx", size), fmt.Sprintf("%s_%s.png", colour, kind))
}
