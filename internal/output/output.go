// Package output writes piece listings and texture manifests as text or JSON.
package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/lgbarn/chess-pieces-go/internal/config"
	"github.com/lgbarn/chess-pieces-go/internal/piece"
)

// Entry is a piece to be written, with its square when it has one.
type Entry struct {
	Square *piece.Square
	Piece  *piece.Piece
}

// Entries wraps bare pieces.
func Entries(pieces ...*piece.Piece) []Entry {
	entries := make([]Entry, len(pieces))
	for i, p := range pieces {
		entries[i] = Entry{Piece: p}
	}
	return entries
}

// Write writes entries in the configured format to cfg.OutputFile.
func Write(cfg *config.Config, entries []Entry) error {
	if cfg.Format == config.JSON {
		return WriteJSON(cfg.OutputFile, entries)
	}
	return WriteText(cfg.OutputFile, entries)
}

// WriteManifest writes texture paths in the configured format.
func WriteManifest(cfg *config.Config, paths []string) error {
	if cfg.Format == config.JSON {
		return WriteManifestJSON(cfg.OutputFile, paths)
	}
	for _, p := range paths {
		if _, err := fmt.Fprintln(cfg.OutputFile, p); err != nil {
			return err
		}
	}
	return nil
}

// WriteText writes one aligned line per entry followed by the material total.
func WriteText(w io.Writer, entries []Entry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		square := "-"
		if e.Square != nil {
			square = e.Square.String()
		}
		moved := ""
		if e.Piece.Moved {
			moved = "moved"
		}
		fmt.Fprintf(tw, "%s\t%c\t%s\t%s\t%g\t%s\t%s\n",
			square, pieceLetter(e.Piece), e.Piece.Colour, e.Piece.Name(), e.Piece.Value, e.Piece.Texture, moved)
	}
	fmt.Fprintf(tw, "material\t\t\t\t%g\t\t\n", material(entries))
	return tw.Flush()
}

// pieceLetter returns the FEN letter: uppercase for White, lowercase for Black.
func pieceLetter(p *piece.Piece) byte {
	l := p.Kind.Letter()
	if p.Colour == piece.Black {
		l += 'a' - 'A'
	}
	return l
}

func material(entries []Entry) float64 {
	pieces := make([]*piece.Piece, len(entries))
	for i, e := range entries {
		pieces[i] = e.Piece
	}
	return piece.Material(pieces...)
}
