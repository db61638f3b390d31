package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-pieces-go/internal/piece"
)

// JSONPiece represents a piece in JSON format.
type JSONPiece struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Colour      string      `json:"colour"`
	Letter      string      `json:"letter"`
	Value       float64     `json:"value"`
	Texture     string      `json:"texture"`
	TextureRect *piece.Rect `json:"textureRect,omitempty"`
	Square      string      `json:"square,omitempty"`
	Moves       []string    `json:"moves,omitempty"`
	Moved       bool        `json:"moved"`
	Dir         int         `json:"dir,omitempty"`
}

// JSONOutput holds a list of pieces and their total material.
type JSONOutput struct {
	Pieces   []*JSONPiece `json:"pieces"`
	Material float64      `json:"material"`
}

// JSONManifest holds texture paths.
type JSONManifest struct {
	Textures []string `json:"textures"`
}

// PieceToJSON converts an entry to JSON format.
func PieceToJSON(e Entry) *JSONPiece {
	p := e.Piece
	jp := &JSONPiece{
		ID:          p.ID.String(),
		Name:        p.Name(),
		Colour:      p.Colour.String(),
		Letter:      string(p.Kind.Letter()),
		Value:       p.Value,
		Texture:     p.Texture,
		TextureRect: p.TextureRect,
		Moved:       p.Moved,
		Dir:         p.Dir,
	}
	if e.Square != nil {
		jp.Square = e.Square.String()
	}
	for _, m := range p.Moves {
		jp.Moves = append(jp.Moves, m.String())
	}
	return jp
}

// WriteJSON writes the entries as one indented JSON document.
func WriteJSON(w io.Writer, entries []Entry) error {
	out := &JSONOutput{Pieces: make([]*JSONPiece, len(entries))}
	for i, e := range entries {
		out.Pieces[i] = PieceToJSON(e)
	}
	out.Material = material(entries)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// WriteManifestJSON writes texture paths as a JSON document.
func WriteManifestJSON(w io.Writer, paths []string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONManifest{Textures: paths})
}
