package piece

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-pieces-go/internal/errors"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Square is a board coordinate as the GUI indexes it. Row 0 is Black's back
// rank (rank 8) and row 7 is White's back rank (rank 1); column 0 is the
// a-file.
type Square struct {
	Row int
	Col int
}

// Valid reports whether s lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// String returns the algebraic name of s, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{byte('a' + s.Col), byte('0' + BoardSize - s.Row)})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if len(n) != 2 || n[0] < 'a' || n[0] > 'h' || n[1] < '1' || n[1] > '8' {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	return Square{Row: BoardSize - int(n[1]-'0'), Col: int(n[0] - 'a')}, nil
}

// Rect is a rectangular texture region supplied by a renderer.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
