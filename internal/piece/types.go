// Package piece provides the chess piece model: kinds, colours, material
// values, texture paths and the move bookkeeping fields that move generation
// and rendering code read and write.
package piece

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-pieces-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
	numColours
)

// Colours returns both colours, white first.
func Colours() []Colour {
	return []Colour{White, Black}
}

// String returns the lower-case colour name used in texture file names.
func (c Colour) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return fmt.Sprintf("Colour(%d)", int(c))
}

// Valid reports whether c is White or Black.
func (c Colour) Valid() bool {
	return c >= White && c < numColours
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Sign returns +1 for White and -1 for Black.
func (c Colour) Sign() int {
	if c == White {
		return 1
	}
	return -1
}

// ParseColour parses "white", "w", "black" or "b", ignoring case.
func ParseColour(s string) (Colour, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return 0, fmt.Errorf("%q: %w", s, errors.ErrInvalidColour)
}

// Kind represents a chess piece type.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	numKinds
)

var kindNames = [numKinds]string{"pawn", "knight", "bishop", "rook", "queen", "king"}

var kindLetters = [numKinds]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

// baseValues holds the unsigned material value of each kind.
var baseValues = [numKinds]float64{1.0, 3.0, 3.0, 5.0, 9.0, 10000.0}

// Kinds returns all piece kinds in canonical order.
func Kinds() []Kind {
	return []Kind{Pawn, Knight, Bishop, Rook, Queen, King}
}

// Valid reports whether k is one of the six piece kinds.
func (k Kind) Valid() bool {
	return k >= Pawn && k < numKinds
}

// String returns the lower-case kind name ("pawn", "knight", ...).
func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	if k.Valid() {
		return kindLetters[k]
	}
	return '?'
}

// BaseValue returns the colour-independent material value of k,
// or 0 for an invalid kind.
func (k Kind) BaseValue() float64 {
	if k.Valid() {
		return baseValues[k]
	}
	return 0
}

// ParseKind parses a kind name or its letter, ignoring case.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if name == n {
			return Kind(k), nil
		}
	}
	if len(name) == 1 {
		for k, l := range kindLetters {
			if strings.ToUpper(name)[0] == l {
				return Kind(k), nil
			}
		}
	}
	return 0, fmt.Errorf("%q: %w", s, errors.ErrInvalidKind)
}
