package piece

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-pieces-go/internal/errors"
)

// Piece is a single chess piece on the board.
//
// Kind and Colour are fixed at construction. Moves and Moved are owned by
// the move generator and move applier; TextureRect is owned by the renderer.
type Piece struct {
	ID          uuid.UUID
	Kind        Kind
	Colour      Colour
	Value       float64  // BaseValue signed by colour: positive for White
	Texture     string   // Path last produced by SetTexture
	TextureRect *Rect    // nil until a renderer assigns one
	Moves       []Square // Candidate destinations from the last generation
	Moved       bool     // Set once the piece has left its square
	Dir         int      // Pawn row increment: -1 White, +1 Black, 0 otherwise

	textureSize int
}

// New creates a piece of the given kind and colour. It fails only if either
// value lies outside its enumeration.
func New(kind Kind, colour Colour) (*Piece, error) {
	if !kind.Valid() {
		return nil, &errors.PieceError{Err: errors.ErrInvalidKind, Kind: kind.String(), Colour: colour.String()}
	}
	if !colour.Valid() {
		return nil, &errors.PieceError{Err: errors.ErrInvalidColour, Kind: kind.String(), Colour: colour.String()}
	}

	p := &Piece{
		ID:     uuid.New(),
		Kind:   kind,
		Colour: colour,
		Value:  kind.BaseValue() * float64(colour.Sign()),
		Moves:  []Square{},
	}
	if kind == Pawn {
		p.Dir = -colour.Sign()
	}
	p.SetTexture(DefaultTextureSize)
	return p, nil
}

// MustNew is like New but panics on invalid input.
func MustNew(kind Kind, colour Colour) *Piece {
	p, err := New(kind, colour)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPawn creates a pawn.
func NewPawn(colour Colour) *Piece { return MustNew(Pawn, colour) }

// NewKnight creates a knight.
func NewKnight(colour Colour) *Piece { return MustNew(Knight, colour) }

// NewBishop creates a bishop.
func NewBishop(colour Colour) *Piece { return MustNew(Bishop, colour) }

// NewRook creates a rook.
func NewRook(colour Colour) *Piece { return MustNew(Rook, colour) }

// NewQueen creates a queen.
func NewQueen(colour Colour) *Piece { return MustNew(Queen, colour) }

// NewKing creates a king.
func NewKing(colour Colour) *Piece { return MustNew(King, colour) }

// Name returns the kind name, e.g. "knight".
func (p *Piece) Name() string {
	return p.Kind.String()
}

// String returns the colour and kind, e.g. "white knight".
func (p *Piece) String() string {
	return fmt.Sprintf("%s %s", p.Colour, p.Kind)
}

// SetTexture recomputes Texture for the given size.
func (p *Piece) SetTexture(size int) {
	p.Texture = TexturePath(p.Colour, p.Kind, size)
	p.textureSize = size
}

// TextureSize returns the size Texture was last computed for.
func (p *Piece) TextureSize() int {
	return p.textureSize
}

// SetTextureRect stores the renderer's region for this piece.
func (p *Piece) SetTextureRect(r Rect) {
	p.TextureRect = &r
}

// ClearTextureRect removes the stored region.
func (p *Piece) ClearTextureRect() {
	p.TextureRect = nil
}

// AddMove appends a candidate destination.
func (p *Piece) AddMove(sq Square) {
	p.Moves = append(p.Moves, sq)
}

// ClearMoves empties the candidate list, keeping its capacity.
func (p *Piece) ClearMoves() {
	p.Moves = p.Moves[:0]
}

// HasMove reports whether sq is among the candidate destinations.
func (p *Piece) HasMove(sq Square) bool {
	for _, m := range p.Moves {
		if m == sq {
			return true
		}
	}
	return false
}

// MarkMoved records that the piece has been relocated.
func (p *Piece) MarkMoved() {
	p.Moved = true
}

// Material returns the sum of the pieces' signed values. Positive means
// White is ahead. Nil entries are skipped.
func Material(pieces ...*Piece) float64 {
	var total float64
	for _, p := range pieces {
		if p != nil {
			total += p.Value
		}
	}
	return total
}
