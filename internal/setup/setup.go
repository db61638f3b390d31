// Package setup creates the pieces for a starting position: the standard
// initial array or any position given as FEN.
package setup

import (
	"fmt"
	"sort"

	"github.com/notnil/chess"

	"github.com/lgbarn/chess-pieces-go/internal/errors"
	"github.com/lgbarn/chess-pieces-go/internal/piece"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// backRank is the piece order on each side's first rank, a-file to h-file.
var backRank = [piece.BoardSize]piece.Kind{
	piece.Rook, piece.Knight, piece.Bishop, piece.Queen,
	piece.King, piece.Bishop, piece.Knight, piece.Rook,
}

// Placement is a piece together with the square it starts on.
type Placement struct {
	Square piece.Square
	Piece  *piece.Piece
}

// Standard returns the 32 pieces of the initial position, ordered by row
// then column (Black's back rank first).
func Standard() []Placement {
	placements := make([]Placement, 0, 4*piece.BoardSize)
	rows := []struct {
		row    int
		colour piece.Colour
		pawns  bool
	}{
		{0, piece.Black, false},
		{1, piece.Black, true},
		{6, piece.White, true},
		{7, piece.White, false},
	}
	for _, r := range rows {
		for col := 0; col < piece.BoardSize; col++ {
			kind := backRank[col]
			if r.pawns {
				kind = piece.Pawn
			}
			placements = append(placements, Placement{
				Square: piece.Square{Row: r.row, Col: col},
				Piece:  piece.MustNew(kind, r.colour),
			})
		}
	}
	return placements
}

// FromFEN creates one piece per occupied square of the FEN position.
//
// Moved is inferred for the kinds whose rules depend on it: pawns off their
// starting row, and kings and rooks that are off their home squares or have
// lost the matching castling right.
func FromFEN(fen string) ([]Placement, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidFEN, err)
	}
	pos := chess.NewGame(opt).Position()
	rights := pos.CastleRights()

	var placements []Placement
	for sq, cp := range pos.Board().SquareMap() {
		kind, err := kindOf(cp.Type())
		if err != nil {
			return nil, &errors.PieceError{Err: err, Square: sq.String()}
		}
		colour := piece.White
		if cp.Color() == chess.Black {
			colour = piece.Black
		}

		s := squareOf(sq)
		p := piece.MustNew(kind, colour)
		p.Moved = inferMoved(kind, colour, s, rights)
		placements = append(placements, Placement{Square: s, Piece: p})
	}

	sort.Slice(placements, func(i, j int) bool {
		a, b := placements[i].Square, placements[j].Square
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})
	return placements, nil
}

// Pieces returns the pieces of the placements in order.
func Pieces(placements []Placement) []*piece.Piece {
	pieces := make([]*piece.Piece, len(placements))
	for i, pl := range placements {
		pieces[i] = pl.Piece
	}
	return pieces
}

func kindOf(t chess.PieceType) (piece.Kind, error) {
	switch t {
	case chess.Pawn:
		return piece.Pawn, nil
	case chess.Knight:
		return piece.Knight, nil
	case chess.Bishop:
		return piece.Bishop, nil
	case chess.Rook:
		return piece.Rook, nil
	case chess.Queen:
		return piece.Queen, nil
	case chess.King:
		return piece.King, nil
	}
	return 0, errors.ErrInvalidKind
}

// squareOf converts to GUI coordinates; chess.Rank1 is row 7.
func squareOf(sq chess.Square) piece.Square {
	return piece.Square{
		Row: piece.BoardSize - 1 - int(sq.Rank()),
		Col: int(sq.File()),
	}
}

func homeRow(colour piece.Colour) int {
	if colour == piece.White {
		return piece.BoardSize - 1
	}
	return 0
}

func inferMoved(kind piece.Kind, colour piece.Colour, sq piece.Square, rights chess.CastleRights) bool {
	c := chess.White
	if colour == piece.Black {
		c = chess.Black
	}
	back := homeRow(colour)

	switch kind {
	case piece.Pawn:
		// Pawns start one row ahead of the back rank.
		return sq.Row != back-colour.Sign()
	case piece.King:
		if sq != (piece.Square{Row: back, Col: 4}) {
			return true
		}
		return !rights.CanCastle(c, chess.KingSide) && !rights.CanCastle(c, chess.QueenSide)
	case piece.Rook:
		switch sq {
		case piece.Square{Row: back, Col: 7}:
			return !rights.CanCastle(c, chess.KingSide)
		case piece.Square{Row: back, Col: 0}:
			return !rights.CanCastle(c, chess.QueenSide)
		}
		return true
	}
	return false
}
