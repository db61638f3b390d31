package setup

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/notnil/chess"

	"github.com/lgbarn/chess-pieces-go/internal/errors"
	"github.com/lgbarn/chess-pieces-go/internal/piece"
	"github.com/lgbarn/chess-pieces-go/internal/testutil"
)

var placementOpts = cmp.Options{
	cmpopts.IgnoreFields(piece.Piece{}, "ID"),
	cmp.AllowUnexported(piece.Piece{}),
}

func mustSquare(t *testing.T, name string) piece.Square {
	t.Helper()
	sq, err := piece.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return sq
}

func find(placements []Placement, sq piece.Square) *piece.Piece {
	for _, pl := range placements {
		if pl.Square == sq {
			return pl.Piece
		}
	}
	return nil
}

func TestStandard(t *testing.T) {
	placements := Standard()

	if len(placements) != 32 {
		t.Fatalf("len(Standard()) = %d; want 32", len(placements))
	}

	tests := []struct {
		square string
		kind   piece.Kind
		colour piece.Colour
	}{
		{"a1", piece.Rook, piece.White},
		{"b1", piece.Knight, piece.White},
		{"c1", piece.Bishop, piece.White},
		{"d1", piece.Queen, piece.White},
		{"e1", piece.King, piece.White},
		{"e2", piece.Pawn, piece.White},
		{"d8", piece.Queen, piece.Black},
		{"e8", piece.King, piece.Black},
		{"h7", piece.Pawn, piece.Black},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			p := find(placements, mustSquare(t, tt.square))
			if p == nil {
				t.Fatalf("no piece on %s", tt.square)
			}
			testutil.AssertEqual(t, p.Kind, tt.kind)
			testutil.AssertEqual(t, p.Colour, tt.colour)
			testutil.AssertFalse(t, p.Moved)
		})
	}

	testutil.AssertApprox(t, piece.Material(Pieces(placements)...), 0)
}

func TestFromFEN_StartMatchesStandard(t *testing.T) {
	got, err := FromFEN(StartFEN)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, Standard(), placementOpts)
}

func TestFromFEN_MovedInference(t *testing.T) {
	// After 1.e4 e5 2.Ke2 White has no castling rights left.
	fen := "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPPKPPP/RNBQ1BNR b kq - 1 2"

	placements, err := FromFEN(fen)
	testutil.AssertNoError(t, err)

	tests := []struct {
		square string
		moved  bool
	}{
		{"e4", true},  // advanced white pawn
		{"d2", false}, // unmoved white pawn
		{"e5", true},  // advanced black pawn
		{"e2", true},  // white king off e1
		{"a1", true},  // white queenside rook without Q right
		{"h1", true},  // white kingside rook without K right
		{"e8", false}, // black king keeps rights
		{"h8", false},
		{"a8", false},
		{"b1", false}, // knights are never inferred
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			p := find(placements, mustSquare(t, tt.square))
			if p == nil {
				t.Fatalf("no piece on %s", tt.square)
			}
			if p.Moved != tt.moved {
				t.Errorf("%s on %s: Moved = %v; want %v", p, tt.square, p.Moved, tt.moved)
			}
		})
	}
}

func TestFromFEN_RookRights(t *testing.T) {
	placements, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1")
	testutil.AssertNoError(t, err)

	want := map[string]bool{
		"h1": false, // K
		"a1": true,  // no Q
		"a8": false, // q
		"h8": true,  // no k
		"e1": false,
		"e8": false,
	}
	for name, moved := range want {
		p := find(placements, mustSquare(t, name))
		testutil.AssertTrue(t, p != nil, "piece on %s", name)
		testutil.AssertEqual(t, p.Moved, moved)
	}
}

func TestFromFEN_Ordered(t *testing.T) {
	placements, err := FromFEN("4k3/8/8/3q4/8/8/8/R3K3 w Q - 0 1")
	testutil.AssertNoError(t, err)

	var got []string
	for _, pl := range placements {
		got = append(got, pl.Square.String()+"="+pl.Piece.String())
	}
	testutil.AssertEqual(t, got, []string{
		"e8=black king",
		"d5=black queen",
		"a1=white rook",
		"e1=white king",
	})
	testutil.AssertApprox(t, piece.Material(Pieces(placements)...), -4)
}

func TestFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"not a fen", "not a fen"},
		{"too few ranks", "rnbqkbnr/pppppppp/8/8 w KQkq - 0 1"},
		{"bad piece letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1"},
		{"bad side to move", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
		{"missing fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)

			// The parser's own error stays reachable.
			_, parseErr := chess.FEN(tt.fen)
			if parseErr == nil {
				t.Fatalf("chess.FEN(%q) accepted the position", tt.fen)
			}
			multi, ok := err.(interface{ Unwrap() []error })
			if !ok {
				t.Fatalf("FromFEN error %T does not wrap multiple errors", err)
			}
			wrapped := multi.Unwrap()
			testutil.AssertEqual(t, len(wrapped), 2)
			testutil.AssertTrue(t, stderrors.Is(err, wrapped[1]), "underlying error reachable")
			testutil.AssertEqual(t, wrapped[1].Error(), parseErr.Error())
		})
	}
}
