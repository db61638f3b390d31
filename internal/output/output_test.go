package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chess-pieces-go/internal/config"
	"github.com/lgbarn/chess-pieces-go/internal/piece"
	"github.com/lgbarn/chess-pieces-go/internal/testutil"
)

func TestWriteText(t *testing.T) {
	e2 := piece.Square{Row: 6, Col: 4}
	pawn := piece.NewPawn(piece.White)
	pawn.MarkMoved()

	entries := []Entry{
		{Square: &e2, Piece: pawn},
		{Piece: piece.NewQueen(piece.Black)},
	}

	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteText(&buf, entries))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines; want 3:\n%s", len(lines), buf.String())
	}
	testutil.AssertEqual(t, strings.Fields(lines[0]), []string{
		"e2", "P", "white", "pawn", "1", "assets/images/imgs-80px/white_pawn.png", "moved",
	})
	testutil.AssertEqual(t, strings.Fields(lines[1]), []string{
		"-", "q", "black", "queen", "-9", "assets/images/imgs-80px/black_queen.png",
	})
	testutil.AssertEqual(t, strings.Fields(lines[2]), []string{"material", "-8"})
}

func TestWriteJSON(t *testing.T) {
	knight := piece.NewKnight(piece.White)
	knight.AddMove(piece.Square{Row: 5, Col: 5})
	knight.SetTextureRect(piece.Rect{Width: 80, Height: 80})
	g1 := piece.Square{Row: 7, Col: 6}

	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteJSON(&buf, []Entry{{Square: &g1, Piece: knight}}))

	var got JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, got, JSONOutput{
		Pieces: []*JSONPiece{{
			ID:          knight.ID.String(),
			Name:        "knight",
			Colour:      "white",
			Letter:      "N",
			Value:       3,
			Texture:     "assets/images/imgs-80px/white_knight.png",
			TextureRect: &piece.Rect{Width: 80, Height: 80},
			Square:      "g1",
			Moves:       []string{"f3"},
		}},
		Material: 3,
	})
}

func TestWriteJSON_PawnDir(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteJSON(&buf, Entries(piece.NewPawn(piece.Black))))
	testutil.AssertContains(t, buf.String(), `"dir": 1`)
	testutil.AssertContains(t, buf.String(), `"material": -1`)
}

func TestWrite_DispatchesOnFormat(t *testing.T) {
	var text, js bytes.Buffer
	entries := Entries(piece.NewKing(piece.White))

	testutil.AssertNoError(t, Write(config.NewConfigBuilder().WithOutput(&text).Build(), entries))
	testutil.AssertNoError(t, Write(config.NewConfigBuilder().WithOutput(&js).WithFormat(config.JSON).Build(), entries))

	testutil.AssertContains(t, text.String(), "white_king.png")
	testutil.AssertTrue(t, json.Valid(js.Bytes()), "JSON output")
}

func TestWriteManifest(t *testing.T) {
	paths := []string{"assets/images/imgs-80px/black_bishop.png", "assets/images/imgs-80px/white_bishop.png"}

	var text bytes.Buffer
	testutil.AssertNoError(t, WriteManifest(config.NewConfigBuilder().WithOutput(&text).Build(), paths))
	testutil.AssertEqual(t, text.String(), paths[0]+"\n"+paths[1]+"\n")

	var js bytes.Buffer
	testutil.AssertNoError(t, WriteManifest(config.NewConfigBuilder().WithOutput(&js).WithFormat(config.JSON).Build(), paths))
	var got JSONManifest
	testutil.AssertNoError(t, json.Unmarshal(js.Bytes(), &got))
	testutil.AssertEqual(t, got.Textures, paths)
}
