package engine

import (
	"errors"
	"testing"

	"github.com/pmoulton/workbook-parse-go/internal/chess"
	wberrors "github.com/pmoulton/workbook-parse-go/internal/errors"
)

func TestInitialPositionFEN(t *testing.T) {
	if got := PositionToFEN(InitialPosition()); got != InitialFEN {
		t.Errorf("got %q, want %q", got, InitialFEN)
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 4 3",
		"8/8/8/8/8/8/8/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K2R w K - 12 40",
		"r3k3/8/8/8/8/8/8/4K3 b q - 0 55",
	}

	for _, fen := range fens {
		pos, err := PositionFromFEN(fen)
		if err != nil {
			t.Errorf("PositionFromFEN(%q): %v", fen, err)
			continue
		}
		if got := PositionToFEN(pos); got != fen {
			t.Errorf("round trip of %q produced %q", fen, got)
		}
	}
}

func TestFENMoveNumberMapping(t *testing.T) {
	// With White to move the full-move counter names the move about to
	// be played, so the last completed White move is one less.
	pos, err := PositionFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 5")
	if err != nil {
		t.Fatal(err)
	}
	if pos.MoveNumber != 4 {
		t.Errorf("MoveNumber = %d, want 4", pos.MoveNumber)
	}

	pos, err = PositionFromFEN("4k3/8/8/8/8/8/8/4K3 b - - 0 5")
	if err != nil {
		t.Fatal(err)
	}
	if pos.MoveNumber != 5 {
		t.Errorf("MoveNumber = %d, want 5", pos.MoveNumber)
	}
}

func TestFENKingTracking(t *testing.T) {
	pos, err := PositionFromFEN("4k3/8/8/8/8/8/8/2K5 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	col, rank := pos.KingSquare(chess.White)
	if col != 'c' || rank != '1' {
		t.Errorf("white king at %c%c, want c1", col, rank)
	}
	col, rank = pos.KingSquare(chess.Black)
	if col != 'e' || rank != '8' {
		t.Errorf("black king at %c%c, want e8", col, rank)
	}
}

func TestFENInvalid(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNZ w KQkq - 0 1",
		"8/8/8/8/8/8/8/8 x - - 0 1",
	}
	for _, fen := range bad {
		if _, err := PositionFromFEN(fen); !errors.Is(err, wberrors.ErrInvalidFEN) {
			t.Errorf("PositionFromFEN(%q) = %v, want ErrInvalidFEN", fen, err)
		}
	}
}

func TestConvertFENCharToPiece(t *testing.T) {
	if got := ConvertFENCharToPiece('q'); got != chess.Queen {
		t.Errorf("got %v, want Queen", got)
	}
	if got := ConvertFENCharToPiece('z'); got != chess.Empty {
		t.Errorf("got %v, want Empty", got)
	}
}

func TestColouredPieceToFENLetter(t *testing.T) {
	if got := ColouredPieceToFENLetter(chess.W(chess.Knight)); got != 'N' {
		t.Errorf("got %c, want N", got)
	}
	if got := ColouredPieceToFENLetter(chess.B(chess.Knight)); got != 'n' {
		t.Errorf("got %c, want n", got)
	}
}
