package engine

import (
	"errors"
	"testing"

	"github.com/pmoulton/workbook-parse-go/internal/chess"
	wberrors "github.com/pmoulton/workbook-parse-go/internal/errors"
)

// play replays a sequence of moves from a position, failing the test on any
// error.
func play(t *testing.T, pos *chess.Position, moves ...string) *chess.Position {
	t.Helper()
	for _, m := range moves {
		next, _, err := Advance(pos, m)
		if err != nil {
			t.Fatalf("Advance(%q): %v", m, err)
		}
		pos = next
	}
	return pos
}

func TestAdvanceFirstMove(t *testing.T) {
	pos := play(t, InitialPosition(), "e4")

	if got := PositionToFEN(pos); got != "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1" {
		t.Errorf("unexpected position: %s", got)
	}
	if pos.MoveNumber != 1 {
		t.Errorf("MoveNumber = %d, want 1", pos.MoveNumber)
	}
	if pos.ToMove != chess.Black {
		t.Errorf("ToMove = %v, want Black", pos.ToMove)
	}
	if !pos.EnPassant || pos.EPCol != 'e' || pos.EPRank != '3' {
		t.Errorf("en passant target = %v %c%c, want e3", pos.EnPassant, pos.EPCol, pos.EPRank)
	}
}

func TestAdvanceDoesNotMutateParent(t *testing.T) {
	parent := InitialPosition()
	play(t, parent, "e4")

	if got := PositionToFEN(parent); got != InitialFEN {
		t.Errorf("parent changed to %s", got)
	}
}

func TestAdvanceHalfmoveClock(t *testing.T) {
	pos := play(t, InitialPosition(), "e4", "e5", "Nf3")
	if pos.HalfmoveClock != 1 {
		t.Errorf("after Nf3: HalfmoveClock = %d, want 1", pos.HalfmoveClock)
	}

	pos = play(t, pos, "Nf6", "Nc3")
	if pos.HalfmoveClock != 3 {
		t.Errorf("after Nc3: HalfmoveClock = %d, want 3", pos.HalfmoveClock)
	}

	// A capture resets the clock.
	pos = play(t, pos, "Nxe4")
	if pos.HalfmoveClock != 0 {
		t.Errorf("after Nxe4: HalfmoveClock = %d, want 0", pos.HalfmoveClock)
	}
}

func TestAdvanceCapture(t *testing.T) {
	pos := play(t, InitialPosition(), "e4", "d5")

	next, move, err := Advance(pos, "exd5")
	if err != nil {
		t.Fatal(err)
	}
	if move.CapturedPiece != chess.B(chess.Pawn) {
		t.Errorf("CapturedPiece = %v, want black pawn", move.CapturedPiece)
	}
	if next.Get('d', '5') != chess.W(chess.Pawn) {
		t.Errorf("d5 = %v, want white pawn", next.Get('d', '5'))
	}
	if next.Occupied('e', '4') {
		t.Error("e4 still occupied after exd5")
	}
}

func TestAdvanceKingsideCastle(t *testing.T) {
	pos := play(t, InitialPosition(), "e4", "e5", "Nf3", "Nc6", "Bc4", "Bc5", "O-O")

	if pos.Get('g', '1') != chess.W(chess.King) || pos.Get('f', '1') != chess.W(chess.Rook) {
		t.Fatalf("castle did not land: g1=%v f1=%v", pos.Get('g', '1'), pos.Get('f', '1'))
	}
	if pos.Occupied('e', '1') || pos.Occupied('h', '1') {
		t.Error("king or rook source square still occupied")
	}
	if pos.Castling.WhiteKingside || pos.Castling.WhiteQueenside {
		t.Errorf("white rights not cleared: %+v", pos.Castling)
	}
	if !pos.Castling.BlackKingside || !pos.Castling.BlackQueenside {
		t.Errorf("black rights disturbed: %+v", pos.Castling)
	}

	col, rank := pos.KingSquare(chess.White)
	if col != 'g' || rank != '1' {
		t.Errorf("white king tracked at %c%c, want g1", col, rank)
	}
}

func TestAdvanceQueensideCastle(t *testing.T) {
	start, err := PositionFromFEN("r3kbnr/pppqpppp/2n5/3p1b2/3P1B2/2N5/PPPQPPPP/R3KBNR w KQkq - 6 5")
	if err != nil {
		t.Fatal(err)
	}

	pos := play(t, start, "O-O-O")
	if pos.Get('c', '1') != chess.W(chess.King) || pos.Get('d', '1') != chess.W(chess.Rook) {
		t.Fatalf("castle did not land: c1=%v d1=%v", pos.Get('c', '1'), pos.Get('d', '1'))
	}

	pos = play(t, pos, "O-O-O")
	if pos.Get('c', '8') != chess.B(chess.King) || pos.Get('d', '8') != chess.B(chess.Rook) {
		t.Fatalf("castle did not land: c8=%v d8=%v", pos.Get('c', '8'), pos.Get('d', '8'))
	}
	if !pos.Castling.None() {
		t.Errorf("rights remain after both castles: %+v", pos.Castling)
	}
}

func TestAdvanceCastlingRightsMonotonic(t *testing.T) {
	// A king move clears both wings for its side and they never return.
	pos := play(t, InitialPosition(), "e4", "e5", "Ke2", "Nf6", "Ke1")

	if pos.Castling.WhiteKingside || pos.Castling.WhiteQueenside {
		t.Errorf("white rights restored after king returned: %+v", pos.Castling)
	}
	if !pos.Castling.BlackKingside || !pos.Castling.BlackQueenside {
		t.Errorf("black rights disturbed: %+v", pos.Castling)
	}
}

func TestAdvanceRookMoveClearsWing(t *testing.T) {
	pos := play(t, InitialPosition(), "a4", "a5", "Ra2")

	if pos.Castling.WhiteQueenside {
		t.Error("queenside right survived the rook leaving a1")
	}
	if !pos.Castling.WhiteKingside {
		t.Error("kingside right lost without cause")
	}
}

func TestAdvanceRookCaptureClearsOpponentWing(t *testing.T) {
	start, err := PositionFromFEN("rnbqkbnr/1ppppp1p/6p1/p7/8/1P6/PBPPPPPP/RN1QKBNR w KQkq - 0 4")
	if err != nil {
		t.Fatal(err)
	}

	// The b2 bishop takes the rook on h8.
	pos := play(t, start, "Bxh8")
	if pos.Castling.BlackKingside {
		t.Error("black kingside right survived the h8 rook capture")
	}
	if !pos.Castling.BlackQueenside {
		t.Error("black queenside right lost without cause")
	}
}

func TestAdvancePromotion(t *testing.T) {
	start, err := PositionFromFEN("8/P7/8/8/8/8/6k1/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	pos := play(t, start, "a8=Q")
	if pos.Get('a', '8') != chess.W(chess.Queen) {
		t.Errorf("a8 = %v, want white queen", pos.Get('a', '8'))
	}
	if pos.Occupied('a', '7') {
		t.Error("a7 still occupied after promotion")
	}
	if pos.HalfmoveClock != 0 {
		t.Errorf("HalfmoveClock = %d, want 0", pos.HalfmoveClock)
	}
}

func TestAdvanceEnPassantCapture(t *testing.T) {
	// Black's d7-d5 sets the target; exd6 needs no "ep" suffix.
	pos := play(t, InitialPosition(), "e4", "Nf6", "e5", "d5")

	if !pos.EnPassant || pos.EPCol != 'd' || pos.EPRank != '6' {
		t.Fatalf("en passant target = %v %c%c, want d6", pos.EnPassant, pos.EPCol, pos.EPRank)
	}

	next, move, err := Advance(pos, "exd6")
	if err != nil {
		t.Fatal(err)
	}
	if move.Class != chess.EnPassantPawnMove {
		t.Errorf("Class = %v, want EnPassantPawnMove", move.Class)
	}
	if next.Get('d', '6') != chess.W(chess.Pawn) {
		t.Errorf("d6 = %v, want white pawn", next.Get('d', '6'))
	}
	if next.Occupied('d', '5') {
		t.Error("captured pawn still on d5")
	}
	if next.EnPassant {
		t.Error("en passant target not cleared")
	}
	if next.HalfmoveClock != 0 {
		t.Errorf("HalfmoveClock = %d, want 0", next.HalfmoveClock)
	}
}

func TestAdvanceDisambiguation(t *testing.T) {
	start, err := PositionFromFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	pos := play(t, start, "Rad1")
	if pos.Get('d', '1') != chess.W(chess.Rook) {
		t.Fatalf("d1 = %v, want white rook", pos.Get('d', '1'))
	}
	if pos.Occupied('a', '1') {
		t.Error("a1 still occupied; wrong rook moved")
	}
	if !pos.Occupied('h', '1') {
		t.Error("h1 rook moved instead of a1")
	}
}

func TestAdvancePinnedPieceSkipped(t *testing.T) {
	// Both knights could reach d5 geometrically, but the f4 knight is
	// pinned against the king, so Nd5 must move the b4 knight.
	start, err := PositionFromFEN("4kr2/8/8/8/1N3N2/8/8/5K2 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	pos := play(t, start, "Nd5")
	if pos.Occupied('b', '4') {
		t.Error("b4 knight did not move")
	}
	if !pos.Occupied('f', '4') {
		t.Error("pinned f4 knight moved")
	}
}

func TestAdvanceUnparseableMove(t *testing.T) {
	_, _, err := Advance(InitialPosition(), "xyzzy")
	if !errors.Is(err, wberrors.ErrMoveParse) {
		t.Fatalf("err = %v, want ErrMoveParse", err)
	}

	var moveErr *wberrors.MoveError
	if !errors.As(err, &moveErr) {
		t.Fatalf("err %v is not a MoveError", err)
	}
	if moveErr.MoveText != "xyzzy" || moveErr.ToMove != "White" {
		t.Errorf("context = %+v", moveErr)
	}
}

func TestAdvanceImpossibleMove(t *testing.T) {
	_, _, err := Advance(InitialPosition(), "Qd4")
	if !errors.Is(err, wberrors.ErrMoveParse) {
		t.Fatalf("err = %v, want ErrMoveParse", err)
	}
}
