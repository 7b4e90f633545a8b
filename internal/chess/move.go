package chess

// Move is the structured descriptor produced by decoding one move token.
// Source squares may be 0 until the engine resolves them against a position.
type Move struct {
	// The move text as it appeared in the source (e.g., "Nf3", "e4", "O-O").
	Text string

	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// Source square.
	FromCol  Col
	FromRank Rank

	// Destination square.
	ToCol  Col
	ToRank Rank

	// The piece being moved.
	PieceToMove Piece

	// The piece captured, Empty if none. Filled in during application.
	CapturedPiece Piece

	// The piece promoted to, Empty if not a promotion.
	PromotedPiece Piece
}

// NewMove creates a new empty move descriptor.
func NewMove() *Move {
	return &Move{
		CapturedPiece: Empty,
		PromotedPiece: Empty,
	}
}

// IsCapture returns true if this move captured a piece.
func (m *Move) IsCapture() bool {
	return m.CapturedPiece != Empty || m.Class == EnPassantPawnMove
}

// IsPawnMove returns true for any class of pawn move.
func (m *Move) IsPawnMove() bool {
	switch m.Class {
	case PawnMove, PawnMoveWithPromotion, EnPassantPawnMove:
		return true
	default:
		return false
	}
}

// IsCastle returns true if this move is a castling move.
func (m *Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}
