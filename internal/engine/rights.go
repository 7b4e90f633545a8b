package engine

import (
	"github.com/pmoulton/workbook-parse-go/internal/chess"
)

// CastlingRightsAfter returns the castling rights that remain once move has
// been applied for mover. Rights only ever get revoked here: a right absent
// from prev stays absent. The position must already reflect the applied move
// so that captures of rooks on their home squares are visible through
// move.CapturedPiece.
func CastlingRightsAfter(prev chess.CastlingRights, move *chess.Move, mover chess.Colour) chess.CastlingRights {
	rights := prev

	// Castling or any king move loses both wings for the mover.
	if move.IsCastle() || move.PieceToMove == chess.King {
		if mover == chess.White {
			rights.WhiteKingside = false
			rights.WhiteQueenside = false
		} else {
			rights.BlackKingside = false
			rights.BlackQueenside = false
		}
		if move.IsCastle() {
			return rights
		}
	}

	// A rook leaving its home square loses that wing.
	if move.PieceToMove == chess.Rook {
		revokeRookSquare(&rights, mover, move.FromCol, move.FromRank)
	}

	// Capturing a rook on its home square loses the opponent's wing.
	if chess.ExtractPiece(move.CapturedPiece) == chess.Rook {
		revokeRookSquare(&rights, mover.Opposite(), move.ToCol, move.ToRank)
	}

	return rights
}

// revokeRookSquare clears the right tied to a rook home square, if the given
// square is one.
func revokeRookSquare(rights *chess.CastlingRights, colour chess.Colour, col chess.Col, rank chess.Rank) {
	if colour == chess.White && rank == '1' {
		switch col {
		case 'h':
			rights.WhiteKingside = false
		case 'a':
			rights.WhiteQueenside = false
		}
	} else if colour == chess.Black && rank == '8' {
		switch col {
		case 'h':
			rights.BlackKingside = false
		case 'a':
			rights.BlackQueenside = false
		}
	}
}

// EnPassantAfter returns the en passant target produced by move, if any.
// Only a two-square pawn advance sets a target; every other move clears it.
func EnPassantAfter(move *chess.Move, mover chess.Colour) (bool, chess.Col, chess.Rank) {
	if move.Class != chess.PawnMove {
		return false, 0, 0
	}
	if mover == chess.White && move.FromRank == '2' && move.ToRank == '4' {
		return true, move.ToCol, '3'
	}
	if mover == chess.Black && move.FromRank == '7' && move.ToRank == '5' {
		return true, move.ToCol, '6'
	}
	return false, 0, 0
}
