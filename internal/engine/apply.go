package engine

import (
	"fmt"

	"github.com/pmoulton/workbook-parse-go/internal/chess"
	"github.com/pmoulton/workbook-parse-go/internal/errors"
)

// ApplyMove mutates the position's occupancy to reflect the move played by
// mover. Source squares left ambiguous by the notation are resolved here, and
// move.CapturedPiece is filled in. Side to move, counters, castling rights
// and the en passant target are owned by the caller and not touched.
func ApplyMove(pos *chess.Position, move *chess.Move, mover chess.Colour) error {
	switch move.Class {
	case chess.KingsideCastle:
		return applyCastle(pos, mover, true)

	case chess.QueensideCastle:
		return applyCastle(pos, mover, false)

	case chess.PawnMove, chess.PawnMoveWithPromotion, chess.EnPassantPawnMove:
		return applyPawnMove(pos, move, mover)

	case chess.PieceMove:
		return applyPieceMove(pos, move, mover)

	default:
		return fmt.Errorf("%w: %q", errors.ErrMoveParse, move.Text)
	}
}

// applyCastle moves the king and rook for a castling move.
func applyCastle(pos *chess.Position, mover chess.Colour, kingside bool) error {
	var rank chess.Rank
	if mover == chess.White {
		rank = '1'
	} else {
		rank = '8'
	}

	kingFromCol, _ := pos.KingSquare(mover)
	var kingToCol, rookFromCol, rookToCol chess.Col
	if kingside {
		kingToCol, rookFromCol, rookToCol = 'g', 'h', 'f'
	} else {
		kingToCol, rookFromCol, rookToCol = 'c', 'a', 'd'
	}

	king := pos.Get(kingFromCol, rank)
	rook := pos.Get(rookFromCol, rank)
	if chess.ExtractPiece(king) != chess.King || chess.ExtractPiece(rook) != chess.Rook {
		return fmt.Errorf("%w: castling pieces not in place", errors.ErrMoveParse)
	}

	pos.Set(kingFromCol, rank, chess.Empty)
	pos.Set(kingToCol, rank, king)
	pos.Set(rookFromCol, rank, chess.Empty)
	pos.Set(rookToCol, rank, rook)
	pos.SetKingSquare(mover, kingToCol, rank)

	return nil
}

// applyPawnMove moves a pawn, handling en passant captures and promotion.
func applyPawnMove(pos *chess.Position, move *chess.Move, mover chess.Colour) error {
	fromCol := move.FromCol
	fromRank := move.FromRank
	toCol := move.ToCol
	toRank := move.ToRank

	// A capture landing on the en passant target square is an en passant
	// capture even without an "ep" suffix.
	if move.Class == chess.PawnMove && fromCol != 0 && fromCol != toCol &&
		pos.EnPassant && toCol == pos.EPCol && toRank == pos.EPRank {
		move.Class = chess.EnPassantPawnMove
	}

	if fromCol == 0 || fromRank == 0 {
		fromCol, fromRank = findPawnSource(pos, move, mover)
		if fromCol == 0 {
			return fmt.Errorf("%w: no %s pawn can play %s", errors.ErrMoveParse, mover, move.Text)
		}
		move.FromCol = fromCol
		move.FromRank = fromRank
	}

	pawn := pos.Get(fromCol, fromRank)
	if chess.ExtractPiece(pawn) != chess.Pawn || chess.ExtractColour(pawn) != mover {
		return fmt.Errorf("%w: no %s pawn on %c%c", errors.ErrMoveParse, mover, fromCol, fromRank)
	}

	if move.Class == chess.EnPassantPawnMove {
		// Remove the captured pawn from its actual square.
		var capturedRank chess.Rank
		if mover == chess.White {
			capturedRank = toRank - 1
		} else {
			capturedRank = toRank + 1
		}
		move.CapturedPiece = pos.Get(toCol, capturedRank)
		pos.Set(toCol, capturedRank, chess.Empty)
	} else {
		move.CapturedPiece = pos.Get(toCol, toRank)
	}

	pos.Set(fromCol, fromRank, chess.Empty)

	if move.Class == chess.PawnMoveWithPromotion {
		promotedPiece := move.PromotedPiece
		if promotedPiece == chess.Empty {
			promotedPiece = chess.Queen
		}
		pos.Set(toCol, toRank, chess.MakeColouredPiece(mover, promotedPiece))
	} else {
		pos.Set(toCol, toRank, pawn)
	}

	return nil
}

// applyPieceMove moves a non-pawn piece.
func applyPieceMove(pos *chess.Position, move *chess.Move, mover chess.Colour) error {
	fromCol := move.FromCol
	fromRank := move.FromRank
	toCol := move.ToCol
	toRank := move.ToRank
	pieceType := move.PieceToMove

	if fromCol == 0 || fromRank == 0 {
		fromCol, fromRank = findPieceSource(pos, move, mover)
		if fromCol == 0 {
			return fmt.Errorf("%w: no %s %s can play %s", errors.ErrMoveParse, mover, pieceType, move.Text)
		}
		move.FromCol = fromCol
		move.FromRank = fromRank
	}

	piece := pos.Get(fromCol, fromRank)
	if chess.ExtractPiece(piece) != pieceType || chess.ExtractColour(piece) != mover {
		return fmt.Errorf("%w: no %s %s on %c%c", errors.ErrMoveParse, mover, pieceType, fromCol, fromRank)
	}

	move.CapturedPiece = pos.Get(toCol, toRank)
	pos.Set(fromCol, fromRank, chess.Empty)
	pos.Set(toCol, toRank, piece)

	if pieceType == chess.King {
		pos.SetKingSquare(mover, toCol, toRank)
	}

	return nil
}

// findPawnSource finds the source square of a pawn move.
func findPawnSource(pos *chess.Position, move *chess.Move, mover chess.Colour) (chess.Col, chess.Rank) {
	toCol := move.ToCol
	toRank := move.ToRank
	fromCol := move.FromCol

	pawn := chess.MakeColouredPiece(mover, chess.Pawn)
	direction := chess.ColourOffset(mover)

	// If we know the from column this is a capture: look one rank back.
	if fromCol != 0 {
		fromRank := chess.Rank(int(toRank) - direction)
		if pos.Get(fromCol, fromRank) == pawn {
			return fromCol, fromRank
		}
		return 0, 0
	}

	// Non-capture: same column.
	fromRank := chess.Rank(int(toRank) - direction)
	if pos.Get(toCol, fromRank) == pawn {
		return toCol, fromRank
	}

	// Double pawn push.
	if (mover == chess.White && toRank == '4') || (mover == chess.Black && toRank == '5') {
		fromRank = chess.Rank(int(toRank) - 2*direction)
		middleRank := chess.Rank(int(toRank) - direction)
		if pos.Get(toCol, fromRank) == pawn && pos.Get(toCol, middleRank) == chess.Empty {
			return toCol, fromRank
		}
	}

	return 0, 0
}

// findPieceSource finds the source square of a piece move, honouring any
// disambiguation and skipping candidates whose move would leave the mover's
// king in check.
func findPieceSource(pos *chess.Position, move *chess.Move, mover chess.Colour) (chess.Col, chess.Rank) {
	toCol := move.ToCol
	toRank := move.ToRank
	pieceType := move.PieceToMove
	fromCol := move.FromCol
	fromRank := move.FromRank

	piece := chess.MakeColouredPiece(mover, pieceType)

	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			if pos.Get(col, rank) != piece {
				continue
			}
			if fromCol != 0 && col != fromCol {
				continue
			}
			if fromRank != 0 && rank != fromRank {
				continue
			}
			if !canPieceMove(pos, pieceType, col, rank, toCol, toRank) {
				continue
			}
			if tryMove(pos, col, rank, toCol, toRank, mover) {
				return col, rank
			}
		}
	}

	return 0, 0
}

// canPieceMove checks if a piece can geometrically move between two squares.
func canPieceMove(pos *chess.Position, pieceType chess.Piece, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank) bool {
	colDiff := abs(int(toCol) - int(fromCol))
	rankDiff := abs(int(toRank) - int(fromRank))

	switch pieceType {
	case chess.Knight:
		return (colDiff == 1 && rankDiff == 2) || (colDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		if colDiff != rankDiff {
			return false
		}
		return isDiagonalClear(pos, fromCol, fromRank, toCol, toRank)

	case chess.Rook:
		if colDiff != 0 && rankDiff != 0 {
			return false
		}
		return isStraightClear(pos, fromCol, fromRank, toCol, toRank)

	case chess.Queen:
		if colDiff == rankDiff {
			return isDiagonalClear(pos, fromCol, fromRank, toCol, toRank)
		}
		if colDiff == 0 || rankDiff == 0 {
			return isStraightClear(pos, fromCol, fromRank, toCol, toRank)
		}
		return false

	case chess.King:
		return colDiff <= 1 && rankDiff <= 1 && (colDiff != 0 || rankDiff != 0)
	}

	return false
}

// isDiagonalClear checks if the diagonal path is clear.
func isDiagonalClear(pos *chess.Position, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank) bool {
	colDir := sign(int(toCol) - int(fromCol))
	rankDir := sign(int(toRank) - int(fromRank))

	col := chess.Col(int(fromCol) + colDir)
	rank := chess.Rank(int(fromRank) + rankDir)

	for col != toCol && rank != toRank {
		if pos.Get(col, rank) != chess.Empty {
			return false
		}
		col = chess.Col(int(col) + colDir)
		rank = chess.Rank(int(rank) + rankDir)
	}

	return true
}

// isStraightClear checks if the straight path is clear.
func isStraightClear(pos *chess.Position, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank) bool {
	colDir := sign(int(toCol) - int(fromCol))
	rankDir := sign(int(toRank) - int(fromRank))

	col := chess.Col(int(fromCol) + colDir)
	rank := chess.Rank(int(fromRank) + rankDir)

	for col != toCol || rank != toRank {
		if pos.Get(col, rank) != chess.Empty {
			return false
		}
		col = chess.Col(int(col) + colDir)
		rank = chess.Rank(int(rank) + rankDir)
	}

	return true
}

// tryMove makes a move on a copied position and checks that it does not
// leave the mover's king in check.
func tryMove(pos *chess.Position, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank, mover chess.Colour) bool {
	test := pos.Copy()

	piece := test.Get(fromCol, fromRank)
	test.Set(fromCol, fromRank, chess.Empty)
	test.Set(toCol, toRank, piece)

	if chess.ExtractPiece(piece) == chess.King {
		test.SetKingSquare(mover, toCol, toRank)
	}

	return !IsInCheck(test, mover)
}

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	kingCol, kingRank := pos.KingSquare(colour)
	if kingCol == 0 || kingRank == 0 {
		kingCol, kingRank = findKing(pos, colour)
		if kingCol == 0 {
			return false
		}
	}
	return isSquareAttacked(pos, kingCol, kingRank, colour.Opposite())
}

// findKing finds the king of the given colour on the board.
func findKing(pos *chess.Position, colour chess.Colour) (chess.Col, chess.Rank) {
	king := chess.MakeColouredPiece(colour, chess.King)
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			if pos.Get(col, rank) == king {
				return col, rank
			}
		}
	}
	return 0, 0
}

// isSquareAttacked returns true if the square is attacked by the given colour.
func isSquareAttacked(pos *chess.Position, col chess.Col, rank chess.Rank, byColour chess.Colour) bool {
	// Pawn attacks
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	var pawnDir int
	if byColour == chess.White {
		pawnDir = -1 // White pawns attack from below
	} else {
		pawnDir = 1
	}
	pawnRank := chess.Rank(int(rank) + pawnDir)
	if pawnRank >= '1' && pawnRank <= '8' {
		if col > 'a' && pos.Get(col-1, pawnRank) == pawn {
			return true
		}
		if col < 'h' && pos.Get(col+1, pawnRank) == pawn {
			return true
		}
	}

	// Knight attacks
	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	knightMoves := [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	for _, d := range knightMoves {
		c := chess.Col(int(col) + d[0])
		r := chess.Rank(int(rank) + d[1])
		if c >= 'a' && c <= 'h' && r >= '1' && r <= '8' && pos.Get(c, r) == knight {
			return true
		}
	}

	// King attacks
	king := chess.MakeColouredPiece(byColour, chess.King)
	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}
			c := chess.Col(int(col) + dc)
			r := chess.Rank(int(rank) + dr)
			if c >= 'a' && c <= 'h' && r >= '1' && r <= '8' && pos.Get(c, r) == king {
				return true
			}
		}
	}

	// Sliding pieces along diagonals
	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	diagonalDirs := [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	for _, dir := range diagonalDirs {
		c := chess.Col(int(col) + dir[0])
		r := chess.Rank(int(rank) + dir[1])
		for c >= 'a' && c <= 'h' && r >= '1' && r <= '8' {
			piece := pos.Get(c, r)
			if piece != chess.Empty {
				if piece == bishop || piece == queen {
					return true
				}
				break
			}
			c = chess.Col(int(c) + dir[0])
			r = chess.Rank(int(r) + dir[1])
		}
	}

	// Sliding pieces along straight lines
	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	straightDirs := [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for _, dir := range straightDirs {
		c := chess.Col(int(col) + dir[0])
		r := chess.Rank(int(rank) + dir[1])
		for c >= 'a' && c <= 'h' && r >= '1' && r <= '8' {
			piece := pos.Get(c, r)
			if piece != chess.Empty {
				if piece == rook || piece == queen {
					return true
				}
				break
			}
			c = chess.Col(int(c) + dir[0])
			r = chess.Rank(int(r) + dir[1])
		}
	}

	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
