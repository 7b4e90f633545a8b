package engine

import (
	"fmt"

	"github.com/pmoulton/workbook-parse-go/internal/chess"
	"github.com/pmoulton/workbook-parse-go/internal/errors"
)

// Advance produces the child position that results from playing moveText in
// parent. The steps are order-dependent: decode, copy, counter/side toggle,
// board mutation, castling-rights recomputation, en passant recomputation,
// half-move clock. The parent is never mutated.
func Advance(parent *chess.Position, moveText string) (*chess.Position, *chess.Move, error) {
	mover := parent.ToMove

	move := DecodeMove(moveText)
	if move.Class == chess.UnknownMove {
		return nil, nil, &errors.MoveError{
			Err:        fmt.Errorf("%w: unrecognized syntax", errors.ErrMoveParse),
			MoveText:   moveText,
			MoveNumber: parent.MoveNumber,
			ToMove:     mover.String(),
		}
	}

	child := parent.Copy()

	if mover == chess.White {
		child.MoveNumber = parent.MoveNumber + 1
		child.ToMove = chess.Black
	} else {
		child.ToMove = chess.White
	}

	if err := ApplyMove(child, move, mover); err != nil {
		return nil, nil, &errors.MoveError{
			Err:        err,
			MoveText:   moveText,
			MoveNumber: child.MoveNumber,
			ToMove:     mover.String(),
		}
	}

	child.Castling = CastlingRightsAfter(parent.Castling, move, mover)
	child.EnPassant, child.EPCol, child.EPRank = EnPassantAfter(move, mover)

	if move.IsCapture() || move.IsPawnMove() {
		child.HalfmoveClock = 0
	} else {
		child.HalfmoveClock = parent.HalfmoveClock + 1
	}

	return child, move, nil
}
