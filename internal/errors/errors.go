// Package errors provides sentinel errors and error types for workbook
// parsing. It defines common failure conditions and structured error types
// that preserve context while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrMoveParse indicates a move token that cannot be interpreted
	// for the side to move.
	ErrMoveParse = errors.New("unparseable move")

	// ErrParse indicates a general movetext parsing error.
	ErrParse = errors.New("parse failure")
)

// MoveError wraps a move-level failure with the token and position context
// in which it occurred. It supports unwrapping via errors.Is() and
// errors.As().
type MoveError struct {
	Err        error  // The underlying error
	MoveText   string // The move token that failed
	MoveNumber uint   // Full-move number at the point of failure
	ToMove     string // Side that was to move
}

// Error returns a formatted message including the available context.
func (e *MoveError) Error() string {
	if e.MoveNumber > 0 {
		return fmt.Sprintf("move %d (%s) %q: %v", e.MoveNumber, e.ToMove, e.MoveText, e.Err)
	}
	return fmt.Sprintf("move %q (%s): %v", e.MoveText, e.ToMove, e.Err)
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is to match the wrapped sentinel directly.
func (e *MoveError) Is(target error) bool {
	return errors.Is(e.Err, target)
}
