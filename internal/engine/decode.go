// Package engine provides move decoding, board mutation and the position
// state machine that replays a notation line.
package engine

import (
	"strings"

	"github.com/pmoulton/workbook-parse-go/internal/chess"
)

// isCol returns true if c is a valid column (file) character.
func isCol(c byte) bool {
	return c >= chess.FirstCol && c <= chess.LastCol
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= chess.FirstRank && c <= chess.LastRank
}

// pieceForLetter returns the piece type for a leading SAN letter.
// Lowercase letters are not pieces; a lowercase 'b' is a pawn reference.
func pieceForLetter(c byte) chess.Piece {
	switch c {
	case 'K':
		return chess.King
	case 'Q':
		return chess.Queen
	case 'R':
		return chess.Rook
	case 'N':
		return chess.Knight
	case 'B':
		return chess.Bishop
	}
	return chess.Empty
}

// isCapture returns true if c is a capture or separator character.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':' || c == '-'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isCheck returns true if c is a check indicator.
func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// DecodeMove parses a move token and returns a move descriptor. Tokens that
// cannot be interpreted get class UnknownMove; source squares that SAN leaves
// ambiguous stay 0 until resolved against a position.
func DecodeMove(moveText string) *chess.Move {
	move := chess.NewMove()
	move.Text = moveText

	var fromRank, toRank chess.Rank
	var fromCol, toCol chess.Col
	var class chess.MoveClass
	ok := true

	var col chess.Col
	var rank chess.Rank

	pos := 0
	pieceToMove := chess.Empty
	promotedPiece := chess.Empty

	currentChar := func() byte {
		if pos >= len(moveText) {
			return 0
		}
		return moveText[pos]
	}

	advance := func() {
		if pos < len(moveText) {
			pos++
		}
	}

	remaining := func() string {
		if pos >= len(moveText) {
			return ""
		}
		return moveText[pos:]
	}

	// Make an initial distinction between pawn moves and piece moves
	if isCol(currentChar()) {
		// Pawn move
		class = chess.PawnMove
		pieceToMove = chess.Pawn
		col = chess.Col(currentChar())
		advance()

		if isRank(currentChar()) {
			// e4, e2e4
			rank = chess.Rank(currentChar())
			advance()

			if isCapture(currentChar()) {
				advance()
			}

			if isCol(currentChar()) {
				fromCol = col
				fromRank = rank
				toCol = chess.Col(currentChar())
				advance()

				if isRank(currentChar()) {
					toRank = chess.Rank(currentChar())
					advance()
				}
			} else {
				toCol = col
				toRank = rank
			}
		} else {
			if isCapture(currentChar()) {
				// exd
				advance()
			}

			if isCol(currentChar()) {
				// ed, or exd4
				fromCol = col
				toCol = chess.Col(currentChar())
				advance()

				if isRank(currentChar()) {
					toRank = chess.Rank(currentChar())
					advance()
				}

				// A pawn capture moves at most one file.
				if fromCol != chess.Col(byte(toCol)+1) && fromCol != chess.Col(byte(toCol)-1) {
					ok = false
				}
			} else {
				ok = false
			}
		}

		if ok {
			// Look for promotions
			if currentChar() == '=' {
				advance()
			}
			if piece := pieceForLetter(currentChar()); piece != chess.Empty {
				class = chess.PawnMoveWithPromotion
				promotedPiece = piece
				advance()
			} else if currentChar() == 'b' {
				// Trailing lowercase b as Bishop promotion
				class = chess.PawnMoveWithPromotion
				promotedPiece = chess.Bishop
				advance()
			}
		}
	} else if pieceToMove = pieceForLetter(currentChar()); pieceToMove != chess.Empty {
		class = chess.PieceMove
		advance()

		if isRank(currentChar()) {
			// Disambiguating rank: R1e1, R1xe3
			fromRank = chess.Rank(currentChar())
			advance()

			if isCapture(currentChar()) {
				advance()
			}

			if isCol(currentChar()) {
				toCol = chess.Col(currentChar())
				advance()

				if isRank(currentChar()) {
					toRank = chess.Rank(currentChar())
					advance()
				}
			} else {
				ok = false
			}
		} else {
			if isCapture(currentChar()) {
				// Rxe1
				advance()

				if isCol(currentChar()) {
					toCol = chess.Col(currentChar())
					advance()

					if isRank(currentChar()) {
						toRank = chess.Rank(currentChar())
						advance()
					} else {
						ok = false
					}
				} else {
					ok = false
				}
			} else if isCol(currentChar()) {
				col = chess.Col(currentChar())
				advance()

				if isCapture(currentChar()) {
					advance()
				}

				if isRank(currentChar()) {
					// Re1, Re1d1, Re1xd1
					rank = chess.Rank(currentChar())
					advance()

					if isCapture(currentChar()) {
						advance()
					}

					if isCol(currentChar()) {
						// Re1d1
						fromCol = col
						fromRank = rank
						toCol = chess.Col(currentChar())
						advance()

						if isRank(currentChar()) {
							toRank = chess.Rank(currentChar())
							advance()
						} else {
							ok = false
						}
					} else {
						toCol = col
						toRank = rank
					}
				} else if isCol(currentChar()) {
					// Rae1
					fromCol = col
					toCol = chess.Col(currentChar())
					advance()

					if isRank(currentChar()) {
						toRank = chess.Rank(currentChar())
						advance()
					} else {
						ok = false
					}
				} else {
					ok = false
				}
			} else {
				ok = false
			}
		}
	} else if isCastlingChar(currentChar()) {
		// Castling, with optional separators: O-O, O-O-O, 0-0, OO
		advance()

		if currentChar() == '-' {
			advance()
		}

		if isCastlingChar(currentChar()) {
			advance()

			if currentChar() == '-' {
				advance()
			}

			if isCastlingChar(currentChar()) {
				class = chess.QueensideCastle
				advance()
			} else {
				class = chess.KingsideCastle
			}
			pieceToMove = chess.King
		} else {
			ok = false
		}
	} else {
		ok = false
	}

	if ok {
		// Allow trailing checks
		for isCheck(currentChar()) {
			advance()
		}

		switch {
		case currentChar() == 0:
			// Nothing more to check
		case class == chess.PawnMove &&
			(strings.HasSuffix(remaining(), "ep") || strings.HasSuffix(remaining(), "e.p.")):
			class = chess.EnPassantPawnMove
		default:
			ok = false
		}
	}

	if !ok {
		class = chess.UnknownMove
	}

	move.Class = class
	move.PieceToMove = pieceToMove
	move.PromotedPiece = promotedPiece
	move.FromCol = fromCol
	move.FromRank = fromRank
	move.ToCol = toCol
	move.ToRank = toRank

	return move
}
