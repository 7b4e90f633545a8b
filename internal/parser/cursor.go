// Package parser converts workbook movetext into a tree of positions.
package parser

// TokenType classifies a lexical token by its first character.
type TokenType int

const (
	TokenNone TokenType = iota
	TokenMoveNumber
	TokenMove
	TokenBranchStart
	TokenBranchEnd
	TokenCommentStart
	TokenCommentEnd
	TokenNAG
	TokenUnknown
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	TokenNone:         "NONE",
	TokenMoveNumber:   "MOVE_NUMBER",
	TokenMove:         "MOVE",
	TokenBranchStart:  "BRANCH_START",
	TokenBranchEnd:    "BRANCH_END",
	TokenCommentStart: "COMMENT_START",
	TokenCommentEnd:   "COMMENT_END",
	TokenNAG:          "NAG",
	TokenUnknown:      "UNKNOWN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// cursor is the owned scan state shared by the tokenizer and the comment
// extractor. One cursor belongs to exactly one parse; nested branch parses
// consume from the same cursor.
type cursor struct {
	text string
	pos  int
}

func newCursor(text string) *cursor {
	return &cursor{text: text}
}

// exhausted reports whether no input remains.
func (c *cursor) exhausted() bool {
	return c.pos >= len(c.text)
}

// truncate discards all remaining input.
func (c *cursor) truncate() {
	c.pos = len(c.text)
}

// isSpace matches the separators the header scanner can leave in the body,
// including the carriage returns of CRLF input.
func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

// nextToken returns the next token, or "" once the input is exhausted.
// The four structural characters are single-character tokens; everything
// else runs to the next space or ')'. A terminating ')' is left in place
// for the following call.
func (c *cursor) nextToken() string {
	for c.pos < len(c.text) && isSpace(c.text[c.pos]) {
		c.pos++
	}
	if c.pos >= len(c.text) {
		return ""
	}

	switch c.text[c.pos] {
	case '{', '}', '(', ')':
		tok := c.text[c.pos : c.pos+1]
		c.pos++
		return tok
	}

	start := c.pos
	for c.pos < len(c.text) && !isSpace(c.text[c.pos]) && c.text[c.pos] != ')' {
		c.pos++
	}
	return c.text[start:c.pos]
}

// classify determines a token's type from its first character.
func classify(token string) TokenType {
	if token == "" {
		return TokenNone
	}
	ch := token[0]
	switch {
	case ch >= '0' && ch <= '9':
		return TokenMoveNumber
	case (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z'):
		return TokenMove
	case ch == '(':
		return TokenBranchStart
	case ch == ')':
		return TokenBranchEnd
	case ch == '{':
		return TokenCommentStart
	case ch == '}':
		return TokenCommentEnd
	case ch == '$':
		return TokenNAG
	default:
		return TokenUnknown
	}
}

// isResult matches the game termination markers.
func isResult(token string) bool {
	switch token {
	case "*", "1-0", "0-1", "1/2-1/2":
		return true
	default:
		return false
	}
}
