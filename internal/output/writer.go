// Package output renders parsed trees back to workbook notation and JSON.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pmoulton/workbook-parse-go/internal/chess"
	"github.com/pmoulton/workbook-parse-go/internal/commands"
	"github.com/pmoulton/workbook-parse-go/internal/tree"
)

// DefaultLineLength is the wrap column for emitted movetext.
const DefaultLineLength = 80

// TreeWriter is the interface for writing parsed records to output.
type TreeWriter interface {
	// WriteTree writes a single record to the output.
	WriteTree(t *tree.Tree) error

	// Close flushes any pending output and releases resources.
	Close() error
}

// NotationWriter writes records in workbook (PGN-style) notation.
type NotationWriter struct {
	w io.Writer
}

// NewNotationWriter creates a writer emitting workbook notation.
func NewNotationWriter(w io.Writer) *NotationWriter {
	return &NotationWriter{w: w}
}

// WriteTree writes one record: headers, a blank line, then movetext.
func (nw *NotationWriter) WriteTree(t *tree.Tree) error {
	_, err := io.WriteString(nw.w, Encode(t))
	return err
}

// Close is a no-op; notation records are written immediately.
func (nw *NotationWriter) Close() error {
	return nil
}

// Encode renders a full record: headers, a blank line, movetext and the
// terminating result.
func Encode(t *tree.Tree) string {
	var sb strings.Builder
	for _, h := range t.Headers {
		fmt.Fprintf(&sb, "[%s \"%s\"]\n", h.Key, h.Value)
	}
	if len(t.Headers) > 0 {
		sb.WriteByte('\n')
	}
	sb.WriteString(EncodeMovetext(t))
	sb.WriteByte('\n')
	return sb.String()
}

// EncodeMovetext renders the movetext of a tree, including comments,
// embedded commands, NAGs and nested variations, wrapped at the default
// line length. The terminating result comes from the Result header, or "*".
func EncodeMovetext(t *tree.Tree) string {
	lw := &lineWriter{max: DefaultLineLength}

	if t.Root != nil {
		if braced := braceComment(t.Root); braced != "" {
			lw.writeToken(braced)
		}
		writeLine(lw, t.Root, true)
	}

	result := t.Header("Result")
	if result == "" {
		result = "*"
	}
	lw.writeToken(result)

	return lw.String()
}

// writeLine emits the continuation of parent: the mainline move, any side
// variations in source order, then the rest of the line.
func writeLine(lw *lineWriter, parent *tree.Node, forceNumber bool) {
	node := parent
	force := forceNumber

	for node.Mainline() != nil {
		main := node.Mainline()
		writeNode(lw, main, force)
		force = false

		interrupted := main.Comment != "" || main.Annotations != nil || len(main.NAGs) > 0
		for _, alt := range node.Children[1:] {
			lw.writeToken("(")
			writeNode(lw, alt, true)
			writeLine(lw, alt, false)
			lw.writeToken(")")
			interrupted = true
		}
		if interrupted {
			// A comment or variation breaks the pair, so Black's
			// reply repeats the move number.
			force = true
		}
		node = main
	}
}

// writeNode emits one move with its number prefix, NAGs and comment.
func writeNode(lw *lineWriter, n *tree.Node, forceNumber bool) {
	movedByWhite := n.Position.ToMove == chess.Black
	if movedByWhite {
		lw.writeToken(fmt.Sprintf("%d.", n.Position.MoveNumber))
	} else if forceNumber {
		lw.writeToken(fmt.Sprintf("%d...", n.Position.MoveNumber))
	}

	lw.writeToken(n.MoveText)

	for _, nag := range n.NAGs {
		lw.writeToken("$" + strconv.Itoa(nag))
	}

	if braced := braceComment(n); braced != "" {
		lw.writeToken(braced)
	}
}

// braceComment renders a node's commands and free text as one brace span,
// or "" when the node carries neither. The free text is emitted verbatim so
// that a reparse reproduces it exactly.
func braceComment(n *tree.Node) string {
	var cmds []string
	if n.Annotations != nil {
		cmds = commands.Encode(n.Annotations)
	}
	if len(cmds) == 0 && n.Comment == "" {
		return ""
	}
	return "{" + strings.Join(cmds, " ") + n.Comment + "}"
}

// lineWriter accumulates space-separated tokens, wrapping at max columns.
// A token longer than the limit is written unbroken.
type lineWriter struct {
	sb   strings.Builder
	line int
	max  int
}

func (lw *lineWriter) writeToken(tok string) {
	if lw.line > 0 && lw.line+1+len(tok) > lw.max {
		lw.sb.WriteByte('\n')
		lw.line = 0
	} else if lw.line > 0 {
		lw.sb.WriteByte(' ')
		lw.line++
	}
	lw.sb.WriteString(tok)
	lw.line += len(tok)
}

func (lw *lineWriter) String() string {
	return lw.sb.String()
}
