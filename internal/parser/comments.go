package parser

import (
	"fmt"
	"strings"

	"github.com/pmoulton/workbook-parse-go/internal/commands"
	"github.com/pmoulton/workbook-parse-go/internal/tree"
)

// commandOpen marks an embedded vendor command inside a comment span.
const commandOpen = "[%"

// readComment consumes from just after a comment-start token through the
// matching closing brace, attaching results to node. Embedded [%tag params]
// commands are decoded and physically removed from the cursor before the
// remaining free text is stored. A comment with no closing brace discards
// the rest of the record: the parse of this record simply ends there, with
// no error reported.
func (p *Parser) readComment(node *tree.Node) {
	c := p.cur

	closing := strings.IndexByte(c.text[c.pos:], '}')
	if closing < 0 {
		fmt.Fprintf(p.cfg.LogFile, "Missing end of comment; discarding remaining text.\n")
		c.truncate()
		return
	}
	closing += c.pos

	for {
		idx := strings.Index(c.text[c.pos:closing], commandOpen)
		if idx < 0 {
			break
		}
		start := c.pos + idx

		end := strings.IndexByte(c.text[start:closing], ']')
		if end < 0 {
			break
		}
		end += start

		body := c.text[start+len(commandOpen) : end]
		p.handleCommand(body, node)

		// Remove the consumed command substring and pull the closing
		// brace offset back by the removed length.
		removed := end + 1 - start
		c.text = c.text[:start] + c.text[end+1:]
		closing -= removed
	}

	if comment := c.text[c.pos:closing]; strings.TrimSpace(comment) != "" {
		node.Comment = comment
	}
	c.pos = closing + 1
}

// handleCommand decodes one embedded command body against the registry and
// attaches the payload to the node. Unrecognized tags contribute nothing.
func (p *Parser) handleCommand(body string, node *tree.Node) {
	ann := node.EnsureAnnotations()
	if id := commands.Decode(body, ann); id == commands.CommandNone {
		fmt.Fprintf(p.cfg.LogFile, "Ignoring unknown command %q.\n", body)
	}
	if node.Annotations.IsZero() {
		node.Annotations = nil
	}
}
