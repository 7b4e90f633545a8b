package parser

import (
	"fmt"
	"strconv"

	"github.com/pmoulton/workbook-parse-go/internal/config"
	"github.com/pmoulton/workbook-parse-go/internal/engine"
	"github.com/pmoulton/workbook-parse-go/internal/tree"
)

// Parser parses one workbook record into a tree. A parser owns its cursor
// and tree while a parse is running and must not be shared across
// concurrent parses; parse independent records with independent parsers.
type Parser struct {
	cfg *config.Config
	cur *cursor
	t   *tree.Tree
}

// NewParser creates a parser. If cfg is nil, a default config is created.
func NewParser(cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Parser{cfg: cfg}
}

// Parse converts one record (headers plus movetext) into a tree. The root
// node has ID 0, an empty move text and the starting position, which a FEN
// header overrides. A move that cannot be interpreted aborts the parse of
// this record with an error; structural oddities (unknown tokens, a comment
// with no closing brace) are absorbed.
func (p *Parser) Parse(text string) (*tree.Tree, error) {
	headers, body := ScanHeaders(text)

	p.t = tree.New()
	p.t.Headers = headers
	p.cur = newCursor(body)

	rootPos := engine.InitialPosition()
	if fen := p.t.Header("FEN"); fen != "" {
		pos, err := engine.PositionFromFEN(fen)
		if err != nil {
			fmt.Fprintf(p.cfg.LogFile, "Ignoring unusable FEN header %q: %v.\n", fen, err)
		} else {
			rootPos = pos
		}
	}

	root := p.t.NewNode(nil, "", rootPos)
	if err := p.parseBranch(root); err != nil {
		return nil, err
	}
	return p.t, nil
}

// parseBranch consumes tokens for one nesting level, creating a node per
// move under the running "current" node. It returns when it sees a matching
// branch end, a game termination marker, or the end of the input.
func (p *Parser) parseBranch(parent *tree.Node) error {
	current := parent
	previous := parent

	for {
		token := p.cur.nextToken()
		if token == "" || isResult(token) {
			return nil
		}

		switch classify(token) {
		case TokenMoveNumber:
			// Stated move numbers are consumed but not validated
			// against the computed count.

		case TokenMove:
			child, err := p.playMove(current, token)
			if err != nil {
				return err
			}
			previous = current
			current = child

		case TokenCommentStart:
			p.readComment(p.t.LastNode())

		case TokenBranchStart:
			// A variation diverges from the position before the
			// move just played.
			if err := p.parseBranch(previous); err != nil {
				return err
			}

		case TokenBranchEnd:
			return nil

		case TokenNAG:
			p.attachNAG(token)

		case TokenCommentEnd:
			fmt.Fprintf(p.cfg.LogFile, "Unmatched comment end in movetext.\n")

		default:
			fmt.Fprintf(p.cfg.LogFile, "Ignoring unknown token %q.\n", token)
		}
	}
}

// playMove advances the position by one move token and creates its node.
func (p *Parser) playMove(parent *tree.Node, moveText string) (*tree.Node, error) {
	pos, _, err := engine.Advance(parent.Position, moveText)
	if err != nil {
		return nil, err
	}
	return p.t.NewNode(parent, moveText, pos), nil
}

// attachNAG records a $n glyph on the most recently created node, which
// after a branch return is not necessarily this level's current node.
func (p *Parser) attachNAG(token string) {
	code, err := strconv.Atoi(token[1:])
	if err != nil {
		fmt.Fprintf(p.cfg.LogFile, "Ignoring malformed NAG %q.\n", token)
		return
	}
	node := p.t.LastNode()
	node.NAGs = append(node.NAGs, code)
}
