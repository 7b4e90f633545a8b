// Package tree holds the workbook tree produced by a parse: one root node
// plus one node per ply, with branch points for side variations.
package tree

import (
	"github.com/pmoulton/workbook-parse-go/internal/chess"
	"github.com/pmoulton/workbook-parse-go/internal/commands"
)

// Header is one [Key "Value"] pair. Headers keep their source order and
// duplicate keys are additive, not overwriting.
type Header struct {
	Key   string
	Value string
}

// Node is one ply of the tree (or the synthetic root, which has no move).
type Node struct {
	// ID is the creation-order index: Tree.Nodes[n.ID] == n.
	ID int

	// MoveText is the token that produced this node, empty for the root.
	MoveText string

	// Position after the move has been applied.
	Position *chess.Position

	// Parent is nil for the root.
	Parent *Node

	// Children in source order: the first child is the mainline
	// continuation, subsequent children are side variations.
	Children []*Node

	// Comment is the free text left after embedded commands are stripped,
	// stored verbatim.
	Comment string

	// NAGs holds numeric annotation glyph codes in source order.
	NAGs []int

	// Annotations is the decoded vendor command payload, nil until the
	// first command is attached.
	Annotations *commands.Annotations
}

// IsRoot reports whether this is the synthetic root node.
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

// Mainline returns the first child, or nil at a leaf.
func (n *Node) Mainline() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// HasVariations reports whether side variations branch off after this node.
func (n *Node) HasVariations() bool {
	return len(n.Children) > 1
}

// EnsureAnnotations returns the node's payload, allocating it on first use.
func (n *Node) EnsureAnnotations() *commands.Annotations {
	if n.Annotations == nil {
		n.Annotations = &commands.Annotations{}
	}
	return n.Annotations
}

// Tree is the parsed workbook record.
type Tree struct {
	// Nodes in creation order; Nodes[i].ID == i for all i, Nodes[0] is
	// the root.
	Nodes []*Node

	// Headers in source order.
	Headers []Header

	// Root is Nodes[0].
	Root *Node
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// NewNode creates the next node, links it under parent (nil for the root)
// and appends it to the creation-order sequence.
func (t *Tree) NewNode(parent *Node, moveText string, pos *chess.Position) *Node {
	n := &Node{
		ID:       len(t.Nodes),
		MoveText: moveText,
		Position: pos,
		Parent:   parent,
	}
	if parent != nil {
		parent.Children = append(parent.Children, n)
	} else {
		t.Root = n
	}
	t.Nodes = append(t.Nodes, n)
	return n
}

// LastNode returns the most recently created node, or nil for an empty tree.
func (t *Tree) LastNode() *Node {
	if len(t.Nodes) == 0 {
		return nil
	}
	return t.Nodes[len(t.Nodes)-1]
}

// AddHeader appends a header pair, preserving order and duplicates.
func (t *Tree) AddHeader(key, value string) {
	t.Headers = append(t.Headers, Header{Key: key, Value: value})
}

// Header returns the value of the first header with the given key, or "".
func (t *Tree) Header(key string) string {
	for _, h := range t.Headers {
		if h.Key == key {
			return h.Value
		}
	}
	return ""
}

// PlyCount returns the number of non-root nodes.
func (t *Tree) PlyCount() int {
	if len(t.Nodes) == 0 {
		return 0
	}
	return len(t.Nodes) - 1
}
