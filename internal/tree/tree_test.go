package tree

import (
	"testing"

	"github.com/pmoulton/workbook-parse-go/internal/chess"
)

func TestNewNodeIDs(t *testing.T) {
	wt := New()
	root := wt.NewNode(nil, "", chess.NewPosition())
	a := wt.NewNode(root, "e4", chess.NewPosition())
	b := wt.NewNode(a, "e5", chess.NewPosition())
	c := wt.NewNode(a, "c5", chess.NewPosition())

	for i, n := range wt.Nodes {
		if n.ID != i {
			t.Errorf("Nodes[%d].ID = %d", i, n.ID)
		}
	}
	if wt.Root != root {
		t.Error("root not recorded")
	}
	if !root.IsRoot() || a.IsRoot() {
		t.Error("IsRoot misreports")
	}
	if a.Mainline() != b {
		t.Error("first child is not the mainline")
	}
	if !a.HasVariations() {
		t.Error("second child should register as a variation")
	}
	if b.Mainline() != nil || c.Mainline() != nil {
		t.Error("leaves should have no mainline")
	}
	if wt.LastNode() != c {
		t.Error("LastNode is not the most recently created node")
	}
	if wt.PlyCount() != 3 {
		t.Errorf("PlyCount = %d, want 3", wt.PlyCount())
	}
}

func TestLastNodeEmpty(t *testing.T) {
	if New().LastNode() != nil {
		t.Error("empty tree should have no last node")
	}
	if New().PlyCount() != 0 {
		t.Error("empty tree should have ply count 0")
	}
}

func TestHeaders(t *testing.T) {
	wt := New()
	wt.AddHeader("Event", "One")
	wt.AddHeader("Event", "Two")

	if len(wt.Headers) != 2 {
		t.Fatalf("got %d headers, want 2 (duplicates are additive)", len(wt.Headers))
	}
	if wt.Header("Event") != "One" {
		t.Errorf("Header returns %q, want the first match", wt.Header("Event"))
	}
	if wt.Header("Missing") != "" {
		t.Errorf("missing header should yield empty string")
	}
}

func TestEnsureAnnotations(t *testing.T) {
	n := &Node{}
	ann := n.EnsureAnnotations()
	if ann == nil || n.Annotations != ann {
		t.Fatal("payload not allocated and attached")
	}
	if n.EnsureAnnotations() != ann {
		t.Error("second call should return the same payload")
	}
}
