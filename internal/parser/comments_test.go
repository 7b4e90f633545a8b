package parser_test

import (
	"bytes"
	"testing"

	"github.com/pmoulton/workbook-parse-go/internal/commands"
	"github.com/pmoulton/workbook-parse-go/internal/config"
	"github.com/pmoulton/workbook-parse-go/internal/parser"
	"github.com/pmoulton/workbook-parse-go/internal/testutil"
)

func TestCommentStripsBookmarkCommand(t *testing.T) {
	wt := testutil.MustParseTree(t, "1. e4 {[%chf-bkm] good move} *")

	e4 := wt.Nodes[1]
	if e4.Annotations == nil || !e4.Annotations.Bookmark {
		t.Fatalf("bookmark not decoded: %+v", e4.Annotations)
	}
	// The command substring is removed; the leftover free text is stored
	// verbatim, leading space included.
	testutil.AssertEqual(t, e4.Comment, " good move")
}

func TestCommentMultipleCommands(t *testing.T) {
	wt := testutil.MustParseTree(t, "1. e4 {[%eval +0.35] [%clk 0:05:30] nice} *")

	ann := wt.Nodes[1].Annotations
	if ann == nil {
		t.Fatal("annotations not attached")
	}
	testutil.AssertEqual(t, ann.Eval, "+0.35")
	testutil.AssertEqual(t, ann.Clock, "0:05:30")
	// Each removed command leaves its surrounding whitespace behind.
	testutil.AssertEqual(t, wt.Nodes[1].Comment, "  nice")
}

func TestCommentDrawingCommands(t *testing.T) {
	wt := testutil.MustParseTree(t, "1. e4 {[%cal Ge1e4,Rd1d4][%csl Gd4]} *")

	ann := wt.Nodes[1].Annotations
	if ann == nil {
		t.Fatal("annotations not attached")
	}
	wantArrows := []commands.Arrow{
		{Colour: 'G', From: "e1", To: "e4"},
		{Colour: 'R', From: "d1", To: "d4"},
	}
	testutil.AssertEqual(t, ann.Arrows, wantArrows)
	testutil.AssertEqual(t, ann.Circles, []commands.Circle{{Colour: 'G', Square: "d4"}})
	// Nothing but commands inside the braces leaves no comment.
	testutil.AssertEqual(t, wt.Nodes[1].Comment, "")
}

func TestCommentAssessmentCommand(t *testing.T) {
	wt := testutil.MustParseTree(t, "1. e4 {[%chf-ass blunder]} *")

	ann := wt.Nodes[1].Annotations
	if ann == nil {
		t.Fatal("annotations not attached")
	}
	testutil.AssertEqual(t, ann.Assessment, commands.AssessmentBlunder)
}

func TestCommentUnknownCommandStripped(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()
	cfg.LogFile = &buf

	wt, err := parser.NewParser(cfg).Parse("1. e4 {[%nosuch x y] text} *")
	testutil.AssertNoError(t, err)

	e4 := wt.Nodes[1]
	// The unknown command is still physically removed, and a node with
	// no decoded payload carries no annotations.
	testutil.AssertEqual(t, e4.Comment, " text")
	if e4.Annotations != nil {
		t.Errorf("annotations = %+v, want nil", e4.Annotations)
	}
	testutil.AssertContains(t, buf.String(), "Ignoring unknown command")
}

func TestCommentPlainText(t *testing.T) {
	wt := testutil.MustParseTree(t, "1. e4 {the classical choice} e5 *")

	testutil.AssertEqual(t, wt.Nodes[1].Comment, "the classical choice")
	testutil.AssertEqual(t, wt.Nodes[2].MoveText, "e5")
}

func TestCommentBeforeFirstMove(t *testing.T) {
	// A leading comment attaches to the root node.
	wt := testutil.MustParseTree(t, "{starting thoughts} 1. e4 *")

	testutil.AssertEqual(t, wt.Root.Comment, "starting thoughts")
	testutil.AssertEqual(t, wt.Nodes[1].Comment, "")
}

func TestCommentUnterminatedTruncates(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfig()
	cfg.LogFile = &buf

	// The missing closing brace discards the rest of the record without
	// an error: e5 is never parsed.
	wt, err := parser.NewParser(cfg).Parse("1. e4 {never closed e5 2. Nf3 *")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(wt.Nodes), 2)
	testutil.AssertEqual(t, wt.Nodes[1].Comment, "")
	testutil.AssertContains(t, buf.String(), "Missing end of comment")
}
