package testutil

import (
	"io"
	"testing"

	"github.com/pmoulton/workbook-parse-go/internal/config"
	"github.com/pmoulton/workbook-parse-go/internal/parser"
	"github.com/pmoulton/workbook-parse-go/internal/tree"
)

// QuietConfig returns a config that discards diagnostics, for tests whose
// inputs are deliberately malformed.
func QuietConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.LogFile = io.Discard
	cfg.Verbosity = 0
	return cfg
}

// ParseTestTree parses a record and returns the tree, or nil if parsing
// fails. Use this where parse failure is an acceptable outcome.
func ParseTestTree(text string) *tree.Tree {
	t, err := parser.NewParser(QuietConfig()).Parse(text)
	if err != nil {
		return nil
	}
	return t
}

// MustParseTree parses a record and returns the tree, calling t.Fatal on
// failure. Use this in test setup where parse failure should abort the test.
func MustParseTree(t *testing.T, text string) *tree.Tree {
	t.Helper()
	wt, err := parser.NewParser(QuietConfig()).Parse(text)
	if err != nil {
		t.Fatalf("failed to parse test record: %v\n%s", err, text)
	}
	return wt
}
