package parser

import "testing"

func TestSplitRecords(t *testing.T) {
	text := "[Event \"One\"]\n" +
		"\n" +
		"1. e4 e5 *\n" +
		"[Event \"Two\"]\n" +
		"\n" +
		"1. d4 d5 *\n"

	records := SplitRecords(text)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	h1, _ := ScanHeaders(records[0])
	h2, _ := ScanHeaders(records[1])
	if h1[0].Value != "One" || h2[0].Value != "Two" {
		t.Errorf("records split at the wrong boundary: %q / %q", records[0], records[1])
	}
}

func TestSplitRecordsSingle(t *testing.T) {
	records := SplitRecords("[Event \"Solo\"]\n\n1. e4 *")
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}

func TestSplitRecordsHeadersSpanBlankLines(t *testing.T) {
	// Consecutive header lines, even with blanks between them, never
	// start a new record until movetext has been seen.
	text := "[Event \"One\"]\n\n[Site \"Here\"]\n\n1. e4 *"
	records := SplitRecords(text)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
}

func TestSplitRecordsEmpty(t *testing.T) {
	if records := SplitRecords("\n\n  \n"); records != nil {
		t.Errorf("got %v, want nil", records)
	}
}
