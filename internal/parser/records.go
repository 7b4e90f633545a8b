package parser

import (
	"strings"
)

// SplitRecords divides archive text into independent records. A new record
// begins at a header line that follows movetext, so archives without blank
// separator lines still split correctly. Records are returned verbatim;
// leading or trailing blank-only chunks are dropped.
func SplitRecords(text string) []string {
	var records []string
	var current []string
	seenMovetext := false

	flush := func() {
		chunk := strings.Join(current, "\n")
		if strings.TrimSpace(chunk) != "" {
			records = append(records, chunk)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "["):
			if seenMovetext {
				flush()
				seenMovetext = false
			}
		case trimmed != "":
			seenMovetext = true
		}
		current = append(current, line)
	}
	flush()

	return records
}
