package parser

import (
	"strings"

	"github.com/pmoulton/workbook-parse-go/internal/tree"
)

// ScanHeaders splits a record into its [Key "Value"] header pairs and the
// remaining movetext body. Blank lines inside the header section are skipped;
// the first non-blank line that does not start with '[' ends header mode, and
// that line plus everything after it is space-joined into the body. A bracket
// line without a complete quote pair is silently ignored and header mode
// continues.
func ScanHeaders(text string) ([]tree.Header, string) {
	var headers []tree.Header
	var body []string
	inHeader := true

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if inHeader {
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, "[") {
				if key, value, ok := splitHeaderLine(trimmed); ok {
					headers = append(headers, tree.Header{Key: key, Value: value})
				}
				continue
			}
			inHeader = false
		}
		body = append(body, line)
	}

	return headers, strings.Join(body, " ")
}

// splitHeaderLine parses one `[Key "Value"]` line. The reported ok is false
// when the line has no complete quote pair.
func splitHeaderLine(line string) (key, value string, ok bool) {
	parts := strings.Split(line, "\"")
	if len(parts) < 3 {
		return "", "", false
	}
	key = strings.TrimSpace(strings.TrimPrefix(parts[0], "["))
	value = strings.TrimSpace(parts[1])
	return key, value, true
}
