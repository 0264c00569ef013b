package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const parseHints = `Common fixes:
  - remove any trailing commas
  - quote keys and string values with double quotes
  - balance every bracket and brace`

// parseDocument wraps decoding with best-effort error localization. When the
// failure carries a byte offset, the diagnostic shows the offending line with
// a caret under the failing column plus a fixed block of hints; otherwise the
// parser's raw message passes through untouched.
func parseDocument(text string) (any, error) {
	v, err := decodeDocument(text)
	if err == nil {
		return v, nil
	}

	offset, ok := errorOffset(text, err)
	if !ok {
		return nil, &invalidJSONError{diagnostic: fmt.Sprintf("invalid JSON: %s", err)}
	}

	line, col, lineText := locateOffset(text, offset)
	var b strings.Builder
	fmt.Fprintf(&b, "invalid JSON: %s (line %d, column %d)\n\n", err, line, col)
	b.WriteString(lineText)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", col-1))
	b.WriteString("^\n\n")
	b.WriteString(parseHints)
	return nil, &invalidJSONError{diagnostic: b.String()}
}

// errorOffset pulls a 0-based byte offset for a decode failure, when there is
// one. Syntax errors surfaced by the token-streaming decoder carry the offset
// of the last good token, not of the offending byte, so the text is re-checked
// with the plain scanner, whose SyntaxError counts bytes through the bad one,
// hence the -1. Errors without a syntax offset (truncated input, bare EOF)
// get no localization, which is fine for a best-effort diagnostic.
func errorOffset(text string, err error) (int, bool) {
	var syn *json.SyntaxError
	var trail *trailingDataError
	if !errors.As(err, &syn) && !errors.As(err, &trail) {
		return 0, false
	}

	var raw json.RawMessage
	reErr := json.Unmarshal([]byte(text), &raw)
	if errors.As(reErr, &syn) && syn.Offset > 0 {
		return int(syn.Offset) - 1, true
	}
	return 0, false
}

// locateOffset maps a 0-based byte offset to a 1-based line and column by
// accumulating line lengths, each line counting its length plus one for the
// newline, until the running total covers the offset. An offset past the end
// of the text lands on the last line, one column past its end.
func locateOffset(text string, offset int) (line, col int, lineText string) {
	chars := 0
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if chars+len(l)+1 > offset {
			return i + 1, offset - chars + 1, l
		}
		chars += len(l) + 1
	}
	// offsets from the decoder never reach past the text, but fall back to
	// the first line rather than pointing nowhere
	return 1, offset + 1, lines[0]
}
