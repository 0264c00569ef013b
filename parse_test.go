package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatchesReferenceParser(t *testing.T) {
	inputs := []string{
		`null`,
		`[1, "two", false, null]`,
		`{"a": {"b": [1.5, {"c": "d"}]}, "e": []}`,
		`{"unicode": "café 😀", "esc": "line\nbreak"}`,
		`[[[[]]]]`,
	}
	for _, input := range inputs {
		doc, err := parseDocument(input)
		require.NoError(t, err, "input %q", input)

		out, err := json.Marshal(doc)
		require.NoError(t, err)
		assert.JSONEq(t, input, string(out), "input %q", input)
	}
}

func TestParseTrailingCommaDiagnostic(t *testing.T) {
	input := `{"name": "test", }`
	_, err := parseDocument(input)
	require.Error(t, err)

	var invalid *invalidJSONError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.diagnostic, "(line 1, column 18)")

	lines := strings.Split(invalid.diagnostic, "\n")
	require.Greater(t, len(lines), 4)
	assert.Equal(t, input, lines[2])
	assert.Equal(t, strings.Repeat(" ", 17)+"^", lines[3])
	assert.Contains(t, invalid.diagnostic, "trailing commas")
}

func TestParseMultilineLocalization(t *testing.T) {
	input := "{\n  \"a\": 1,\n}"
	_, err := parseDocument(input)
	require.Error(t, err)

	var invalid *invalidJSONError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.diagnostic, "(line 3, column 1)")

	lines := strings.Split(invalid.diagnostic, "\n")
	assert.Equal(t, "}", lines[2])
	assert.Equal(t, "^", lines[3])
}

func TestParseInvalidLiteralDiagnostic(t *testing.T) {
	input := `{"a": oops}`
	_, err := parseDocument(input)
	require.Error(t, err)

	var invalid *invalidJSONError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.diagnostic, "(line 1, column 7)")

	lines := strings.Split(invalid.diagnostic, "\n")
	require.Greater(t, len(lines), 4)
	assert.Equal(t, input, lines[2])
	assert.Equal(t, strings.Repeat(" ", 6)+"^", lines[3]) // under the 'o'
}

func TestParseErrorWithoutOffset(t *testing.T) {
	for _, input := range []string{"", `{"a":`} {
		_, err := parseDocument(input)
		require.Error(t, err, "input %q", input)

		var invalid *invalidJSONError
		require.ErrorAs(t, err, &invalid, "input %q", input)
		assert.NotContains(t, invalid.diagnostic, "column", "input %q", input)
		assert.NotContains(t, invalid.diagnostic, "^", "input %q", input)
	}
}

func TestParseTrailingGarbagePointsAtGarbage(t *testing.T) {
	_, err := parseDocument(`{"a": 1} x`)
	require.Error(t, err)

	var invalid *invalidJSONError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.diagnostic, "(line 1, column 10)")
	assert.Contains(t, invalid.diagnostic, strings.Repeat(" ", 9)+"^")
}

func TestLocateOffset(t *testing.T) {
	text := "abc\nde\nfghi"
	cases := []struct {
		offset, line, col int
		lineText          string
	}{
		{0, 1, 1, "abc"},
		{2, 1, 3, "abc"},
		{3, 1, 4, "abc"}, // the newline itself
		{4, 2, 1, "de"},
		{7, 3, 1, "fghi"},
		{10, 3, 4, "fghi"},
	}
	for _, c := range cases {
		line, col, lineText := locateOffset(text, c.offset)
		assert.Equal(t, c.line, line, "offset %d", c.offset)
		assert.Equal(t, c.col, col, "offset %d", c.offset)
		assert.Equal(t, c.lineText, lineText, "offset %d", c.offset)
	}
}
