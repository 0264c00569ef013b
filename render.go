package main

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const indentStep = "  "

var (
	keyColor    = color.New(color.FgCyan)
	stringColor = color.New(color.FgGreen)
	numberColor = color.New(color.FgYellow)
	boolColor   = color.New(color.FgMagenta)
	nullColor   = color.New(color.FgHiBlack)
)

// renderValue produces the display form of v. With colorized set, the value
// is walked recursively and each scalar type gets its own color; otherwise it
// is stock two-space indented JSON, object keys staying in document order via
// Object.MarshalJSON.
func renderValue(v any, colorized bool) (string, error) {
	if !colorized {
		out, err := json.MarshalIndent(v, "", indentStep)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	var b strings.Builder
	writeColored(&b, v, 0)
	return b.String(), nil
}

func writeColored(b *strings.Builder, v any, depth int) {
	switch t := v.(type) {
	case Object:
		if len(t) == 0 {
			b.WriteString("{}")
			return
		}
		inner := strings.Repeat(indentStep, depth+1)
		b.WriteString("{\n")
		for i, m := range t {
			b.WriteString(inner)
			b.WriteString(keyColor.Sprint(quoteString(m.Key)))
			b.WriteString(": ")
			writeColored(b, m.Value, depth+1)
			if i < len(t)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(indentStep, depth))
		b.WriteByte('}')

	case Array:
		if len(t) == 0 {
			b.WriteString("[]")
			return
		}
		inner := strings.Repeat(indentStep, depth+1)
		b.WriteString("[\n")
		for i, elem := range t {
			b.WriteString(inner)
			writeColored(b, elem, depth+1)
			if i < len(t)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(indentStep, depth))
		b.WriteByte(']')

	case string:
		b.WriteString(stringColor.Sprint(quoteString(t)))
	case json.Number:
		b.WriteString(numberColor.Sprint(t.String()))
	case bool:
		b.WriteString(boolColor.Sprint(strconv.FormatBool(t)))
	case nil:
		b.WriteString(nullColor.Sprint("null"))
	}
}

// quoteString renders s as a JSON string literal.
func quoteString(s string) string {
	out, err := json.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(out)
}

// scalarForm is the bare textual form used when copying an extracted scalar:
// strings without quotes, numbers and booleans as literals, null as "null".
// ok is false for objects and arrays.
func scalarForm(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "null", true
	case bool:
		return strconv.FormatBool(t), true
	case json.Number:
		return t.String(), true
	case string:
		return t, true
	}
	return "", false
}
