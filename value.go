package main

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Object is a JSON object with its members kept in document order. Decoding
// into a Go map would shuffle the keys, and rendering wants them back exactly
// as they were written.
type Object []Member

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value any
}

// Array is a JSON array.
type Array []any

func (o Object) get(key string) (any, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// MarshalJSON writes members in insertion order. This is what lets the plain
// rendering path be a stock json.MarshalIndent call.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// trailingDataError reports non-whitespace input after the top-level value.
// It carries a byte offset so the diagnostic can point at the extra text.
type trailingDataError struct {
	offset int64
}

func (e *trailingDataError) Error() string {
	return "unexpected data after top-level JSON value"
}

// decodeDocument parses text as a single JSON document. The decoder's token
// stream is walked directly so object member order survives; numbers come
// back as json.Number and round-trip verbatim.
func decodeDocument(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	tok, err := dec.Token()
	if err == io.EOF {
		return nil, errors.New("unexpected end of JSON input")
	}
	if err != nil {
		return nil, err
	}
	v, err := decodeValue(dec, tok)
	if err != nil {
		return nil, err
	}

	// a well-formed document is one value with nothing but whitespace after it
	rest := text[dec.InputOffset():]
	if i := strings.IndexFunc(rest, notJSONSpace); i >= 0 {
		return nil, &trailingDataError{offset: dec.InputOffset() + int64(i)}
	}
	return v, nil
}

func notJSONSpace(r rune) bool {
	return r != ' ' && r != '\t' && r != '\n' && r != '\r'
}

func decodeValue(dec *json.Decoder, tok json.Token) (any, error) {
	d, ok := tok.(json.Delim)
	if !ok {
		// nil, bool, json.Number or string
		return tok, nil
	}

	switch d {
	case '{':
		obj := Object{}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, errors.Errorf("object key is not a string: %v", keyTok)
			}
			valTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			val, err := decodeValue(dec, valTok)
			if err != nil {
				return nil, err
			}
			obj = append(obj, Member{Key: key, Value: val})
		}
		if _, err := dec.Token(); err != nil { // closing '}'
			return nil, err
		}
		return obj, nil

	case '[':
		arr := Array{}
		for dec.More() {
			elemTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			elem, err := decodeValue(dec, elemTok)
			if err != nil {
				return nil, err
			}
			arr = append(arr, elem)
		}
		if _, err := dec.Token(); err != nil { // closing ']'
			return nil, err
		}
		return arr, nil
	}

	// the decoder hands out closing delimiters only after More() says no,
	// so this is unreachable for well-formed token streams
	return nil, errors.Errorf("unexpected %q in input", d.String())
}
