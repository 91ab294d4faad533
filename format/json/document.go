// Package json provides a JSON implementation of the document.Document
// interface backed by github.com/go-json-experiment/json/jsontext.
//
// The document keeps the raw token stream rather than decoding into
// map[string]any, so object members are rendered in their source order and
// scalar tokens (numbers, escaped strings) are carried through unchanged.
package json

import (
	"bytes"
	"fmt"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/yacchi/docfmt/document"
)

// Indent is the per-level indentation used by Marshal.
const Indent = "  "

// Document is a JSON document holding a single validated JSON value.
type Document struct {
	value jsontext.Value
}

// Ensure Document implements document.Document interface.
var _ document.Document = (*Document)(nil)

// readOptions are the options used while reading input. Duplicate member
// names are accepted here and collapsed by Parse.
var readOptions = []jsontext.Options{
	jsontext.AllowDuplicateNames(true),
}

// Parse parses JSON data into a Document.
//
// Any top-level value is accepted (object, array, string, number, boolean or
// null). Surrounding whitespace is ignored; empty input and trailing data are
// errors.
//
// An object that repeats a member name keeps a single member: the last value,
// at the position where the name first appeared.
func Parse(data []byte) (document.Document, error) {
	value := jsontext.Value(bytes.Clone(data))
	if err := value.Compact(readOptions...); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	dec := jsontext.NewDecoder(bytes.NewReader(value), readOptions...)
	value, err := collapse(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &Document{value: value}, nil
}

// collapse reads the next value from dec and returns it compacted, with
// duplicate object members merged. Scalars are copied verbatim.
func collapse(dec *jsontext.Decoder) (jsontext.Value, error) {
	switch dec.PeekKind() {
	case '{':
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		var names []string
		members := make(map[string]jsontext.Value)
		for dec.PeekKind() != '}' {
			tok, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			name := tok.String()
			val, err := collapse(dec)
			if err != nil {
				return nil, err
			}
			if _, seen := members[name]; !seen {
				names = append(names, name)
			}
			members[name] = val
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}

		out := jsontext.Value{'{'}
		for i, name := range names {
			if i > 0 {
				out = append(out, ',')
			}
			quoted, err := jsontext.AppendQuote(out, name)
			if err != nil {
				return nil, err
			}
			out = append(quoted, ':')
			out = append(out, members[name]...)
		}
		return append(out, '}'), nil

	case '[':
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		out := jsontext.Value{'['}
		for first := true; dec.PeekKind() != ']'; first = false {
			val, err := collapse(dec)
			if err != nil {
				return nil, err
			}
			if !first {
				out = append(out, ',')
			}
			out = append(out, val...)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return append(out, ']'), nil

	default:
		val, err := dec.ReadValue()
		if err != nil {
			return nil, err
		}
		return val.Clone(), nil
	}
}

// Format returns the document format.
func (d *Document) Format() document.DocumentFormat {
	return document.FormatJSON
}

// Marshal renders the value with two-space indentation, one member or element
// per line and a space after each colon. No trailing newline is added.
func (d *Document) Marshal() ([]byte, error) {
	out := d.value.Clone()
	opts := append([]jsontext.Options{
		jsontext.WithIndent(Indent),
		jsontext.SpaceAfterColon(true),
	}, readOptions...)
	if err := out.Indent(opts...); err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return out, nil
}
