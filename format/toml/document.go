// Package toml provides a TOML implementation of the document.Document
// interface using github.com/pelletier/go-toml/v2.
//
// TOML documents are decoded into map[string]any. Re-encoding renders keys
// in sorted order, arrays one element per line, and tables unindented.
package toml

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/yacchi/docfmt/document"
)

// Document is a TOML document implementation.
type Document struct {
	data map[string]any
}

// Ensure Document implements document.Document interface.
var _ document.Document = (*Document)(nil)

// New creates a new empty TOML document.
func New() *Document {
	return &Document{data: map[string]any{}}
}

// Parse parses TOML data into a Document.
//
// Empty input is a valid TOML document (an empty root table).
func Parse(data []byte) (document.Document, error) {
	var root map[string]any
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if root == nil {
		return New(), nil
	}
	return &Document{data: root}, nil
}

// Format returns the document format.
func (d *Document) Format() document.DocumentFormat {
	return document.FormatTOML
}

// Marshal serializes the document to TOML bytes.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetArraysMultiline(true)
	enc.SetIndentTables(false)
	if err := enc.Encode(d.data); err != nil {
		return nil, fmt.Errorf("failed to marshal TOML: %w", err)
	}
	return buf.Bytes(), nil
}
