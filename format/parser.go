// Package format provides common utilities for document format implementations.
package format

import "github.com/yacchi/docfmt/document"

// ParseFunc is a function that parses bytes into a Document.
type ParseFunc func([]byte) (document.Document, error)

// NewParser creates a Parser with the given format and parse function.
//
// Example:
//
//	parser := format.NewParser(document.FormatYAML, yaml.Parse)
func NewParser(fmt document.DocumentFormat, parse ParseFunc) document.Parser {
	return &parser{
		format:    fmt,
		parseFunc: parse,
	}
}

// parser implements document.Parser using the provided configuration.
type parser struct {
	format    document.DocumentFormat
	parseFunc ParseFunc
}

// Ensure parser implements the document.Parser interface.
var _ document.Parser = (*parser)(nil)

// Parse implements the document.Parser interface.
func (p *parser) Parse(data []byte) (document.Document, error) {
	return p.parseFunc(data)
}

// Format implements the document.Parser interface.
func (p *parser) Format() document.DocumentFormat {
	return p.format
}
