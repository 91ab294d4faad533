package json

import (
	"github.com/yacchi/docfmt/document"
	"github.com/yacchi/docfmt/format"
)

// NewParser creates a new JSON parser.
//
// Example:
//
//	parser := json.NewParser()
//	doc, err := parser.Parse([]byte(`{"b":1,"a":2}`))
func NewParser() document.Parser {
	return format.NewParser(document.FormatJSON, Parse)
}
