package toml

import (
	"github.com/yacchi/docfmt/document"
	"github.com/yacchi/docfmt/format"
)

// NewParser creates a new TOML parser.
//
// Example:
//
//	parser := toml.NewParser()
//	doc, err := parser.Parse([]byte("a = 1\n"))
func NewParser() document.Parser {
	return format.NewParser(document.FormatTOML, Parse)
}
