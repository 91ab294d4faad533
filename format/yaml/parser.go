package yaml

import (
	"github.com/yacchi/docfmt/document"
	"github.com/yacchi/docfmt/format"
)

// NewParser creates a new YAML parser.
//
// Example:
//
//	parser := yaml.NewParser()
//	doc, err := parser.Parse([]byte("server:\n  port: 8080\n"))
func NewParser() document.Parser {
	return format.NewParser(document.FormatYAML, Parse)
}
