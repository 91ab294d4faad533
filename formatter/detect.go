package formatter

import (
	"github.com/yacchi/docfmt/document"
	"github.com/yacchi/docfmt/format/json"
	"github.com/yacchi/docfmt/format/toml"
	"github.com/yacchi/docfmt/format/yaml"
)

// parsers lists the supported grammars in detection order. A text valid in
// more than one grammar belongs to the first one that accepts it.
var parsers = []document.Parser{
	json.NewParser(),
	toml.NewParser(),
	yaml.NewParser(),
}

// ParserFor returns the parser for a format tag.
// The tag must match a supported format exactly; "JSON" or "yml" are not
// supported.
func ParserFor(tag string) (document.Parser, error) {
	for _, p := range parsers {
		if string(p.Format()) == tag {
			return p, nil
		}
	}
	return nil, &document.UnsupportedFileTypeError{Ext: tag}
}

// DetectFormat reports the first format, in the order JSON, TOML, YAML,
// whose grammar accepts data.
func DetectFormat(data []byte) (document.DocumentFormat, error) {
	doc, err := detect(data)
	if err != nil {
		return "", err
	}
	return doc.Format(), nil
}

// detect trial-parses data against every grammar and returns the first
// successfully parsed document.
func detect(data []byte) (document.Document, error) {
	for _, p := range parsers {
		if doc, err := p.Parse(data); err == nil {
			return doc, nil
		}
	}
	return nil, &document.UnsupportedInputError{}
}
