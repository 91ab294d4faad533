// Package yaml provides a YAML implementation of the document.Document
// interface backed by the gopkg.in/yaml.v3 node tree.
//
// Mapping order, anchors, aliases and explicit tags survive a round trip.
// Comments and presentation styles (flow collections, quoting) do not: the
// document is re-emitted in block style with quotes only where a plain
// scalar would resolve to a different type.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/yacchi/docfmt/document"
	"gopkg.in/yaml.v3"
)

// Indent is the number of spaces per nesting level used by Marshal.
const Indent = 2

// ErrMultipleDocuments is returned when the input stream holds more than one
// YAML document.
var ErrMultipleDocuments = errors.New("deserializing from YAML containing more than one document is not supported")

// Document is a Document implementation for YAML format.
type Document struct {
	root *yaml.Node
}

// Ensure Document implements document.Document interface.
var _ document.Document = (*Document)(nil)

// New creates a new YAML document holding a null value.
func New() *Document {
	return &Document{
		root: &yaml.Node{
			Kind: yaml.DocumentNode,
			Content: []*yaml.Node{
				{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"},
			},
		},
	}
}

// Parse parses YAML data into a Document.
//
// The input must contain at most one document. Empty input is the null
// document.
func Parse(data []byte) (document.Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	default:
		return nil, fmt.Errorf("failed to parse YAML: %w", ErrMultipleDocuments)
	}

	if len(root.Content) == 0 {
		return New(), nil
	}

	// Decoding the node tree applies the checks the node parser skips,
	// duplicate mapping keys in particular.
	if err := root.Decode(new(any)); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	normalize(&root)
	return &Document{root: &root}, nil
}

// Format returns the document format.
func (d *Document) Format() document.DocumentFormat {
	return document.FormatYAML
}

// Marshal serializes the document to YAML bytes in block style.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(Indent)
	if err := enc.Encode(d.root); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// oldBools are the YAML 1.1 boolean words that YAML 1.2 reads as strings.
// yaml.v3 quotes them when marshaling strings; normalize keeps that.
var oldBools = map[string]bool{
	"y": true, "Y": true, "yes": true, "Yes": true, "YES": true,
	"n": true, "N": true, "no": true, "No": true, "NO": true,
	"on": true, "On": true, "ON": true,
	"off": true, "Off": true, "OFF": true,
}

// normalize strips comments and presentation styles from the tree so the
// encoder picks its default rendering for every node. Explicit tags are kept,
// and strings spelled like YAML 1.1 booleans stay double quoted.
func normalize(node *yaml.Node) {
	if node == nil {
		return
	}
	node.Style &= yaml.TaggedStyle
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!str" && oldBools[node.Value] {
		node.Style |= yaml.DoubleQuotedStyle
	}
	node.HeadComment = ""
	node.LineComment = ""
	node.FootComment = ""

	// Aliases share their target with the anchored node, which is visited
	// where it is defined.
	if node.Kind == yaml.AliasNode {
		return
	}
	for _, child := range node.Content {
		normalize(child)
	}
}
