// Package formatter detects whether an input is JSON, TOML or YAML, parses
// it and rewrites it in the format's canonical pretty-printed form.
//
// An input names either an existing regular file, which is rewritten in
// place, or inline text, which is formatted to standard output. Files are
// classified by extension alone; inline text is trial-parsed as JSON, then
// TOML, then YAML. Output is always in the input's own format.
package formatter

import (
	"context"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/afero"
	"github.com/yacchi/docfmt/document"
	"github.com/yacchi/docfmt/source"
	"github.com/yacchi/docfmt/source/bytes"
	"github.com/yacchi/docfmt/source/fs"
)

// Formatter formats a single input.
type Formatter struct {
	input  string
	isFile bool
	file   *fs.Source
	fs     afero.Fs
	stdout io.Writer
	logger log.Logger
}

// New creates a Formatter for input. Whether input names a regular file is
// decided here, once, and cached for the lifetime of the Formatter.
//
// Example:
//
//	f := formatter.New("config.toml")
//	if err := f.Run(ctx); err != nil {
//	    return err
//	}
func New(input string, opts ...Option) *Formatter {
	f := &Formatter{
		input:  input,
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.file = fs.New(f.fs, input)
	f.isFile = f.file.IsRegularFile()
	return f
}

// Input returns the raw input string.
func (f *Formatter) Input() string {
	return f.input
}

// IsFile reports whether the input was classified as a regular file.
func (f *Formatter) IsFile() bool {
	return f.isFile
}

// Run formats the input.
//
// For a file, the format is the file extension, the file is read, parsed
// under that format and overwritten with the formatted text. For inline
// text, the format is detected from the content and the formatted text is
// written to standard output followed by a newline.
//
// Any error stops the run before anything is written.
func (f *Formatter) Run(ctx context.Context) error {
	src, doc, err := f.parse(ctx)
	if err != nil {
		return err
	}

	out, err := doc.Marshal()
	if err != nil {
		return err
	}
	return src.Save(ctx, out)
}

// parse resolves the input's source and parses its contents.
func (f *Formatter) parse(ctx context.Context) (source.Source, document.Document, error) {
	if !f.isFile {
		src := bytes.FromString(f.input, f.stdout)
		contents, err := src.Load(ctx)
		if err != nil {
			return nil, nil, err
		}
		doc, err := detect(contents)
		if err != nil {
			return nil, nil, err
		}
		return src, doc, nil
	}

	parser, err := ParserFor(f.file.Ext())
	if err != nil {
		return nil, nil, err
	}
	contents, err := f.file.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	doc, err := parser.Parse(contents)
	if err != nil {
		name := parser.Format().Name()
		level.Error(f.logger).Log("msg", "error parsing "+name, "file", f.input, "err", err)
		return nil, nil, document.Invalid(parser.Format(), err)
	}
	return f.file, doc, nil
}
