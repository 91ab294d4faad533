// Package bytes provides an inline document source.
// The text to format is held in memory and the formatted result is written
// to an io.Writer, usually standard output.
package bytes

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/yacchi/docfmt/source"
)

// Source holds inline document text.
type Source struct {
	data []byte
	out  io.Writer
}

// Ensure Source implements the source.Source interface.
var _ source.Source = (*Source)(nil)

// New creates a source from raw bytes. Save writes to out; a nil out means
// os.Stdout.
//
// Example:
//
//	data := []byte(`{"b":1,"a":2}`)
//	src := bytes.New(data, os.Stdout)
func New(data []byte, out io.Writer) *Source {
	if out == nil {
		out = os.Stdout
	}
	return &Source{
		data: data,
		out:  out,
	}
}

// FromString creates a source from a string.
// This is a convenience function that converts the string to bytes.
//
// Example:
//
//	src := bytes.FromString("server:\n  port: 8080", os.Stdout)
func FromString(data string, out io.Writer) *Source {
	return New([]byte(data), out)
}

// Type returns the source type identifier.
func (s *Source) Type() source.SourceType {
	return source.TypeBytes
}

// Load implements the source.Source interface.
// Returns a copy of the data to prevent callers from modifying the source.
func (s *Source) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]byte, len(s.data))
	copy(result, s.data)
	return result, nil
}

// Save implements the source.Source interface.
// The data is written to the output followed by a newline.
func (s *Source) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	buf := make([]byte, 0, len(data)+1)
	buf = append(buf, data...)
	buf = append(buf, '\n')
	if _, err := s.out.Write(buf); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
