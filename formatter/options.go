package formatter

import (
	"io"

	"github.com/go-kit/log"
	"github.com/spf13/afero"
)

// Option configures a Formatter.
type Option func(*Formatter)

// WithFs sets the filesystem used to classify, read and rewrite the input.
// Default is afero.NewOsFs().
func WithFs(fsys afero.Fs) Option {
	return func(f *Formatter) {
		f.fs = fsys
	}
}

// WithStdout sets the writer that receives formatted inline input.
// Default is os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(f *Formatter) {
		f.stdout = w
	}
}

// WithLogger sets the logger that receives parse diagnostics.
// Default is a no-op logger.
func WithLogger(logger log.Logger) Option {
	return func(f *Formatter) {
		f.logger = logger
	}
}
