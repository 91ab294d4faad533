// Package fs provides a file based document source over an afero.Fs.
package fs

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
	"github.com/yacchi/docfmt/source"
)

// createMode is the permission mode of a file Save has to create. Files that
// already exist keep their mode.
const createMode = 0644

// ErrInvalidUTF8 is returned by Load when the file is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Source loads and saves document text from/to a single file.
type Source struct {
	fs   afero.Fs
	path string
}

// Ensure Source implements the source.Source interface.
var _ source.Source = (*Source)(nil)

// New creates a source that reads from and writes to path on fsys.
// A nil fsys means the operating system filesystem.
//
// Example:
//
//	src := fs.New(afero.NewOsFs(), "config.toml")
//	src := fs.New(afero.NewMemMapFs(), "data.json")
func New(fsys afero.Fs, path string) *Source {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Source{
		fs:   fsys,
		path: path,
	}
}

// IsRegularFile reports whether the path names an existing regular file.
// Symlinks are followed; directories and missing paths are not files.
func (s *Source) IsRegularFile() bool {
	info, err := s.fs.Stat(s.path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Ext returns the text after the last '.' in the file's base name, or an
// empty string when the name has no '.'.
func (s *Source) Ext() string {
	return strings.TrimPrefix(filepath.Ext(s.path), ".")
}

// Load implements the source.Source interface.
// The whole file is read into memory and must be valid UTF-8.
func (s *Source) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", s.path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("failed to read file %q: %w", s.path, ErrInvalidUTF8)
	}
	return data, nil
}

// Save implements the source.Source interface.
// The file is truncated and overwritten in place; the write is not atomic.
func (s *Source) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := afero.WriteFile(s.fs, s.path, data, createMode); err != nil {
		return fmt.Errorf("failed to write file %q: %w", s.path, err)
	}
	return nil
}

// Type returns the source type identifier.
func (s *Source) Type() source.SourceType {
	return source.TypeFS
}
