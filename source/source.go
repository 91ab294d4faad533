// Package source provides interfaces and implementations for document sources.
// A source represents where document text comes from and where the formatted
// result goes. Sources are responsible only for I/O; parsing is handled by
// document.Parser implementations.
package source

import "context"

// SourceType identifies the kind of a Source.
type SourceType string

const (
	// TypeFS is a file on a filesystem.
	TypeFS SourceType = "fs"

	// TypeBytes is inline text held in memory.
	TypeBytes SourceType = "bytes"
)

// Source loads raw document text and saves the formatted result.
// Sources are format-agnostic; they only handle raw bytes.
type Source interface {
	// Load reads the raw document text.
	// The context is checked for cancellation before any I/O.
	Load(ctx context.Context) ([]byte, error)

	// Save writes the formatted text to the source's sink.
	// The context is checked for cancellation before any I/O.
	Save(ctx context.Context, data []byte) error

	// Type returns the source type identifier.
	Type() SourceType
}
