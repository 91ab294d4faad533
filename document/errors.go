package document

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	// ErrUnsupported matches errors raised when an input cannot be mapped to
	// a supported format.
	ErrUnsupported = errors.New("unsupported")

	// ErrInvalid matches errors raised when content violates the grammar of
	// its detected format.
	ErrInvalid = errors.New("invalid document")
)

// UnsupportedInputError is returned when inline content parses under none of
// the supported grammars.
type UnsupportedInputError struct{}

func (e *UnsupportedInputError) Error() string {
	return "Unsupported input type"
}

// Is reports whether target is ErrUnsupported.
func (e *UnsupportedInputError) Is(target error) bool {
	return target == ErrUnsupported
}

// UnsupportedFileTypeError is returned when a file's extension is not one of
// the supported format tags.
type UnsupportedFileTypeError struct {
	Ext string
}

func (e *UnsupportedFileTypeError) Error() string {
	if e.Ext == "" {
		return "Unsupported file type"
	}
	return fmt.Sprintf("Unsupported file type: %q", e.Ext)
}

// Is reports whether target is ErrUnsupported.
func (e *UnsupportedFileTypeError) Is(target error) bool {
	return target == ErrUnsupported
}

// InvalidDocumentError is returned when content fails to parse under its
// detected format. Err holds the underlying parser error.
type InvalidDocumentError struct {
	Format DocumentFormat
	Err    error
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("Invalid %s file", e.Format.Name())
}

func (e *InvalidDocumentError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalid.
func (e *InvalidDocumentError) Is(target error) bool {
	return target == ErrInvalid
}

// Invalid creates an InvalidDocumentError for the given format.
//
// Example:
//
//	return nil, document.Invalid(document.FormatJSON, err)
func Invalid(format DocumentFormat, err error) *InvalidDocumentError {
	return &InvalidDocumentError{Format: format, Err: err}
}
