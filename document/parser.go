package document

// Parser parses raw bytes into a Document.
// Each format (JSON, TOML, YAML) implements this interface.
type Parser interface {
	// Parse parses the raw bytes strictly according to the format's grammar
	// and returns a Document.
	Parse(data []byte) (Document, error)

	// Format returns the document format this parser handles.
	Format() DocumentFormat
}
