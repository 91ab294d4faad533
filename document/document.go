// Package document provides an abstraction over parsed structured-data
// documents (JSON, TOML, YAML) that can be re-serialized in canonical form.
//
// A Document never converts between formats: Marshal always renders in the
// grammar the document was parsed from.
package document

// Document represents a parsed structured-data document.
type Document interface {
	// Marshal serializes the document back into its own format using that
	// format's pretty-print convention.
	//
	// Example:
	//   data, err := doc.Marshal()
	//   if err != nil {
	//     return err
	//   }
	//   os.WriteFile("config.toml", data, 0644)
	Marshal() ([]byte, error)

	// Format returns the document format type.
	Format() DocumentFormat
}

// DocumentFormat represents the format of a structured-data document.
type DocumentFormat string

const (
	// FormatJSON represents JSON (using github.com/go-json-experiment/json/jsontext).
	FormatJSON DocumentFormat = "json"

	// FormatTOML represents TOML format (using github.com/pelletier/go-toml/v2).
	FormatTOML DocumentFormat = "toml"

	// FormatYAML represents YAML format (using gopkg.in/yaml.v3).
	FormatYAML DocumentFormat = "yaml"
)

// Formats returns the supported formats in detection order.
func Formats() []DocumentFormat {
	return []DocumentFormat{FormatJSON, FormatTOML, FormatYAML}
}

// String returns the format tag.
func (f DocumentFormat) String() string {
	return string(f)
}

// Name returns the upper-case display name used in messages, e.g. "JSON".
func (f DocumentFormat) Name() string {
	switch f {
	case FormatJSON:
		return "JSON"
	case FormatTOML:
		return "TOML"
	case FormatYAML:
		return "YAML"
	default:
		return string(f)
	}
}
