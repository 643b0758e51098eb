package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Formatter is the interface for encoding structured listings.
type Formatter interface {
	// Format encodes v and returns the text.
	Format(v interface{}) (string, error)

	// FormatToWriter writes encoded output directly to a writer.
	FormatToWriter(w io.Writer, v interface{}) error
}

// YAMLFormatter formats listings as YAML output.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format formats v as YAML.
func (f *YAMLFormatter) Format(v interface{}) (string, error) {
	var buf bytes.Buffer
	if err := f.FormatToWriter(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatToWriter writes YAML output to a writer.
func (f *YAMLFormatter) FormatToWriter(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(v)
}

// JSONFormatter formats listings as JSON output.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format formats v as JSON.
func (f *JSONFormatter) Format(v interface{}) (string, error) {
	var buf bytes.Buffer
	if err := f.FormatToWriter(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatToWriter writes JSON output to a writer.
func (f *JSONFormatter) FormatToWriter(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

// GetFormatter returns the formatter for the given format.
func GetFormatter(format Format) (Formatter, error) {
	switch format {
	case FormatYAML:
		return NewYAMLFormatter(), nil
	case FormatJSON:
		return NewJSONFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
