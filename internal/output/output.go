package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, FormatJSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("unsupported output format: %q (expected yaml or json)", s)
}

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// Out is where Print writes.
var Out io.Writer = os.Stdout

// Print serializes v to Out in the current output format.
func Print(v any) error {
	return Fprint(Out, v)
}

// Fprint serializes v to w in the current output format.
func Fprint(w io.Writer, v any) error {
	switch OutputFormat {
	case FormatJSON:
		return WriteJSON(w, v, PrettyOutput)
	case FormatYAML:
		return WriteYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// Marshal renders v in format f.
func Marshal(f Format, v any) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch f {
	case FormatJSON:
		err = WriteJSON(&buf, v, true)
	case FormatYAML:
		err = WriteYAML(&buf, v)
	default:
		err = fmt.Errorf("unsupported output format: %s", f)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON serializes v as JSON, indented when pretty is set and a single
// line otherwise.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// WriteYAML serializes v as YAML.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
