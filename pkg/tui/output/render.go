package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Render renders data to the specified format and writes to the given writer
func Render(w io.Writer, data *Data, format Format) error {
	switch format {
	case FormatTable:
		return RenderTable(w, data)
	case FormatJSON:
		return RenderJSON(w, data)
	case FormatYAML:
		return RenderYAML(w, data)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// RenderJSON renders data as indented JSON and writes to the given writer
func RenderJSON(w io.Writer, data *Data) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// RenderYAML renders data as YAML and writes to the given writer
func RenderYAML(w io.Writer, data *Data) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	err := encoder.Encode(data)
	if err != nil {
		return err
	}
	return encoder.Close()
}
