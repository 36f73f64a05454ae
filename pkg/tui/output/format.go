// Package output renders account data outside the interactive UI.
package output

import (
	"fmt"
	"slices"
	"strings"
)

// Format is an output encoding for the account command.
type Format string

const (
	// FormatTable is aligned plain text, colored on a terminal
	FormatTable Format = "table"
	// FormatJSON is indented JSON
	FormatJSON Format = "json"
	// FormatYAML is YAML
	FormatYAML Format = "yaml"
)

// Formats lists the accepted formats in display order.
var Formats = []Format{FormatTable, FormatJSON, FormatYAML}

// ParseFormat maps a flag value to a Format. Empty means table; case is
// ignored.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatTable, nil
	}
	if !slices.Contains(Formats, f) {
		return "", fmt.Errorf("unknown output format %q (valid: %s)", s, FormatList())
	}
	return f, nil
}

// FormatList renders Formats for help and error text.
func FormatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func (f Format) String() string {
	return string(f)
}
