// Package terminal provides terminal detection and compatibility utilities.
package terminal

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Capability represents terminal capabilities
type Capability struct {
	// Profile is the color profile detected from the environment
	Profile termenv.Profile

	// HasUnicode indicates Unicode symbol support
	HasUnicode bool

	// IsTTY indicates stdin and stdout are both terminals
	IsTTY bool

	// Term is the TERM environment variable
	Term string
}

// MinRecommendedWidth is the minimum recommended terminal width
const MinRecommendedWidth = 60

// MinRecommendedHeight is the minimum recommended terminal height
const MinRecommendedHeight = 20

// DetectCapabilities detects terminal capabilities from environment
func DetectCapabilities() Capability {
	termName := os.Getenv("TERM")

	return Capability{
		Profile:    termenv.EnvColorProfile(),
		HasUnicode: termName != "dumb" && termName != "" && !strings.EqualFold(os.Getenv("LANG"), "C"),
		IsTTY:      term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())),
		Term:       termName,
	}
}

// HasColor reports whether any color output is possible.
func (c Capability) HasColor() bool {
	return c.Profile != termenv.Ascii
}

// Icons provides terminal-appropriate icons
type Icons struct {
	Checkmark string
	Cross     string
	Warning   string
	Arrow     string
	Cursor    string
	Pending   string
}

// GetIcons returns appropriate icons for the terminal
func GetIcons(c Capability) Icons {
	if !c.HasUnicode {
		return Icons{
			Checkmark: "[OK]",
			Cross:     "[X]",
			Warning:   "[!]",
			Arrow:     "->",
			Cursor:    ">",
			Pending:   "[ ]",
		}
	}

	return Icons{
		Checkmark: "✓",
		Cross:     "✗",
		Warning:   "⚠",
		Arrow:     "→",
		Cursor:    "▸",
		Pending:   "○",
	}
}

// IsTooNarrow checks if the terminal width is below minimum
func IsTooNarrow(width int) bool {
	return width > 0 && width < MinRecommendedWidth
}

// IsTooShort checks if the terminal height is below minimum
func IsTooShort(height int) bool {
	return height > 0 && height < MinRecommendedHeight
}

// SizeWarning returns a warning message if terminal is too small
func SizeWarning(width, height int) string {
	var warnings []string

	if IsTooNarrow(width) {
		warnings = append(warnings, "Terminal too narrow, recommend 60+ columns")
	}
	if IsTooShort(height) {
		warnings = append(warnings, "Terminal too short, recommend 20+ rows")
	}

	return strings.Join(warnings, "; ")
}

// ConfigureLipgloss applies the detected color profile to lipgloss.
func ConfigureLipgloss(c Capability) {
	lipgloss.SetColorProfile(c.Profile)
}
