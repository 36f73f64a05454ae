// Package styles provides theming and styling utilities for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme names accepted by Apply.
const (
	ThemeDefault = "default"
	ThemeMono    = "mono"
)

// Color palette for the TUI interface
var (
	ColorPrimary  = lipgloss.AdaptiveColor{Light: "#006B5B", Dark: "#2DD4B3"}
	ColorAccent   = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7C7AE6"}
	ColorPositive = lipgloss.AdaptiveColor{Light: "#00AF87", Dark: "#00D787"}
	ColorWarning  = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}
	ColorError    = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
	ColorBorder   = lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#585858"}
	ColorSubtle   = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#8A8A8A"}
	ColorText     = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	ColorSheetBg  = lipgloss.AdaptiveColor{Light: "#F0F0F0", Dark: "#252525"}
)

// Text styles
var (
	// StyleHeading is used for screen titles
	StyleHeading lipgloss.Style
	// StyleNormal is the default text style
	StyleNormal lipgloss.Style
	// StyleSubtle is used for secondary information and hints
	StyleSubtle lipgloss.Style
	// StyleSelected marks the focused menu row
	StyleSelected lipgloss.Style
	// StyleAmount renders money values
	StyleAmount lipgloss.Style
	// StyleSuccess is used for completed operations
	StyleSuccess lipgloss.Style
	// StyleWarning is used for warnings
	StyleWarning lipgloss.Style
	// StyleError is used for error messages
	StyleError lipgloss.Style
)

// Container styles
var (
	// StyleBox frames modal content
	StyleBox lipgloss.Style
	// StyleBoxError frames error cards
	StyleBoxError lipgloss.Style
	// StyleSheet frames bottom sheets
	StyleSheet lipgloss.Style
	// StyleScreen pads full-screen pushed surfaces
	StyleScreen lipgloss.Style
)

// Icons and symbols
const (
	IconCheckmark = "✓"
	IconCross     = "✗"
	IconWarning   = "⚠"
	IconArrow     = "→"
	IconCursor    = "▸"
)

func init() {
	Apply(ThemeDefault)
}

// Apply rebuilds every style for the named theme. Unknown names fall back to
// the default theme.
func Apply(theme string) {
	primary, accent, positive := lipgloss.TerminalColor(ColorPrimary), lipgloss.TerminalColor(ColorAccent), lipgloss.TerminalColor(ColorPositive)
	warning, failure, border := lipgloss.TerminalColor(ColorWarning), lipgloss.TerminalColor(ColorError), lipgloss.TerminalColor(ColorBorder)
	subtle, text, sheetBg := lipgloss.TerminalColor(ColorSubtle), lipgloss.TerminalColor(ColorText), lipgloss.TerminalColor(ColorSheetBg)

	if theme == ThemeMono {
		none := lipgloss.NoColor{}
		primary, accent, positive = none, none, none
		warning, failure, border = none, none, none
		subtle, text, sheetBg = none, none, none
	}

	StyleHeading = lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1)
	StyleNormal = lipgloss.NewStyle().Foreground(text)
	StyleSubtle = lipgloss.NewStyle().Foreground(subtle)
	StyleSelected = lipgloss.NewStyle().Bold(true).Foreground(accent)
	StyleAmount = lipgloss.NewStyle().Bold(true).Foreground(positive)
	StyleSuccess = lipgloss.NewStyle().Bold(true).Foreground(positive)
	StyleWarning = lipgloss.NewStyle().Bold(true).Foreground(warning)
	StyleError = lipgloss.NewStyle().Bold(true).Foreground(failure)

	StyleBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2)
	StyleBoxError = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(failure).
		Padding(1, 2)
	StyleSheet = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(border).
		Background(sheetBg).
		Padding(0, 2)
	StyleScreen = lipgloss.NewStyle().Padding(1, 2)
}
