// Package format provides text layout helpers for TUI output.
package format

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the visible width of a plain string.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate trims a plain string to a maximum display width.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}

// Ellipsize trims a plain string to width, marking the cut with "…".
func Ellipsize(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads a string on the right to the target display width.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	displayWidth := runewidth.StringWidth(s)
	if displayWidth >= width {
		return Truncate(s, width)
	}
	return s + strings.Repeat(" ", width-displayWidth)
}

// ClipLines cuts already-styled text to at most width columns and height
// lines, keeping ANSI sequences intact. Zero means unbounded.
func ClipLines(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	if width > 0 {
		for i, line := range lines {
			if ansi.StringWidth(line) > width {
				lines[i] = ansi.Truncate(line, width, "")
			}
		}
	}
	return strings.Join(lines, "\n")
}

// LastLines returns the final n lines of s.
func LastLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}
