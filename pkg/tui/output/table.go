package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andri/pocketpay/pkg/tui/format"
	"golang.org/x/term"
)

// TableWriter writes data as a formatted ASCII table
type TableWriter struct {
	w     io.Writer
	color bool
	width int
}

// NewTableWriter creates a new table writer
func NewTableWriter(w io.Writer) *TableWriter {
	tw := &TableWriter{
		w:     w,
		color: isTerminal(w),
		width: 80,
	}

	// Try to get terminal width
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			tw.width = width
		}
	}

	return tw
}

// isTerminal checks if the writer is a terminal
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Write writes the data as a formatted table
func (tw *TableWriter) Write(data *Data) error {
	if data.Account != nil {
		tw.writeAccount(data.Account)
		_, _ = fmt.Fprintln(tw.w)
	}

	if len(data.Contacts) > 0 {
		tw.writeSectionHeader("CONTACTS", len(data.Contacts))
		tw.writeContactsTable(data.Contacts)
		_, _ = fmt.Fprintln(tw.w)
	}

	if data.Link != nil {
		tw.writeSectionHeader("LINK", 1)
		tw.writeLink(data.Link)
		_, _ = fmt.Fprintln(tw.w)
	}

	return nil
}

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
)

// writeAccount writes the account summary
func (tw *TableWriter) writeAccount(a *AccountView) {
	_, _ = fmt.Fprintf(tw.w, "Account: %s (@%s)\n", a.Holder, a.Handle)
	_, _ = fmt.Fprintf(tw.w, "Number:  %s  sort code %s\n", a.AccountNumber, a.SortCode)

	balanceColor := colorGreen
	if a.BalanceMinor <= 0 {
		balanceColor = colorRed
	}
	_, _ = fmt.Fprintf(tw.w, "Balance: %s\n", tw.colorize(a.Balance, balanceColor))
}

// writeSectionHeader writes a section header
func (tw *TableWriter) writeSectionHeader(title string, count int) {
	header := fmt.Sprintf("=== %s (%d) ===", title, count)
	_, _ = fmt.Fprintln(tw.w, tw.colorize(header, colorBold+colorCyan))
}

// writeContactsTable writes the contacts table
func (tw *TableWriter) writeContactsTable(contacts []ContactView) {
	cols := []column{
		{header: "HANDLE", width: 16},
		{header: "NAME", width: min(40, max(tw.width-17, 10))},
	}

	tw.writeTableHeader(cols)
	tw.writeTableSeparator(cols)
	for _, c := range contacts {
		tw.writeTableRow(cols, []cell{
			{value: "@" + c.Handle},
			{value: c.Name},
		})
	}
}

// writeLink writes a single payment link
func (tw *TableWriter) writeLink(l *LinkView) {
	_, _ = fmt.Fprintf(tw.w, "Slug:   %s\n", l.Slug)
	_, _ = fmt.Fprintf(tw.w, "Owner:  @%s\n", l.Owner)
	_, _ = fmt.Fprintf(tw.w, "Amount: %s\n", tw.colorize(l.Amount, colorGreen))
	_, _ = fmt.Fprintf(tw.w, "URL:    %s\n", l.URL)
}

// column defines a table column
type column struct {
	header string
	width  int
}

// cell defines a table cell
type cell struct {
	value string
	color string
}

// writeTableHeader writes the table header row
func (tw *TableWriter) writeTableHeader(cols []column) {
	parts := make([]string, len(cols))
	for i, col := range cols {
		parts[i] = format.PadRight(col.header, col.width)
	}
	_, _ = fmt.Fprintln(tw.w, tw.colorize(strings.TrimRight(strings.Join(parts, " "), " "), colorBold))
}

// writeTableSeparator writes a separator line
func (tw *TableWriter) writeTableSeparator(cols []column) {
	totalWidth := 0
	for _, col := range cols {
		totalWidth += col.width + 1
	}
	_, _ = fmt.Fprintln(tw.w, strings.Repeat("-", totalWidth-1))
}

// writeTableRow writes a table row
func (tw *TableWriter) writeTableRow(cols []column, cells []cell) {
	parts := make([]string, len(cols))
	for i, col := range cols {
		value := ""
		color := ""
		if i < len(cells) {
			value = cells[i].value
			color = cells[i].color
		}
		padded := format.PadRight(value, col.width)
		if color != "" {
			padded = tw.colorize(padded, color)
		}
		parts[i] = padded
	}
	_, _ = fmt.Fprintln(tw.w, strings.TrimRight(strings.Join(parts, " "), " "))
}

// colorize adds ANSI color codes if color is enabled
func (tw *TableWriter) colorize(s, color string) string {
	if !tw.color || color == "" {
		return s
	}
	return color + s + colorReset
}

// RenderTable renders data to a table and writes to the given writer
func RenderTable(w io.Writer, data *Data) error {
	tw := NewTableWriter(w)
	return tw.Write(data)
}
