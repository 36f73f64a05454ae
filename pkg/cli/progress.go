package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Stage names a step of a scripted payment.
type Stage string

const (
	StageLookup   Stage = "lookup"
	StageSending  Stage = "sending"
	StageComplete Stage = "complete"
	StageError    Stage = "error"
)

// Progress is one update from a running payment.
type Progress struct {
	Stage       Stage
	Description string
}

// PaymentSummary describes a payment before it is sent.
type PaymentSummary struct {
	To      string
	Name    string
	Amount  string
	Balance string
}

// ProgressWriter outputs progress updates to the terminal.
type ProgressWriter struct {
	w io.Writer
}

// NewProgressWriter creates a new ProgressWriter.
// If w is nil, os.Stdout is used.
func NewProgressWriter(w io.Writer) *ProgressWriter {
	if w == nil {
		w = os.Stdout
	}
	return &ProgressWriter{w: w}
}

// OnProgress prints one progress update.
func (pw *ProgressWriter) OnProgress(p Progress) {
	var prefix string
	switch p.Stage {
	case StageComplete:
		prefix = "✓"
	case StageError:
		prefix = "✗"
	default:
		prefix = "→"
	}

	description := strings.TrimSpace(p.Description)
	if description == "" {
		description = string(p.Stage)
	}

	_, _ = fmt.Fprintf(pw.w, "%s %s\n", prefix, description)
}

// PrintSummary prints what is about to be paid.
func (pw *ProgressWriter) PrintSummary(s PaymentSummary) {
	to := "@" + s.To
	if s.Name != "" {
		to = fmt.Sprintf("%s (@%s)", s.Name, s.To)
	}
	_, _ = fmt.Fprintf(pw.w, "To:      %s\n", to)
	_, _ = fmt.Fprintf(pw.w, "Amount:  %s\n", s.Amount)
	if s.Balance != "" {
		_, _ = fmt.Fprintf(pw.w, "Balance: %s\n", s.Balance)
	}
	_, _ = fmt.Fprintln(pw.w)
}

// PrintSuccess prints a success message.
func (pw *ProgressWriter) PrintSuccess(message string) {
	pw.OnProgress(Progress{Stage: StageComplete, Description: message})
}

// PrintError prints an error message.
func (pw *ProgressWriter) PrintError(message string) {
	pw.OnProgress(Progress{Stage: StageError, Description: message})
}
