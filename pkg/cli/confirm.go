// Package cli provides prompts and progress output for commands that run
// without the interactive UI.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ConfirmOptions holds options for the confirmation prompt.
type ConfirmOptions struct {
	// Question is the prompt to display to the user.
	Question string

	// SkipPrompt skips the confirmation and returns true immediately.
	// Use this with -y/--yes flags.
	SkipPrompt bool

	// Default is the answer taken for an empty line. End of input is
	// always a refusal.
	Default bool

	// Input is the reader for user input (defaults to os.Stdin).
	Input io.Reader

	// Output is the writer for the prompt (defaults to os.Stdout).
	Output io.Writer
}

// Confirm asks a yes/no question and reports whether the user agreed.
func Confirm(opts ConfirmOptions) (bool, error) {
	if opts.SkipPrompt {
		return true, nil
	}

	input := opts.Input
	if input == nil {
		input = os.Stdin
	}
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	hint := "y/N"
	if opts.Default {
		hint = "Y/n"
	}
	_, _ = fmt.Fprintf(output, "%s (%s): ", opts.Question, hint)

	scanner := bufio.NewScanner(input)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, fmt.Errorf("failed to read input: %w", err)
		}
		return false, nil
	}

	switch strings.TrimSpace(strings.ToLower(scanner.Text())) {
	case "y", "yes":
		return true, nil
	case "":
		return opts.Default, nil
	default:
		return false, nil
	}
}
