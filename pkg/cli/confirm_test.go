package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andri/pocketpay/pkg/cli"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		skipPrompt bool
		def        bool
		wantResult bool
		wantHint   string
	}{
		{name: "yes lowercase", input: "y\n", wantResult: true, wantHint: "(y/N)"},
		{name: "yes uppercase", input: "Y\n", wantResult: true, wantHint: "(y/N)"},
		{name: "yes full word", input: "YES\n", wantResult: true, wantHint: "(y/N)"},
		{name: "no", input: "n\n", wantResult: false, wantHint: "(y/N)"},
		{name: "random input", input: "maybe\n", wantResult: false, wantHint: "(y/N)"},
		{name: "whitespace around yes", input: "  y  \n", wantResult: true, wantHint: "(y/N)"},
		{name: "empty line without default", input: "\n", wantResult: false, wantHint: "(y/N)"},
		{name: "empty line with default", input: "\n", def: true, wantResult: true, wantHint: "(Y/n)"},
		{name: "no overrides default", input: "no\n", def: true, wantResult: false, wantHint: "(Y/n)"},
		{name: "eof refuses even with default", input: "", def: true, wantResult: false, wantHint: "(Y/n)"},
		{name: "skip prompt returns true", skipPrompt: true, wantResult: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := &bytes.Buffer{}

			result, err := cli.Confirm(cli.ConfirmOptions{
				Question:   "Send?",
				SkipPrompt: tt.skipPrompt,
				Default:    tt.def,
				Input:      strings.NewReader(tt.input),
				Output:     output,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.wantResult {
				t.Errorf("Confirm() = %v, want %v", result, tt.wantResult)
			}

			if tt.skipPrompt {
				if output.Len() != 0 {
					t.Errorf("expected no prompt when skipped, got %q", output.String())
				}
				return
			}
			if !strings.Contains(output.String(), "Send? "+tt.wantHint) {
				t.Errorf("prompt = %q, want it to contain %q", output.String(), "Send? "+tt.wantHint)
			}
		})
	}
}

func TestConfirm_DefaultsToStdio(t *testing.T) {
	result, err := cli.Confirm(cli.ConfirmOptions{
		Question:   "Test?",
		SkipPrompt: true,
	})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !result {
		t.Error("expected true when skip is set")
	}
}
