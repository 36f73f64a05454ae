package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andri/pocketpay/cmd/pocketpay/commands"
	"github.com/andri/pocketpay/pkg/flow"
)

func TestNewRootCmd(t *testing.T) {
	cmd := commands.NewRootCmd()

	if cmd.Use != "pocketpay" {
		t.Errorf("Use = %q, want %q", cmd.Use, "pocketpay")
	}
	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}
	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCmdHasGlobalFlags(t *testing.T) {
	flags := commands.NewRootCmd().PersistentFlags()

	for _, flagName := range []string{"config", "currency", "log-level", "log-file", "log-format"} {
		if flags.Lookup(flagName) == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestRootCmdSubcommands(t *testing.T) {
	cmd := commands.NewRootCmd()

	for _, name := range []string{"version", "run", "account", "pay", "config", "completion"} {
		sub, _, err := cmd.Find([]string{name})
		if err != nil || sub == cmd {
			t.Errorf("expected %q subcommand to exist", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	commands.SetVersionInfo("1.2.3", "abc123", "2026-01-01")

	cmd := commands.NewRootCmd()
	cmd.SetArgs([]string{"version"})

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := stdout.String()
	for _, want := range []string{"pocketpay version 1.2.3", "abc123", "2026-01-01"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got %q", want, output)
		}
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := commands.NewRootCmd()
	cmd.SetArgs([]string{"--help"})

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := stdout.String()
	if !strings.Contains(output, "pocketpay") {
		t.Errorf("expected help output to contain 'pocketpay', got %q", output)
	}
	if !strings.Contains(output, "payment links") {
		t.Errorf("expected help output to describe payment links, got %q", output)
	}
}

func TestRootRejectsInvalidConfig(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(configFile, []byte("service:\n  currency: nope\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := commands.NewRootCmd()
	cmd.SetArgs([]string{"--config", configFile, "version"})
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error for invalid configuration")
	}
	if !strings.Contains(err.Error(), "service.currency") {
		t.Errorf("error = %v, want it to name service.currency", err)
	}
}

func TestRootAppliesFlowPolicy(t *testing.T) {
	t.Cleanup(func() {
		flow.SetStrict(false)
		flow.SetAnimations(true)
	})

	configFile := filepath.Join(t.TempDir(), "config.yaml")
	contents := "flow:\n  strict-lifecycle: true\nui:\n  animations: false\n"
	if err := os.WriteFile(configFile, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := commands.NewRootCmd()
	cmd.SetArgs([]string{"--config", configFile, "version"})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !flow.Strict() {
		t.Error("flow.Strict() = false, want true")
	}
	if flow.Animated() {
		t.Error("flow.Animated() = true, want false")
	}
}
