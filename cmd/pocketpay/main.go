// Package main is the entry point for the pocketpay CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/andri/pocketpay/cmd/pocketpay/commands"
)

// set at build time via -ldflags "-X main.version=..."
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// exitInterrupted follows the shell convention of 128+SIGINT.
const exitInterrupted = 130

func main() {
	commands.SetVersionInfo(version, commit, buildDate)

	err := commands.Execute()
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		os.Exit(exitInterrupted)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
