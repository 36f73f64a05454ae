// Package commands provides the CLI command implementations for pocketpay.
package commands

import (
	"context"

	"github.com/andri/pocketpay/pkg/tui/terminal"
	tea "github.com/charmbracelet/bubbletea"
	"k8s.io/utils/clock"
)

var isInteractive = func() bool {
	return terminal.DetectCapabilities().IsTTY
}

var runProgram = func(ctx context.Context, m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
}

var newClock = func() clock.WithTicker {
	return clock.RealClock{}
}
