package models

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// contains checks if the string s contains the substring substr.
// This is a test helper to make assertions more readable.
func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

// isQuit reports whether cmd, or any command batched in it, quits.
func isQuit(cmd tea.Cmd) bool {
	for _, msg := range run(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

// run executes cmd, flattening batches. Commands that do not return
// promptly (cursor blink ticks) are dropped.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(100 * time.Millisecond):
		return nil
	}
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// pump feeds the messages cmd produces back into m until nothing is left,
// the way the Bubble Tea runtime would. It reports whether m asked to quit.
func pump(m tea.Model, cmd tea.Cmd) bool {
	for i := 0; cmd != nil && i < 20; i++ {
		var next []tea.Cmd
		for _, msg := range run(cmd) {
			if _, ok := msg.(tea.QuitMsg); ok {
				return true
			}
			_, c := m.Update(msg)
			next = append(next, c)
		}
		cmd = tea.Batch(next...)
	}
	return false
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
