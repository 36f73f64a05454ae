// Package keys provides centralized keybinding definitions for the TUI.
package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

// GlobalBindings are active everywhere in the application.
type GlobalBindings struct {
	// Interrupt terminates the active journey, or quits when none is running.
	Interrupt key.Binding
	Help      key.Binding
}

// DefaultGlobalBindings returns the default global keybindings.
func DefaultGlobalBindings() GlobalBindings {
	return GlobalBindings{
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "cancel journey"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (g GlobalBindings) ShortHelp() []key.Binding {
	return []key.Binding{g.Interrupt, g.Help}
}

// FullHelp implements help.KeyMap.
func (g GlobalBindings) FullHelp() [][]key.Binding {
	return [][]key.Binding{g.ShortHelp()}
}

// MenuBindings for option lists.
type MenuBindings struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
}

// DefaultMenuBindings returns the default menu keybindings.
func DefaultMenuBindings() MenuBindings {
	return MenuBindings{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("Enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("Esc", "back"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (m MenuBindings) ShortHelp() []key.Binding {
	return []key.Binding{m.Up, m.Down, m.Select, m.Back}
}

// FullHelp implements help.KeyMap.
func (m MenuBindings) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}
