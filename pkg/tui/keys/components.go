package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

// ConfirmBindings for confirmation prompts.
type ConfirmBindings struct {
	Yes    key.Binding
	No     key.Binding
	Accept key.Binding // Enter key - uses default
	Cancel key.Binding
}

// DefaultConfirmBindings returns the default confirmation keybindings.
func DefaultConfirmBindings() ConfirmBindings {
	return ConfirmBindings{
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "no"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "accept default"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (c ConfirmBindings) ShortHelp() []key.Binding {
	return []key.Binding{c.Yes, c.No, c.Cancel}
}

// FullHelp implements help.KeyMap.
func (c ConfirmBindings) FullHelp() [][]key.Binding {
	return [][]key.Binding{{c.Yes, c.No, c.Accept, c.Cancel}}
}

// InputBindings for single-field entry screens.
type InputBindings struct {
	Submit key.Binding
	Cancel key.Binding
}

// DefaultInputBindings returns the default input keybindings.
func DefaultInputBindings() InputBindings {
	return InputBindings{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "continue"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "back"),
		),
	}
}

// CardBindings for read-only cards (details, receipts).
type CardBindings struct {
	Primary key.Binding
	Close   key.Binding
}

// DefaultCardBindings returns the default card keybindings.
func DefaultCardBindings() CardBindings {
	return CardBindings{
		Primary: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "continue"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("Esc", "close"),
		),
	}
}
