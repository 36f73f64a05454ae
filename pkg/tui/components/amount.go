package components

import (
	"github.com/andri/pocketpay/pkg/flow"
	"github.com/andri/pocketpay/pkg/tui/keys"
	"github.com/andri/pocketpay/pkg/tui/styles"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AmountDelegate receives the raw amount text. Parsing and validation are
// the delegate's job; it reports problems back through SetError.
type AmountDelegate interface {
	AmountSubmitted(raw string)
	AmountCancelled()
}

// AmountInput is a single-field money entry screen.
type AmountInput struct {
	title       string
	currency    string
	input       textinput.Model
	err         string
	delegate    *flow.DelegateRef[AmountDelegate]
	keyBindings keys.InputBindings
}

// NewAmountInput creates an amount entry screen for currency.
func NewAmountInput(title, currency string, delegate *flow.DelegateRef[AmountDelegate]) *AmountInput {
	ti := textinput.New()
	ti.Placeholder = "0.00"
	ti.CharLimit = 12
	ti.Prompt = currency + " "
	ti.Focus()

	return &AmountInput{
		title:       title,
		currency:    currency,
		input:       ti,
		delegate:    delegate,
		keyBindings: keys.DefaultInputBindings(),
	}
}

// Title returns the screen title.
func (a *AmountInput) Title() string {
	return a.title
}

// SetValue replaces the field contents.
func (a *AmountInput) SetValue(v string) {
	a.input.SetValue(v)
}

// Value returns the field contents.
func (a *AmountInput) Value() string {
	return a.input.Value()
}

// SetError shows a validation message under the field. Empty clears it.
func (a *AmountInput) SetError(msg string) {
	a.err = msg
}

// Error returns the current validation message.
func (a *AmountInput) Error() string {
	return a.err
}

// SetSize implements Sizable.
func (a *AmountInput) SetSize(width, _ int) {
	a.input.Width = max(width-len(a.input.Prompt)-2, 8)
}

// Init implements tea.Model
func (a *AmountInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (a *AmountInput) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, a.keyBindings.Submit):
			if d, ok := a.delegate.Get(); ok {
				d.AmountSubmitted(a.input.Value())
			} else {
				flow.SoftFailure("amount.submit", "screen", a.title, "reason", "delegate released")
			}
			return a, nil
		case key.Matches(keyMsg, a.keyBindings.Cancel):
			if d, ok := a.delegate.Get(); ok {
				d.AmountCancelled()
			} else {
				flow.SoftFailure("amount.cancel", "screen", a.title, "reason", "delegate released")
			}
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// View implements tea.Model
func (a *AmountInput) View() string {
	out := styles.StyleHeading.Render(a.title) + "\n" + a.input.View()
	if a.err != "" {
		out += "\n" + styles.StyleError.Render(styles.IconCross+" "+a.err)
	}
	return out + "\n\n" + styles.StyleSubtle.Render("Enter: continue  Esc: back")
}
