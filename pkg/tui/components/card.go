package components

import (
	"strings"

	"github.com/andri/pocketpay/pkg/flow"
	"github.com/andri/pocketpay/pkg/tui/format"
	"github.com/andri/pocketpay/pkg/tui/keys"
	"github.com/andri/pocketpay/pkg/tui/styles"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// CardTone selects the card's accent.
type CardTone int

const (
	// CardToneNormal is a plain information card
	CardToneNormal CardTone = iota
	// CardToneSuccess marks a completed operation
	CardToneSuccess
	// CardToneError marks a failed operation
	CardToneError
)

// CardField is one label/value row.
type CardField struct {
	Label string
	Value string
}

// CardDelegate reacts to card actions.
type CardDelegate interface {
	CardPrimary()
	CardClosed()
}

// Card shows read-only details with an optional primary action. A busy card
// ignores input until SetBusy(false).
type Card struct {
	title       string
	tone        CardTone
	fields      []CardField
	message     string
	primary     string
	busy        bool
	delegate    *flow.DelegateRef[CardDelegate]
	keyBindings keys.CardBindings
}

// NewCard creates a card reporting to delegate. primary labels the Enter
// action; empty means Enter closes the card.
func NewCard(title string, fields []CardField, primary string, delegate *flow.DelegateRef[CardDelegate]) *Card {
	return &Card{
		title:       title,
		fields:      fields,
		primary:     primary,
		delegate:    delegate,
		keyBindings: keys.DefaultCardBindings(),
	}
}

// WithTone sets the accent (for chaining)
func (c *Card) WithTone(tone CardTone) *Card {
	c.tone = tone
	return c
}

// Title returns the card title.
func (c *Card) Title() string {
	return c.title
}

// SetTitle replaces the title.
func (c *Card) SetTitle(title string) {
	c.title = title
}

// SetFields replaces the detail rows.
func (c *Card) SetFields(fields []CardField) {
	c.fields = fields
}

// SetPrimary relabels the Enter action; empty means Enter closes.
func (c *Card) SetPrimary(primary string) {
	c.primary = primary
}

// Tone returns the accent.
func (c *Card) Tone() CardTone {
	return c.tone
}

// SetMessage sets a free-text line under the fields.
func (c *Card) SetMessage(msg string) {
	c.message = msg
}

// SetBusy toggles the busy state.
func (c *Card) SetBusy(busy bool) {
	c.busy = busy
}

// Busy reports whether the card is waiting on an operation.
func (c *Card) Busy() bool {
	return c.busy
}

// Init implements tea.Model
func (c *Card) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (c *Card) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || c.busy {
		return c, nil
	}

	switch {
	case key.Matches(keyMsg, c.keyBindings.Primary):
		d, ok := c.delegate.Get()
		if !ok {
			flow.SoftFailure("card.primary", "screen", c.title, "reason", "delegate released")
			return c, nil
		}
		if c.primary == "" {
			d.CardClosed()
		} else {
			d.CardPrimary()
		}
	case key.Matches(keyMsg, c.keyBindings.Close):
		d, ok := c.delegate.Get()
		if !ok {
			flow.SoftFailure("card.close", "screen", c.title, "reason", "delegate released")
			return c, nil
		}
		d.CardClosed()
	}
	return c, nil
}

// View implements tea.Model
func (c *Card) View() string {
	var b strings.Builder

	title := c.title
	switch c.tone {
	case CardToneSuccess:
		title = styles.StyleSuccess.Render(styles.IconCheckmark + " " + title)
	case CardToneError:
		title = styles.StyleError.Render(styles.IconCross + " " + title)
	default:
		title = styles.StyleHeading.Render(title)
	}
	b.WriteString(title)
	b.WriteString("\n")

	labelWidth := 0
	for _, f := range c.fields {
		labelWidth = max(labelWidth, format.DisplayWidth(f.Label))
	}
	for _, f := range c.fields {
		b.WriteString(styles.StyleSubtle.Render(format.PadRight(f.Label, labelWidth)))
		b.WriteString("  ")
		b.WriteString(styles.StyleNormal.Render(f.Value))
		b.WriteString("\n")
	}

	if c.message != "" {
		b.WriteString("\n")
		b.WriteString(c.message)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case c.busy:
		b.WriteString(styles.StyleSubtle.Render("Processing..."))
	case c.primary != "":
		b.WriteString(styles.StyleSubtle.Render("Enter: " + c.primary + "  Esc: close"))
	default:
		b.WriteString(styles.StyleSubtle.Render("Enter/Esc: close"))
	}
	return b.String()
}
