package components

import (
	"fmt"

	"github.com/andri/pocketpay/pkg/flow"
	"github.com/andri/pocketpay/pkg/tui/keys"
	"github.com/andri/pocketpay/pkg/tui/styles"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmResult represents the result of a confirmation prompt
type ConfirmResult int

const (
	// ConfirmPending indicates no answer has been given yet
	ConfirmPending ConfirmResult = iota
	// ConfirmYes indicates the user confirmed
	ConfirmYes
	// ConfirmNo indicates the user declined
	ConfirmNo
	// ConfirmCancelled indicates the user cancelled (Esc)
	ConfirmCancelled
)

// String returns the string representation of the result
func (r ConfirmResult) String() string {
	switch r {
	case ConfirmPending:
		return "pending"
	case ConfirmYes:
		return "yes"
	case ConfirmNo:
		return "no"
	case ConfirmCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ConfirmDelegate is notified once the user answers.
type ConfirmDelegate interface {
	ConfirmAnswered(result ConfirmResult)
}

// ConfirmScreen is a yes/no question with optional detail lines.
type ConfirmScreen struct {
	// Title is shown above the question
	Title string

	// Question is the prompt text displayed to the user
	Question string

	// Details provides additional context (optional)
	Details []string

	// DefaultYes makes 'y' the default when Enter is pressed
	DefaultYes bool

	result      ConfirmResult
	delegate    *flow.DelegateRef[ConfirmDelegate]
	keyBindings keys.ConfirmBindings
	width       int
}

// NewConfirmScreen creates a confirmation screen reporting to delegate.
func NewConfirmScreen(title, question string, delegate *flow.DelegateRef[ConfirmDelegate]) *ConfirmScreen {
	return &ConfirmScreen{
		Title:       title,
		Question:    question,
		delegate:    delegate,
		keyBindings: keys.DefaultConfirmBindings(),
	}
}

// WithDetails adds detail lines (for chaining)
func (c *ConfirmScreen) WithDetails(details ...string) *ConfirmScreen {
	c.Details = append(c.Details, details...)
	return c
}

// WithDefaultYes sets the default to yes (for chaining)
func (c *ConfirmScreen) WithDefaultYes() *ConfirmScreen {
	c.DefaultYes = true
	return c
}

// Result returns the answer given so far.
func (c *ConfirmScreen) Result() ConfirmResult {
	return c.result
}

// SetSize implements Sizable.
func (c *ConfirmScreen) SetSize(width, _ int) {
	c.width = width
}

// Init implements tea.Model
func (c *ConfirmScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (c *ConfirmScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if c.result != ConfirmPending {
		return c, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(keyMsg, c.keyBindings.Yes):
		c.answer(ConfirmYes)
	case key.Matches(keyMsg, c.keyBindings.No):
		c.answer(ConfirmNo)
	case key.Matches(keyMsg, c.keyBindings.Accept):
		if c.DefaultYes {
			c.answer(ConfirmYes)
		} else {
			c.answer(ConfirmNo)
		}
	case key.Matches(keyMsg, c.keyBindings.Cancel):
		c.answer(ConfirmCancelled)
	}
	return c, nil
}

func (c *ConfirmScreen) answer(result ConfirmResult) {
	c.result = result
	d, ok := c.delegate.Get()
	if !ok {
		flow.SoftFailure("confirm.answer", "screen", c.Title, "reason", "delegate released")
		return
	}
	d.ConfirmAnswered(result)
}

// View implements tea.Model
func (c *ConfirmScreen) View() string {
	out := ""
	if c.Title != "" {
		out = styles.StyleHeading.Render(c.Title) + "\n"
	}
	for _, line := range c.Details {
		out += styles.StyleNormal.Render(line) + "\n"
	}
	if len(c.Details) > 0 {
		out += "\n"
	}

	hint := "(y/N)"
	if c.DefaultYes {
		hint = "(Y/n)"
	}
	return out + fmt.Sprintf("%s %s %s", styles.StyleSelected.Render("?"), c.Question, styles.StyleSubtle.Render(hint))
}
