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

// MenuItem is one selectable row.
type MenuItem struct {
	Label  string
	Detail string
}

// MenuDelegate reacts to menu choices.
type MenuDelegate interface {
	MenuSelected(index int)
	MenuDismissed()
}

// Menu is a vertical option list.
type Menu struct {
	title       string
	items       []MenuItem
	cursor      int
	delegate    *flow.DelegateRef[MenuDelegate]
	keyBindings keys.MenuBindings
	width       int
}

// NewMenu creates a menu reporting to delegate.
func NewMenu(title string, items []MenuItem, delegate *flow.DelegateRef[MenuDelegate]) *Menu {
	return &Menu{
		title:       title,
		items:       items,
		delegate:    delegate,
		keyBindings: keys.DefaultMenuBindings(),
	}
}

// Title returns the menu title.
func (m *Menu) Title() string {
	return m.title
}

// Cursor returns the focused row.
func (m *Menu) Cursor() int {
	return m.cursor
}

// SetSize implements Sizable.
func (m *Menu) SetSize(width, _ int) {
	m.width = width
}

// Init implements tea.Model
func (m *Menu) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keyBindings.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keyBindings.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keyBindings.Select):
		if len(m.items) == 0 {
			return m, nil
		}
		if d, ok := m.delegateOrLog("menu.select"); ok {
			d.MenuSelected(m.cursor)
		}
	case key.Matches(keyMsg, m.keyBindings.Back):
		if d, ok := m.delegateOrLog("menu.back"); ok {
			d.MenuDismissed()
		}
	}
	return m, nil
}

func (m *Menu) delegateOrLog(op string) (MenuDelegate, bool) {
	d, ok := m.delegate.Get()
	if !ok {
		flow.SoftFailure(op, "screen", m.title, "reason", "delegate released")
	}
	return d, ok
}

// View implements tea.Model
func (m *Menu) View() string {
	var b strings.Builder
	b.WriteString(styles.StyleHeading.Render(m.title))
	b.WriteString("\n")

	labelWidth := 0
	for _, item := range m.items {
		labelWidth = max(labelWidth, format.DisplayWidth(item.Label))
	}

	for i, item := range m.items {
		line := format.PadRight(item.Label, labelWidth)
		if item.Detail != "" {
			line += "  " + item.Detail
		}
		if m.width > 4 {
			line = format.Truncate(line, m.width-4)
		}
		if i == m.cursor {
			b.WriteString(styles.StyleSelected.Render(styles.IconCursor + " " + line))
		} else {
			b.WriteString("  " + styles.StyleNormal.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
