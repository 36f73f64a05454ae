// Package components provides the screens and containers journeys present.
package components

import (
	"fmt"

	"github.com/andri/pocketpay/pkg/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Sizable is implemented by models that track terminal dimensions.
type Sizable interface {
	SetSize(width, height int)
}

// ModalConfig holds configuration for a modal frame.
type ModalConfig struct {
	Title        string
	Width        int
	Height       int
	MinWidth     int
	MaxWidth     int
	DisableFrame bool
}

// Modal renders a centered box around an embedded model.
type Modal struct {
	config ModalConfig
	model  tea.Model
	width  int
	height int
}

// NewModal creates a modal frame hosting model.
func NewModal(config ModalConfig, model tea.Model) *Modal {
	return &Modal{config: config, model: model}
}

// Init implements tea.Model.
func (m *Modal) Init() tea.Cmd {
	if m.model == nil {
		return nil
	}
	return m.model.Init()
}

// Model returns the hosted model.
func (m *Modal) Model() tea.Model {
	return m.model
}

// SetSize sets the terminal dimensions.
func (m *Modal) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.syncContentSize()
}

// Update forwards messages to the embedded model. Closing is the hosted
// model's business; the frame itself never closes.
func (m *Modal) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.SetSize(size.Width, size.Height)
		return m, nil
	}
	if m.model == nil {
		return m, nil
	}

	updated, cmd := m.model.Update(msg)
	m.model = updated
	return m, cmd
}

// View renders the modal.
func (m *Modal) View() string {
	content := ""
	if m.model != nil {
		content = m.model.View()
	}
	if m.config.Title != "" {
		content = fmt.Sprintf("%s\n%s", styles.StyleHeading.Render(m.config.Title), content)
	}

	box := m.renderFrame(m.modalWidth(), content)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Modal) modalWidth() int {
	width := m.config.Width
	if width == 0 {
		width = min(m.width-4, 72)
	}
	if m.config.MaxWidth > 0 {
		width = min(width, m.config.MaxWidth)
	}
	if m.config.MinWidth > 0 {
		width = max(width, m.config.MinWidth)
	}
	return max(width, 24)
}

func (m *Modal) syncContentSize() {
	sizable, ok := m.model.(Sizable)
	if !ok || m.width == 0 || m.height == 0 {
		return
	}
	frameW, frameH := m.frameSize()
	height := m.config.Height
	if height == 0 {
		height = m.height - 4
	}
	sizable.SetSize(max(m.modalWidth()-frameW, 1), max(height-frameH, 1))
}

func (m *Modal) frameSize() (int, int) {
	if m.config.DisableFrame {
		return 0, 0
	}
	return styles.StyleBox.GetFrameSize()
}

func (m *Modal) renderFrame(width int, content string) string {
	if m.config.DisableFrame {
		return lipgloss.NewStyle().Width(width).Render(content)
	}
	return styles.StyleBox.Width(width).Render(content)
}
