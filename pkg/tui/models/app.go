// Package models provides Bubble Tea models for the TUI interface.
package models

import (
	"context"
	"fmt"
	"time"

	"github.com/andri/pocketpay/internal/logger"
	"github.com/andri/pocketpay/pkg/flow"
	"github.com/andri/pocketpay/pkg/journeys"
	"github.com/andri/pocketpay/pkg/payments"
	"github.com/andri/pocketpay/pkg/tui/components"
	"github.com/andri/pocketpay/pkg/tui/keys"
	"github.com/andri/pocketpay/pkg/tui/nav"
	"github.com/andri/pocketpay/pkg/tui/styles"
	"github.com/andri/pocketpay/pkg/tui/terminal"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/currency"
)

// homeItem is one entry of the home menu.
type homeItem struct {
	label  string
	detail string
	kind   journeys.Kind
	quit   bool
}

var homeItems = []homeItem{
	{label: "Account details", detail: "Receive money", kind: journeys.KindReceive},
	{label: "Request money", detail: "Share a payment link", kind: journeys.KindPaymentLink},
	{label: "Pay someone", detail: "Quickpay a contact", kind: journeys.KindQuickpay},
	{label: "Quit", quit: true},
}

// AppConfig holds configuration for the app model
type AppConfig struct {
	// Source is the journey to open at startup; nil or home shows the menu
	Source payments.Source

	// Exit decides what happens when the startup journey finishes
	Exit ExitBehavior

	// Service is the payments backend
	Service payments.Service

	// Currency of amounts entered by the user
	Currency currency.Unit

	// Modal frames journeys presented over the home screen
	Modal components.ModalConfig

	// CallTimeout bounds each service call
	CallTimeout time.Duration

	// Context for cancellation
	Context context.Context
}

// AppModel is the root Bubble Tea model. It owns the root navigation stack
// with the home menu at the bottom and launches journeys over it.
type AppModel struct {
	config     AppConfig
	root       *nav.Stack
	dispatcher *nav.Dispatcher
	launcher   *journeys.Launcher
	homeRef    *flow.DelegateRef[components.MenuDelegate]

	global keys.GlobalBindings
	help   help.Model

	width  int
	height int

	startup     flow.Runnable
	last        *journeys.Summary
	showHelp    bool
	quitting    bool
	initialized bool
}

// NewAppModel creates a new app model with the given configuration
func NewAppModel(cfg AppConfig) *AppModel {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}

	m := &AppModel{
		config:     cfg,
		dispatcher: nav.NewDispatcher(),
		global:     keys.DefaultGlobalBindings(),
		help:       help.New(),
	}
	m.root = nav.NewStack(nav.Config{Name: "root", Dispatcher: m.dispatcher, Modal: cfg.Modal})
	m.launcher = journeys.NewLauncher(journeys.LauncherConfig{
		Deps: journeys.Deps{
			Service:     cfg.Service,
			Dispatcher:  m.dispatcher,
			Currency:    cfg.Currency,
			Context:     cfg.Context,
			CallTimeout: cfg.CallTimeout,
		},
		Host:      m.root,
		Presenter: flow.NewPresenter(),
		Report:    m.journeyFinished,
	})

	items := make([]components.MenuItem, 0, len(homeItems))
	for _, it := range homeItems {
		items = append(items, components.MenuItem{Label: it.label, Detail: it.detail})
	}
	m.homeRef = flow.NewDelegateRef[components.MenuDelegate](m)
	m.root.Push(components.NewMenu("PocketPay", items, m.homeRef))
	return m
}

// Init implements tea.Model
func (m *AppModel) Init() tea.Cmd {
	if !m.initialized {
		m.initialized = true
		if src := m.config.Source; src != nil {
			if _, home := src.(payments.SourceHome); !home {
				m.startup = m.launcher.Launch(src)
			}
		}
	}
	return m.flush()
}

// Update implements tea.Model
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dispatcher.Deliver(msg) {
		return m, m.flush()
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.root.SetSize(msg.Width, max(msg.Height-statusHeight, 1))
		return m, m.flush()

	case tea.KeyMsg:
		if handled := m.handleGlobalKeys(msg); handled {
			return m, m.flush()
		}
	}

	_, cmd := m.root.Update(msg)
	return m, tea.Batch(cmd, m.flush())
}

// flush returns the commands produced while handling a message.
func (m *AppModel) flush() tea.Cmd {
	if m.quitting {
		return tea.Quit
	}
	return m.dispatcher.Drain()
}

// handleGlobalKeys processes global keyboard shortcuts
func (m *AppModel) handleGlobalKeys(msg tea.KeyMsg) bool {
	if m.showHelp {
		// any key closes help
		m.showHelp = false
		return true
	}

	switch {
	case key.Matches(msg, m.global.Interrupt):
		if current := m.launcher.Presenter().Current(); current != nil {
			logger.Info("interrupting journey", "journey", current.Name())
			m.launcher.Presenter().Terminate()
			return true
		}
		m.quitting = true
		return true

	case key.Matches(msg, m.global.Help):
		if m.launcher.Presenter().Active() {
			// journeys may take '?' as input
			return false
		}
		m.showHelp = true
		return true
	}
	return false
}

// MenuSelected implements components.MenuDelegate for the home menu.
func (m *AppModel) MenuSelected(index int) {
	if index < 0 || index >= len(homeItems) {
		return
	}
	item := homeItems[index]
	if item.quit {
		m.quitting = true
		return
	}
	m.launcher.Start(journeys.Request{Kind: item.kind})
}

// MenuDismissed implements components.MenuDelegate for the home menu.
func (m *AppModel) MenuDismissed() {
	m.quitting = true
}

func (m *AppModel) journeyFinished(s journeys.Summary) {
	m.last = &s
	if m.startup != nil && m.startup.Lifecycle().State() == flow.StateFinished {
		m.startup = nil
		if m.config.Exit == ExitQuit {
			m.quitting = true
		}
	}
}

const statusHeight = 2

// View implements tea.Model
func (m *AppModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.root.View() + "\n" + m.renderStatus()
}

func (m *AppModel) renderStatus() string {
	if m.width > 0 && m.height > 0 {
		if warning := terminal.SizeWarning(m.width, m.height); warning != "" {
			return styles.StyleWarning.Render(styles.IconWarning + " " + warning)
		}
	}
	if m.last == nil {
		return styles.StyleSubtle.Render(m.help.ShortHelpView(m.global.ShortHelp()))
	}
	if m.last.Failed {
		return styles.StyleError.Render(styles.IconCross + " " + m.last.Text)
	}
	return styles.StyleSuccess.Render(styles.IconCheckmark + " " + m.last.Text)
}

// renderHelp displays the help overlay with keyboard shortcuts
func (m *AppModel) renderHelp() string {
	groups := append(keys.DefaultMenuBindings().FullHelp(), m.global.FullHelp()...)
	content := fmt.Sprintf("%s\n\n%s\n\n%s",
		styles.StyleHeading.Render("Keyboard Shortcuts"),
		m.help.FullHelpView(groups),
		styles.StyleSubtle.Render("Press any key to close this help."))

	width := 60
	if m.width > 0 {
		width = min(width, m.width-4)
	}
	return styles.StyleBox.Width(width).Render(content)
}

// Root returns the root navigation stack
func (m *AppModel) Root() *nav.Stack {
	return m.root
}

// Launcher returns the journey launcher
func (m *AppModel) Launcher() *journeys.Launcher {
	return m.launcher
}

// LastSummary returns the summary of the most recent journey, or nil
func (m *AppModel) LastSummary() *journeys.Summary {
	return m.last
}

// GetTerminalSize returns the current terminal dimensions
func (m *AppModel) GetTerminalSize() (width, height int) {
	return m.width, m.height
}

// IsInitialized returns whether Init has run
func (m *AppModel) IsInitialized() bool {
	return m.initialized
}
