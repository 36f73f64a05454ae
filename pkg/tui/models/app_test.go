package models

import (
	"testing"

	"github.com/andri/pocketpay/pkg/payments"
	"github.com/andri/pocketpay/pkg/tui/components"
	"github.com/andri/pocketpay/pkg/tui/nav"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/currency"
)

func newTestApp(src payments.Source, exit ExitBehavior) (*AppModel, *payments.FakeService) {
	svc := payments.NewFakeService(payments.FakeConfig{Currency: currency.GBP})
	return NewAppModel(AppConfig{
		Source:   src,
		Exit:     exit,
		Service:  svc,
		Currency: currency.GBP,
	}), svc
}

func TestExitBehaviorString(t *testing.T) {
	tests := []struct {
		behavior ExitBehavior
		expected string
	}{
		{ExitStay, "stay"},
		{ExitQuit, "quit"},
		{ExitBehavior(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.behavior.String(); got != tt.expected {
				t.Errorf("ExitBehavior.String() = %q, want %q", got, tt.expected)
			}
			if tt.behavior != ExitBehavior(99) && ParseExitBehavior(tt.expected) != tt.behavior {
				t.Errorf("ParseExitBehavior(%q) = %v, want %v", tt.expected, ParseExitBehavior(tt.expected), tt.behavior)
			}
		})
	}
}

func TestNewAppModel(t *testing.T) {
	model, _ := newTestApp(nil, ExitStay)

	if model == nil {
		t.Fatal("NewAppModel returned nil")
	}
	if model.Root().Depth() != 1 {
		t.Errorf("root Depth() = %d, want 1 (home menu)", model.Root().Depth())
	}
	if _, ok := model.Root().Top().(*components.Menu); !ok {
		t.Errorf("root Top() = %T, want home menu", model.Root().Top())
	}
	if model.IsInitialized() {
		t.Error("model should not be initialized immediately")
	}
}

func TestAppModel_Update_WindowSize(t *testing.T) {
	model, _ := newTestApp(nil, ExitStay)

	updatedModel, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m, ok := updatedModel.(*AppModel)
	if !ok {
		t.Fatal("Update should return *AppModel")
	}

	width, height := m.GetTerminalSize()
	if width != 120 || height != 40 {
		t.Errorf("terminal size = %dx%d, want 120x40", width, height)
	}
}

func TestAppModel_HomeLaunchesJourney(t *testing.T) {
	model, _ := newTestApp(nil, ExitStay)
	pump(model, model.Init())

	// "Request money"
	model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if !model.Launcher().Presenter().Active() {
		t.Fatal("selecting a journey should start it")
	}
	layers := model.Root().Layers()
	if len(layers) != 2 || layers[1].Kind != nav.KindModal {
		t.Fatalf("root layers = %+v, want home plus a modal", layers)
	}

	// ctrl+c ends the journey, not the app
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if isQuit(cmd) {
		t.Error("ctrl+c during a journey should not quit")
	}
	if model.Launcher().Presenter().Active() {
		t.Error("journey should be terminated")
	}
	if model.Root().Depth() != 1 {
		t.Errorf("root Depth() = %d, want 1", model.Root().Depth())
	}
	if s := model.LastSummary(); s == nil || s.Text != "Payment link cancelled" {
		t.Errorf("LastSummary() = %+v, want cancelled link", s)
	}
	if !contains(model.View(), "Payment link cancelled") {
		t.Errorf("View() should show the last summary")
	}
}

func TestAppModel_CtrlCAtHomeQuits(t *testing.T) {
	model, _ := newTestApp(nil, ExitStay)
	model.Init()

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c at home should quit")
	}
	if model.View() != "" {
		t.Error("View() should be empty when quitting")
	}
}

func TestAppModel_EscAtHomeQuits(t *testing.T) {
	model, _ := newTestApp(nil, ExitStay)
	model.Init()

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !isQuit(cmd) {
		t.Error("esc on the home menu should quit")
	}
}

func TestAppModel_StartupJourneyQuits(t *testing.T) {
	model, svc := newTestApp(payments.SourceContact{Handle: "sam"}, ExitQuit)
	if pump(model, model.Init()) {
		t.Fatal("app quit before the journey ran")
	}
	if !model.Launcher().Presenter().Active() {
		t.Fatal("startup source should launch a journey")
	}

	model.Update(keyRunes("3"))
	model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd := model.Update(keyRunes("y"))
	if pump(model, cmd) {
		t.Fatal("app quit before the payment was acknowledged")
	}

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !isQuit(cmd) {
		t.Error("finishing the startup journey should quit with ExitQuit")
	}
	if got := len(svc.Receipts()); got != 1 {
		t.Errorf("receipts = %d, want 1", got)
	}
	if s := model.LastSummary(); s == nil || s.Failed {
		t.Errorf("LastSummary() = %+v, want success", s)
	}
}

func TestAppModel_StartupJourneyStays(t *testing.T) {
	model, _ := newTestApp(payments.SourceDeepLink{LinkID: "coffee-fund"}, ExitStay)
	pump(model, model.Init())

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if isQuit(cmd) {
		t.Error("ExitStay should return to home")
	}
	if model.Root().Depth() != 1 {
		t.Errorf("root Depth() = %d, want 1", model.Root().Depth())
	}
}

func TestAppModel_Help(t *testing.T) {
	model, _ := newTestApp(nil, ExitStay)
	model.Init()

	model.Update(keyRunes("?"))
	if !contains(model.View(), "Keyboard Shortcuts") {
		t.Errorf("View() should show help")
	}

	// any key closes help without reaching the menu
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if isQuit(cmd) {
		t.Error("closing help should not quit")
	}
	if contains(model.View(), "Keyboard Shortcuts") {
		t.Errorf("help should be closed")
	}
}

func TestAppModel_SizeWarning(t *testing.T) {
	model, _ := newTestApp(nil, ExitStay)
	model.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	if !contains(model.View(), "too") {
		t.Errorf("View() = %q, want a size warning", model.View())
	}
}
