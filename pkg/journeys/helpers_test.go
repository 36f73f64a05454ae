package journeys

import (
	"testing"

	"github.com/andri/pocketpay/pkg/flow"
	"github.com/andri/pocketpay/pkg/payments"
	"github.com/andri/pocketpay/pkg/tui/nav"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/currency"
)

type harness struct {
	t          *testing.T
	stack      *nav.Stack
	dispatcher *nav.Dispatcher
	service    *payments.FakeService
	deps       Deps
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	d := nav.NewDispatcher()
	svc := payments.NewFakeService(payments.FakeConfig{Currency: currency.GBP})
	return &harness{
		t:          t,
		stack:      nav.NewStack(nav.Config{Name: "test", Dispatcher: d}),
		dispatcher: d,
		service:    svc,
		deps:       Deps{Service: svc, Dispatcher: d, Currency: currency.GBP},
	}
}

// settle runs queued commands and delivers their results until the
// dispatcher is idle.
func (h *harness) settle() {
	h.t.Helper()
	for i := 0; h.dispatcher.Queued() > 0; i++ {
		if i > 20 {
			h.t.Fatal("dispatcher did not settle")
		}
		for _, msg := range runCmd(h.dispatcher.Drain()) {
			h.dispatcher.Deliver(msg)
		}
	}
}

func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func typeText(m tea.Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m tea.Model, k tea.KeyType) {
	m.Update(tea.KeyMsg{Type: k})
}

// topAs returns the surface on top of s as T.
func topAs[T any](t *testing.T, s *nav.Stack) T {
	t.Helper()
	top, ok := s.Top().(T)
	if !ok {
		var zero T
		t.Fatalf("Top() = %T, want %T", s.Top(), zero)
	}
	return top
}

type recorder[R any] struct {
	calls     int
	result    R
	dismisser *flow.Dismisser
}

func record[R any](f flow.Flow[R]) *recorder[R] {
	r := &recorder[R]{}
	f.OnFinish(func(result R, d *flow.Dismisser) {
		r.calls++
		r.result = result
		r.dismisser = d
	})
	return r
}

func unavailable(op string) error {
	return payments.NewServiceError(op, payments.CodeUnavailable, nil)
}

// withLenient turns lifecycle violations into log lines for one test.
func withLenient(t *testing.T) {
	t.Helper()
	prev := flow.Strict()
	flow.SetStrict(false)
	t.Cleanup(func() { flow.SetStrict(prev) })
}
