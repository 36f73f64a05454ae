package journeys

import (
	"github.com/andri/pocketpay/pkg/flow"
	"github.com/andri/pocketpay/pkg/tui/components"
)

// ConfirmOutcome is the answer to a ConfirmFlow.
type ConfirmOutcome int

const (
	// Confirmed means the user said yes
	Confirmed ConfirmOutcome = iota
	// Declined covers no, cancel and termination
	Declined
)

// String returns the string representation of the outcome
func (o ConfirmOutcome) String() string {
	if o == Confirmed {
		return "confirmed"
	}
	return "declined"
}

// ConfirmFlow asks a yes/no question on a bottom sheet.
type ConfirmFlow struct {
	flow.Base[ConfirmOutcome]
	nav       flow.Navigator
	title     string
	question  string
	details   []string
	delegate  *flow.DelegateRef[components.ConfirmDelegate]
	presented *flow.Dismisser
}

// NewConfirmFlow creates a confirmation step presenting on nav.
func NewConfirmFlow(nav flow.Navigator, title, question string, details ...string) *ConfirmFlow {
	return &ConfirmFlow{
		Base:     flow.NewBase[ConfirmOutcome]("confirm"),
		nav:      nav,
		title:    title,
		question: question,
		details:  details,
	}
}

// Start implements flow.Flow.
func (f *ConfirmFlow) Start() {
	if !flow.Available(f.nav) {
		flow.SoftFailure("confirm.start", "flow", f.Name(), "reason", "navigator unavailable")
		return
	}
	if !f.Handler().Started() {
		return
	}

	f.delegate = flow.NewDelegateRef[components.ConfirmDelegate](f)
	screen := components.NewConfirmScreen(f.title, f.question, f.delegate).
		WithDetails(f.details...).
		WithDefaultYes()
	f.presented = f.nav.Present(screen)
}

// Terminate implements flow.Flow.
func (f *ConfirmFlow) Terminate() {
	f.finish(Declined)
}

// ConfirmAnswered implements components.ConfirmDelegate.
func (f *ConfirmFlow) ConfirmAnswered(result components.ConfirmResult) {
	if result == components.ConfirmYes {
		f.finish(Confirmed)
		return
	}
	f.finish(Declined)
}

func (f *ConfirmFlow) finish(o ConfirmOutcome) {
	if f.Handler().State() == flow.StateFinished {
		return
	}
	f.delegate.Release()
	d := f.presented
	f.presented = nil
	f.Handler().Finished(o, d)
}
