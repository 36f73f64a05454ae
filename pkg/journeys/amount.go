package journeys

import (
	"github.com/andri/pocketpay/pkg/flow"
	"github.com/andri/pocketpay/pkg/payments"
	"github.com/andri/pocketpay/pkg/tui/components"
	"golang.org/x/text/currency"
)

// AmountResult is the outcome of an AmountFlow: AmountEntered or
// AmountCancelled.
type AmountResult interface {
	isAmountResult()
}

// AmountEntered carries a valid, positive amount.
type AmountEntered struct {
	Amount payments.Money
}

// AmountCancelled means the user backed out.
type AmountCancelled struct{}

func (AmountEntered) isAmountResult()   {}
func (AmountCancelled) isAmountResult() {}

// AmountFlow asks for an amount on a pushed screen. Invalid input keeps the
// screen up with an error; the flow only finishes on a valid amount or on
// cancel.
type AmountFlow struct {
	flow.Base[AmountResult]
	nav       flow.Navigator
	title     string
	currency  currency.Unit
	screen    *components.AmountInput
	delegate  *flow.DelegateRef[components.AmountDelegate]
	presented *flow.Dismisser
}

// NewAmountFlow creates an amount step presenting on nav.
func NewAmountFlow(nav flow.Navigator, title string, cur currency.Unit) *AmountFlow {
	return &AmountFlow{
		Base:     flow.NewBase[AmountResult]("amount"),
		nav:      nav,
		title:    title,
		currency: cur,
	}
}

// Start implements flow.Flow.
func (f *AmountFlow) Start() {
	if !flow.Available(f.nav) {
		flow.SoftFailure("amount.start", "flow", f.Name(), "reason", "navigator unavailable")
		return
	}
	if !f.Handler().Started() {
		return
	}

	f.delegate = flow.NewDelegateRef[components.AmountDelegate](f)
	f.screen = components.NewAmountInput(f.title, f.currency.String(), f.delegate)
	f.presented = f.nav.Push(f.screen)
}

// Terminate implements flow.Flow.
func (f *AmountFlow) Terminate() {
	f.finish(AmountCancelled{})
}

// AmountSubmitted implements components.AmountDelegate.
func (f *AmountFlow) AmountSubmitted(raw string) {
	amount, err := payments.ParseAmount(raw, f.currency)
	if err != nil {
		f.screen.SetError(err.Error())
		return
	}
	f.finish(AmountEntered{Amount: amount})
}

// AmountCancelled implements components.AmountDelegate.
func (f *AmountFlow) AmountCancelled() {
	f.finish(AmountCancelled{})
}

func (f *AmountFlow) finish(r AmountResult) {
	if f.Handler().State() == flow.StateFinished {
		return
	}
	f.delegate.Release()
	d := f.presented
	f.presented = nil
	f.Handler().Finished(r, d)
}
