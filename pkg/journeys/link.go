package journeys

import (
	"context"
	"fmt"

	"github.com/andri/pocketpay/internal/logger"
	"github.com/andri/pocketpay/pkg/flow"
	"github.com/andri/pocketpay/pkg/payments"
	"github.com/andri/pocketpay/pkg/tui/components"
)

// LinkResult is the outcome of a PaymentLinkFlow: LinkCreated,
// LinkDismissed or LinkAborted.
type LinkResult interface {
	isLinkResult()
}

// LinkCreated carries the new link.
type LinkCreated struct {
	Link payments.PaymentLink
}

// LinkDismissed means the user left before a link was created.
type LinkDismissed struct{}

// LinkAborted means the service refused or failed.
type LinkAborted struct {
	Err error
}

func (LinkCreated) isLinkResult()   {}
func (LinkDismissed) isLinkResult() {}
func (LinkAborted) isLinkResult()   {}

// PaymentLinkFlow requests money with a shareable link: amount, then
// confirmation, then the service call, then a share card.
type PaymentLinkFlow struct {
	flow.Base[LinkResult]
	deps      Deps
	nav       flow.Navigator
	amount    flow.Slot[AmountResult]
	confirm   flow.Slot[ConfirmOutcome]
	presented []*flow.Dismisser
	requested payments.Money
	card      *components.Card
	cardRef   *flow.DelegateRef[components.CardDelegate]
	outcome   LinkResult
	calls     calls
}

// NewPaymentLinkFlow creates a payment-link journey presenting on nav.
func NewPaymentLinkFlow(nav flow.Navigator, deps Deps) *PaymentLinkFlow {
	return &PaymentLinkFlow{
		Base: flow.NewBase[LinkResult]("payment-link"),
		deps: deps,
		nav:  nav,
	}
}

// Start implements flow.Flow.
func (f *PaymentLinkFlow) Start() {
	if !flow.Available(f.nav) {
		flow.SoftFailure("payment-link.start", "flow", f.Name(), "reason", "navigator unavailable")
		return
	}
	if !f.Handler().Started() {
		return
	}
	f.amount.Run(NewAmountFlow(f.nav, "Request money", f.deps.currency()), f.amountDone)
}

func (f *PaymentLinkFlow) amountDone(r AmountResult, d *flow.Dismisser) {
	entered, ok := r.(AmountEntered)
	if !ok {
		f.finish(LinkDismissed{}, d)
		return
	}
	f.presented = append(f.presented, d)
	f.requested = entered.Amount

	f.confirm.Run(NewConfirmFlow(f.nav, "Payment link",
		"Create the link?",
		fmt.Sprintf("Amount  %s", entered.Amount),
		"Anyone with the link can pay it.",
	), f.confirmDone)
}

func (f *PaymentLinkFlow) confirmDone(o ConfirmOutcome, d *flow.Dismisser) {
	if o != Confirmed {
		f.finish(LinkDismissed{}, d)
		return
	}
	d.Dismiss(flow.Animated(), nil)
	f.create()
}

func (f *PaymentLinkFlow) create() {
	f.card, f.cardRef = busyCard("Creating link", f)
	f.presented = append(f.presented, f.nav.Push(f.card))

	amount := f.requested
	call(f.deps, &f.calls, "CreatePaymentLink", func(ctx context.Context) (payments.PaymentLink, error) {
		return f.deps.Service.CreatePaymentLink(ctx, amount)
	}, f.created)
}

func (f *PaymentLinkFlow) created(link payments.PaymentLink, err error) {
	if f.Handler().State() == flow.StateFinished {
		logger.Debug("late service result ignored", "flow", f.Name())
		return
	}
	if err != nil {
		f.outcome = LinkAborted{Err: err}
		showFailure(f.card, "Link not created", err)
		return
	}
	f.outcome = LinkCreated{Link: link}
	showSuccess(f.card, "Link ready", []components.CardField{
		{Label: "Amount", Value: link.Amount.String()},
		{Label: "Link", Value: link.URL},
	}, "Done")
}

// CardPrimary implements components.CardDelegate.
func (f *PaymentLinkFlow) CardPrimary() {
	f.CardClosed()
}

// CardClosed implements components.CardDelegate.
func (f *PaymentLinkFlow) CardClosed() {
	if f.outcome == nil {
		return
	}
	f.finish(f.outcome, nil)
}

// Terminate implements flow.Flow. An active step is terminated and its
// continuation finishes this flow; otherwise the flow finishes directly,
// keeping the service's outcome when there is one.
func (f *PaymentLinkFlow) Terminate() {
	f.amount.Terminate()
	f.confirm.Terminate()
	if f.outcome != nil {
		f.finish(f.outcome, nil)
		return
	}
	f.finish(LinkDismissed{}, nil)
}

func (f *PaymentLinkFlow) finish(r LinkResult, last *flow.Dismisser) {
	if f.Handler().State() == flow.StateFinished {
		return
	}
	f.calls.close()
	f.cardRef.Release()
	d := flow.Compose(append(f.presented, last)...)
	f.presented = nil
	f.Handler().Finished(r, d)
}
