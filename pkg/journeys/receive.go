package journeys

import (
	"context"

	"github.com/andri/pocketpay/internal/logger"
	"github.com/andri/pocketpay/pkg/flow"
	"github.com/andri/pocketpay/pkg/payments"
	"github.com/andri/pocketpay/pkg/tui/components"
)

// ReceiveDone is the only outcome of a ReceiveFlow. It lists the links
// created during the visit; Err is set when the account could not load.
type ReceiveDone struct {
	Links []payments.PaymentLink
	Err   error
}

// ReceiveFlow shows the receiving account details and can run a
// PaymentLinkFlow to request money.
type ReceiveFlow struct {
	flow.Base[ReceiveDone]
	deps      Deps
	nav       flow.Navigator
	link      flow.Slot[LinkResult]
	presented []*flow.Dismisser
	card      *components.Card
	cardRef   *flow.DelegateRef[components.CardDelegate]
	loaded    bool
	links     []payments.PaymentLink
	err       error
	calls     calls
}

// NewReceiveFlow creates a receive journey presenting on nav.
func NewReceiveFlow(nav flow.Navigator, deps Deps) *ReceiveFlow {
	return &ReceiveFlow{
		Base: flow.NewBase[ReceiveDone]("receive"),
		deps: deps,
		nav:  nav,
	}
}

// Start implements flow.Flow.
func (f *ReceiveFlow) Start() {
	if !flow.Available(f.nav) {
		flow.SoftFailure("receive.start", "flow", f.Name(), "reason", "navigator unavailable")
		return
	}
	if !f.Handler().Started() {
		return
	}

	f.card, f.cardRef = busyCard("Account details", f)
	f.presented = append(f.presented, f.nav.Push(f.card))

	call(f.deps, &f.calls, "AccountDetails", func(ctx context.Context) (payments.Account, error) {
		return f.deps.Service.AccountDetails(ctx)
	}, f.accountLoaded)
}

func (f *ReceiveFlow) accountLoaded(acct payments.Account, err error) {
	if f.Handler().State() == flow.StateFinished {
		logger.Debug("late service result ignored", "flow", f.Name())
		return
	}
	if err != nil {
		f.err = err
		showFailure(f.card, "Account unavailable", err)
		return
	}
	f.loaded = true
	f.card.SetBusy(false)
	f.card.SetFields([]components.CardField{
		{Label: "Name", Value: acct.Holder},
		{Label: "Handle", Value: "@" + acct.Handle},
		{Label: "Account", Value: acct.AccountNumber},
		{Label: "Sort code", Value: acct.SortCode},
		{Label: "Balance", Value: acct.Balance.String()},
	})
	f.card.SetPrimary("Request with a link")
}

// CardPrimary implements components.CardDelegate.
func (f *ReceiveFlow) CardPrimary() {
	if !f.loaded || f.link.Active() {
		return
	}
	f.link.Run(NewPaymentLinkFlow(f.nav, f.deps), f.linkDone)
}

func (f *ReceiveFlow) linkDone(r LinkResult, d *flow.Dismisser) {
	// The link journey's screens go; the account card stays.
	d.Dismiss(flow.Animated(), nil)

	switch r := r.(type) {
	case LinkCreated:
		f.links = append(f.links, r.Link)
		f.card.SetMessage("Shared " + r.Link.URL)
	case LinkAborted:
		f.card.SetMessage(payments.UserMessage(r.Err))
	default:
		f.card.SetMessage("")
	}
}

// CardClosed implements components.CardDelegate.
func (f *ReceiveFlow) CardClosed() {
	f.finish()
}

// Terminate implements flow.Flow.
func (f *ReceiveFlow) Terminate() {
	f.link.Terminate()
	f.finish()
}

func (f *ReceiveFlow) finish() {
	if f.Handler().State() == flow.StateFinished {
		return
	}
	f.calls.close()
	f.cardRef.Release()
	d := flow.Compose(f.presented...)
	f.presented = nil
	f.Handler().Finished(ReceiveDone{Links: f.links, Err: f.err}, d)
}
