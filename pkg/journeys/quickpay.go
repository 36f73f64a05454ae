package journeys

import (
	"context"
	"fmt"

	"github.com/andri/pocketpay/internal/logger"
	"github.com/andri/pocketpay/pkg/flow"
	"github.com/andri/pocketpay/pkg/payments"
	"github.com/andri/pocketpay/pkg/tui/components"
)

// QuickpayResult is the outcome of a QuickpayFlow: QuickpaySent,
// QuickpayDismissed or QuickpayAborted.
type QuickpayResult interface {
	isQuickpayResult()
}

// QuickpaySent carries the receipt of a completed payment.
type QuickpaySent struct {
	Receipt payments.Receipt
}

// QuickpayDismissed means nothing was sent.
type QuickpayDismissed struct{}

// QuickpayAborted means the service refused or failed.
type QuickpayAborted struct {
	Err error
}

func (QuickpaySent) isQuickpayResult()      {}
func (QuickpayDismissed) isQuickpayResult() {}
func (QuickpayAborted) isQuickpayResult()   {}

// QuickpayOptions preselect parts of the journey.
type QuickpayOptions struct {
	// To skips the contact picker
	To string
	// LinkID pays an existing payment link; it fixes recipient and amount
	LinkID string
}

// QuickpayFlow sends money to a contact. Without options it starts from
// the contact picker, and backing out of the amount returns to it.
type QuickpayFlow struct {
	flow.Base[QuickpayResult]
	deps      Deps
	nav       flow.Navigator
	opts      QuickpayOptions
	amount    flow.Slot[AmountResult]
	confirm   flow.Slot[ConfirmOutcome]
	presented []*flow.Dismisser
	loading   *flow.Dismisser
	contacts  []payments.Contact
	menuRef   *flow.DelegateRef[components.MenuDelegate]
	card      *components.Card
	cardRef   *flow.DelegateRef[components.CardDelegate]
	to        string
	value     payments.Money
	linkReady bool
	outcome   QuickpayResult
	calls     calls
}

// NewQuickpayFlow creates a quickpay journey presenting on nav.
func NewQuickpayFlow(nav flow.Navigator, deps Deps, opts QuickpayOptions) *QuickpayFlow {
	return &QuickpayFlow{
		Base: flow.NewBase[QuickpayResult]("quickpay"),
		deps: deps,
		nav:  nav,
		opts: opts,
	}
}

// Start implements flow.Flow.
func (f *QuickpayFlow) Start() {
	if !flow.Available(f.nav) {
		flow.SoftFailure("quickpay.start", "flow", f.Name(), "reason", "navigator unavailable")
		return
	}
	if !f.Handler().Started() {
		return
	}

	switch {
	case f.opts.LinkID != "":
		f.resolveLink()
	case f.opts.To != "":
		f.to = f.opts.To
		f.askAmount()
	default:
		f.loadContacts()
	}
}

func (f *QuickpayFlow) showCard(title string) {
	f.cardRef.Release()
	f.card, f.cardRef = busyCard(title, f)
}

func (f *QuickpayFlow) loadContacts() {
	f.showCard("Loading contacts")
	f.loading = f.nav.Push(f.card)

	call(f.deps, &f.calls, "Contacts", func(ctx context.Context) ([]payments.Contact, error) {
		return f.deps.Service.Contacts(ctx)
	}, f.contactsLoaded)
}

func (f *QuickpayFlow) contactsLoaded(contacts []payments.Contact, err error) {
	if f.Handler().State() == flow.StateFinished {
		logger.Debug("late service result ignored", "flow", f.Name())
		return
	}
	if err != nil {
		f.outcome = QuickpayAborted{Err: err}
		showFailure(f.card, "Contacts unavailable", err)
		return
	}

	f.loading.Dismiss(false, nil)
	f.loading = nil
	f.contacts = contacts

	items := make([]components.MenuItem, 0, len(contacts))
	for _, c := range contacts {
		items = append(items, components.MenuItem{Label: "@" + c.Handle, Detail: c.Name})
	}
	f.menuRef = flow.NewDelegateRef[components.MenuDelegate](f)
	f.presented = append(f.presented, f.nav.Push(components.NewMenu("Pay someone", items, f.menuRef)))
}

// MenuSelected implements components.MenuDelegate.
func (f *QuickpayFlow) MenuSelected(index int) {
	if f.amount.Active() || f.confirm.Active() || index < 0 || index >= len(f.contacts) {
		return
	}
	f.to = f.contacts[index].Handle
	f.askAmount()
}

// MenuDismissed implements components.MenuDelegate.
func (f *QuickpayFlow) MenuDismissed() {
	f.finish(QuickpayDismissed{}, nil)
}

func (f *QuickpayFlow) askAmount() {
	f.amount.Run(NewAmountFlow(f.nav, "Pay @"+f.to, f.deps.currency()), f.amountDone)
}

func (f *QuickpayFlow) amountDone(r AmountResult, d *flow.Dismisser) {
	entered, ok := r.(AmountEntered)
	switch {
	case ok:
		f.presented = append(f.presented, d)
		f.value = entered.Amount
		f.askConfirm()
	case f.menuRef != nil:
		// back to the contact picker
		d.Dismiss(flow.Animated(), nil)
	default:
		f.finish(QuickpayDismissed{}, d)
	}
}

func (f *QuickpayFlow) askConfirm() {
	f.confirm.Run(NewConfirmFlow(f.nav, "Quickpay",
		fmt.Sprintf("Send %s to @%s?", f.value, f.to),
		"Payments are sent immediately and cannot be undone.",
	), f.confirmDone)
}

func (f *QuickpayFlow) confirmDone(o ConfirmOutcome, d *flow.Dismisser) {
	if o != Confirmed {
		f.finish(QuickpayDismissed{}, d)
		return
	}
	d.Dismiss(flow.Animated(), nil)
	f.send()
}

func (f *QuickpayFlow) send() {
	f.showCard("Sending")
	f.presented = append(f.presented, f.nav.Push(f.card))

	to, amount := f.to, f.value
	call(f.deps, &f.calls, "Quickpay", func(ctx context.Context) (payments.Receipt, error) {
		return f.deps.Service.Quickpay(ctx, to, amount)
	}, f.sent)
}

func (f *QuickpayFlow) sent(r payments.Receipt, err error) {
	if f.Handler().State() == flow.StateFinished {
		logger.Debug("late service result ignored", "flow", f.Name())
		return
	}
	if err != nil {
		f.outcome = QuickpayAborted{Err: err}
		showFailure(f.card, "Payment failed", err)
		return
	}
	f.outcome = QuickpaySent{Receipt: r}
	showSuccess(f.card, "Sent", []components.CardField{
		{Label: "To", Value: "@" + r.To},
		{Label: "Amount", Value: r.Amount.String()},
		{Label: "Reference", Value: shortRef(r.ID)},
	}, "Done")
}

func (f *QuickpayFlow) resolveLink() {
	f.showCard("Opening link")
	f.presented = append(f.presented, f.nav.Push(f.card))

	slug := f.opts.LinkID
	call(f.deps, &f.calls, "PaymentLink", func(ctx context.Context) (payments.PaymentLink, error) {
		return f.deps.Service.PaymentLink(ctx, slug)
	}, f.linkResolved)
}

func (f *QuickpayFlow) linkResolved(link payments.PaymentLink, err error) {
	if f.Handler().State() == flow.StateFinished {
		logger.Debug("late service result ignored", "flow", f.Name())
		return
	}
	if err != nil {
		f.outcome = QuickpayAborted{Err: err}
		showFailure(f.card, "Link unavailable", err)
		return
	}
	f.to = link.Owner
	f.value = link.Amount
	f.linkReady = true

	f.card.SetBusy(false)
	f.card.SetTitle("Payment request")
	f.card.SetFields([]components.CardField{
		{Label: "From", Value: "@" + link.Owner},
		{Label: "Amount", Value: link.Amount.String()},
		{Label: "Link", Value: link.Slug},
	})
	f.card.SetPrimary("Pay")
}

// CardPrimary implements components.CardDelegate.
func (f *QuickpayFlow) CardPrimary() {
	switch {
	case f.outcome != nil:
		f.finish(f.outcome, nil)
	case f.linkReady && !f.confirm.Active():
		f.askConfirm()
	}
}

// CardClosed implements components.CardDelegate.
func (f *QuickpayFlow) CardClosed() {
	switch {
	case f.outcome != nil:
		f.finish(f.outcome, nil)
	case f.linkReady:
		f.finish(QuickpayDismissed{}, nil)
	}
}

// Terminate implements flow.Flow. Once the service has answered, the flow
// keeps that outcome; a payment that went through is still reported as sent.
func (f *QuickpayFlow) Terminate() {
	f.amount.Terminate()
	f.confirm.Terminate()
	if f.outcome != nil {
		f.finish(f.outcome, nil)
		return
	}
	f.finish(QuickpayDismissed{}, nil)
}

func (f *QuickpayFlow) finish(r QuickpayResult, last *flow.Dismisser) {
	if f.Handler().State() == flow.StateFinished {
		return
	}
	f.calls.close()
	f.menuRef.Release()
	f.cardRef.Release()
	d := flow.Compose(append(f.presented, f.loading, last)...)
	f.presented = nil
	f.loading = nil
	f.Handler().Finished(r, d)
}

func shortRef(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
