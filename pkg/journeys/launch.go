package journeys

import (
	"fmt"

	"github.com/andri/pocketpay/internal/logger"
	"github.com/andri/pocketpay/pkg/flow"
	"github.com/andri/pocketpay/pkg/payments"
	"github.com/andri/pocketpay/pkg/tui/nav"
)

// Kind names a top-level journey.
type Kind int

const (
	// KindReceive shows the receiving account
	KindReceive Kind = iota
	// KindPaymentLink requests money with a link
	KindPaymentLink
	// KindQuickpay sends money to a contact
	KindQuickpay
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindReceive:
		return "receive"
	case KindPaymentLink:
		return "payment-link"
	case KindQuickpay:
		return "quickpay"
	default:
		return "unknown"
	}
}

// Request describes a journey to launch.
type Request struct {
	Kind     Kind
	Quickpay QuickpayOptions
}

// RequestFor maps a launch source to its journey: deep links and contact
// sources go to quickpay, home opens the receiving account.
func RequestFor(src payments.Source) Request {
	switch s := src.(type) {
	case payments.SourceDeepLink:
		return Request{Kind: KindQuickpay, Quickpay: QuickpayOptions{LinkID: s.LinkID}}
	case payments.SourceContact:
		return Request{Kind: KindQuickpay, Quickpay: QuickpayOptions{To: s.Handle}}
	default:
		return Request{Kind: KindReceive}
	}
}

// Summary is the one-line report of a finished journey.
type Summary struct {
	Journey Kind
	Text    string
	Failed  bool
}

// LauncherConfig configures a Launcher.
type LauncherConfig struct {
	Deps Deps
	// Host is the root navigator journeys are presented over
	Host flow.Navigator
	// Presenter tracks the running journey
	Presenter *flow.Presenter
	// Report receives a summary when a journey finishes (optional)
	Report func(Summary)
}

// Launcher starts journeys as freestanding modals. At most one runs at a
// time: launching while another is active terminates the old one first.
type Launcher struct {
	deps      Deps
	host      flow.Navigator
	presenter *flow.Presenter
	report    func(Summary)
}

// NewLauncher creates a launcher.
func NewLauncher(cfg LauncherConfig) *Launcher {
	presenter := cfg.Presenter
	if presenter == nil {
		presenter = flow.NewPresenter()
	}
	return &Launcher{
		deps:      cfg.Deps,
		host:      cfg.Host,
		presenter: presenter,
		report:    cfg.Report,
	}
}

// Presenter returns the presenter tracking launched journeys.
func (l *Launcher) Presenter() *flow.Presenter {
	return l.presenter
}

// Launch starts the journey for src.
func (l *Launcher) Launch(src payments.Source) flow.Runnable {
	logger.Info("launching journey", "source", src.String())
	return l.Start(RequestFor(src))
}

// Start launches req.
func (l *Launcher) Start(req Request) flow.Runnable {
	if current := l.presenter.Current(); current != nil {
		logger.Info("terminating active journey", "journey", current.Name(), "next", req.Kind.String())
		l.presenter.Terminate()
	}

	switch req.Kind {
	case KindPaymentLink:
		return lift(l, req.Kind, func(n flow.Navigator) flow.Flow[LinkResult] {
			return NewPaymentLinkFlow(n, l.deps)
		}, describeLink)
	case KindQuickpay:
		return lift(l, req.Kind, func(n flow.Navigator) flow.Flow[QuickpayResult] {
			return NewQuickpayFlow(n, l.deps, req.Quickpay)
		}, describeQuickpay)
	default:
		return lift(l, KindReceive, func(n flow.Navigator) flow.Flow[ReceiveDone] {
			return NewReceiveFlow(n, l.deps)
		}, describeReceive)
	}
}

// lift wraps the journey built by build in a modal with its own stack and
// starts it through the presenter.
func lift[R any](l *Launcher, kind Kind, build func(flow.Navigator) flow.Flow[R], describe func(R) Summary) flow.Runnable {
	container := nav.NewStack(nav.Config{Name: kind.String(), Dispatcher: l.deps.Dispatcher})
	m := flow.NewModal(build(container), l.host, container)
	m.OnFinish(func(r R, _ *flow.Dismisser) {
		container.Close()
		s := describe(r)
		s.Journey = kind
		logger.Info("journey finished", "journey", kind.String(), "summary", s.Text, "failed", s.Failed)
		if l.report != nil {
			l.report(s)
		}
	})
	l.presenter.Start(m)
	return m
}

func describeLink(r LinkResult) Summary {
	switch r := r.(type) {
	case LinkCreated:
		return Summary{Text: "Payment link ready: " + r.Link.URL}
	case LinkAborted:
		return Summary{Text: "Payment link failed: " + payments.UserMessage(r.Err), Failed: true}
	default:
		return Summary{Text: "Payment link cancelled"}
	}
}

func describeQuickpay(r QuickpayResult) Summary {
	switch r := r.(type) {
	case QuickpaySent:
		return Summary{Text: fmt.Sprintf("Sent %s to @%s", r.Receipt.Amount, r.Receipt.To)}
	case QuickpayAborted:
		return Summary{Text: "Quickpay failed: " + payments.UserMessage(r.Err), Failed: true}
	default:
		return Summary{Text: "Quickpay cancelled"}
	}
}

func describeReceive(r ReceiveDone) Summary {
	switch {
	case r.Err != nil:
		return Summary{Text: "Account unavailable: " + payments.UserMessage(r.Err), Failed: true}
	case len(r.Links) == 1:
		return Summary{Text: "Created 1 payment link"}
	case len(r.Links) > 1:
		return Summary{Text: fmt.Sprintf("Created %d payment links", len(r.Links))}
	default:
		return Summary{Text: "Closed account details"}
	}
}
