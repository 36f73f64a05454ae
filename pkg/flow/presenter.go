package flow

import "github.com/andri/pocketpay/internal/logger"

// Presenter tracks the top-level flow currently driving the UI, for flows
// started without a parent (a deep link while the app sits idle, say).
// It is set on Start and cleared when that flow finishes.
//
// Presenter is meant to be created once per UI and injected where needed.
type Presenter struct {
	current Runnable
	gen     uint64
}

// NewPresenter creates an idle presenter.
func NewPresenter() *Presenter {
	return &Presenter{}
}

// Start records f as the current flow and starts it. Replacing a flow that
// is still active is the caller's decision; the old flow keeps running but
// is no longer tracked.
func (p *Presenter) Start(f Runnable) {
	if f == nil {
		return
	}
	if p.current != nil {
		logger.Info("replacing active top-level flow",
			"previous", p.current.Name(),
			"next", f.Name())
	}

	p.gen++
	gen := p.gen
	p.current = f
	f.Lifecycle().AfterFinish(func() {
		if p.gen == gen {
			p.current = nil
		}
	})
	f.Start()
}

// Current returns the tracked flow, or nil when idle.
func (p *Presenter) Current() Runnable {
	return p.current
}

// Active reports whether a top-level flow is running.
func (p *Presenter) Active() bool {
	return p.current != nil
}

// Terminate terminates the tracked flow, if any.
func (p *Presenter) Terminate() {
	if p.current != nil {
		p.current.Terminate()
	}
}
