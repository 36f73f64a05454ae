package flow

// Modal lifts an inner flow into a self-contained modal journey. On Start
// it presents container modally over host and starts inner, which is
// expected to present into container. When inner finishes, Modal dismisses
// everything and forwards inner's result unchanged.
type Modal[R any] struct {
	Base[R]

	inner     Slot[R]
	pending   Flow[R]
	host      Navigator
	container Surface
	presented *Dismisser
	closing   bool
}

// NewModal wraps inner. host is the root navigator to present from and
// container the dedicated surface (usually its own navigation stack) that
// inner presents into.
func NewModal[R any](inner Flow[R], host Navigator, container Surface) *Modal[R] {
	return &Modal[R]{
		Base:      NewBase[R]("modal(" + inner.Name() + ")"),
		pending:   inner,
		host:      host,
		container: container,
	}
}

// Start presents the container and starts the inner flow inside it. With no
// host to present from it logs and returns; the flow then never completes
// unless terminated.
func (m *Modal[R]) Start() {
	if !Available(m.host) {
		SoftFailure("modal.start", "flow", m.Name(), "reason", "host navigator unavailable")
		return
	}
	inner := m.pending
	if inner == nil {
		violation(m.Name(), "start", m.Handler().State())
		return
	}
	if !m.Handler().Started() {
		return
	}
	m.pending = nil

	m.presented = m.host.PresentModally(m.container)
	m.inner.Run(inner, m.innerFinished)
}

// Terminate forwards termination to the inner flow, which resolves the
// modal through the normal completion path. Before Start, the inner flow is
// still terminated so the modal resolves with its cancellation result.
func (m *Modal[R]) Terminate() {
	if m.closing || m.Handler().State() == StateFinished {
		return
	}
	if m.inner.Active() {
		m.inner.Terminate()
		return
	}
	if inner := m.pending; inner != nil {
		m.pending = nil
		inner.OnFinish(m.innerFinished)
		inner.Terminate()
	}
}

func (m *Modal[R]) innerFinished(result R, inner *Dismisser) {
	m.closing = true
	all := Compose(m.presented, inner)
	m.presented = nil
	all.Dismiss(Animated(), func() {
		m.Handler().Finished(result, nil)
	})
}
