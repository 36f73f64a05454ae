package flow

import "github.com/andri/pocketpay/internal/logger"

// Completion receives a flow's terminal result together with the Dismisser
// that removes what the flow presented. The receiver owns the Dismisser.
type Completion[R any] func(result R, dismisser *Dismisser)

// Lifecycle is the result-agnostic view of a Handler.
type Lifecycle interface {
	State() State
	AfterFinish(fn func())
}

// Handler owns a flow's lifecycle state and its single completion callback.
// It is confined to the UI goroutine and does no locking.
type Handler[R any] struct {
	name      string
	state     State
	result    R
	dismisser *Dismisser
	callback  Completion[R]
	delivered bool
	observers []func()
}

// NewHandler creates a handler in StateNotStarted.
func NewHandler[R any](name string) *Handler[R] {
	return &Handler[R]{name: name}
}

// Name returns the flow name used in diagnostics.
func (h *Handler[R]) Name() string {
	return h.name
}

// State returns the current lifecycle state.
func (h *Handler[R]) State() State {
	return h.state
}

// Result returns the terminal result once the flow has finished.
func (h *Handler[R]) Result() (R, bool) {
	if h.state != StateFinished {
		var zero R
		return zero, false
	}
	return h.result, true
}

// Started moves the handler from StateNotStarted to StateStarted. It
// reports false when the flow was already started or finished; the caller
// must then present nothing.
func (h *Handler[R]) Started() bool {
	if h.state != StateNotStarted {
		violation(h.name, "start", h.state)
		return false
	}
	h.state = StateStarted
	logger.Debug("flow started", "flow", h.name)
	return true
}

// Finished records the terminal result and delivers it to the completion
// callback. Only the first call has any effect.
//
// Finishing straight from StateNotStarted is allowed: a flow terminated
// before it could present anything still has to resolve.
func (h *Handler[R]) Finished(result R, dismisser *Dismisser) {
	if h.state == StateFinished {
		logger.Debug("flow already finished, ignoring result", "flow", h.name)
		return
	}
	h.state = StateFinished
	h.result = result
	h.dismisser = dismisser
	logger.Debug("flow finished", "flow", h.name)

	observers := h.observers
	h.observers = nil
	for _, fn := range observers {
		fn()
	}
	h.deliver()
}

// OnFinish registers the completion callback. If the flow already finished,
// the callback fires immediately with the stored result. Only the first
// registration counts; later ones are violations and are ignored.
func (h *Handler[R]) OnFinish(cb Completion[R]) {
	if cb == nil {
		return
	}
	if h.callback != nil || h.delivered {
		violation(h.name, "register completion", h.state)
		return
	}
	h.callback = cb
	if h.state == StateFinished {
		h.deliver()
	}
}

// AfterFinish registers an observer that runs when the flow finishes, ahead
// of the completion callback. Observers never receive the Dismisser.
func (h *Handler[R]) AfterFinish(fn func()) {
	if fn == nil {
		return
	}
	if h.state == StateFinished {
		fn()
		return
	}
	h.observers = append(h.observers, fn)
}

func (h *Handler[R]) deliver() {
	if h.delivered || h.callback == nil {
		return
	}
	h.delivered = true
	cb, d := h.callback, h.dismisser
	// Ownership of the dismisser moves to the receiver.
	h.callback, h.dismisser = nil, nil
	cb(h.result, d)
}
