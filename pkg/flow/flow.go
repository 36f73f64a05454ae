package flow

// Runnable is the result-agnostic half of a Flow, enough for a Presenter
// to drive and track it.
type Runnable interface {
	// Name identifies the flow in diagnostics.
	Name() string
	// Start presents the flow's first surface, or resolves immediately when
	// no UI is needed. It must be called at most once.
	Start()
	// Terminate cancels the flow and every active child. The flow finishes
	// with its cancellation result and a Dismisser for all it presented.
	Terminate()
	// Lifecycle exposes the flow's handler without its result type.
	Lifecycle() Lifecycle
}

// Flow is a multi-screen journey with a single typed result R.
type Flow[R any] interface {
	Runnable
	// OnFinish registers the completion callback.
	OnFinish(cb Completion[R])
	// Handler returns the handler that owns the flow's lifecycle.
	Handler() *Handler[R]
}

// Base implements the handler-facing part of Flow. Concrete flows embed it
// and provide Start and Terminate.
type Base[R any] struct {
	handler *Handler[R]
}

// NewBase creates a Base with a fresh handler.
func NewBase[R any](name string) Base[R] {
	return Base[R]{handler: NewHandler[R](name)}
}

// Name returns the flow name.
func (b Base[R]) Name() string {
	return b.handler.Name()
}

// Handler returns the flow's handler.
func (b Base[R]) Handler() *Handler[R] {
	return b.handler
}

// OnFinish registers the completion callback.
func (b Base[R]) OnFinish(cb Completion[R]) {
	b.handler.OnFinish(cb)
}

// Lifecycle returns the handler as a Lifecycle.
func (b Base[R]) Lifecycle() Lifecycle {
	return b.handler
}

// Surface is an opaque visual surface. The core never inspects it; the
// Navigator implementation decides how it is rendered.
type Surface any

// Navigator is the presentation collaborator. Each call presents a surface
// and returns the Dismisser that removes it.
type Navigator interface {
	// Push places the surface on top of the navigation stack.
	Push(s Surface) *Dismisser
	// Present shows the surface as a sheet over the current screen.
	Present(s Surface) *Dismisser
	// PresentModally shows the surface as a full modal over the host.
	PresentModally(s Surface) *Dismisser
	// Alive is false once the navigator has been torn down.
	Alive() bool
}

// Available reports whether a navigator can still present anything.
func Available(n Navigator) bool {
	return n != nil && n.Alive()
}
