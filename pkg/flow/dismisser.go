package flow

// DismissFunc removes one presented surface and calls done once the surface
// is gone. animated follows the UI-animation policy.
type DismissFunc func(animated bool, done func())

// Dismisser undoes a presentation. It runs at most once; a second Dismiss
// performs nothing but still calls its completion, so chains built with
// Compose never stall on a part that was already dismissed on its own.
//
// A nil *Dismisser is valid and dismisses nothing.
type Dismisser struct {
	label  string
	action DismissFunc
	parts  []*Dismisser
	used   bool
}

// NewDismisser wraps the dismiss action for a single surface.
func NewDismisser(label string, action DismissFunc) *Dismisser {
	return &Dismisser{label: label, action: action}
}

// Compose builds a Dismisser from parts given in presentation order. The
// parts are dismissed in reverse, so the most recently presented surface
// goes first. Nil parts are skipped.
func Compose(presented ...*Dismisser) *Dismisser {
	parts := make([]*Dismisser, 0, len(presented))
	for i := len(presented) - 1; i >= 0; i-- {
		if presented[i] != nil {
			parts = append(parts, presented[i])
		}
	}
	return &Dismisser{label: "composite", parts: parts}
}

// Label returns the diagnostic label.
func (d *Dismisser) Label() string {
	if d == nil {
		return ""
	}
	return d.label
}

// Dismissed reports whether Dismiss has already run.
func (d *Dismisser) Dismissed() bool {
	return d != nil && d.used
}

// Dismiss removes the surfaces and then calls completion (which may be nil).
func (d *Dismisser) Dismiss(animated bool, completion func()) {
	if completion == nil {
		completion = func() {}
	}
	if d == nil || d.used {
		completion()
		return
	}
	d.used = true

	if d.action != nil {
		called := false
		d.action(animated, func() {
			if called {
				return
			}
			called = true
			completion()
		})
		return
	}
	d.dismissParts(0, animated, completion)
}

func (d *Dismisser) dismissParts(i int, animated bool, completion func()) {
	if i >= len(d.parts) {
		completion()
		return
	}
	d.parts[i].Dismiss(animated, func() {
		d.dismissParts(i+1, animated, completion)
	})
}
