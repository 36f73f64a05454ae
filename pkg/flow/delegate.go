package flow

// DelegateRef is the non-owning link from a presented screen back to the
// flow that reacts to it. The flow releases it when it finishes; a screen
// holding a released ref treats the delegate as gone.
type DelegateRef[D any] struct {
	delegate D
	live     bool
}

// NewDelegateRef creates a live reference to d.
func NewDelegateRef[D any](d D) *DelegateRef[D] {
	return &DelegateRef[D]{delegate: d, live: true}
}

// Get returns the delegate while the reference is live.
func (r *DelegateRef[D]) Get() (D, bool) {
	if r == nil || !r.live {
		var zero D
		return zero, false
	}
	return r.delegate, true
}

// Release severs the reference.
func (r *DelegateRef[D]) Release() {
	if r == nil {
		return
	}
	var zero D
	r.delegate = zero
	r.live = false
}
