package flow

// Slot holds the parent's exclusive reference to one running child flow.
// The reference is dropped when the child finishes, before the parent's
// own continuation runs, whatever the result.
type Slot[R any] struct {
	child Flow[R]
	gen   uint64
}

// Run stores child, registers then as its continuation and starts it.
// Running a second child while one is active is a lifecycle violation.
func (s *Slot[R]) Run(child Flow[R], then Completion[R]) {
	if child == nil {
		return
	}
	if s.child != nil {
		violation(s.child.Name(), "replace active child with "+child.Name(), s.child.Lifecycle().State())
		return
	}

	s.gen++
	gen := s.gen
	s.child = child
	child.OnFinish(func(result R, dismisser *Dismisser) {
		if s.gen == gen {
			s.child = nil
		}
		if then != nil {
			then(result, dismisser)
		}
	})
	child.Start()
}

// Active reports whether a child is currently held.
func (s *Slot[R]) Active() bool {
	return s.child != nil
}

// Current returns the held child, or nil.
func (s *Slot[R]) Current() Flow[R] {
	return s.child
}

// Terminate terminates the held child, if any. The child's continuation
// still runs and releases the slot.
func (s *Slot[R]) Terminate() {
	if s.child != nil {
		s.child.Terminate()
	}
}
