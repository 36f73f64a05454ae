package flow

import (
	"fmt"
	"slices"
	"testing"
)

type testResult string

const (
	resultSuccess   testResult = "success"
	resultCompleted testResult = "completed"
	resultDismissed testResult = "dismissed"
	resultAborted   testResult = "aborted"
)

// fakeNavigator records presentations and dismissals in order.
type fakeNavigator struct {
	alive    bool
	visible  []string
	events   []string
	animated []bool
}

func newFakeNavigator() *fakeNavigator {
	return &fakeNavigator{alive: true}
}

func (n *fakeNavigator) Push(s Surface) *Dismisser           { return n.present("push", s) }
func (n *fakeNavigator) Present(s Surface) *Dismisser        { return n.present("sheet", s) }
func (n *fakeNavigator) PresentModally(s Surface) *Dismisser { return n.present("modal", s) }
func (n *fakeNavigator) Alive() bool                         { return n.alive }

func (n *fakeNavigator) present(kind string, s Surface) *Dismisser {
	name := fmt.Sprint(s)
	n.visible = append(n.visible, name)
	n.events = append(n.events, kind+":"+name)
	return NewDismisser(name, func(animated bool, done func()) {
		if i := slices.Index(n.visible, name); i >= 0 {
			n.visible = slices.Delete(n.visible, i, i+1)
		}
		n.events = append(n.events, "dismiss:"+name)
		n.animated = append(n.animated, animated)
		done()
	})
}

// leafFlow pushes one screen and finishes when told to.
type leafFlow struct {
	Base[testResult]
	nav       Navigator
	presented *Dismisser
}

func newLeafFlow(name string, nav Navigator) *leafFlow {
	return &leafFlow{Base: NewBase[testResult](name), nav: nav}
}

func (f *leafFlow) Start() {
	if !Available(f.nav) {
		SoftFailure("leaf.start", "flow", f.Name())
		return
	}
	if !f.Handler().Started() {
		return
	}
	f.presented = f.nav.Push(f.Name())
}

func (f *leafFlow) Terminate() {
	f.complete(resultDismissed)
}

func (f *leafFlow) complete(r testResult) {
	d := f.presented
	f.presented = nil
	f.Handler().Finished(r, d)
}

// parentFlow presents its own screen, then runs one leaf child.
type parentFlow struct {
	Base[testResult]
	nav       Navigator
	child     Slot[testResult]
	presented []*Dismisser

	lastChild            *leafFlow
	activeInContinuation bool
}

func newParentFlow(name string, nav Navigator) *parentFlow {
	return &parentFlow{Base: NewBase[testResult](name), nav: nav}
}

func (p *parentFlow) Start() {
	if !p.Handler().Started() {
		return
	}
	p.presented = append(p.presented, p.nav.Push(p.Name()))
}

func (p *parentFlow) runChild(name string) {
	child := newLeafFlow(name, p.nav)
	p.lastChild = child
	p.child.Run(child, func(r testResult, d *Dismisser) {
		p.activeInContinuation = p.child.Active()
		p.presented = append(p.presented, d)
		if r == resultSuccess {
			p.finish(resultCompleted)
			return
		}
		p.finish(resultDismissed)
	})
}

func (p *parentFlow) Terminate() {
	p.child.Terminate()
	p.finish(resultDismissed)
}

func (p *parentFlow) finish(r testResult) {
	d := Compose(p.presented...)
	p.presented = nil
	p.Handler().Finished(r, d)
}

// completionRecorder captures every completion delivery.
type completionRecorder struct {
	results    []testResult
	dismissers []*Dismisser
}

func (c *completionRecorder) record(r testResult, d *Dismisser) {
	c.results = append(c.results, r)
	c.dismissers = append(c.dismissers, d)
}

func (c *completionRecorder) calls() int {
	return len(c.results)
}

// withStrict toggles strict mode for the duration of a test.
func withStrict(t *testing.T, enabled bool) {
	t.Helper()
	prev := Strict()
	SetStrict(enabled)
	t.Cleanup(func() { SetStrict(prev) })
}

// expectViolation fails the test unless fn panics with a *LifecycleError.
func expectViolation(t *testing.T, fn func()) *LifecycleError {
	t.Helper()
	var got *LifecycleError
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("expected lifecycle violation panic")
			}
			err, ok := r.(*LifecycleError)
			if !ok {
				t.Fatalf("panic value = %T, want *LifecycleError", r)
			}
			got = err
		}()
		fn()
	}()
	return got
}
