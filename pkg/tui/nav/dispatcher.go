package nav

import (
	tea "github.com/charmbracelet/bubbletea"
)

// resultMsg carries finished background work back into the event loop.
type resultMsg struct {
	deliver func()
}

// Dispatcher queues commands produced outside of a tea.Model's Update
// (flows reacting to screens, stacks initializing surfaces) and brings
// background results back onto the UI goroutine.
//
// The owning model must call Drain after every Update and pass every
// message through Deliver first.
type Dispatcher struct {
	queue    []tea.Cmd
	inflight int
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Schedule queues a command. Nil commands are ignored.
func (d *Dispatcher) Schedule(cmd tea.Cmd) {
	if d == nil || cmd == nil {
		return
	}
	d.queue = append(d.queue, cmd)
}

// Go runs work off the UI goroutine and calls done with its value on the
// UI goroutine.
func (d *Dispatcher) Go(work func() any, done func(any)) {
	if d == nil {
		return
	}
	d.inflight++
	d.queue = append(d.queue, func() tea.Msg {
		v := work()
		return resultMsg{deliver: func() { done(v) }}
	})
}

// Call is the typed form of Go for request/response style work.
func Call[T any](d *Dispatcher, work func() (T, error), done func(T, error)) {
	type outcome struct {
		value T
		err   error
	}
	d.Go(func() any {
		v, err := work()
		return outcome{value: v, err: err}
	}, func(v any) {
		o, _ := v.(outcome)
		done(o.value, o.err)
	})
}

// Deliver runs the continuation for a background result. It reports
// whether msg belonged to the dispatcher.
func (d *Dispatcher) Deliver(msg tea.Msg) bool {
	m, ok := msg.(resultMsg)
	if !ok {
		return false
	}
	if d != nil && d.inflight > 0 {
		d.inflight--
	}
	m.deliver()
	return true
}

// Drain returns the queued commands as one batch and empties the queue.
func (d *Dispatcher) Drain() tea.Cmd {
	if d == nil || len(d.queue) == 0 {
		return nil
	}
	cmds := d.queue
	d.queue = nil
	return tea.Batch(cmds...)
}

// InFlight returns the number of background calls not yet delivered.
func (d *Dispatcher) InFlight() int {
	if d == nil {
		return 0
	}
	return d.inflight
}

// Queued returns the number of commands waiting for Drain.
func (d *Dispatcher) Queued() int {
	if d == nil {
		return 0
	}
	return len(d.queue)
}
