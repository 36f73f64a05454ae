// Package flow orchestrates multi-screen journeys.
//
// A Flow is a journey with an explicit lifecycle (Start, Terminate) and a
// single typed result delivered once through OnFinish, together with a
// Dismisser that removes everything the flow put on screen. Flows nest: a
// parent runs children one step at a time and decides what to do from each
// child's result.
//
// # Lifecycle
//
// Every flow owns a Handler. The handler moves strictly
// notStarted -> started -> finished, fires the completion callback exactly
// once, and replays the result to a callback registered late. Misuse (start
// twice, register twice) panics in strict mode and is logged otherwise; see
// SetStrict.
//
// Failure is data: a flow that cannot complete normally finishes with one of
// its result variants (for example an "aborted" case carrying the error).
// A missing precondition, such as a host navigator that has been torn down,
// is logged with SoftFailure and the operation becomes a no-op. Such a flow
// stays in started and its callback never fires.
//
// # Composition
//
// A parent keeps each child in a Slot:
//
//	type checkout struct {
//	    flow.Base[CheckoutResult]
//	    amount    flow.Slot[AmountResult]
//	    presented []*flow.Dismisser
//	}
//
//	func (c *checkout) askAmount() {
//	    c.amount.Run(NewAmountFlow(c.nav), func(r AmountResult, d *flow.Dismisser) {
//	        // the slot is already empty here
//	        switch r.(type) {
//	        case AmountEntered:
//	            c.presented = append(c.presented, d)
//	            c.confirm()
//	        default:
//	            c.finish(CheckoutDismissed{}, d)
//	        }
//	    })
//	}
//
// The slot drops its reference before the continuation runs, whatever the
// result, so a finished child never lingers as the owner of its surfaces.
//
// # Dismissal
//
// Dismissers returned by a Navigator are combined with Compose in the order
// the surfaces were presented; the composite tears them down newest first.
// A Dismisser runs at most once.
//
// # Top-level flows
//
// Presenter tracks the flow that is driving the UI when no parent owns it,
// and Modal lifts any flow into a freestanding modal journey.
//
// All of this runs on the UI goroutine; nothing in the package locks.
package flow
