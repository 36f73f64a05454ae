package journeys

import (
	"testing"
	"time"

	"github.com/andri/pocketpay/pkg/flow"
	"github.com/andri/pocketpay/pkg/payments"
	"golang.org/x/text/currency"
	testingclock "k8s.io/utils/clock/testing"
)

// startTwice starts f twice, then terminates it and starts it once more.
// Only the first Start may present anything.
func startTwice[R any](t *testing.T, h *harness, f flow.Flow[R]) {
	t.Helper()
	rec := record(f)

	f.Start()
	f.Start()
	h.settle()
	if h.stack.Depth() != 1 {
		t.Fatalf("Depth() after two starts = %d, want 1", h.stack.Depth())
	}

	f.Terminate()
	if rec.calls != 1 {
		t.Fatalf("completion calls = %d, want 1", rec.calls)
	}
	rec.dismisser.Dismiss(false, nil)
	if h.stack.Depth() != 0 {
		t.Errorf("Depth() after dismiss = %d, want 0", h.stack.Depth())
	}

	f.Start()
	h.settle()
	if h.stack.Depth() != 0 {
		t.Errorf("Depth() after start on a finished flow = %d, want 0", h.stack.Depth())
	}
	if f.Handler().State() != flow.StateFinished {
		t.Errorf("state = %s, want %s", f.Handler().State(), flow.StateFinished)
	}
}

func TestJourneys_StartOnlyOnce(t *testing.T) {
	withLenient(t)

	tests := []struct {
		name string
		op   string
		run  func(t *testing.T, h *harness)
	}{
		{
			name: "amount",
			run: func(t *testing.T, h *harness) {
				startTwice[AmountResult](t, h, NewAmountFlow(h.stack, "Pay @jo", currency.GBP))
			},
		},
		{
			name: "confirm",
			run: func(t *testing.T, h *harness) {
				startTwice[ConfirmOutcome](t, h, NewConfirmFlow(h.stack, "Quickpay", "Send?"))
			},
		},
		{
			name: "payment link",
			run: func(t *testing.T, h *harness) {
				startTwice[LinkResult](t, h, NewPaymentLinkFlow(h.stack, h.deps))
			},
		},
		{
			name: "quickpay",
			op:   "Contacts",
			run: func(t *testing.T, h *harness) {
				startTwice[QuickpayResult](t, h, NewQuickpayFlow(h.stack, h.deps, QuickpayOptions{}))
			},
		},
		{
			name: "receive",
			op:   "AccountDetails",
			run: func(t *testing.T, h *harness) {
				startTwice[ReceiveDone](t, h, NewReceiveFlow(h.stack, h.deps))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			tt.run(t, h)
			if tt.op != "" {
				if got := h.service.Calls(tt.op); got != 1 {
					t.Errorf("Calls(%q) = %d, want 1", tt.op, got)
				}
			}
		})
	}
}

func TestJourneys_TerminateCancelsPendingCall(t *testing.T) {
	h := newHarness(t)
	// The fake clock never advances, so a call only returns once cancelled.
	svc := payments.NewFakeService(payments.FakeConfig{
		Currency: currency.GBP,
		Latency:  time.Minute,
		Clock:    testingclock.NewFakeClock(time.Now()),
	})
	h.service = svc
	h.deps.Service = svc

	f := NewReceiveFlow(h.stack, h.deps)
	rec := record[ReceiveDone](f)
	f.Start()
	if h.dispatcher.InFlight() != 1 {
		t.Fatalf("InFlight() = %d, want 1", h.dispatcher.InFlight())
	}

	f.Terminate()
	h.settle()

	if h.dispatcher.InFlight() != 0 {
		t.Errorf("InFlight() = %d, want 0", h.dispatcher.InFlight())
	}
	if rec.calls != 1 {
		t.Fatalf("completion calls = %d, want 1", rec.calls)
	}
	if rec.result.Err != nil {
		t.Errorf("result Err = %v, want nil (late result ignored)", rec.result.Err)
	}
	if got := svc.Calls("AccountDetails"); got != 1 {
		t.Errorf("Calls(AccountDetails) = %d, want 1", got)
	}
}
