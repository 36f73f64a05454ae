// Package journeys implements the payment journeys as flows: requesting
// money with a payment link, paying a contact, and viewing the receiving
// account.
package journeys

import (
	"context"
	"time"

	"github.com/andri/pocketpay/internal/logger"
	"github.com/andri/pocketpay/pkg/payments"
	"github.com/andri/pocketpay/pkg/tui/nav"
	"golang.org/x/text/currency"
)

// DefaultCallTimeout bounds a single service call.
const DefaultCallTimeout = 10 * time.Second

// Deps are the collaborators every journey shares.
type Deps struct {
	Service    payments.Service
	Dispatcher *nav.Dispatcher
	Currency   currency.Unit
	// Context is the parent of every service call; nil means Background
	Context context.Context
	// CallTimeout bounds each call; zero means DefaultCallTimeout
	CallTimeout time.Duration
}

func (d Deps) currency() currency.Unit {
	if d.Currency == (currency.Unit{}) {
		return currency.GBP
	}
	return d.Currency
}

// calls scopes a journey's service calls. Closing it cancels every call
// still in flight.
type calls struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func (c *calls) parent(deps Deps) context.Context {
	if c.ctx == nil {
		parent := deps.Context
		if parent == nil {
			parent = context.Background()
		}
		c.ctx, c.cancel = context.WithCancel(parent)
	}
	return c.ctx
}

func (c *calls) close() {
	if c.cancel != nil {
		c.cancel()
	}
}

// call runs work off the UI goroutine and delivers its outcome back on it.
func call[T any](deps Deps, scope *calls, op string, work func(ctx context.Context) (T, error), done func(T, error)) {
	parent := scope.parent(deps)
	timeout := deps.CallTimeout
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}

	nav.Call(deps.Dispatcher, func() (T, error) {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()
		return work(ctx)
	}, func(v T, err error) {
		switch {
		case err != nil && parent.Err() != nil:
			logger.Debug("service call cancelled", "op", op, "error", err)
		case err != nil:
			logger.Warn("service call failed", "op", op, "error", err)
		default:
			logger.Debug("service call succeeded", "op", op)
		}
		done(v, err)
	})
}
