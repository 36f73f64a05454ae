// Package commands provides the CLI command implementations for pocketpay.
package commands

import (
	"fmt"

	"github.com/andri/pocketpay/pkg/config"
	"github.com/andri/pocketpay/pkg/payments"
	"golang.org/x/text/currency"
)

// newService builds the payments backend described by cfg: the in-process
// service with retries around its read-only calls.
func newService(cfg config.Config) (payments.Service, currency.Unit, error) {
	cur, err := currency.ParseISO(cfg.Service.Currency)
	if err != nil {
		return nil, currency.Unit{}, fmt.Errorf("invalid currency %q: %w", cfg.Service.Currency, err)
	}

	clk := newClock()
	fake := payments.NewFakeService(payments.FakeConfig{
		Latency:     cfg.Service.Latency(),
		FailureRate: cfg.Service.FailureRate,
		Currency:    cur,
		Clock:       clk,
	})

	return payments.NewRetryingService(fake, payments.RetryConfig{
		MaxRetries:        cfg.Retry.MaxRetries,
		InitialBackoff:    cfg.Retry.InitialBackoff(),
		MaxBackoff:        cfg.Retry.MaxBackoff(),
		BackoffMultiplier: cfg.Retry.BackoffMultiplier,
		Clock:             clk,
	}), cur, nil
}
