package payments

import (
	"context"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/utils/clock"
)

// RetryConfig holds configuration for retry behavior
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts
	MaxRetries int

	// InitialBackoff is the initial backoff duration
	InitialBackoff time.Duration

	// MaxBackoff is the maximum backoff duration
	MaxBackoff time.Duration

	// BackoffMultiplier is the multiplier for exponential backoff
	BackoffMultiplier float64

	// Clock drives the waits between attempts; nil means the real clock
	Clock clock.Clock
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:        3,
		InitialBackoff:    200 * time.Millisecond,
		MaxBackoff:        2 * time.Second,
		BackoffMultiplier: 2.0,
	}
}

func (c RetryConfig) backoff() wait.Backoff {
	// Cap is applied by the caller: wait.Backoff stops stepping once it
	// reaches its cap, which would cut retries short.
	return wait.Backoff{
		Duration: c.InitialBackoff,
		Factor:   c.BackoffMultiplier,
		Steps:    c.MaxRetries + 1,
	}
}

// WithRetry calls fn until it succeeds, fails with a non-transient error,
// or the retries run out.
func WithRetry(ctx context.Context, cfg RetryConfig, fn func() error) error {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.RealClock{}
	}
	backoff := cfg.backoff()

	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !IsTransient(err) {
			return fmt.Errorf("non-retryable error: %w", err)
		}
		if attempt >= cfg.MaxRetries {
			break
		}

		delay := backoff.Step()
		if cfg.MaxBackoff > 0 {
			delay = min(delay, cfg.MaxBackoff)
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("retry cancelled: %w", ctx.Err())
		case <-clk.After(delay):
		}
	}

	return fmt.Errorf("max retries (%d) exceeded: %w", cfg.MaxRetries, lastErr)
}

// RetryingService retries the read-only calls of a Service on transient
// failures. Calls that move money are passed through once.
type RetryingService struct {
	Service
	Config RetryConfig
}

// NewRetryingService wraps svc.
func NewRetryingService(svc Service, cfg RetryConfig) *RetryingService {
	return &RetryingService{Service: svc, Config: cfg}
}

// AccountDetails implements Service.
func (r *RetryingService) AccountDetails(ctx context.Context) (Account, error) {
	var out Account
	err := WithRetry(ctx, r.Config, func() (err error) {
		out, err = r.Service.AccountDetails(ctx)
		return err
	})
	return out, err
}

// PaymentLink implements Service.
func (r *RetryingService) PaymentLink(ctx context.Context, slug string) (PaymentLink, error) {
	var out PaymentLink
	err := WithRetry(ctx, r.Config, func() (err error) {
		out, err = r.Service.PaymentLink(ctx, slug)
		return err
	})
	return out, err
}

// Contacts implements Service.
func (r *RetryingService) Contacts(ctx context.Context) ([]Contact, error) {
	var out []Contact
	err := WithRetry(ctx, r.Config, func() (err error) {
		out, err = r.Service.Contacts(ctx)
		return err
	})
	return out, err
}
