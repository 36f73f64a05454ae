package payments

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/currency"
	"k8s.io/utils/clock"
)

// FakeConfig configures the in-process service.
type FakeConfig struct {
	// Latency delays every call
	Latency time.Duration
	// FailureRate is the probability, 0..1, that a call fails as unavailable
	FailureRate float64
	// Currency of the account; defaults to GBP
	Currency currency.Unit
	// Clock drives latency and timestamps; nil means the real clock
	Clock clock.Clock
}

// FakeService is an in-memory Service with a seeded account, a few
// contacts and one existing payment link. It is safe for concurrent use.
type FakeService struct {
	mu       sync.Mutex
	cfg      FakeConfig
	clock    clock.Clock
	account  Account
	contacts []Contact
	links    map[string]PaymentLink
	receipts []Receipt
	failures []error
	calls    map[string]int
}

// NewFakeService creates a seeded fake service.
func NewFakeService(cfg FakeConfig) *FakeService {
	if cfg.Currency == (currency.Unit{}) {
		cfg.Currency = currency.GBP
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.RealClock{}
	}

	f := &FakeService{
		cfg:   cfg,
		clock: clk,
		account: Account{
			Holder:        "Alex Morgan",
			Handle:        "alex",
			AccountNumber: "41920385",
			SortCode:      "04-00-75",
			Balance:       Money{Minor: 1_250_00, Currency: cfg.Currency},
		},
		contacts: []Contact{
			{Handle: "sam", Name: "Sam Okafor"},
			{Handle: "priya", Name: "Priya Shah"},
			{Handle: "jo", Name: "Jo Lindqvist"},
			{Handle: "mika", Name: "Mika Tanaka"},
		},
		links: make(map[string]PaymentLink),
		calls: make(map[string]int),
	}
	f.links["coffee-fund"] = PaymentLink{
		ID:        uuid.NewString(),
		Slug:      "coffee-fund",
		Owner:     "sam",
		Amount:    Money{Minor: 4_50, Currency: cfg.Currency},
		URL:       SchemePrefix + "link/coffee-fund",
		CreatedAt: clk.Now(),
	}
	return f
}

// FailNext makes the next call fail with err.
func (f *FakeService) FailNext(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = append(f.failures, err)
}

// Calls returns how many times op was called.
func (f *FakeService) Calls(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

// Receipts returns the payments sent so far.
func (f *FakeService) Receipts() []Receipt {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.receipts)
}

func (f *FakeService) call(ctx context.Context, op string) error {
	f.mu.Lock()
	f.calls[op]++
	var queued error
	if len(f.failures) > 0 {
		queued = f.failures[0]
		f.failures = f.failures[1:]
	}
	f.mu.Unlock()

	if f.cfg.Latency > 0 {
		select {
		case <-ctx.Done():
			return NewServiceError(op, CodeTimeout, ctx.Err())
		case <-f.clock.After(f.cfg.Latency):
		}
	}
	if queued != nil {
		return queued
	}
	if f.cfg.FailureRate > 0 && rand.Float64() < f.cfg.FailureRate {
		return NewServiceError(op, CodeUnavailable, errors.New("injected failure"))
	}
	return nil
}

// AccountDetails implements Service.
func (f *FakeService) AccountDetails(ctx context.Context) (Account, error) {
	if err := f.call(ctx, "AccountDetails"); err != nil {
		return Account{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.account, nil
}

// CreatePaymentLink implements Service.
func (f *FakeService) CreatePaymentLink(ctx context.Context, amount Money) (PaymentLink, error) {
	const op = "CreatePaymentLink"
	if err := f.call(ctx, op); err != nil {
		return PaymentLink{}, err
	}
	if amount.Minor <= 0 || amount.Currency != f.cfg.Currency {
		return PaymentLink{}, NewServiceError(op, CodeInvalid, errors.New("amount must be positive and in the account currency"))
	}

	id := uuid.NewString()
	slug := "pay-" + strings.ReplaceAll(id, "-", "")[:10]
	if err := ValidateLinkSlug(slug); err != nil {
		return PaymentLink{}, NewServiceError(op, CodeInvalid, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	link := PaymentLink{
		ID:        id,
		Slug:      slug,
		Owner:     f.account.Handle,
		Amount:    amount,
		URL:       SchemePrefix + "link/" + slug,
		CreatedAt: f.clock.Now(),
	}
	f.links[slug] = link
	return link, nil
}

// PaymentLink implements Service.
func (f *FakeService) PaymentLink(ctx context.Context, slug string) (PaymentLink, error) {
	const op = "PaymentLink"
	if err := f.call(ctx, op); err != nil {
		return PaymentLink{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	link, ok := f.links[slug]
	if !ok {
		return PaymentLink{}, NewServiceError(op, CodeNotFound, errors.New(slug))
	}
	return link, nil
}

// Quickpay implements Service.
func (f *FakeService) Quickpay(ctx context.Context, handle string, amount Money) (Receipt, error) {
	const op = "Quickpay"
	if err := f.call(ctx, op); err != nil {
		return Receipt{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if handle == f.account.Handle {
		return Receipt{}, NewServiceError(op, CodeInvalid, errors.New("cannot pay yourself"))
	}
	known := slices.ContainsFunc(f.contacts, func(c Contact) bool { return c.Handle == handle })
	if !known {
		return Receipt{}, NewServiceError(op, CodeNotFound, errors.New(handle))
	}
	if amount.Minor <= 0 || amount.Currency != f.account.Balance.Currency {
		return Receipt{}, NewServiceError(op, CodeInvalid, errors.New("amount must be positive and in the account currency"))
	}
	if amount.Minor > f.account.Balance.Minor {
		return Receipt{}, NewServiceError(op, CodeInsufficient, nil)
	}

	f.account.Balance.Minor -= amount.Minor
	r := Receipt{
		ID:     uuid.NewString(),
		To:     handle,
		Amount: amount,
		SentAt: f.clock.Now(),
	}
	f.receipts = append(f.receipts, r)
	return r, nil
}

// Contacts implements Service.
func (f *FakeService) Contacts(ctx context.Context) ([]Contact, error) {
	if err := f.call(ctx, "Contacts"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.contacts), nil
}
