package payments

import (
	"context"
	"time"
)

// Account is the signed-in user's receiving account.
type Account struct {
	Holder        string
	Handle        string
	AccountNumber string
	SortCode      string
	Balance       Money
}

// Contact is someone the user can quickpay.
type Contact struct {
	Handle string
	Name   string
}

// PaymentLink is a shareable request for money.
type PaymentLink struct {
	ID        string
	Slug      string
	Owner     string
	Amount    Money
	URL       string
	CreatedAt time.Time
}

// Receipt confirms a sent payment.
type Receipt struct {
	ID     string
	To     string
	Amount Money
	SentAt time.Time
}

// Service is the business collaborator journeys call. Implementations may
// block; journeys call it off the UI goroutine.
type Service interface {
	AccountDetails(ctx context.Context) (Account, error)
	CreatePaymentLink(ctx context.Context, amount Money) (PaymentLink, error)
	PaymentLink(ctx context.Context, slug string) (PaymentLink, error)
	Quickpay(ctx context.Context, handle string, amount Money) (Receipt, error)
	Contacts(ctx context.Context) ([]Contact, error)
}
