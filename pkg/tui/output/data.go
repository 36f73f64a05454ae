package output

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andri/pocketpay/pkg/payments"
	"k8s.io/utils/clock"
)

// Section is a block of account data that can be shown
type Section string

const (
	// SectionAccount shows the holder, account number and balance
	SectionAccount Section = "account"
	// SectionContacts shows the people the user can pay
	SectionContacts Section = "contacts"
)

// AllSections returns all supported sections
func AllSections() []Section {
	return []Section{SectionAccount, SectionContacts}
}

// ParseSections parses a comma-separated list of sections. Empty input means
// all sections.
func ParseSections(show string) ([]Section, error) {
	if strings.TrimSpace(show) == "" {
		return AllSections(), nil
	}

	var sections []Section
	for _, part := range strings.Split(show, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch Section(part) {
		case SectionAccount, SectionContacts:
			sections = append(sections, Section(part))
		default:
			return nil, fmt.Errorf("unknown section %q: must be a subset of account, contacts", part)
		}
	}

	if len(sections) == 0 {
		return AllSections(), nil
	}
	return sections, nil
}

// AccountView is the printable form of payments.Account
type AccountView struct {
	Holder        string `json:"holder" yaml:"holder"`
	Handle        string `json:"handle" yaml:"handle"`
	AccountNumber string `json:"account_number" yaml:"account_number"`
	SortCode      string `json:"sort_code" yaml:"sort_code"`
	Balance       string `json:"balance" yaml:"balance"`
	BalanceMinor  int64  `json:"balance_minor" yaml:"balance_minor"`
	Currency      string `json:"currency" yaml:"currency"`
}

// ContactView is the printable form of payments.Contact
type ContactView struct {
	Handle string `json:"handle" yaml:"handle"`
	Name   string `json:"name" yaml:"name"`
}

// LinkView is the printable form of payments.PaymentLink
type LinkView struct {
	Slug   string `json:"slug" yaml:"slug"`
	Owner  string `json:"owner" yaml:"owner"`
	Amount string `json:"amount" yaml:"amount"`
	URL    string `json:"url" yaml:"url"`
}

// Data holds all data for output formatting
type Data struct {
	// Account is the signed-in account
	Account *AccountView `json:"account,omitempty" yaml:"account,omitempty"`
	// Contacts are the people the user can pay
	Contacts []ContactView `json:"contacts,omitempty" yaml:"contacts,omitempty"`
	// Link is a payment link looked up by slug
	Link *LinkView `json:"link,omitempty" yaml:"link,omitempty"`
	// FetchedAt is when the data was fetched
	FetchedAt time.Time `json:"fetched_at" yaml:"fetched_at"`
}

// FetchOptions configures data fetching
type FetchOptions struct {
	// Service is the payments backend
	Service payments.Service
	// Sections specifies which sections to fetch
	Sections []Section
	// LinkSlug, when set, also looks up that payment link
	LinkSlug string
	// Clock stamps FetchedAt; nil means the real clock
	Clock clock.PassiveClock
}

// FetchData fetches all requested data for non-TUI output
func FetchData(ctx context.Context, opts FetchOptions) (*Data, error) {
	clk := opts.Clock
	if clk == nil {
		clk = clock.RealClock{}
	}
	data := &Data{
		FetchedAt: clk.Now(),
	}

	for _, section := range opts.Sections {
		switch section {
		case SectionAccount:
			acct, err := opts.Service.AccountDetails(ctx)
			if err != nil {
				return nil, fmt.Errorf("fetch account: %w", err)
			}
			data.Account = accountView(acct)

		case SectionContacts:
			contacts, err := opts.Service.Contacts(ctx)
			if err != nil {
				return nil, fmt.Errorf("fetch contacts: %w", err)
			}
			data.Contacts = make([]ContactView, 0, len(contacts))
			for _, c := range contacts {
				data.Contacts = append(data.Contacts, ContactView{Handle: c.Handle, Name: c.Name})
			}
		}
	}

	if opts.LinkSlug != "" {
		link, err := opts.Service.PaymentLink(ctx, opts.LinkSlug)
		if err != nil {
			return nil, fmt.Errorf("fetch link %s: %w", opts.LinkSlug, err)
		}
		data.Link = &LinkView{
			Slug:   link.Slug,
			Owner:  link.Owner,
			Amount: link.Amount.String(),
			URL:    link.URL,
		}
	}

	return data, nil
}

func accountView(a payments.Account) *AccountView {
	return &AccountView{
		Holder:        a.Holder,
		Handle:        a.Handle,
		AccountNumber: a.AccountNumber,
		SortCode:      a.SortCode,
		Balance:       a.Balance.String(),
		BalanceMinor:  a.Balance.Minor,
		Currency:      a.Balance.Currency.String(),
	}
}
