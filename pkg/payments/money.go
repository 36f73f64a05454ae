// Package payments holds the payment domain and the service journeys call.
package payments

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MaxAmountMinor caps a single payment, in minor units.
const MaxAmountMinor int64 = 1_000_000_00

// ErrInvalidAmount is returned for amounts that cannot be paid.
var ErrInvalidAmount = errors.New("invalid amount")

// Money is an amount in the currency's minor units.
type Money struct {
	Minor    int64
	Currency currency.Unit
}

// NewMoney builds Money from minor units and an ISO 4217 code.
func NewMoney(minor int64, code string) (Money, error) {
	cur, err := currency.ParseISO(code)
	if err != nil {
		return Money{}, fmt.Errorf("currency %q: %w", code, err)
	}
	return Money{Minor: minor, Currency: cur}, nil
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Minor == 0
}

// String formats the amount for English display.
func (m Money) String() string {
	return FormatMoney(m, language.English)
}

// Scale returns the number of minor digits of the currency.
func Scale(cur currency.Unit) int {
	scale, _ := currency.Standard.Rounding(cur)
	return scale
}

// FormatMoney renders m with its currency symbol using tag's number
// conventions.
func FormatMoney(m Money, tag language.Tag) string {
	p := message.NewPrinter(tag)
	value := float64(m.Minor) / math.Pow10(Scale(m.Currency))
	return p.Sprint(currency.Symbol(m.Currency.Amount(value)))
}

// ParseAmount parses user input such as "12", "12.5" or "1,250.00" into a
// positive amount of cur.
func ParseAmount(raw string, cur currency.Unit) (Money, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return Money{}, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	scale := Scale(cur)
	if hasFrac && len(frac) > scale {
		return Money{}, fmt.Errorf("%w: at most %d decimals", ErrInvalidAmount, scale)
	}
	if whole == "" {
		whole = "0"
	}
	if !isDigits(whole) || (frac != "" && !isDigits(frac)) {
		return Money{}, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, raw)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	frac += strings.Repeat("0", scale-len(frac))
	var minor int64
	if frac != "" {
		if minor, err = strconv.ParseInt(frac, 10, 64); err != nil {
			return Money{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
		}
	}

	pow := int64(math.Pow10(scale))
	if units > MaxAmountMinor/pow {
		return Money{}, fmt.Errorf("%w: above the %s limit", ErrInvalidAmount, Money{Minor: MaxAmountMinor, Currency: cur})
	}
	total := units*pow + minor
	if total == 0 {
		return Money{}, fmt.Errorf("%w: must be more than zero", ErrInvalidAmount)
	}
	if total > MaxAmountMinor {
		return Money{}, fmt.Errorf("%w: above the %s limit", ErrInvalidAmount, Money{Minor: MaxAmountMinor, Currency: cur})
	}
	return Money{Minor: total, Currency: cur}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
