package payments

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		cur     currency.Unit
		want    int64
		wantErr bool
	}{
		{name: "whole", input: "12", cur: currency.GBP, want: 12_00},
		{name: "one decimal", input: "12.5", cur: currency.GBP, want: 12_50},
		{name: "two decimals", input: "12.50", cur: currency.GBP, want: 12_50},
		{name: "grouped", input: "1,250.00", cur: currency.GBP, want: 1_250_00},
		{name: "leading dot", input: ".75", cur: currency.GBP, want: 75},
		{name: "trailing dot", input: "12.", cur: currency.GBP, want: 12_00},
		{name: "spaces", input: "  3 ", cur: currency.GBP, want: 3_00},
		{name: "no minor unit", input: "500", cur: currency.JPY, want: 500},
		{name: "empty", input: "", cur: currency.GBP, wantErr: true},
		{name: "letters", input: "abc", cur: currency.GBP, wantErr: true},
		{name: "negative", input: "-5", cur: currency.GBP, wantErr: true},
		{name: "exponent", input: "1e5", cur: currency.GBP, wantErr: true},
		{name: "too precise", input: "1.234", cur: currency.GBP, wantErr: true},
		{name: "decimals on yen", input: "5.5", cur: currency.JPY, wantErr: true},
		{name: "zero", input: "0.00", cur: currency.GBP, wantErr: true},
		{name: "over limit", input: "1000001", cur: currency.GBP, wantErr: true},
		{name: "at limit", input: "1000000", cur: currency.GBP, want: MaxAmountMinor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input, tt.cur)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidAmount", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tt.input, err)
			}
			if got.Minor != tt.want || got.Currency != tt.cur {
				t.Errorf("ParseAmount(%q) = %+v, want %d %v", tt.input, got, tt.want, tt.cur)
			}
		})
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		money Money
		want  string
	}{
		{Money{Minor: 12_50, Currency: currency.GBP}, "12.50"},
		{Money{Minor: 5, Currency: currency.USD}, "0.05"},
		{Money{Minor: 500, Currency: currency.JPY}, "500"},
	}
	for _, tt := range tests {
		got := FormatMoney(tt.money, language.English)
		if !strings.Contains(got, tt.want) {
			t.Errorf("FormatMoney(%+v) = %q, want it to contain %q", tt.money, got, tt.want)
		}
	}
}

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(100, "EUR")
	if err != nil {
		t.Fatalf("NewMoney() unexpected error: %v", err)
	}
	if m.Currency != currency.EUR || m.Minor != 100 {
		t.Errorf("NewMoney() = %+v", m)
	}
	if m.IsZero() {
		t.Error("IsZero() = true, want false")
	}

	if _, err := NewMoney(1, "XXXX"); err == nil {
		t.Error("NewMoney() with bad code should fail")
	}
}

func TestScale(t *testing.T) {
	if got := Scale(currency.GBP); got != 2 {
		t.Errorf("Scale(GBP) = %d, want 2", got)
	}
	if got := Scale(currency.JPY); got != 0 {
		t.Errorf("Scale(JPY) = %d, want 0", got)
	}
}
