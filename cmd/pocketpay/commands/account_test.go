package commands_test

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAccountTable(t *testing.T) {
	t.Setenv("POCKETPAY_SERVICE_LATENCY_MS", "0")

	output, err := execute(t, "account")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Account: Alex Morgan (@alex)", "1,250.00", "=== CONTACTS (4) ===", "@sam"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got %q", want, output)
		}
	}
}

func TestAccountJSONWithLink(t *testing.T) {
	t.Setenv("POCKETPAY_SERVICE_LATENCY_MS", "0")

	output, err := execute(t, "account", "--show", "account", "--link", "coffee-fund", "-o", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result struct {
		Account  map[string]any   `json:"account"`
		Contacts []map[string]any `json:"contacts"`
		Link     map[string]any   `json:"link"`
	}
	if unmarshalErr := json.Unmarshal([]byte(output), &result); unmarshalErr != nil {
		t.Fatalf("expected valid JSON output, got error: %v", unmarshalErr)
	}
	if result.Account["handle"] != "alex" {
		t.Errorf("account.handle = %v, want alex", result.Account["handle"])
	}
	if result.Contacts != nil {
		t.Errorf("contacts = %v, want omitted", result.Contacts)
	}
	if result.Link["owner"] != "sam" {
		t.Errorf("link.owner = %v, want sam", result.Link["owner"])
	}
}

func TestAccountCurrencyFlag(t *testing.T) {
	t.Setenv("POCKETPAY_SERVICE_LATENCY_MS", "0")

	output, err := execute(t, "--currency", "EUR", "account", "--show", "account", "-o", "yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "currency: EUR") {
		t.Errorf("expected EUR account, got %q", output)
	}
}

func TestAccountErrors(t *testing.T) {
	t.Setenv("POCKETPAY_SERVICE_LATENCY_MS", "0")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad output", []string{"account", "-o", "xml"}, "--output must be one of"},
		{"bad section", []string{"account", "--show", "links"}, "unknown section"},
		{"bad slug", []string{"account", "--link", "Not A Slug"}, "--link"},
		{"missing link", []string{"account", "--link", "no-such-link"}, "not_found"},
		{"bad refresh", []string{"account", "--watch", "--refresh", "0"}, "--refresh must be at least 1 second"},
		{"positional args", []string{"account", "extra"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatalf("expected error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}
