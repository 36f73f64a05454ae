package payments

import "testing"

func TestParseSource(t *testing.T) {
	tests := []struct {
		input   string
		want    Source
		wantErr bool
	}{
		{input: "", want: SourceHome{}},
		{input: "home", want: SourceHome{}},
		{input: "pocketpay://home", want: SourceHome{}},
		{input: "link/coffee-fund", want: SourceDeepLink{LinkID: "coffee-fund"}},
		{input: "pocketpay://link/coffee-fund/", want: SourceDeepLink{LinkID: "coffee-fund"}},
		{input: "pay/sam", want: SourceContact{Handle: "sam"}},
		{input: "pay/@Priya", want: SourceContact{Handle: "priya"}},
		{input: "link/", wantErr: true},
		{input: "link/Not_Valid", wantErr: true},
		{input: "pay/a b", wantErr: true},
		{input: "refund/123", wantErr: true},
		{input: "settings", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSource(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseSource(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSource(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSource(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSource_RoundTrip(t *testing.T) {
	for _, s := range []Source{SourceHome{}, SourceDeepLink{LinkID: "rent-june"}, SourceContact{Handle: "jo"}} {
		got, err := ParseSource(s.String())
		if err != nil {
			t.Fatalf("ParseSource(%q) unexpected error: %v", s, err)
		}
		if got != s {
			t.Errorf("ParseSource(%q) = %#v, want %#v", s, got, s)
		}
	}
}

func TestValidateLinkSlug(t *testing.T) {
	valid := []string{"coffee-fund", "pay-1a2b3c4d5e", "a"}
	for _, s := range valid {
		if err := ValidateLinkSlug(s); err != nil {
			t.Errorf("ValidateLinkSlug(%q) = %v, want nil", s, err)
		}
	}
	invalid := []string{"", "Upper", "-leading", "trailing-", "under_score", "dot.ted"}
	for _, s := range invalid {
		if err := ValidateLinkSlug(s); err == nil {
			t.Errorf("ValidateLinkSlug(%q) = nil, want error", s)
		}
	}
}
