package output_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/andri/pocketpay/pkg/payments"
	"github.com/andri/pocketpay/pkg/tui/output"
	"gopkg.in/yaml.v3"
	testingclock "k8s.io/utils/clock/testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    output.Format
		wantErr bool
	}{
		{"table", output.FormatTable, false},
		{"", output.FormatTable, false},
		{"json", output.FormatJSON, false},
		{"yaml", output.FormatYAML, false},
		{" JSON ", output.FormatJSON, false},
		{"tui", "", true},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := output.ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatList(t *testing.T) {
	if got, want := output.FormatList(), "table, json, yaml"; got != want {
		t.Errorf("FormatList() = %q, want %q", got, want)
	}
}

func TestParseSections(t *testing.T) {
	tests := []struct {
		input   string
		want    []output.Section
		wantErr bool
	}{
		{"", output.AllSections(), false},
		{"account", []output.Section{output.SectionAccount}, false},
		{" contacts , account ", []output.Section{output.SectionContacts, output.SectionAccount}, false},
		{",", output.AllSections(), false},
		{"account,links", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := output.ParseSections(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSections(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSections(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseSections(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func fetch(t *testing.T, opts output.FetchOptions) *output.Data {
	t.Helper()
	if opts.Service == nil {
		opts.Service = payments.NewFakeService(payments.FakeConfig{})
	}
	data, err := output.FetchData(context.Background(), opts)
	if err != nil {
		t.Fatalf("FetchData() error = %v", err)
	}
	return data
}

func TestFetchData(t *testing.T) {
	clk := testingclock.NewFakePassiveClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	data := fetch(t, output.FetchOptions{Sections: output.AllSections(), LinkSlug: "coffee-fund", Clock: clk})

	if data.Account == nil || data.Account.Handle != "alex" {
		t.Fatalf("Account = %+v, want alex", data.Account)
	}
	if data.Account.BalanceMinor != 1_250_00 || data.Account.Currency != "GBP" {
		t.Errorf("balance = %d %s, want 125000 GBP", data.Account.BalanceMinor, data.Account.Currency)
	}
	if len(data.Contacts) != 4 {
		t.Errorf("len(Contacts) = %d, want 4", len(data.Contacts))
	}
	if data.Link == nil || data.Link.Owner != "sam" {
		t.Errorf("Link = %+v, want owner sam", data.Link)
	}
	if !data.FetchedAt.Equal(clk.Now()) {
		t.Errorf("FetchedAt = %v, want %v", data.FetchedAt, clk.Now())
	}
}

func TestFetchDataOnlyRequestedSections(t *testing.T) {
	svc := payments.NewFakeService(payments.FakeConfig{})
	data := fetch(t, output.FetchOptions{Service: svc, Sections: []output.Section{output.SectionContacts}})

	if data.Account != nil {
		t.Errorf("Account = %+v, want nil", data.Account)
	}
	if got := svc.Calls("AccountDetails"); got != 0 {
		t.Errorf("AccountDetails calls = %d, want 0", got)
	}
	if data.Link != nil {
		t.Errorf("Link = %+v, want nil", data.Link)
	}
}

func TestFetchDataPropagatesErrors(t *testing.T) {
	svc := payments.NewFakeService(payments.FakeConfig{})
	svc.FailNext(payments.NewServiceError("AccountDetails", payments.CodeUnavailable, errors.New("down")))

	_, err := output.FetchData(context.Background(), output.FetchOptions{Service: svc, Sections: output.AllSections()})
	if err == nil {
		t.Fatal("FetchData() error = nil, want error")
	}
	if payments.CodeOf(err) != payments.CodeUnavailable {
		t.Errorf("CodeOf(err) = %q, want %q", payments.CodeOf(err), payments.CodeUnavailable)
	}

	_, err = output.FetchData(context.Background(), output.FetchOptions{Service: svc, LinkSlug: "missing-link"})
	if !payments.IsNotFound(err) {
		t.Errorf("FetchData(missing link) error = %v, want not found", err)
	}
}

func TestRenderTable(t *testing.T) {
	data := fetch(t, output.FetchOptions{Sections: output.AllSections(), LinkSlug: "coffee-fund"})

	var buf bytes.Buffer
	if err := output.Render(&buf, data, output.FormatTable); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	got := buf.String()
	for _, want := range []string{
		"Account: Alex Morgan (@alex)",
		"1,250.00",
		"=== CONTACTS (4) ===",
		"HANDLE",
		"@priya",
		"Priya Shah",
		"=== LINK (1) ===",
		"pocketpay://link/coffee-fund",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "\033[") {
		t.Error("table output to a buffer should not be colored")
	}
}

func TestRenderTableNoData(t *testing.T) {
	var buf bytes.Buffer
	if err := output.RenderTable(&buf, &output.Data{}); err != nil {
		t.Fatalf("RenderTable() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("RenderTable(empty) = %q, want empty", buf.String())
	}
}

func TestRenderJSONParseable(t *testing.T) {
	data := fetch(t, output.FetchOptions{Sections: output.AllSections()})

	var buf bytes.Buffer
	if err := output.Render(&buf, data, output.FormatJSON); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	account, ok := decoded["account"].(map[string]any)
	if !ok {
		t.Fatalf("account = %T, want object", decoded["account"])
	}
	if account["sort_code"] != "04-00-75" {
		t.Errorf("sort_code = %v, want 04-00-75", account["sort_code"])
	}
	if _, ok := decoded["link"]; ok {
		t.Error("link should be omitted when not requested")
	}
}

func TestRenderYAMLParseable(t *testing.T) {
	data := fetch(t, output.FetchOptions{Sections: []output.Section{output.SectionContacts}})

	var buf bytes.Buffer
	if err := output.Render(&buf, data, output.FormatYAML); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var decoded struct {
		Contacts []output.ContactView `yaml:"contacts"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}
	if len(decoded.Contacts) != 4 || decoded.Contacts[0].Handle != "sam" {
		t.Errorf("Contacts = %+v, want 4 starting with sam", decoded.Contacts)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if err := output.Render(&bytes.Buffer{}, &output.Data{}, output.Format("xml")); err == nil {
		t.Error("Render(xml) error = nil, want error")
	}
}
