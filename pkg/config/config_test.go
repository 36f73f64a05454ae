package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/andri/pocketpay/pkg/config"
)

func TestConfigStringIncludesSections(t *testing.T) {
	cfg := config.DefaultConfig()
	output := cfg.String()

	for _, section := range []string{"ui:", "flow:", "service:", "retry:", "logging:"} {
		if !strings.Contains(output, section) {
			t.Fatalf("expected output to include %q", section)
		}
	}
	if !strings.Contains(output, "currency: GBP") {
		t.Errorf("expected default currency in output, got:\n%s", output)
	}
}

func TestConfigDurations(t *testing.T) {
	cfg := config.DefaultConfig()

	if got := cfg.Service.Latency(); got != 400*time.Millisecond {
		t.Errorf("Latency() = %v, want %v", got, 400*time.Millisecond)
	}
	if got := cfg.Service.CallTimeout(); got != 10*time.Second {
		t.Errorf("CallTimeout() = %v, want %v", got, 10*time.Second)
	}
	if got := cfg.Retry.InitialBackoff(); got != 200*time.Millisecond {
		t.Errorf("InitialBackoff() = %v, want %v", got, 200*time.Millisecond)
	}
	if got := cfg.Retry.MaxBackoff(); got != 2*time.Second {
		t.Errorf("MaxBackoff() = %v, want %v", got, 2*time.Second)
	}
}
