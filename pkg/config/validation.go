package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/currency"
)

// ValidationError wraps a ValidationResult as an error.
// It provides actionable error messages that include all validation issues.
type ValidationError struct {
	Result ValidationResult
}

// Error implements the error interface, returning all validation errors as a single message.
func (e *ValidationError) Error() string {
	if len(e.Result.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Result.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Result.Errors[0])
	}
	var b strings.Builder
	b.WriteString("configuration validation failed:")
	for _, err := range e.Result.Errors {
		b.WriteString("\n  - ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying errors joined together.
func (e *ValidationError) Unwrap() error {
	return errors.Join(e.Result.Errors...)
}

// ValidationResult captures validation errors and warnings.
type ValidationResult struct {
	Errors   []error
	Warnings []string
}

// HasErrors reports whether validation errors exist.
func (r ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings reports whether validation warnings exist.
func (r ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Allowed values for enumerated settings.
var (
	allowedThemes     = []string{"default", "mono"}
	allowedExits      = []string{"stay", "quit"}
	allowedLogLevels  = []string{"debug", "info", "warn", "error"}
	allowedLogFormats = []string{"text", "json"}
)

// ValidateConfig validates configuration values and returns all issues.
func ValidateConfig(cfg Config) ValidationResult {
	var result ValidationResult
	fail := func(format string, args ...any) {
		result.Errors = append(result.Errors, fmt.Errorf(format, args...))
	}
	warn := func(format string, args ...any) {
		result.Warnings = append(result.Warnings, fmt.Sprintf(format, args...))
	}

	if !slices.Contains(allowedThemes, cfg.UI.Theme) {
		fail("invalid ui.theme %q: allowed values are %v", cfg.UI.Theme, allowedThemes)
	}
	if !slices.Contains(allowedExits, cfg.UI.Exit) {
		fail("invalid ui.exit %q: allowed values are %v", cfg.UI.Exit, allowedExits)
	}
	if cfg.UI.ModalWidth < minModalWidth {
		fail("ui.modal-width must be >= %d, got: %d", minModalWidth, cfg.UI.ModalWidth)
	}

	if err := validateCurrency(cfg.Service.Currency); err != nil {
		result.Errors = append(result.Errors, err)
	}
	if cfg.Service.LatencyMS < 0 {
		fail("service.latency-ms must be >= 0, got: %d", cfg.Service.LatencyMS)
	} else if cfg.Service.LatencyMS > warnLatencyMS {
		warn("service.latency-ms=%d is above %dms - journeys will feel unresponsive", cfg.Service.LatencyMS, warnLatencyMS)
	}
	if cfg.Service.FailureRate < 0 || cfg.Service.FailureRate > 1 {
		fail("service.failure-rate must be between 0 and 1, got: %g", cfg.Service.FailureRate)
	} else if cfg.Service.FailureRate > warnFailureRate {
		warn("service.failure-rate=%g fails most calls", cfg.Service.FailureRate)
	}
	if cfg.Service.CallTimeoutSeconds < 1 || cfg.Service.CallTimeoutSeconds > maxCallTimeoutSeconds {
		fail("timeout must be between 1 and %d seconds, got: %d", maxCallTimeoutSeconds, cfg.Service.CallTimeoutSeconds)
	}
	if cfg.Service.CallTimeout() <= cfg.Service.Latency() {
		warn("service.call-timeout-seconds=%d does not exceed service.latency-ms=%d - every call will time out",
			cfg.Service.CallTimeoutSeconds, cfg.Service.LatencyMS)
	}

	if cfg.Retry.MaxRetries < 0 || cfg.Retry.MaxRetries > maxRetriesUpperBound {
		fail("retry.max-retries must be between 0 and %d, got: %d", maxRetriesUpperBound, cfg.Retry.MaxRetries)
	}
	if cfg.Retry.InitialBackoffMS <= 0 {
		fail("retry.initial-backoff-ms must be > 0, got: %d", cfg.Retry.InitialBackoffMS)
	}
	if cfg.Retry.MaxBackoffMS < cfg.Retry.InitialBackoffMS {
		fail("retry.max-backoff-ms (%d) must be >= retry.initial-backoff-ms (%d)",
			cfg.Retry.MaxBackoffMS, cfg.Retry.InitialBackoffMS)
	}
	if cfg.Retry.BackoffMultiplier < 1 {
		fail("retry.backoff-multiplier must be >= 1, got: %g", cfg.Retry.BackoffMultiplier)
	}

	// Validate logging.level
	if cfg.Logging.Level != "" && !slices.Contains(allowedLogLevels, cfg.Logging.Level) {
		fail("invalid logging.level %q: allowed values are %v", cfg.Logging.Level, allowedLogLevels)
	}

	// Validate logging.format
	if cfg.Logging.Format != "" && !slices.Contains(allowedLogFormats, cfg.Logging.Format) {
		fail("invalid logging.format %q: allowed values are %v", cfg.Logging.Format, allowedLogFormats)
	}

	return result
}

func validateCurrency(code string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("invalid service.currency %q: must be an ISO 4217 code", code)
	}
	if _, err := currency.ParseISO(code); err != nil {
		return fmt.Errorf("invalid service.currency %q: must be an ISO 4217 code", code)
	}
	return nil
}
