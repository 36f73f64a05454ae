package config

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme              = "default"
	DefaultAnimations         = true
	DefaultModalWidth         = 60
	DefaultExit               = "stay"
	DefaultStrictLifecycle    = false
	DefaultLatencyMS          = 400
	DefaultFailureRate        = 0.0
	DefaultCurrency           = "GBP"
	DefaultCallTimeoutSeconds = 10
	DefaultMaxRetries         = 3
	DefaultInitialBackoffMS   = 200
	DefaultMaxBackoffMS       = 2000
	DefaultBackoffMultiplier  = 2.0
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
	minModalWidth             = 30
	warnLatencyMS             = 5000
	warnFailureRate           = 0.5
	maxCallTimeoutSeconds     = 120
	maxRetriesUpperBound      = 10
)

// Config holds the full configuration schema for pocketpay.
type Config struct {
	UI      UIConfig      `mapstructure:"ui" yaml:"ui" json:"ui"`
	Flow    FlowConfig    `mapstructure:"flow" yaml:"flow" json:"flow"`
	Service ServiceConfig `mapstructure:"service" yaml:"service" json:"service"`
	Retry   RetryConfig   `mapstructure:"retry" yaml:"retry" json:"retry"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" json:"logging"`
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	// Theme is "default" or "mono"
	Theme string `mapstructure:"theme" yaml:"theme" json:"theme"`

	// Animations marks dismissals as animated
	Animations bool `mapstructure:"animations" yaml:"animations" json:"animations"`

	// ModalWidth is the preferred width of the box journeys are framed in
	ModalWidth int `mapstructure:"modal-width" yaml:"modal-width" json:"modal-width"`

	// Exit is what happens when a journey opened from the command line finishes: stay or quit
	Exit string `mapstructure:"exit" yaml:"exit" json:"exit"`
}

// FlowConfig controls lifecycle checking.
type FlowConfig struct {
	// StrictLifecycle panics on lifecycle misuse instead of logging it
	StrictLifecycle bool `mapstructure:"strict-lifecycle" yaml:"strict-lifecycle" json:"strict-lifecycle"`
}

// ServiceConfig shapes the in-process payments backend.
type ServiceConfig struct {
	LatencyMS          int     `mapstructure:"latency-ms" yaml:"latency-ms" json:"latency-ms"`
	FailureRate        float64 `mapstructure:"failure-rate" yaml:"failure-rate" json:"failure-rate"`
	Currency           string  `mapstructure:"currency" yaml:"currency" json:"currency"`
	CallTimeoutSeconds int     `mapstructure:"call-timeout-seconds" yaml:"call-timeout-seconds" json:"call-timeout-seconds"`
}

// RetryConfig controls retries of read-only service calls.
type RetryConfig struct {
	MaxRetries        int     `mapstructure:"max-retries" yaml:"max-retries" json:"max-retries"`
	InitialBackoffMS  int     `mapstructure:"initial-backoff-ms" yaml:"initial-backoff-ms" json:"initial-backoff-ms"`
	MaxBackoffMS      int     `mapstructure:"max-backoff-ms" yaml:"max-backoff-ms" json:"max-backoff-ms"`
	BackoffMultiplier float64 `mapstructure:"backoff-multiplier" yaml:"backoff-multiplier" json:"backoff-multiplier"`
}

// LoggingConfig controls log output settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	File   string `mapstructure:"file" yaml:"file" json:"file"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// DefaultConfig returns a config with all default values applied.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			Theme:      DefaultTheme,
			Animations: DefaultAnimations,
			ModalWidth: DefaultModalWidth,
			Exit:       DefaultExit,
		},
		Flow: FlowConfig{
			StrictLifecycle: DefaultStrictLifecycle,
		},
		Service: ServiceConfig{
			LatencyMS:          DefaultLatencyMS,
			FailureRate:        DefaultFailureRate,
			Currency:           DefaultCurrency,
			CallTimeoutSeconds: DefaultCallTimeoutSeconds,
		},
		Retry: RetryConfig{
			MaxRetries:        DefaultMaxRetries,
			InitialBackoffMS:  DefaultInitialBackoffMS,
			MaxBackoffMS:      DefaultMaxBackoffMS,
			BackoffMultiplier: DefaultBackoffMultiplier,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			File:   "",
			Format: DefaultLogFormat,
		},
	}
}

// Latency returns the configured service latency.
func (s ServiceConfig) Latency() time.Duration {
	return time.Duration(s.LatencyMS) * time.Millisecond
}

// CallTimeout returns the per-call deadline.
func (s ServiceConfig) CallTimeout() time.Duration {
	return time.Duration(s.CallTimeoutSeconds) * time.Second
}

// InitialBackoff returns the first retry delay.
func (r RetryConfig) InitialBackoff() time.Duration {
	return time.Duration(r.InitialBackoffMS) * time.Millisecond
}

// MaxBackoff returns the retry delay ceiling.
func (r RetryConfig) MaxBackoff() time.Duration {
	return time.Duration(r.MaxBackoffMS) * time.Millisecond
}

// String renders the configuration as YAML.
func (c Config) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("Config{error: %v}", err)
	}

	return strings.TrimSpace(string(data))
}
