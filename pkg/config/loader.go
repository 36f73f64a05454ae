package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. POCKETPAY_UI_THEME.
const EnvPrefix = "POCKETPAY"

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	ConfigFile  string
	ConfigFiles []string
	Flags       *pflag.FlagSet
}

// LoadResult contains the merged configuration and validation output.
type LoadResult struct {
	Config         Config
	Validation     ValidationResult
	ConfigFileUsed string
}

// LoadConfig loads configuration from defaults, file, env, and flags.
func LoadConfig(opts LoadOptions) (LoadResult, error) {
	v := viper.New()
	setDefaults(v)
	configureEnv(v)

	if opts.Flags != nil {
		if err := BindFlags(v, opts.Flags); err != nil {
			return LoadResult{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	configPath, err := resolveConfigFile(opts)
	if err != nil {
		return LoadResult{}, err
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return LoadResult{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return LoadResult{}, fmt.Errorf("unmarshal config: %w", err)
	}
	normalize(&cfg)

	result := LoadResult{
		Config:         cfg,
		Validation:     ValidateConfig(cfg),
		ConfigFileUsed: v.ConfigFileUsed(),
	}
	for _, key := range unknownKeys(v) {
		result.Validation.Errors = append(result.Validation.Errors, fmt.Errorf("unknown config key %q", key))
	}
	if result.Validation.HasErrors() {
		return result, &ValidationError{Result: result.Validation}
	}

	return result, nil
}

// BindFlags binds supported CLI flags to viper keys.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"theme":        "ui.theme",
		"animations":   "ui.animations",
		"exit":         "ui.exit",
		"strict":       "flow.strict-lifecycle",
		"latency-ms":   "service.latency-ms",
		"failure-rate": "service.failure-rate",
		"currency":     "service.currency",
		"log-level":    "logging.level",
		"log-file":     "logging.file",
		"log-format":   "logging.format",
	}

	for flag, key := range bindings {
		if flags.Lookup(flag) == nil {
			continue
		}
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %q: %w", flag, err)
		}
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	for key, value := range defaultValues() {
		v.SetDefault(key, value)
	}
}

// defaultValues maps every known key to its default.
func defaultValues() map[string]any {
	defaults := DefaultConfig()

	return map[string]any{
		"ui.theme":       defaults.UI.Theme,
		"ui.animations":  defaults.UI.Animations,
		"ui.modal-width": defaults.UI.ModalWidth,
		"ui.exit":        defaults.UI.Exit,

		"flow.strict-lifecycle": defaults.Flow.StrictLifecycle,

		"service.latency-ms":           defaults.Service.LatencyMS,
		"service.failure-rate":         defaults.Service.FailureRate,
		"service.currency":             defaults.Service.Currency,
		"service.call-timeout-seconds": defaults.Service.CallTimeoutSeconds,

		"retry.max-retries":        defaults.Retry.MaxRetries,
		"retry.initial-backoff-ms": defaults.Retry.InitialBackoffMS,
		"retry.max-backoff-ms":     defaults.Retry.MaxBackoffMS,
		"retry.backoff-multiplier": defaults.Retry.BackoffMultiplier,

		"logging.level":  defaults.Logging.Level,
		"logging.file":   defaults.Logging.File,
		"logging.format": defaults.Logging.Format,
	}
}

// unknownKeys lists keys set in the config file that no setting reads.
func unknownKeys(v *viper.Viper) []string {
	known := defaultValues()
	var unknown []string
	for _, key := range v.AllKeys() {
		if _, ok := known[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	slices.Sort(unknown)
	return unknown
}

func configureEnv(v *viper.Viper) {
	replacer := strings.NewReplacer(".", "_", "-", "_")
	v.SetEnvKeyReplacer(replacer)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
}

// normalize canonicalizes case-insensitive values.
func normalize(cfg *Config) {
	cfg.Service.Currency = strings.ToUpper(strings.TrimSpace(cfg.Service.Currency))
	cfg.UI.Theme = strings.ToLower(strings.TrimSpace(cfg.UI.Theme))
	cfg.UI.Exit = strings.ToLower(strings.TrimSpace(cfg.UI.Exit))
}

func resolveConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("config file not found: %s", opts.ConfigFile)
			}
			return "", fmt.Errorf("config file error: %w", err)
		}
		return opts.ConfigFile, nil
	}

	candidates := opts.ConfigFiles
	if len(candidates) == 0 {
		candidates = defaultConfigFiles()
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		info, err := os.Stat(candidate)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return "", fmt.Errorf("config file error: %w", err)
		}
		if info.IsDir() {
			continue
		}
		return candidate, nil
	}

	return "", nil
}

func defaultConfigFiles() []string {
	files := []string{"./pocketpay.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, ".config", "pocketpay", "config.yaml"))
	}
	files = append(files, "/etc/pocketpay/config.yaml")
	return files
}
