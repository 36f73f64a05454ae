// Package commands provides the CLI command implementations for pocketpay.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andri/pocketpay/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ConfigShowOptions holds options for the config show command
type ConfigShowOptions struct {
	Format string
}

// ConfigValidateOptions holds options for the config validate command
type ConfigValidateOptions struct {
	ConfigFile string
	Format     string
}

// newConfigCmd creates the config subcommand with its subcommands
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Manage pocketpay configuration.

Configuration is loaded from multiple sources in order of precedence:
  1. CLI flags (highest priority)
  2. Environment variables (POCKETPAY_* prefix, e.g. POCKETPAY_SERVICE_CURRENCY)
  3. Config file (./pocketpay.yaml, ~/.config/pocketpay/config.yaml, /etc/pocketpay/config.yaml)
  4. Default values (lowest priority)`,
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigValidateCmd())

	return cmd
}

// newConfigShowCmd creates the config show subcommand
func newConfigShowCmd() *cobra.Command {
	opts := &ConfigShowOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long: `Show the effective configuration after merging all sources.

Displays the final configuration values that will be used by pocketpay,
including the source file if one was loaded.`,
		Example: `  # Show configuration in YAML format (default)
  pocketpay config show

  # Show configuration in JSON format
  pocketpay config show --format json`,
		Annotations: map[string]string{annotationLenientConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "yaml",
		"output format: yaml, json")

	return cmd
}

// newConfigValidateCmd creates the config validate subcommand
func newConfigValidateCmd() *cobra.Command {
	opts := &ConfigValidateOptions{}

	cmd := &cobra.Command{
		Use:   "validate [config-file]",
		Short: "Validate configuration",
		Long: `Validate configuration file and report any errors or warnings.

Returns exit code 0 if configuration is valid, 1 if there are errors.
Warnings are reported but don't affect the exit code.`,
		Example: `  # Validate the discovered configuration
  pocketpay config validate

  # Validate a specific config file
  pocketpay config validate /path/to/config.yaml

  # Output validation results as JSON
  pocketpay config validate --format json`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{annotationLenientConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.ConfigFile = args[0]
			}
			return runConfigValidate(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text",
		"output format: text, json, yaml")

	return cmd
}

// ConfigOutput represents the configuration output structure
type ConfigOutput struct {
	ConfigFile string        `json:"configFile,omitempty" yaml:"configFile,omitempty"`
	Config     config.Config `json:"config" yaml:"config"`
}

// ValidationOutput represents validation results for output
type ValidationOutput struct {
	Valid    bool     `json:"valid" yaml:"valid"`
	Errors   []string `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func runConfigShow(out io.Writer, opts *ConfigShowOptions) error {
	output := ConfigOutput{
		Config: GlobalOptions.Config,
	}

	// Report the file the effective configuration came from
	result, err := config.LoadConfig(config.LoadOptions{ConfigFile: GlobalOptions.ConfigFile})
	var verr *config.ValidationError
	if (err == nil || errors.As(err, &verr)) && result.ConfigFileUsed != "" {
		output.ConfigFile = result.ConfigFileUsed
	}

	return writeStructured(out, output, opts.Format, "config")
}

func runConfigValidate(out io.Writer, opts *ConfigValidateOptions) error {
	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = GlobalOptions.ConfigFile
	}

	result, loadErr := config.LoadConfig(config.LoadOptions{ConfigFile: configFile})

	validationOutput := ValidationOutput{
		Valid:    true,
		Errors:   []string{},
		Warnings: []string{},
	}

	// Validation issues are listed individually below; other load errors
	// (missing file, bad YAML) are reported as they are.
	var verr *config.ValidationError
	if loadErr != nil && !errors.As(loadErr, &verr) {
		validationOutput.Valid = false
		validationOutput.Errors = append(validationOutput.Errors, loadErr.Error())
	}
	for _, err := range result.Validation.Errors {
		validationOutput.Valid = false
		validationOutput.Errors = append(validationOutput.Errors, err.Error())
	}
	validationOutput.Warnings = append(validationOutput.Warnings, result.Validation.Warnings...)

	switch strings.ToLower(opts.Format) {
	case "json", "yaml":
		if err := writeStructured(out, validationOutput, opts.Format, "validation result"); err != nil {
			return err
		}

	default: // text
		if result.ConfigFileUsed != "" {
			_, _ = fmt.Fprintf(out, "Config file: %s\n\n", result.ConfigFileUsed)
		} else {
			_, _ = fmt.Fprint(out, "Config file: (none - using defaults)\n\n")
		}

		if validationOutput.Valid {
			_, _ = fmt.Fprintln(out, "Configuration is valid.")
		} else {
			_, _ = fmt.Fprintln(out, "Configuration has errors:")
			for _, err := range validationOutput.Errors {
				_, _ = fmt.Fprintf(out, "  - %s\n", err)
			}
		}

		if len(validationOutput.Warnings) > 0 {
			_, _ = fmt.Fprintln(out, "\nWarnings:")
			for _, warn := range validationOutput.Warnings {
				_, _ = fmt.Fprintf(out, "  - %s\n", warn)
			}
		}
	}

	// The details have been printed; the error only sets the exit code
	if !validationOutput.Valid {
		return fmt.Errorf("configuration validation failed")
	}

	return nil
}

// writeStructured encodes v as JSON or, by default, YAML.
func writeStructured(out io.Writer, v any, format, what string) error {
	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", what, err)
		}
		_, _ = fmt.Fprintln(out, string(data))
	default:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", what, err)
		}
		_, _ = fmt.Fprint(out, string(data))
	}
	return nil
}
