// Package commands provides the CLI command implementations for pocketpay.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/andri/pocketpay/internal/logger"
	"github.com/andri/pocketpay/pkg/config"
	"github.com/andri/pocketpay/pkg/flow"
	"github.com/andri/pocketpay/pkg/tui/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// version information set by build flags
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// annotationLenientConfig marks commands that must run even when the
// configuration does not validate, so they can report on it.
const annotationLenientConfig = "pocketpay/lenient-config"

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	buildDate = d
}

// RootOptions holds the global options for all commands
type RootOptions struct {
	// ConfigFile is the path to the configuration file
	ConfigFile string

	// LogLevel sets the logging level (debug, info, warn, error)
	LogLevel string

	// LogFile sets the file path for log output
	LogFile string

	// LogFormat sets the log encoding (text, json)
	LogFormat string

	// Currency is the ISO 4217 code amounts are entered in
	Currency string

	// Config holds the loaded configuration
	Config config.Config

	// Context is the root context for all operations
	Context context.Context

	// CancelFunc cancels the root context
	CancelFunc context.CancelFunc

	logCloser io.Closer
}

// GlobalOptions is the singleton instance for root options
var GlobalOptions = &RootOptions{}

// NewRootCmd creates the root cobra command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pocketpay",
		Short: "Send and request money from the terminal",
		Long: `pocketpay - payments in your terminal

Request money with shareable payment links, quickpay your contacts, and
check your account details from an interactive terminal UI.

Journeys can be opened directly from a link:
  pocketpay run pocketpay://link/coffee-fund
  pocketpay run pocketpay://pay/@sam`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			cleanup()
		},
	}

	addGlobalFlags(rootCmd)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newAccountCmd())
	rootCmd.AddCommand(newPayCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// addGlobalFlags adds the global flags to the root command
func addGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVar(&GlobalOptions.ConfigFile, "config", "",
		"config file (default: ./pocketpay.yaml, ~/.config/pocketpay/config.yaml, /etc/pocketpay/config.yaml)")
	flags.StringVar(&GlobalOptions.Currency, "currency", "",
		"ISO 4217 currency for amounts (default: GBP)")
	flags.StringVar(&GlobalOptions.LogLevel, "log-level", "",
		"log level: debug, info, warn, error (default: info)")
	flags.StringVar(&GlobalOptions.LogFile, "log-file", "",
		"log file path (default: stderr)")
	flags.StringVar(&GlobalOptions.LogFormat, "log-format", "",
		"log format: text, json (default: text)")
}

// initializeGlobals initializes global options from flags, env, and config file
func initializeGlobals(cmd *cobra.Command) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	GlobalOptions.Context = ctx
	GlobalOptions.CancelFunc = cancel

	loadOpts := config.LoadOptions{
		ConfigFile: GlobalOptions.ConfigFile,
		Flags:      buildFlagSet(cmd),
	}

	result, err := config.LoadConfig(loadOpts)
	if err != nil {
		var verr *config.ValidationError
		if !errors.As(err, &verr) || cmd.Annotations[annotationLenientConfig] == "" {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
	}

	GlobalOptions.Config = result.Config

	if logErr := initLogger(); logErr != nil {
		return fmt.Errorf("failed to initialize logger: %w", logErr)
	}

	if result.ConfigFileUsed != "" {
		logger.Debug("loaded configuration", "file", result.ConfigFileUsed)
	}
	for _, warning := range result.Validation.Warnings {
		logger.Warn("configuration warning", "detail", warning)
	}

	applyPolicies(result.Config)
	return nil
}

// applyPolicies pushes process-wide settings into the packages that read them.
func applyPolicies(cfg config.Config) {
	flow.SetStrict(cfg.Flow.StrictLifecycle)
	flow.SetAnimations(cfg.UI.Animations)
	styles.Apply(cfg.UI.Theme)
}

// buildFlagSet creates a pflag.FlagSet from cobra command flags for config binding
func buildFlagSet(cmd *cobra.Command) *pflag.FlagSet {
	flags := pflag.NewFlagSet("config", pflag.ContinueOnError)

	addIfExists := func(name string) {
		if flags.Lookup(name) != nil {
			return
		}
		if localFlag := cmd.Flags().Lookup(name); localFlag != nil {
			flags.AddFlag(localFlag)
		} else if inheritedFlag := cmd.InheritedFlags().Lookup(name); inheritedFlag != nil {
			flags.AddFlag(inheritedFlag)
		}
	}

	for _, name := range []string{
		"currency", "log-level", "log-file", "log-format",
		"theme", "animations", "exit", "strict", "latency-ms", "failure-rate",
	} {
		addIfExists(name)
	}

	return flags
}

// initLogger initializes the logger based on configuration
func initLogger() error {
	cfg := GlobalOptions.Config.Logging

	var output io.Writer = os.Stderr
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", cfg.File, err)
		}
		output = f
		GlobalOptions.logCloser = f
	}

	logger.SetDefault(logger.New(logger.Config{
		Level:  logger.ParseLevel(cfg.Level),
		Format: logger.ParseFormat(cfg.Format),
		Output: output,
	}))

	return nil
}

// cleanup performs any necessary cleanup before exit
func cleanup() {
	if GlobalOptions.CancelFunc != nil {
		GlobalOptions.CancelFunc()
	}
	if GlobalOptions.logCloser != nil {
		_ = GlobalOptions.logCloser.Close()
		GlobalOptions.logCloser = nil
	}
}

// newVersionCmd creates the version subcommand
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print version, commit, and build date information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "pocketpay version %s\n", version)
			_, _ = fmt.Fprintf(out, "  commit:     %s\n", commit)
			_, _ = fmt.Fprintf(out, "  build date: %s\n", buildDate)
		},
	}
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
