// Package commands provides the CLI command implementations for pocketpay.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/andri/pocketpay/pkg/payments"
	"github.com/andri/pocketpay/pkg/tui/output"
	"github.com/spf13/cobra"
)

// AccountOptions holds options specific to the account command
type AccountOptions struct {
	// Output specifies the output format: table, json, yaml
	Output string

	// Show specifies which sections to display (comma-separated)
	Show string

	// Link is an optional payment link slug to look up
	Link string

	// Watch enables continuous refresh mode
	Watch bool

	// RefreshInterval is the refresh interval in seconds (for watch mode)
	RefreshInterval int
}

// newAccountCmd creates the account subcommand
func newAccountCmd() *cobra.Command {
	opts := &AccountOptions{}

	cmd := &cobra.Command{
		Use:   "account",
		Short: "Print account details and contacts",
		Long: `Print account details, contacts and payment links without the interactive UI.

Useful for scripting: --output json and --output yaml produce stable,
machine-readable documents.`,
		Example: `  # Account summary and contacts
  pocketpay account

  # Contacts only, as JSON
  pocketpay account --show contacts --output json

  # Look up a payment link
  pocketpay account --show account --link coffee-fund

  # Keep the balance on screen, refreshing every 5 seconds
  pocketpay account --watch --refresh 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAccount(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Output, "output", "o", string(output.FormatTable),
		"output format: "+output.FormatList())
	flags.StringVar(&opts.Show, "show", "",
		"sections to display (comma-separated): account,contacts")
	flags.StringVar(&opts.Link, "link", "",
		"payment link slug to look up")
	flags.BoolVarP(&opts.Watch, "watch", "w", false,
		"enable continuous refresh mode")
	flags.IntVar(&opts.RefreshInterval, "refresh", 2,
		"refresh interval in seconds (requires --watch)")

	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(output.Formats))
		for i, f := range output.Formats {
			names[i] = f.String()
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("show", cobra.FixedCompletions(
		[]string{string(output.SectionAccount), string(output.SectionContacts)}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// runAccount fetches and renders account data once, or until cancelled in watch mode
func runAccount(ctx context.Context, out io.Writer, opts *AccountOptions) error {
	cfg := GlobalOptions.Config
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := output.ParseFormat(opts.Output)
	if err != nil {
		return fmt.Errorf("--output must be one of: %s, got %q", output.FormatList(), opts.Output)
	}
	sections, err := output.ParseSections(opts.Show)
	if err != nil {
		return err
	}
	slug := strings.TrimSpace(opts.Link)
	if slug != "" {
		if err := payments.ValidateLinkSlug(slug); err != nil {
			return fmt.Errorf("--link: %w", err)
		}
	}

	svc, _, err := newService(cfg)
	if err != nil {
		return err
	}

	fetch := func(ctx context.Context) (*output.Data, error) {
		ctx, cancel := context.WithTimeout(ctx, cfg.Service.CallTimeout())
		defer cancel()
		return output.FetchData(ctx, output.FetchOptions{
			Service:  svc,
			Sections: sections,
			LinkSlug: slug,
			Clock:    newClock(),
		})
	}

	if !opts.Watch {
		data, err := fetch(ctx)
		if err != nil {
			return err
		}
		return output.Render(out, data, format)
	}

	if opts.RefreshInterval < 1 {
		return fmt.Errorf("--refresh must be at least 1 second, got %d", opts.RefreshInterval)
	}
	return output.NewWatchRunner(output.WatchOptions{
		Interval:  time.Duration(opts.RefreshInterval) * time.Second,
		Format:    format,
		FetchFunc: fetch,
		Writer:    out,
		Command:   "pocketpay account",
		Clock:     newClock(),
	}).Run(ctx)
}
