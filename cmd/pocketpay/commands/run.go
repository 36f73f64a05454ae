// Package commands provides the CLI command implementations for pocketpay.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/andri/pocketpay/internal/logger"
	"github.com/andri/pocketpay/pkg/payments"
	"github.com/andri/pocketpay/pkg/tui/components"
	"github.com/andri/pocketpay/pkg/tui/models"
	"github.com/andri/pocketpay/pkg/tui/styles"
	"github.com/andri/pocketpay/pkg/tui/terminal"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// RunOptions holds options specific to the run command. The values reach
// the program through configuration binding.
type RunOptions struct {
	Exit        string
	Theme       string
	Animations  bool
	Strict      bool
	LatencyMS   int
	FailureRate float64
}

// newRunCmd creates the run subcommand
func newRunCmd() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run [source]",
		Short: "Open the interactive payments UI",
		Long: `Open the interactive payments UI.

Without a source the home menu is shown. A source opens a journey directly:
  home                          the home menu
  pocketpay://link/<slug>       pay a payment link
  pocketpay://pay/<handle>      quickpay a contact

With --exit quit the program ends as soon as that journey finishes.`,
		Example: `  # Open the home menu
  pocketpay run

  # Pay a link and exit afterwards
  pocketpay run pocketpay://link/coffee-fund --exit quit

  # Quickpay a contact with a slow, flaky backend
  pocketpay run pocketpay://pay/@sam --latency-ms 1500 --failure-rate 0.3`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return []string{
				"home",
				payments.SchemePrefix + "link/",
				payments.SchemePrefix + "pay/",
			}, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := ""
			if len(args) > 0 {
				raw = args[0]
			}
			return runRun(cmd.Context(), cmd.OutOrStdout(), raw)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Exit, "exit", "stay",
		"when a journey opened from a source finishes: stay, quit")
	flags.StringVar(&opts.Theme, "theme", "default",
		"color theme: default, mono")
	flags.BoolVar(&opts.Animations, "animations", true,
		"animate dismissals")
	flags.BoolVar(&opts.Strict, "strict", false,
		"panic on flow lifecycle misuse instead of logging it")
	flags.IntVar(&opts.LatencyMS, "latency-ms", 400,
		"simulated service latency in milliseconds")
	flags.Float64Var(&opts.FailureRate, "failure-rate", 0,
		"probability (0..1) that a service call fails")

	return cmd
}

// runRun starts the Bubble Tea program for the given source
func runRun(ctx context.Context, out io.Writer, raw string) error {
	cfg := GlobalOptions.Config
	if ctx == nil {
		ctx = context.Background()
	}

	src, err := payments.ParseSource(raw)
	if err != nil {
		return fmt.Errorf("invalid source %q: %w", raw, err)
	}

	if !isInteractive() {
		return errors.New("run needs an interactive terminal; use 'pocketpay account' for scripted output")
	}
	terminal.ConfigureLipgloss(terminal.DetectCapabilities())

	svc, cur, err := newService(cfg)
	if err != nil {
		return err
	}

	app := models.NewAppModel(models.AppConfig{
		Source:      src,
		Exit:        models.ParseExitBehavior(cfg.UI.Exit),
		Service:     svc,
		Currency:    cur,
		Modal:       components.ModalConfig{Width: cfg.UI.ModalWidth},
		CallTimeout: cfg.Service.CallTimeout(),
		Context:     ctx,
	})

	logger.Info("starting ui", "source", src.String(), "exit", cfg.UI.Exit)
	finalModel, err := runProgram(ctx, app)
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("TUI error: %w", err)
	}

	appModel, ok := finalModel.(*models.AppModel)
	if !ok {
		return nil
	}
	if !appModel.IsInitialized() {
		return errors.New("ui was cancelled before it started")
	}
	if summary := appModel.LastSummary(); summary != nil {
		mark, style := styles.IconCheckmark, styles.StyleSuccess
		if summary.Failed {
			mark, style = styles.IconCross, styles.StyleError
		}
		_, _ = fmt.Fprintln(out, style.Render(mark+" "+summary.Text))
	}
	return nil
}
