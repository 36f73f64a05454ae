// Package commands provides the CLI command implementations for pocketpay.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/andri/pocketpay/internal/logger"
	"github.com/andri/pocketpay/pkg/cli"
	"github.com/andri/pocketpay/pkg/payments"
	"github.com/spf13/cobra"
)

// PayOptions holds options specific to the pay command
type PayOptions struct {
	// Yes skips the confirmation prompt
	Yes bool
}

// newPayCmd creates the pay subcommand
func newPayCmd() *cobra.Command {
	opts := &PayOptions{}

	cmd := &cobra.Command{
		Use:   "pay <handle> <amount>",
		Short: "Quickpay a contact without the interactive UI",
		Long: `Quickpay a contact without the interactive UI.

The amount is in the configured currency (see --currency). You are asked to
confirm before anything is sent unless --yes is given.`,
		Example: `  # Pay Sam five pounds, asking first
  pocketpay pay @sam 5

  # Pay without prompting
  pocketpay pay sam 12.50 --yes`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPay(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args[0], args[1], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false,
		"skip the confirmation prompt")

	return cmd
}

// runPay looks up the contact, confirms and sends a single payment
func runPay(ctx context.Context, in io.Reader, out io.Writer, handle, rawAmount string, opts *PayOptions) error {
	cfg := GlobalOptions.Config
	if ctx == nil {
		ctx = context.Background()
	}

	handle = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(handle), "@"))
	if err := payments.ValidateHandle(handle); err != nil {
		return err
	}

	svc, cur, err := newService(cfg)
	if err != nil {
		return err
	}
	amount, err := payments.ParseAmount(rawAmount, cur)
	if err != nil {
		return err
	}

	pw := cli.NewProgressWriter(out)
	call := func(fn func(ctx context.Context) error) error {
		ctx, cancel := context.WithTimeout(ctx, cfg.Service.CallTimeout())
		defer cancel()
		return fn(ctx)
	}

	pw.OnProgress(cli.Progress{Stage: cli.StageLookup, Description: "Looking up @" + handle})
	var (
		contact payments.Contact
		account payments.Account
	)
	err = call(func(ctx context.Context) error {
		contacts, err := svc.Contacts(ctx)
		if err != nil {
			return err
		}
		found := false
		for _, c := range contacts {
			if c.Handle == handle {
				contact, found = c, true
				break
			}
		}
		if !found {
			return fmt.Errorf("@%s is not one of your contacts", handle)
		}
		account, err = svc.AccountDetails(ctx)
		return err
	})
	if err != nil {
		pw.PrintError(err.Error())
		return err
	}

	pw.PrintSummary(cli.PaymentSummary{
		To:      contact.Handle,
		Name:    contact.Name,
		Amount:  amount.String(),
		Balance: account.Balance.String(),
	})

	ok, err := cli.Confirm(cli.ConfirmOptions{
		Question:   fmt.Sprintf("Send %s to @%s?", amount, contact.Handle),
		SkipPrompt: opts.Yes,
		Input:      in,
		Output:     out,
	})
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(out, "Payment cancelled.")
		return nil
	}

	pw.OnProgress(cli.Progress{Stage: cli.StageSending, Description: fmt.Sprintf("Sending %s", amount)})
	var receipt payments.Receipt
	err = call(func(ctx context.Context) error {
		receipt, err = svc.Quickpay(ctx, contact.Handle, amount)
		return err
	})
	if err != nil {
		logger.Warn("quickpay failed", "to", contact.Handle, "error", err)
		pw.PrintError(payments.UserMessage(err))
		return fmt.Errorf("payment to @%s failed: %w", contact.Handle, err)
	}

	logger.Info("quickpay sent", "to", receipt.To, "receipt", receipt.ID)
	pw.PrintSuccess(fmt.Sprintf("Sent %s to @%s (receipt %s)", receipt.Amount, receipt.To, receipt.ID))
	return nil
}
