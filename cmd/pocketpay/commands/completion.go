// Package commands provides the CLI command implementations for pocketpay.
package commands

import (
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// completionShells maps each supported shell to its script generator.
var completionShells = map[string]func(root *cobra.Command, out io.Writer) error{
	"bash":       func(root *cobra.Command, out io.Writer) error { return root.GenBashCompletionV2(out, true) },
	"zsh":        func(root *cobra.Command, out io.Writer) error { return root.GenZshCompletion(out) },
	"fish":       func(root *cobra.Command, out io.Writer) error { return root.GenFishCompletion(out, true) },
	"powershell": func(root *cobra.Command, out io.Writer) error { return root.GenPowerShellCompletionWithDesc(out) },
}

// newCompletionCmd creates the completion subcommand for generating shell completion scripts
func newCompletionCmd() *cobra.Command {
	shells := make([]string, 0, len(completionShells))
	for shell := range completionShells {
		shells = append(shells, shell)
	}
	slices.Sort(shells)

	cmd := &cobra.Command{
		Use:   "completion [" + strings.Join(shells, "|") + "]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for pocketpay.

Completions cover subcommands, flags, run sources and --output values.

Bash:
  $ source <(pocketpay completion bash)

Zsh (needs "autoload -U compinit; compinit" in ~/.zshrc):
  $ pocketpay completion zsh > "${fpath[1]}/_pocketpay"

Fish:
  $ pocketpay completion fish > ~/.config/fish/completions/pocketpay.fish

PowerShell:
  PS> pocketpay completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             shells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionShells[args[0]](cmd.Root(), cmd.OutOrStdout())
		},
	}

	return cmd
}
