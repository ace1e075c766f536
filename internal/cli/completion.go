package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for seatwise.

To load completions:

Bash:
  $ source <(seatwise completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ seatwise completion bash > /etc/bash_completion.d/seatwise
  # macOS:
  $ seatwise completion bash > $(brew --prefix)/etc/bash_completion.d/seatwise

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ seatwise completion zsh > "${fpath[1]}/_seatwise"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ seatwise completion fish | source

  # To load completions for each session, execute once:
  $ seatwise completion fish > ~/.config/fish/completions/seatwise.fish

PowerShell:
  PS> seatwise completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> seatwise completion powershell > seatwise.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
