package devtoolbox

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate shell completion scripts",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},

		// Completion output must not be preceded by config errors or logs.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(out)
			case "zsh":
				return rootCmd.GenZshCompletion(out)
			case "fish":
				return rootCmd.GenFishCompletion(out, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
		Example: `
# Bash
devtoolbox completion bash > /etc/bash_completion.d/devtoolbox

# Zsh
devtoolbox completion zsh > "${fpath[1]}/_devtoolbox"

# Fish
devtoolbox completion fish > ~/.config/fish/completions/devtoolbox.fish

# PowerShell
devtoolbox completion powershell > $PROFILE\devtoolbox.ps1
`,
	}
	rootCmd.AddCommand(cmd)
}
