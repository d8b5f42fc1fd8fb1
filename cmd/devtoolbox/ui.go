package devtoolbox

import (
	"fmt"
	"os"

	"github.com/devtoolbox/devtoolbox/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var flagUIContrast bool

func init() {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE:  runUI,
	}
	rootCmd.AddCommand(cmd)
	cmd.Flags().BoolVar(&flagUIContrast, "contrast", false, "start on the contrast checker")
}

func runUI(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the dashboard needs an interactive terminal; see 'devtoolbox --help' for commands")
	}
	return tui.Run(tui.Options{
		Foreground:    pickString("", localCfg.Foreground, globalCfg.Foreground),
		Background:    pickString("", localCfg.Background, globalCfg.Background),
		Theme:         pickString("", localCfg.Theme, globalCfg.Theme),
		StartContrast: flagUIContrast,
	})
}
