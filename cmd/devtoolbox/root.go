package devtoolbox

import (
	"errors"
	"fmt"
	"os"

	"github.com/devtoolbox/devtoolbox/internal/config"
	"github.com/devtoolbox/devtoolbox/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagJSON       bool
	flagNoColor    bool
	flagCopy       bool
	flagVerbose    bool
	flagSelfUpdate bool

	version = "0.1.0"

	logger = logging.Nop()
	// Loaded once per invocation; CLI flags take precedence over both.
	localCfg, globalCfg config.FileConfig
)

// errRequirementNotMet makes Execute exit with status 1 instead of 2.
var errRequirementNotMet = errors.New("contrast requirement not met")

// rootCmd is the base Cobra command for the devtoolbox CLI.
var rootCmd = &cobra.Command{
	Use:   "devtoolbox",
	Short: "Everyday developer utilities in your terminal",
	Long: "devtoolbox bundles small developer utilities: a WCAG color contrast checker, " +
		"Base64 and URL codecs, a JSON formatter, a JWT decoder, UUID and QR generators " +
		"and a cron calculator. Run it without arguments for the interactive dashboard.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runUI,
}

// Execute runs the devtoolbox CLI. It should be called by the main package.
func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, errRequirementNotMet) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagCopy, "copy", false, "copy the result to the clipboard")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&flagSelfUpdate, "self-update", false, "update devtoolbox to the latest release")
}

func setup(cmd *cobra.Command, _ []string) error {
	l, err := logging.New(flagVerbose)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	logger = l

	wd, _ := os.Getwd()
	localCfg, globalCfg, err = config.Load(wd)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger.Debug("configuration loaded", zap.String("dir", wd), zap.String("command", cmd.CommandPath()))

	if flagSelfUpdate {
		if err := selfUpdate(); err != nil {
			return fmt.Errorf("self-update: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stderr, "updated to latest; re-run command")
		os.Exit(0)
	}
	return nil
}
