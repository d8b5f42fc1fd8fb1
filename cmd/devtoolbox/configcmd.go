package devtoolbox

import (
	"fmt"
	"os"
	"strings"

	"github.com/devtoolbox/devtoolbox/internal/config"
	"github.com/devtoolbox/devtoolbox/internal/contrast"
	"github.com/devtoolbox/devtoolbox/internal/qr"
	"github.com/devtoolbox/devtoolbox/internal/report"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	cfgOutput     string
	cfgForce      bool
	cfgForeground string
	cfgBackground string
	cfgRequire    string
	cfgTheme      string
	cfgNoColor    bool
	cfgJSONIndent int
	cfgUUIDCount  int
	cfgCronCount  int
	cfgQRSize     int
	cfgQRLevel    string
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .devtoolbox.yml with the selected defaults",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", ".devtoolbox.yml", "output file path")
	initCmd.Flags().BoolVar(&cfgForce, "force", false, "overwrite an existing file")
	initCmd.Flags().StringVar(&cfgForeground, "foreground", "", "default foreground color for contrast")
	initCmd.Flags().StringVar(&cfgBackground, "background", "", "default background color for contrast")
	initCmd.Flags().StringVar(&cfgRequire, "require", "none", "default --require level")
	initCmd.Flags().StringVar(&cfgTheme, "theme", "dark", "dashboard theme: dark | light")
	initCmd.Flags().BoolVar(&cfgNoColor, "no-color", false, "disable color output by default")
	initCmd.Flags().IntVar(&cfgJSONIndent, "json-indent", 2, "spaces per level for json format")
	initCmd.Flags().IntVar(&cfgUUIDCount, "uuid-count", 1, "UUIDs generated per run")
	initCmd.Flags().IntVar(&cfgCronCount, "cron-count", 5, "upcoming cron runs listed")
	initCmd.Flags().IntVar(&cfgQRSize, "qr-size", 300, "QR PNG size in pixels")
	initCmd.Flags().StringVar(&cfgQRLevel, "qr-level", "medium", "QR error recovery level")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if err := report.ValidRequirement(cfgRequire); err != nil {
		return err
	}
	theme := strings.ToLower(strings.TrimSpace(cfgTheme))
	if theme != "dark" && theme != "light" {
		return fmt.Errorf("unknown theme %q (want dark|light)", cfgTheme)
	}
	for name, v := range map[string]string{"--foreground": cfgForeground, "--background": cfgBackground} {
		if v = strings.TrimSpace(v); v == "" {
			continue
		}
		if _, err := contrast.ParseColor(v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if _, err := qr.ParseLevel(cfgQRLevel); err != nil {
		return fmt.Errorf("--qr-level: %w", err)
	}
	if !cfgForce {
		if _, err := os.Stat(cfgOutput); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgOutput)
		}
	}

	fc := config.FileConfig{
		NoColor:    boolPtr(cfgNoColor),
		Theme:      strPtr(theme),
		Foreground: optStrPtr(cfgForeground),
		Background: optStrPtr(cfgBackground),
		Require:    optStrPtr(cfgRequire),
		JSONIndent: intPtr(cfgJSONIndent),
		UUIDCount:  intPtr(cfgUUIDCount),
		CronCount:  intPtr(cfgCronCount),
		QRSize:     intPtr(cfgQRSize),
		QRLevel:    optStrPtr(cfgQRLevel),
	}

	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgOutput)
	return nil
}

func strPtr(s string) *string { return &s }
func optStrPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
func intPtr(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
func boolPtr(v bool) *bool { return &v }
