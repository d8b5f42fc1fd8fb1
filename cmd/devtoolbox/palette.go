package devtoolbox

import (
	"fmt"

	"github.com/devtoolbox/devtoolbox/internal/palette"
	"github.com/devtoolbox/devtoolbox/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagPaletteGlob    string
	flagPaletteRoot    string
	flagPaletteRequire string
)

func init() {
	paletteCmd := &cobra.Command{Use: "palette", Short: "Design palette helpers"}
	rootCmd.AddCommand(paletteCmd)

	auditCmd := &cobra.Command{
		Use:   "audit [files...]",
		Short: "Check every color pair of one or more palette files",
		RunE:  runPaletteAudit,
		Example: `
devtoolbox palette audit brand.yml
devtoolbox palette audit --glob "themes/**/*.yml" --require aa`,
	}
	paletteCmd.AddCommand(auditCmd)

	auditCmd.Flags().StringVar(&flagPaletteGlob, "glob", "", "doublestar pattern of palette files, e.g. themes/**/*.yml")
	auditCmd.Flags().StringVar(&flagPaletteRoot, "root", ".", "directory the --glob pattern is matched in")
	auditCmd.Flags().StringVar(&flagPaletteRequire, "require", "", "fail unless every pair passes none|aa-large|aa|aaa-large|aaa")
}

func runPaletteAudit(cmd *cobra.Command, args []string) error {
	req := pickString(flagPaletteRequire, localCfg.Require, globalCfg.Require)
	if err := report.ValidRequirement(req); err != nil {
		return err
	}

	paths := append([]string(nil), args...)
	if flagPaletteGlob != "" {
		matches, err := palette.Glob(flagPaletteRoot, flagPaletteGlob)
		if err != nil {
			return err
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no palette files given (pass paths or --glob)")
	}

	var findings []palette.Finding
	for _, p := range paths {
		f, err := palette.Load(p)
		if err != nil {
			return err
		}
		fs := palette.Audit(f)
		logger.Debug("palette audited", zap.String("path", p), zap.String("name", f.Name), zap.Int("pairs", len(fs)))
		findings = append(findings, fs...)
	}
	if findings == nil {
		findings = []palette.Finding{}
	} // no `null` in JSON

	if flagJSON {
		if err := emitJSON(cmd, findings); err != nil {
			return err
		}
	} else {
		w := cmd.OutOrStdout()
		if err := report.PrintAudit(w, findings, report.PrintOptions{NoColor: !colorEnabled(w)}); err != nil {
			return err
		}
	}

	if report.AuditShouldFail(findings, req) {
		return fmt.Errorf("%w: at least one pair is below %s", errRequirementNotMet, req)
	}
	return nil
}
