package devtoolbox

import (
	"fmt"
	"strings"

	"github.com/devtoolbox/devtoolbox/internal/contrast"
	"github.com/devtoolbox/devtoolbox/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagContrastTable bool
	flagSwatch        bool
	flagRequire       string
	flagSuggest       bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Check the WCAG contrast ratio of two colors",
		Long: "Computes the WCAG 2.x contrast ratio between a foreground and a background color " +
			"and reports AA/AAA compliance for normal and large text. Colors are #RGB, #RRGGBB " +
			"or #RRGGBBAA hex values; the leading # is optional. Missing colors fall back to the " +
			"foreground/background config keys.",
		Args: cobra.MaximumNArgs(2),
		RunE: runContrast,
		Example: `
devtoolbox contrast "#000" "#fff"
devtoolbox contrast 777 fff --require aa --suggest
devtoolbox contrast 1a1a1a fafafa --table --swatch
devtoolbox contrast 767676 ffffff --json`,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVar(&flagContrastTable, "table", false, "output in table format with borders")
	cmd.Flags().BoolVar(&flagSwatch, "swatch", false, "render a sample in the checked colors")
	cmd.Flags().StringVar(&flagRequire, "require", "", "fail unless the pair passes none|aa-large|aa|aaa-large|aaa")
	cmd.Flags().BoolVar(&flagSuggest, "suggest", false, "suggest a nearby foreground that meets the requirement")
}

type contrastOutput struct {
	contrast.Result
	Suggestion      *contrast.RGB `json:"suggestion,omitempty"`
	SuggestionRatio float64       `json:"suggestionRatio,omitempty"`
}

func runContrast(cmd *cobra.Command, args []string) error {
	fg := pickString(argAt(args, 0), localCfg.Foreground, globalCfg.Foreground)
	bg := pickString(argAt(args, 1), localCfg.Background, globalCfg.Background)
	if fg == "" || bg == "" {
		return fmt.Errorf("need a foreground and a background color")
	}
	req := pickString(flagRequire, localCfg.Require, globalCfg.Require)
	if err := report.ValidRequirement(req); err != nil {
		return err
	}

	res, err := contrast.Check(strings.TrimSpace(fg), strings.TrimSpace(bg))
	if err != nil {
		return err
	}
	logger.Debug("contrast checked",
		zap.String("foreground", res.Foreground.Hex()),
		zap.String("background", res.Background.Hex()),
		zap.Float64("ratio", res.Ratio),
	)

	out := contrastOutput{Result: res}
	if flagSuggest {
		if s, ok := contrast.Suggest(res.Foreground, res.Background, requirementThreshold(req)); ok && s != res.Foreground {
			out.Suggestion = &s
			out.SuggestionRatio = contrast.RatioRGB(s, res.Background)
		}
	}

	w := cmd.OutOrStdout()
	opts := report.PrintOptions{NoColor: !colorEnabled(w), Swatch: flagSwatch}
	switch {
	case flagJSON:
		if err := emitJSON(cmd, out); err != nil {
			return err
		}
	case flagContrastTable:
		if err := report.PrintContrastTable(w, res, opts); err != nil {
			return err
		}
		copyResult(cmd, report.FormatRatio(res.Ratio))
	default:
		report.PrintContrast(w, res, opts)
		copyResult(cmd, report.FormatRatio(res.Ratio))
	}
	if flagSuggest && !flagJSON {
		printSuggestion(cmd, out, opts)
	}

	if report.ShouldFail(res.Compliance, req) {
		return fmt.Errorf("%w: %s is below %s", errRequirementNotMet, report.FormatRatio(res.Ratio), strings.ToLower(req))
	}
	return nil
}

func printSuggestion(cmd *cobra.Command, out contrastOutput, opts report.PrintOptions) {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w)
	if out.Suggestion == nil {
		fmt.Fprintln(w, "No suggestion: the pair already meets the target, or no shade of the foreground can.")
		return
	}
	fmt.Fprintf(w, "Suggested foreground: %s (%s)\n", out.Suggestion.Hex(), report.FormatRatio(out.SuggestionRatio))
	if opts.Swatch && !opts.NoColor {
		fmt.Fprintln(w, report.Swatch(*out.Suggestion, out.Background, " Sample text "))
	}
}

// requirementThreshold maps a --require level to the ratio it needs. Levels
// below AA normal text still suggest toward AA.
func requirementThreshold(req string) float64 {
	switch strings.ToLower(strings.TrimSpace(req)) {
	case "aaa":
		return contrast.AAANormalThreshold
	case "aaa-large":
		return contrast.AAALargeThreshold
	case "aa-large":
		return contrast.AALargeThreshold
	default:
		return contrast.AANormalThreshold
	}
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
