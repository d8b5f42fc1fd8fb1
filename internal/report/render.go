package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/devtoolbox/devtoolbox/internal/catalog"
	"github.com/devtoolbox/devtoolbox/internal/contrast"
	"github.com/devtoolbox/devtoolbox/internal/palette"
	"github.com/olekukonko/tablewriter"
)

type PrintOptions struct {
	NoColor bool
	Swatch  bool
}

// FormatRatio renders a ratio the way it is shown to users, e.g. "4.48:1".
func FormatRatio(r float64) string {
	return fmt.Sprintf("%.2f:1", r)
}

// PrintContrast writes a plain-text report for one pair.
func PrintContrast(w io.Writer, res contrast.Result, opts PrintOptions) {
	fmt.Fprintf(w, "Foreground: %s\n", res.Foreground.Hex())
	fmt.Fprintf(w, "Background: %s\n", res.Background.Hex())
	fmt.Fprintf(w, "Contrast ratio: %s (%s)\n", FormatRatio(res.Ratio), res.Rating)
	if opts.Swatch && !opts.NoColor {
		fmt.Fprintln(w, Swatch(res.Foreground, res.Background, " Large Heading Text / readable body text "))
	}
	fmt.Fprintln(w)
	passes := res.Compliance.Passes()
	for i, lv := range contrast.Levels() {
		verdict := verdictText(passes[i])
		if !opts.NoColor {
			verdict = colorVerdict(passes[i])
		}
		fmt.Fprintf(w, "%-18s >= %-4.1f %s\n", lv.Name, lv.Threshold, verdict)
	}
}

// PrintContrastTable writes the verdicts as a bordered table.
func PrintContrastTable(w io.Writer, res contrast.Result, opts PrintOptions) error {
	fmt.Fprintf(w, "%s on %s: %s (%s)\n", res.Foreground.Hex(), res.Background.Hex(), FormatRatio(res.Ratio), res.Rating)
	if opts.Swatch && !opts.NoColor {
		fmt.Fprintln(w, Swatch(res.Foreground, res.Background, " Sample text "))
	}
	table := tablewriter.NewWriter(w)
	table.Header("Level", "Minimum", "Result")
	passes := res.Compliance.Passes()
	for i, lv := range contrast.Levels() {
		if err := table.Append([]string{lv.Name, FormatRatio(lv.Threshold), verdictText(passes[i])}); err != nil {
			return err
		}
	}
	return table.Render()
}

// PrintAudit writes one table row per palette pair.
func PrintAudit(w io.Writer, findings []palette.Finding, opts PrintOptions) error {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No color pairs to check")
		return nil
	}
	table := tablewriter.NewWriter(w)
	table.Header("Palette", "Foreground", "Background", "Ratio", "AA", "AA Large", "AAA", "AAA Large")
	failed, broken := 0, 0
	for _, f := range findings {
		if f.Err != "" {
			broken++
			row := []string{f.Palette, f.Pair.Foreground, f.Pair.Background, "error", "-", "-", "-", "-"}
			if err := table.Append(row); err != nil {
				return err
			}
			continue
		}
		c := f.Result.Compliance
		if !c.AANormal {
			failed++
		}
		row := []string{
			f.Palette,
			f.Pair.Foreground,
			f.Pair.Background,
			FormatRatio(f.Result.Ratio),
			verdictText(c.AANormal),
			verdictText(c.AALarge),
			verdictText(c.AAANormal),
			verdictText(c.AAALarge),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nPairs: %d (below AA: %d, errors: %d)\n", len(findings), failed, broken)
	for _, f := range findings {
		if f.Err != "" {
			fmt.Fprintf(w, "  %s %s/%s: %s\n", f.Palette, f.Pair.Foreground, f.Pair.Background, f.Err)
		}
	}
	return nil
}

// PrintTools lists catalogue entries with the command that runs each one.
func PrintTools(w io.Writer, tools []catalog.Tool) error {
	if len(tools) == 0 {
		fmt.Fprintln(w, "No tools found")
		return nil
	}
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Category", "Command")
	for _, t := range tools {
		if err := table.Append([]string{t.ID, t.Name, t.Category, t.Command}); err != nil {
			return err
		}
	}
	return table.Render()
}

// Swatch renders text in fg on bg.
func Swatch(fg, bg contrast.RGB, text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex())).
		Render(text)
}

func verdictText(pass bool) string {
	if pass {
		return "PASS"
	}
	return "FAIL"
}

func colorVerdict(pass bool) string {
	if pass {
		return "\x1b[32mPASS\x1b[0m" // green
	}
	return "\x1b[31mFAIL\x1b[0m" // red
}

// Requirement levels accepted by --require.
var Requirements = []string{"none", "aa-large", "aa", "aaa-large", "aaa"}

// ValidRequirement reports whether req is one of Requirements.
func ValidRequirement(req string) error {
	req = strings.ToLower(strings.TrimSpace(req))
	if req == "" {
		return nil
	}
	for _, r := range Requirements {
		if r == req {
			return nil
		}
	}
	return fmt.Errorf("unknown requirement %q (want %s)", req, strings.Join(Requirements, "|"))
}

// ShouldFail reports whether c misses the required level. Empty, "none" and
// unknown requirements never fail.
func ShouldFail(c contrast.Compliance, req string) bool {
	switch strings.ToLower(strings.TrimSpace(req)) {
	case "aa-large":
		return !c.AALarge
	case "aa":
		return !c.AANormal
	case "aaa-large":
		return !c.AAALarge
	case "aaa":
		return !c.AAANormal
	default:
		return false
	}
}

// AuditShouldFail applies ShouldFail to every finding; unresolved pairs
// always fail when a requirement is set.
func AuditShouldFail(findings []palette.Finding, req string) bool {
	if ValidRequirement(req) != nil {
		return false
	}
	r := strings.ToLower(strings.TrimSpace(req))
	if r == "" || r == "none" {
		return false
	}
	for _, f := range findings {
		if f.Err != "" || ShouldFail(f.Result.Compliance, r) {
			return true
		}
	}
	return false
}
