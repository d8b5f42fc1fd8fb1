package devtoolbox

import (
	"fmt"
	"strings"
	"time"

	"github.com/devtoolbox/devtoolbox/internal/cronexpr"
	"github.com/spf13/cobra"
)

var flagCronCount int

type cronOutput struct {
	Expression  string      `json:"expression"`
	Description string      `json:"description"`
	Next        []time.Time `json:"next"`
}

func init() {
	cronCmd := &cobra.Command{
		Use:   "cron <expression>",
		Short: "Explain a cron expression and list its next runs",
		Long: "Accepts standard five-field expressions (minute hour day-of-month month day-of-week), " +
			"an optional leading seconds field, and descriptors such as @daily or @every 1h30m. " +
			"Day-of-week 0 and 7 both mean Sunday. Quote the expression or pass the fields " +
			"as separate arguments.",
		Args: cobra.MinimumNArgs(1),
		RunE: runCron,
		Example: `
devtoolbox cron "*/5 * * * *"
devtoolbox cron 0 9 * * 1-5 --count 3
devtoolbox cron @weekly --json`,
	}
	rootCmd.AddCommand(cronCmd)
	cronCmd.Flags().IntVarP(&flagCronCount, "count", "n", 0, "number of upcoming runs to list (default 5)")

	cronCmd.AddCommand(&cobra.Command{
		Use:   "presets",
		Short: "List common schedules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			presets := cronexpr.Presets()
			if flagJSON {
				return emitJSON(cmd, presets)
			}
			w := cmd.OutOrStdout()
			for _, p := range presets {
				fmt.Fprintf(w, "%-14s %s\n", p.Expr, p.Label)
			}
			return nil
		},
	})
}

func runCron(cmd *cobra.Command, args []string) error {
	expr := strings.Join(args, " ")
	desc, err := cronexpr.Describe(expr)
	if err != nil {
		return err
	}
	n := pickInt(flagCronCount, localCfg.CronCount, globalCfg.CronCount)
	runs, err := cronexpr.Next(expr, now(), n)
	if err != nil {
		return err
	}
	if flagJSON {
		return emitJSON(cmd, cronOutput{Expression: expr, Description: desc, Next: runs})
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s\n\nNext runs:\n", desc)
	for _, t := range runs {
		fmt.Fprintf(w, "  %s\n", t.Format("Mon, 02 Jan 2006 15:04 MST"))
	}
	copyResult(cmd, desc)
	return nil
}
