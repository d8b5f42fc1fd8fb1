package devtoolbox

import (
	"github.com/devtoolbox/devtoolbox/internal/jsonfmt"
	"github.com/spf13/cobra"
)

var (
	flagJSONIndent    int
	flagJSONHighlight bool
)

func init() {
	jsonCmd := &cobra.Command{
		Use:   "json",
		Short: "Format, minify and validate JSON",
		Long:  "Reads JSON from a file or stdin. Key order and number spelling are preserved. Output is already JSON, so --json has no effect here.",
	}
	rootCmd.AddCommand(jsonCmd)

	formatCmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Pretty-print JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readFileOrStdin(cmd, argAt(args, 0))
			if err != nil {
				return err
			}
			indent := pickInt(flagJSONIndent, localCfg.JSONIndent, globalCfg.JSONIndent)
			if indent == 0 {
				indent = jsonfmt.DefaultIndent
			}
			out, err := jsonfmt.Format(in, indent)
			if err != nil {
				return err
			}
			return printJSONResult(cmd, out)
		},
	}
	formatCmd.Flags().IntVar(&flagJSONIndent, "indent", 0, "spaces per level (default 2)")
	jsonCmd.AddCommand(formatCmd)

	minifyCmd := &cobra.Command{
		Use:   "minify [file]",
		Short: "Strip insignificant whitespace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readFileOrStdin(cmd, argAt(args, 0))
			if err != nil {
				return err
			}
			out, err := jsonfmt.Minify(in)
			if err != nil {
				return err
			}
			return printJSONResult(cmd, out)
		},
	}
	jsonCmd.AddCommand(minifyCmd)

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check that input is valid JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readFileOrStdin(cmd, argAt(args, 0))
			if err != nil {
				return err
			}
			if err := jsonfmt.Validate(in); err != nil {
				return err
			}
			emit(cmd, "valid JSON")
			return nil
		},
	}
	jsonCmd.AddCommand(validateCmd)

	for _, c := range []*cobra.Command{formatCmd, minifyCmd} {
		c.Flags().BoolVar(&flagJSONHighlight, "highlight", false, "syntax-highlight the output on a terminal")
	}
}

// printJSONResult prints out, highlighted when asked and the terminal allows.
// The clipboard always receives the plain text.
func printJSONResult(cmd *cobra.Command, out string) error {
	w := cmd.OutOrStdout()
	shown := out
	if flagJSONHighlight && colorEnabled(w) {
		shown = jsonfmt.Highlight(out)
	}
	if _, err := w.Write([]byte(shown + "\n")); err != nil {
		return err
	}
	copyResult(cmd, out)
	return nil
}
