package devtoolbox

import (
	"fmt"
	"strings"

	"github.com/devtoolbox/devtoolbox/internal/catalog"
	"github.com/devtoolbox/devtoolbox/internal/report"
	"github.com/spf13/cobra"
)

var (
	flagToolsSearch   string
	flagToolsCategory string
)

func init() {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the available tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			category, err := resolveCategory(flagToolsCategory)
			if err != nil {
				return err
			}
			tools := catalog.Filter(flagToolsSearch, category)
			if flagJSON {
				return emitJSON(cmd, tools)
			}
			return report.PrintTools(cmd.OutOrStdout(), tools)
		},
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagToolsSearch, "search", "s", "", "match name or description (case-insensitive)")
	cmd.Flags().StringVarP(&flagToolsCategory, "category", "c", catalog.CategoryAll,
		"one of: "+strings.Join(catalog.Categories(), ", "))
}

// resolveCategory accepts a category name in any case.
func resolveCategory(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return catalog.CategoryAll, nil
	}
	for _, c := range catalog.Categories() {
		if strings.EqualFold(c, s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
