package devtoolbox

import (
	"strings"

	"github.com/devtoolbox/devtoolbox/internal/uuidgen"
	"github.com/spf13/cobra"
)

var (
	flagUUIDCount    int
	flagUUIDUpper    bool
	flagUUIDNoDashes bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Generate random (v4) UUIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := uuidgen.Options{
				Count:     pickInt(flagUUIDCount, localCfg.UUIDCount, globalCfg.UUIDCount),
				Uppercase: pickBool(flagUUIDUpper, localCfg.UUIDUppercase, globalCfg.UUIDUppercase),
				NoDashes:  pickBool(flagUUIDNoDashes, localCfg.UUIDNoDashes, globalCfg.UUIDNoDashes),
			}
			ids, err := uuidgen.Generate(opts)
			if err != nil {
				return err
			}
			if flagJSON {
				return emitJSON(cmd, ids)
			}
			emit(cmd, strings.Join(ids, "\n"))
			return nil
		},
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().IntVarP(&flagUUIDCount, "count", "n", 0, "how many UUIDs to generate (1-100, default 1)")
	cmd.Flags().BoolVar(&flagUUIDUpper, "upper", false, "uppercase hex digits")
	cmd.Flags().BoolVar(&flagUUIDNoDashes, "no-dashes", false, "omit the dashes")
}
