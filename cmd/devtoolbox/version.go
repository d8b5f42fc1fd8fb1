package devtoolbox

import (
	"fmt"
	"runtime"

	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"github.com/spf13/cobra"
)

var flagVersionCheck bool

type versionOutput struct {
	Version string `json:"version"`
	Go      string `json:"go"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
	Latest  string `json:"latest,omitempty"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the devtoolbox version",
		Args:  cobra.NoArgs,
		RunE:  runVersion,
	}
	rootCmd.AddCommand(cmd)
	cmd.Flags().BoolVar(&flagVersionCheck, "check", false, "query GitHub releases for a newer version")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	cur := currentVersion()
	out := versionOutput{
		Version: cur.String(),
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
	var newer bool
	if flagVersionCheck {
		latest, found, err := selfupdate.DetectLatest(releaseRepo)
		if err != nil {
			return fmt.Errorf("update check: %w", err)
		}
		if found {
			out.Latest = latest.Version.String()
			newer = latest.Version.GT(semver3MustParse(cur.String()))
		}
	}
	if flagJSON {
		return emitJSON(cmd, out)
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "devtoolbox v%s (%s %s/%s)\n", out.Version, out.Go, out.OS, out.Arch)
	switch {
	case newer:
		fmt.Fprintf(w, "new version available: v%s  run 'devtoolbox --self-update' to upgrade\n", out.Latest)
	case flagVersionCheck:
		fmt.Fprintln(w, "up to date")
	}
	return nil
}
