package devtoolbox

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/atotto/clipboard"
	semver3 "github.com/blang/semver"
	semver "github.com/blang/semver/v4"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const releaseRepo = "devtoolbox/devtoolbox"

func selfUpdate() error {
	latest, err := selfupdate.UpdateSelf(semver3MustParse(currentVersion().String()), releaseRepo)
	if err != nil {
		return err
	}
	logger.Info("self-update finished", zap.String("version", latest.Version.String()))
	return nil
}

// semver3MustParse bridges to the v3 semver type go-github-selfupdate expects.
func semver3MustParse(s string) semver3.Version { return semver3.MustParse(s) }

// currentVersion parses the build version, falling back to 0.0.0.
func currentVersion() semver.Version {
	v := version
	// Use build info if tag overridden at build-time
	if info, ok := debug.ReadBuildInfo(); ok && v == "" {
		v = info.Main.Version
	}
	ver, err := semver.ParseTolerant(v)
	if err != nil {
		ver = semver.MustParse("0.0.0")
	}
	return ver
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}

// colorEnabled reports whether w is a terminal and color is not disabled by
// flag or config.
func colorEnabled(w io.Writer) bool {
	if pickBool(flagNoColor, localCfg.NoColor, globalCfg.NoColor) {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// emit prints a tool result and copies it when --copy is set.
func emit(cmd *cobra.Command, s string) {
	fmt.Fprintln(cmd.OutOrStdout(), s)
	copyResult(cmd, s)
}

// emitJSON writes v as indented JSON, copying it when --copy is set.
func emitJSON(cmd *cobra.Command, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
		return err
	}
	copyResult(cmd, strings.TrimRight(buf.String(), "\n"))
	return nil
}

func copyResult(cmd *cobra.Command, s string) {
	if !flagCopy {
		return
	}
	if err := clipboard.WriteAll(s); err != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "copy warning:", err)
		return
	}
	logger.Debug("copied to clipboard", zap.Int("bytes", len(s)))
}

// readInput joins args, or reads stdin when there are none. A single
// trailing newline is dropped.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// readFileOrStdin reads path, or stdin when path is empty or "-".
func readFileOrStdin(cmd *cobra.Command, path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
