package devtoolbox

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/devtoolbox/devtoolbox/internal/jwtinfo"
	"github.com/spf13/cobra"
)

// now is replaced in tests.
var now = time.Now

type jwtOutput struct {
	jwtinfo.Decoded
	Expired bool `json:"expired"`
}

func init() {
	jwtCmd := &cobra.Command{Use: "jwt", Short: "Inspect JSON Web Tokens"}
	rootCmd.AddCommand(jwtCmd)

	jwtCmd.AddCommand(&cobra.Command{
		Use:   "decode [token]",
		Short: "Decode a token's header and payload without verifying it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runJWTDecode,
	})
}

func runJWTDecode(cmd *cobra.Command, args []string) error {
	token, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	d, err := jwtinfo.Decode(token)
	if err != nil {
		return err
	}
	out := jwtOutput{Decoded: d, Expired: d.Expired(now())}
	if flagJSON {
		return emitJSON(cmd, out)
	}

	w := cmd.OutOrStdout()
	header, err := json.MarshalIndent(d.Header, "", "  ")
	if err != nil {
		return err
	}
	payload, err := json.MarshalIndent(d.Payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Header:\n%s\n\nPayload:\n%s\n\n", header, payload)
	if d.Algorithm != "" {
		fmt.Fprintf(w, "Algorithm:  %s\n", d.Algorithm)
	}
	printClaimTime(cmd, "Issued at:", d.IssuedAt)
	printClaimTime(cmd, "Not before:", d.NotBefore)
	printClaimTime(cmd, "Expires:", d.ExpiresAt)
	if d.ExpiresAt != nil {
		status := "valid"
		if out.Expired {
			status = "expired"
		}
		fmt.Fprintf(w, "Status:     %s\n", status)
	}
	fmt.Fprintln(w, "Signature is not verified.")
	copyResult(cmd, string(payload))
	return nil
}

func printClaimTime(cmd *cobra.Command, label string, t *time.Time) {
	if t == nil {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%-11s %s\n", label, t.Format(time.RFC3339))
}
