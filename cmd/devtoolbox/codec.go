package devtoolbox

import (
	"github.com/devtoolbox/devtoolbox/internal/codec"
	"github.com/spf13/cobra"
)

type textOutput struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

func init() {
	rootCmd.AddCommand(newCodecCmd("base64", "Encode and decode Base64 strings",
		func(s string) (string, error) { return codec.Base64Encode(s), nil },
		codec.Base64Decode,
	))
	rootCmd.AddCommand(newCodecCmd("url", "Encode and decode URL components",
		func(s string) (string, error) { return codec.URLEncode(s), nil },
		codec.URLDecode,
	))
}

// newCodecCmd builds a "<name> encode|decode [text]" command pair. Input is
// read from stdin when no text is given.
func newCodecCmd(name, short string, encode, decode func(string) (string, error)) *cobra.Command {
	parent := &cobra.Command{Use: name, Short: short}
	for _, sub := range []struct {
		use, short string
		fn         func(string) (string, error)
	}{
		{"encode [text]", "Encode text (stdin when omitted)", encode},
		{"decode [text]", "Decode text (stdin when omitted)", decode},
	} {
		sub := sub
		parent.AddCommand(&cobra.Command{
			Use:   sub.use,
			Short: sub.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				in, err := readInput(cmd, args)
				if err != nil {
					return err
				}
				out, err := sub.fn(in)
				if err != nil {
					return err
				}
				if flagJSON {
					return emitJSON(cmd, textOutput{Input: in, Output: out})
				}
				emit(cmd, out)
				return nil
			},
		})
	}
	return parent
}
