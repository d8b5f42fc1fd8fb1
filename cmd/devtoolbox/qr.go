package devtoolbox

import (
	"fmt"
	"strings"

	"github.com/devtoolbox/devtoolbox/internal/qr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagQROutput string
	flagQRSize   int
	flagQRLevel  string
)

type qrOutput struct {
	Text    string `json:"text"`
	Size    int    `json:"size"`
	Output  string `json:"output,omitempty"`
	DataURL string `json:"dataURL,omitempty"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "qr [text]",
		Short: "Generate a QR code from text or a URL",
		Long:  "Renders the code in the terminal, or writes a PNG with --output. Text is read from stdin when omitted. With --json the PNG is returned as a data URL.",
		RunE:  runQR,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagQROutput, "output", "o", "", "write a PNG to this path")
	cmd.Flags().IntVar(&flagQRSize, "size", 0, "PNG width and height in pixels (default 300)")
	cmd.Flags().StringVar(&flagQRLevel, "level", "", "error recovery: low|medium|high|highest")
}

func runQR(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return qr.ErrEmptyText
	}
	level, err := qr.ParseLevel(pickString(flagQRLevel, localCfg.QRLevel, globalCfg.QRLevel))
	if err != nil {
		return err
	}
	size := pickInt(flagQRSize, localCfg.QRSize, globalCfg.QRSize)
	if size <= 0 {
		size = qr.DefaultSize
	}

	if flagQROutput != "" {
		if err := qr.WriteFile(flagQROutput, text, size, level); err != nil {
			return err
		}
		logger.Debug("qr written", zap.String("path", flagQROutput), zap.Int("size", size))
		if flagJSON {
			return emitJSON(cmd, qrOutput{Text: text, Size: size, Output: flagQROutput})
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Wrote", flagQROutput)
		return nil
	}

	if flagJSON {
		u, err := qr.DataURL(text, size, level)
		if err != nil {
			return err
		}
		return emitJSON(cmd, qrOutput{Text: text, Size: size, DataURL: u})
	}
	s, err := qr.Terminal(text, level)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), s)
	return nil
}
