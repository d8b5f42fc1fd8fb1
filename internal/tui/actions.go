package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type statusMsg string

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// copyToClipboard writes text and reports done, or the clipboard error, in
// the status bar.
func copyToClipboard(text, done string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return statusMsg(fmt.Sprintf("Clipboard error: %v", err))
		}
		return statusMsg(done)
	}
}
