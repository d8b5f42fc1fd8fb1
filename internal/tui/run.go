package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Options seeds the dashboard. Empty colors default to black on white and
// an unknown theme falls back to dark.
type Options struct {
	Foreground string
	Background string
	Theme      string
	// StartContrast opens the contrast checker instead of the tool list.
	StartContrast bool
}

// Run starts the dashboard in the alternate screen and blocks until it exits.
func Run(opts Options) error {
	m := NewModel(opts)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
