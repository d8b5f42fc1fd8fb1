package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Theme names accepted by Options.Theme.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

type palette struct {
	accent     lipgloss.Color
	text       lipgloss.Color
	muted      lipgloss.Color
	border     lipgloss.Color
	headerBg   lipgloss.Color
	statusBg   lipgloss.Color
	selectedFg lipgloss.Color
	selectedBg lipgloss.Color
}

var palettes = map[string]palette{
	ThemeDark: {
		accent:     lipgloss.Color("6"),
		text:       lipgloss.Color("15"),
		muted:      lipgloss.Color("245"),
		border:     lipgloss.Color("240"),
		headerBg:   lipgloss.Color("237"),
		statusBg:   lipgloss.Color("236"),
		selectedFg: lipgloss.Color("232"),
		selectedBg: lipgloss.Color("208"),
	},
	ThemeLight: {
		accent:     lipgloss.Color("25"),
		text:       lipgloss.Color("232"),
		muted:      lipgloss.Color("242"),
		border:     lipgloss.Color("250"),
		headerBg:   lipgloss.Color("254"),
		statusBg:   lipgloss.Color("253"),
		selectedFg: lipgloss.Color("255"),
		selectedBg: lipgloss.Color("25"),
	},
}

type styles struct {
	border lipgloss.Style
	title  lipgloss.Style
	header lipgloss.Style
	status lipgloss.Style
	key    lipgloss.Style
	muted  lipgloss.Style
	tab    lipgloss.Style
	tabOn  lipgloss.Style
	empty  lipgloss.Style
	popup  lipgloss.Style
	errorS lipgloss.Style
}

var (
	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("232")).
			Background(lipgloss.Color("10")).
			Bold(true).
			Padding(0, 1)

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("9")).
			Bold(true).
			Padding(0, 1)
)

func newStyles(name string) styles {
	p, ok := palettes[name]
	if !ok {
		p = palettes[ThemeDark]
	}
	return styles{
		border: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.border),
		title: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			Padding(0, 1),
		header: lipgloss.NewStyle().
			Foreground(p.text).
			Background(p.headerBg).
			Padding(0, 2),
		status: lipgloss.NewStyle().
			Foreground(p.text).
			Background(p.statusBg),
		key: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),
		muted: lipgloss.NewStyle().Foreground(p.muted),
		tab: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 1),
		tabOn: lipgloss.NewStyle().
			Foreground(p.selectedFg).
			Background(p.selectedBg).
			Bold(true).
			Padding(0, 1),
		empty: lipgloss.NewStyle().
			Foreground(p.text).
			Align(lipgloss.Center),
		popup: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(1, 4),
		errorS: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func tableStyles(name string) table.Styles {
	p, ok := palettes[name]
	if !ok {
		p = palettes[ThemeDark]
	}
	s := table.DefaultStyles()
	s.Header = lipgloss.NewStyle().
		Background(p.headerBg).
		Foreground(p.text).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Left)

	s.Selected = lipgloss.NewStyle().
		Foreground(p.selectedFg).
		Background(p.selectedBg).
		Bold(true).
		Padding(0, 1)

	s.Cell = lipgloss.NewStyle().
		Padding(0, 1)
	return s
}
