package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/devtoolbox/devtoolbox/internal/catalog"
	"github.com/devtoolbox/devtoolbox/internal/highlight"
)

type screen int

const (
	screenList screen = iota
	screenContrast
)

const (
	listHint     = "q: quit | ?: help | /: search | tab: category | enter: open | y: copy command | t: theme"
	contrastHint = "esc: back | tab: next field | s: swap | y: copy result | t: theme"
)

// Model is the dashboard state: a filterable tool table with a detail pane,
// plus the interactive contrast checker screen.
type Model struct {
	table    table.Model
	viewport viewport.Model
	spinner  spinner.Model
	styles   styles
	theme    string

	tools    []catalog.Tool // Tools after search and category filters
	category string
	screen   screen

	quitting      bool
	ready         bool // Indicates if terminal dimensions are known
	showHelp      bool
	height        int
	width         int
	statusMessage string
	statusTimeout *time.Time // When to clear status message

	// Search state
	searchMode  bool
	searchInput textinput.Model
	searchQuery string

	contrast contrastState
}

// NewModel initializes the dashboard from opts.
func NewModel(opts Options) Model {
	theme := opts.Theme
	if _, ok := palettes[theme]; !ok {
		theme = ThemeDark
	}

	columns := []table.Column{
		{Title: "Tool", Width: 24},
		{Title: "Category", Width: 14},
		{Title: "Description", Width: 40},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(tableStyles(theme))

	// Line spinner avoids Braille characters that render poorly on some terminals
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(palettes[theme].accent)

	ti := textinput.New()
	ti.Placeholder = "Search tools..."
	ti.CharLimit = 100
	ti.Width = 50
	ti.Prompt = "/ "

	m := Model{
		table:         t,
		spinner:       sp,
		styles:        newStyles(theme),
		theme:         theme,
		category:      catalog.CategoryAll,
		searchInput:   ti,
		statusMessage: listHint,
		contrast:      newContrastState(opts.Foreground, opts.Background),
	}
	m.applyFilters()
	if opts.StartContrast {
		m.screen = screenContrast
		m.statusMessage = contrastHint
		m.contrast.focus(0)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textinput.Blink)
}

func (m *Model) applyFilters() {
	m.tools = catalog.Filter(m.searchQuery, m.category)
	rows := make([]table.Row, len(m.tools))
	for i, t := range m.tools {
		rows[i] = table.Row{t.Name, t.Category, t.Description}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(m.tools) || m.table.Cursor() < 0 {
		m.table.SetCursor(0)
	}
	m.updateViewportContent()
}

func (m *Model) clearFilters() {
	m.searchQuery = ""
	m.searchInput.SetValue("")
	m.category = catalog.CategoryAll
	m.applyFilters()
}

func (m *Model) selectedTool() (catalog.Tool, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.tools) {
		return catalog.Tool{}, false
	}
	return m.tools[i], true
}

func (m *Model) toggleTheme() {
	if m.theme == ThemeDark {
		m.theme = ThemeLight
	} else {
		m.theme = ThemeDark
	}
	m.styles = newStyles(m.theme)
	m.table.SetStyles(tableStyles(m.theme))
	m.spinner.Style = lipgloss.NewStyle().Foreground(palettes[m.theme].accent)
	m.setStatus(fmt.Sprintf("Theme: %s", m.theme))
	m.updateViewportContent()
}

func (m *Model) setStatus(s string) {
	timeout := time.Now().Add(3 * time.Second)
	m.statusTimeout = &timeout
	m.statusMessage = s
}

func (m *Model) defaultHint() string {
	if m.screen == screenContrast {
		return contrastHint
	}
	return listHint
}

func (m *Model) updateViewportContent() {
	if m.viewport.Height == 0 {
		return
	}
	t, ok := m.selectedTool()
	if !ok {
		m.viewport.SetContent("")
		return
	}
	var b strings.Builder
	b.WriteString(m.styles.title.Render(t.Name))
	b.WriteString("\n\n")
	b.WriteString(t.Description)
	b.WriteString("\n\n")
	b.WriteString(m.styles.muted.Render("Category: " + t.Category))
	b.WriteString("\n\nUsage:\n  ")
	b.WriteString(highlight.Code(t.Command, "bash"))
	b.WriteString("\n\n")
	if t.ID == contrastToolID {
		b.WriteString(m.styles.muted.Render("Press enter to open the interactive checker."))
	} else {
		b.WriteString(m.styles.muted.Render("Press y to copy the command."))
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoTop()
}


func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if m.screen == screenContrast {
			return m.updateContrast(msg)
		}

		if m.searchMode {
			switch msg.String() {
			case "enter":
				m.searchQuery = m.searchInput.Value()
				m.searchMode = false
				m.searchInput.Blur()
				return m, nil
			case "esc":
				m.searchMode = false
				m.searchInput.Blur()
				m.searchInput.SetValue(m.searchQuery)
				m.applyFilters()
				return m, nil
			default:
				m.searchInput, cmd = m.searchInput.Update(msg)
				m.searchQuery = m.searchInput.Value()
				m.applyFilters()
				return m, cmd
			}
		}

		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case "/":
			m.searchMode = true
			m.searchInput.SetValue(m.searchQuery)
			return m, m.searchInput.Focus()
		case "esc":
			m.clearFilters()
			return m, nil
		case "tab":
			m.category = catalog.NextCategory(m.category, 1)
			m.applyFilters()
			return m, nil
		case "shift+tab":
			m.category = catalog.NextCategory(m.category, -1)
			m.applyFilters()
			return m, nil
		case "t":
			m.toggleTheme()
			return m, nil
		case "y":
			t, ok := m.selectedTool()
			if !ok {
				return m, func() tea.Msg { return statusMsg("No tool selected") }
			}
			return m, copyToClipboard(t.Command, "Copied: "+t.Command)
		case "enter":
			t, ok := m.selectedTool()
			if !ok {
				return m, nil
			}
			if t.ID == contrastToolID {
				m.screen = screenContrast
				m.statusMessage = contrastHint
				m.statusTimeout = nil
				return m, m.contrast.focus(m.contrast.focused)
			}
			m.setStatus("Run in your shell: " + t.Command)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		usableWidth := m.width - 10
		nameWidth := 24
		categoryWidth := 14
		descWidth := usableWidth - nameWidth - categoryWidth
		if descWidth < 25 {
			descWidth = 25
		}
		cols := m.table.Columns()
		cols[0].Width = nameWidth
		cols[1].Width = categoryWidth
		cols[2].Width = descWidth
		m.table.SetColumns(cols)

		chromeHeight := 3 // header, tabs, status bar
		availableHeight := m.height - chromeHeight
		tableHeight := int(float64(availableHeight) * 0.45)
		viewportHeight := availableHeight - tableHeight - m.styles.border.GetVerticalFrameSize()*2
		if viewportHeight < 3 {
			viewportHeight = 3
		}

		m.table.SetWidth(m.width)
		m.table.SetHeight(tableHeight)
		if m.viewport.Height == 0 {
			m.viewport = viewport.New(m.width, viewportHeight)
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()
		return m, nil

	case statusMsg:
		m.setStatus(string(msg))
		return m, nil

	case spinner.TickMsg:
		var spinCmd tea.Cmd
		m.spinner, spinCmd = m.spinner.Update(msg)
		if m.statusTimeout != nil && time.Now().After(*m.statusTimeout) {
			m.statusTimeout = nil
			m.statusMessage = m.defaultHint()
		}
		return m, spinCmd
	}

	if !m.quitting && m.screen == screenList {
		m.table, cmd = m.table.Update(msg)
		m.updateViewportContent()
	}
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}
	if m.showHelp {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.styles.popup.Render(helpText(m.styles)))
	}

	header := m.styles.header.Width(m.width).Render(
		fmt.Sprintf("devtoolbox  %s  %d tools", m.spinner.View(), len(m.tools)),
	)
	var body string
	if m.screen == screenContrast {
		body = m.viewContrast()
	} else {
		body = m.viewList()
	}
	status := m.styles.status.Width(m.width).Render(m.statusMessage)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func (m Model) viewList() string {
	tabs := make([]string, 0, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		if c == m.category {
			tabs = append(tabs, m.styles.tabOn.Render(c))
		} else {
			tabs = append(tabs, m.styles.tab.Render(c))
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if m.searchMode {
		tabBar = lipgloss.JoinHorizontal(lipgloss.Top, tabBar, "  ", m.searchInput.View())
	} else if m.searchQuery != "" {
		tabBar = lipgloss.JoinHorizontal(lipgloss.Top, tabBar, "  ", m.styles.muted.Render(fmt.Sprintf("[search: '%s']", m.searchQuery)))
	}

	tableRender := m.styles.border.
		Width(m.width).
		Height(m.table.Height()).
		Render(m.table.View())

	var detail string
	if len(m.tools) == 0 {
		detail = lipgloss.Place(
			m.width,
			m.viewport.Height,
			lipgloss.Center,
			lipgloss.Center,
			m.styles.empty.Render("No tools match.\n\nPress 'Esc' to clear filters"),
		)
	} else {
		detail = m.viewport.View()
	}
	detailRender := m.styles.border.
		Width(m.width).
		Height(m.viewport.Height).
		Render(detail)

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, tableRender, detailRender)
}

func helpText(s styles) string {
	rows := [][2]string{
		{"/", "search tools"},
		{"tab / shift+tab", "next / previous category"},
		{"enter", "open tool"},
		{"y", "copy command or result"},
		{"s", "swap colors (contrast)"},
		{"t", "toggle dark / light theme"},
		{"esc", "clear filters / back"},
		{"q, ctrl+c", "quit"},
	}
	var b strings.Builder
	b.WriteString(s.title.Render("Keys"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%s  %s\n", s.key.Render(fmt.Sprintf("%-16s", r[0])), r[1]))
	}
	b.WriteString("\nPress any key to close")
	return b.String()
}
