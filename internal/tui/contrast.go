package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/devtoolbox/devtoolbox/internal/contrast"
	"github.com/devtoolbox/devtoolbox/internal/report"
)

const contrastToolID = "color-contrast"

const (
	defaultForeground = "#000000"
	defaultBackground = "#FFFFFF"
)

// contrastState backs the interactive checker. The result is recomputed
// after every edit; err holds the message for unparsable input.
type contrastState struct {
	inputs  [2]textinput.Model // foreground, background
	focused int
	result  *contrast.Result
	err     string
}

func newContrastState(fg, bg string) contrastState {
	if strings.TrimSpace(fg) == "" {
		fg = defaultForeground
	}
	if strings.TrimSpace(bg) == "" {
		bg = defaultBackground
	}
	var s contrastState
	for i, v := range []string{fg, bg} {
		ti := textinput.New()
		ti.Placeholder = "#RRGGBB"
		ti.CharLimit = 9 // #RRGGBBAA
		ti.Width = 10
		ti.Prompt = ""
		ti.SetValue(v)
		s.inputs[i] = ti
	}
	s.recompute()
	return s
}

func (s *contrastState) focus(i int) tea.Cmd {
	s.focused = i
	for j := range s.inputs {
		if j != i {
			s.inputs[j].Blur()
		}
	}
	return s.inputs[i].Focus()
}

func (s *contrastState) blur() {
	for j := range s.inputs {
		s.inputs[j].Blur()
	}
}

func (s *contrastState) recompute() {
	res, err := contrast.Check(strings.TrimSpace(s.inputs[0].Value()), strings.TrimSpace(s.inputs[1].Value()))
	if err != nil {
		s.result = nil
		s.err = err.Error()
		return
	}
	s.result = &res
	s.err = ""
}

func (s *contrastState) swap() {
	fg, bg := s.inputs[0].Value(), s.inputs[1].Value()
	s.inputs[0].SetValue(bg)
	s.inputs[1].SetValue(fg)
	s.recompute()
}

// resultText is the clipboard form of a result.
func resultText(res contrast.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s on %s: %s (%s)\n", res.Foreground.Hex(), res.Background.Hex(), report.FormatRatio(res.Ratio), res.Rating)
	passes := res.Compliance.Passes()
	for i, lv := range contrast.Levels() {
		verdict := "FAIL"
		if passes[i] {
			verdict = "PASS"
		}
		fmt.Fprintf(&b, "%s: %s\n", lv.Name, verdict)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m Model) updateContrast(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := &m.contrast
	switch msg.String() {
	case "esc":
		c.blur()
		m.screen = screenList
		m.statusMessage = listHint
		m.statusTimeout = nil
		return m, nil
	case "tab", "down":
		return m, c.focus((c.focused + 1) % len(c.inputs))
	case "shift+tab", "up":
		return m, c.focus((c.focused + len(c.inputs) - 1) % len(c.inputs))
	case "s":
		c.swap()
		m.setStatus("Swapped foreground and background")
		return m, nil
	case "t":
		m.toggleTheme()
		return m, nil
	case "y":
		if c.result == nil {
			reason := c.err
			return m, func() tea.Msg { return statusMsg("Nothing to copy: " + reason) }
		}
		return m, copyToClipboard(resultText(*c.result), "Copied contrast result")
	}

	var cmd tea.Cmd
	c.inputs[c.focused], cmd = c.inputs[c.focused].Update(msg)
	c.recompute()
	return m, cmd
}

func (m Model) viewContrast() string {
	c := m.contrast
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Color Contrast Checker"))
	b.WriteString("\n\n")
	for i, label := range []string{"Foreground", "Background"} {
		marker := "  "
		if i == c.focused {
			marker = m.styles.key.Render("> ")
		}
		fmt.Fprintf(&b, "%s%-11s %s %s\n", marker, label, c.inputs[i].View(), colorChip(c.inputs[i].Value()))
	}
	b.WriteString("\n")

	if c.result == nil {
		b.WriteString(m.styles.errorS.Render(c.err))
		b.WriteString("\n")
	} else {
		res := *c.result
		fmt.Fprintf(&b, "Contrast ratio: %s  %s\n\n",
			m.styles.title.Render(report.FormatRatio(res.Ratio)),
			m.styles.muted.Render(string(res.Rating)))

		passes := res.Compliance.Passes()
		badges := make([]string, 0, len(passes))
		for i, lv := range contrast.Levels() {
			if passes[i] {
				badges = append(badges, passStyle.Render(lv.Name+" PASS"))
			} else {
				badges = append(badges, failStyle.Render(lv.Name+" FAIL"))
			}
			badges = append(badges, " ")
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, badges...))
		b.WriteString("\n\n")

		preview := lipgloss.NewStyle().
			Foreground(lipgloss.Color(res.Foreground.Hex())).
			Background(lipgloss.Color(res.Background.Hex())).
			Padding(1, 2).
			Render(lipgloss.NewStyle().Bold(true).Render("Large Heading Text") +
				"\nNormal body text. The quick brown fox jumps over the lazy dog.")
		b.WriteString(preview)
		b.WriteString("\n")
	}

	return m.styles.border.
		Width(m.width).
		Render(b.String())
}

// colorChip renders a small block in the typed color, or nothing while the
// value does not parse.
func colorChip(v string) string {
	c, err := contrast.ParseColor(strings.TrimSpace(v))
	if err != nil {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("      ")
}
