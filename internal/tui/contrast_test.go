package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contrastModel(t *testing.T, fg, bg string) Model {
	t.Helper()
	m := NewModel(Options{Foreground: fg, Background: bg, StartContrast: true})
	require.Equal(t, screenContrast, m.screen)
	return m
}

func TestContrast_InitialColors(t *testing.T) {
	m := contrastModel(t, "#777", "#fff")
	require.NotNil(t, m.contrast.result)
	assert.InDelta(t, 4.478, m.contrast.result.Ratio, 0.001)
	assert.True(t, m.contrast.result.Compliance.AALarge)
	assert.False(t, m.contrast.result.Compliance.AANormal)
}

func TestContrast_RecomputesOnEdit(t *testing.T) {
	m := contrastModel(t, "#777", "#fff")
	// "#777" -> "#77" is invalid, then "#770" is valid again.
	m, _ = update(t, m, key("backspace"))
	assert.Nil(t, m.contrast.result)
	assert.Contains(t, m.contrast.err, "foreground")
	assert.Contains(t, m.contrast.err, "invalid color format")

	m, _ = update(t, m, key("0"))
	require.NotNil(t, m.contrast.result)
	assert.Equal(t, "#777700", m.contrast.result.Foreground.Hex())
	assert.Empty(t, m.contrast.err)
}

func TestContrast_TabMovesFocus(t *testing.T) {
	m := contrastModel(t, "#000", "#fff")
	assert.Equal(t, 0, m.contrast.focused)
	m, _ = update(t, m, key("tab"))
	assert.Equal(t, 1, m.contrast.focused)
	m, _ = update(t, m, key("backspace"), key("backspace"), key("backspace"), key("0"), key("0"), key("0"))
	require.NotNil(t, m.contrast.result)
	assert.Equal(t, 1.0, m.contrast.result.Ratio)
	m, _ = update(t, m, key("shift+tab"))
	assert.Equal(t, 0, m.contrast.focused)
}

func TestContrast_Swap(t *testing.T) {
	m := contrastModel(t, "#112233", "#fafafa")
	before := m.contrast.result.Ratio
	m, _ = update(t, m, key("s"))
	assert.Equal(t, "#fafafa", m.contrast.inputs[0].Value())
	assert.Equal(t, "#112233", m.contrast.inputs[1].Value())
	assert.Equal(t, before, m.contrast.result.Ratio)
	assert.Equal(t, "#FAFAFA", m.contrast.result.Foreground.Hex())
}

func TestContrast_Copy(t *testing.T) {
	got := stubClipboard(t, nil)
	m := contrastModel(t, "#000", "#fff")
	_, cmd := update(t, m, key("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, statusMsg("Copied contrast result"), cmd())
	assert.True(t, strings.HasPrefix(*got, "#000000 on #FFFFFF: 21.00:1 (Excellent)"))
	assert.Contains(t, *got, "AAA - Large Text: PASS")
}

func TestContrast_CopyInvalid(t *testing.T) {
	got := stubClipboard(t, nil)
	m := contrastModel(t, "nope", "#fff")
	_, cmd := update(t, m, key("y"))
	require.NotNil(t, cmd)
	assert.Contains(t, string(cmd().(statusMsg)), "Nothing to copy")
	assert.Empty(t, *got)
}

func TestResultText(t *testing.T) {
	m := contrastModel(t, "#777", "#fff")
	txt := resultText(*m.contrast.result)
	assert.Equal(t, strings.Join([]string{
		"#777777 on #FFFFFF: 4.48:1 (Poor)",
		"AA - Normal Text: FAIL",
		"AA - Large Text: PASS",
		"AAA - Normal Text: FAIL",
		"AAA - Large Text: FAIL",
	}, "\n"), txt)
}
