package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func ids(ts []Tool) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		category string
		want     []string
	}{
		{"everything", "", CategoryAll, []string{"qr-generator", "color-contrast", "jwt-decoder", "url-encoder", "cron-calculator", "base64-encoder", "json-formatter", "uuid-generator"}},
		{"empty category means all", "", "", ids(Tools())},
		{"search by name", "json", CategoryAll, []string{"json-formatter"}},
		{"search is case insensitive", "JWT", "", []string{"jwt-decoder"}},
		{"search by description", "wcag", "", []string{"color-contrast"}},
		{"category only", "", "Text Tools", []string{"url-encoder", "base64-encoder"}},
		{"category and search", "decode", "Text Tools", []string{"url-encoder", "base64-encoder"}},
		{"category excludes match", "json", "Text Tools", []string{}},
		{"unknown category", "", "Audio Tools", []string{}},
		{"no match", "kubernetes", "", []string{}},
		{"query is trimmed", "  uuid ", "", []string{"uuid-generator"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(tt.query, tt.category))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Filter(%q, %q) mismatch (-want +got):\n%s", tt.query, tt.category, diff)
			}
		})
	}
}

func TestEveryToolHasKnownCategory(t *testing.T) {
	known := map[string]bool{}
	for _, c := range Categories()[1:] {
		known[c] = true
	}
	for _, tool := range Tools() {
		assert.True(t, known[tool.Category], "tool %s has unknown category %q", tool.ID, tool.Category)
		assert.NotEmpty(t, tool.Command)
	}
}

func TestLookup(t *testing.T) {
	tool, ok := Lookup("color-contrast")
	assert.True(t, ok)
	assert.Equal(t, "Color Contrast Checker", tool.Name)

	_, ok = Lookup("missing")
	assert.False(t, ok)
}

func TestToolsReturnsCopy(t *testing.T) {
	ts := Tools()
	ts[0].Name = "changed"
	assert.Equal(t, "QR Code Generator", Tools()[0].Name)
}

func TestNextCategory(t *testing.T) {
	assert.Equal(t, "Text Tools", NextCategory(CategoryAll, 1))
	assert.Equal(t, "Web Tools", NextCategory(CategoryAll, -1))
	assert.Equal(t, CategoryAll, NextCategory("Web Tools", 1))
	assert.Equal(t, "Text Tools", NextCategory("unknown", 1))
}
