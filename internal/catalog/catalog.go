// Package catalog lists the tools shipped with devtoolbox and filters them
// by free-text search and category.
package catalog

import "strings"

// CategoryAll matches every tool.
const CategoryAll = "All"

// Tool describes one utility in the toolbox.
type Tool struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	// Command is the CLI invocation that runs the tool.
	Command string `json:"command"`
}

var tools = []Tool{
	{ID: "qr-generator", Name: "QR Code Generator", Description: "Generate QR codes from text or URLs", Category: "Image Tools", Command: "devtoolbox qr <text> [--output file.png]"},
	{ID: "color-contrast", Name: "Color Contrast Checker", Description: "Check WCAG color contrast ratios", Category: "Web Tools", Command: "devtoolbox contrast <foreground> <background>"},
	{ID: "jwt-decoder", Name: "JWT Decoder", Description: "Decode and inspect JWT tokens", Category: "Crypto Tools", Command: "devtoolbox jwt decode <token>"},
	{ID: "url-encoder", Name: "URL Encoder", Description: "Encode and decode URLs", Category: "Text Tools", Command: "devtoolbox url encode|decode <text>"},
	{ID: "cron-calculator", Name: "Cron Calculator", Description: "Generate and validate cron expressions", Category: "Data Tools", Command: "devtoolbox cron <expression>"},
	{ID: "base64-encoder", Name: "Base64 Encoder", Description: "Encode and decode Base64 strings", Category: "Text Tools", Command: "devtoolbox base64 encode|decode <text>"},
	{ID: "json-formatter", Name: "JSON Formatter", Description: "Format and validate JSON data", Category: "Data Tools", Command: "devtoolbox json format|minify [file]"},
	{ID: "uuid-generator", Name: "UUID Generator", Description: "Generate unique identifiers", Category: "Data Tools", Command: "devtoolbox uuid [--count N]"},
}

var categories = []string{
	CategoryAll,
	"Text Tools",
	"Image Tools",
	"Crypto Tools",
	"Data Tools",
	"Web Tools",
}

// Tools returns a copy of the full catalogue in display order.
func Tools() []Tool {
	out := make([]Tool, len(tools))
	copy(out, tools)
	return out
}

// Categories returns the category tabs, starting with CategoryAll.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// Lookup returns the tool with the given ID.
func Lookup(id string) (Tool, bool) {
	for _, t := range tools {
		if t.ID == id {
			return t, true
		}
	}
	return Tool{}, false
}

// Filter keeps tools in category (empty or CategoryAll for any) whose name or
// description contains query, ignoring case. The result is never nil.
func Filter(query, category string) []Tool {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []Tool{}
	for _, t := range tools {
		if category != "" && category != CategoryAll && t.Category != category {
			continue
		}
		if q != "" {
			nameMatch := strings.Contains(strings.ToLower(t.Name), q)
			descMatch := strings.Contains(strings.ToLower(t.Description), q)
			if !nameMatch && !descMatch {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// NextCategory returns the category after cur, wrapping around. dir is +1 or -1.
func NextCategory(cur string, dir int) string {
	idx := 0
	for i, c := range categories {
		if c == cur {
			idx = i
			break
		}
	}
	n := len(categories)
	return categories[((idx+dir)%n+n)%n]
}
