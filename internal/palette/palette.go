// Package palette audits the color pairs of a design palette against the
// WCAG contrast levels. Palettes are small YAML files:
//
//	name: brand
//	colors:
//	  ink: "#1a1a1a"
//	  paper: "#fafafa"
//	pairs:
//	  - foreground: ink
//	    background: paper
//
// Pair entries may name a color from the colors map or give a hex literal.
// When pairs is empty every ordered pair of distinct named colors is checked.
package palette

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/devtoolbox/devtoolbox/internal/contrast"
	"gopkg.in/yaml.v3"
)

// File is a parsed palette.
type File struct {
	Path   string            `yaml:"-"`
	Name   string            `yaml:"name"`
	Colors map[string]string `yaml:"colors"`
	Pairs  []Pair            `yaml:"pairs"`
}

// Pair names a foreground and a background.
type Pair struct {
	Foreground string `yaml:"foreground" json:"foreground"`
	Background string `yaml:"background" json:"background"`
}

// Finding is the audit outcome for one pair. Err is set when a color could
// not be resolved or parsed; Result is zero in that case.
type Finding struct {
	Palette string          `json:"palette"`
	Pair    Pair            `json:"pair"`
	Result  contrast.Result `json:"result"`
	Err     string          `json:"error,omitempty"`
}

// Load reads and parses a palette file.
func Load(path string) (File, error) {
	var f File
	b, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := yaml.Unmarshal(b, &f); err != nil {
		return f, fmt.Errorf("parse %s: %w", path, err)
	}
	f.Path = path
	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return f, nil
}

// Glob returns palette files under root matching a doublestar pattern such
// as "themes/**/*.yml", sorted.
func Glob(root, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(root), pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, filepath.Join(root, filepath.FromSlash(m)))
	}
	sort.Strings(out)
	return out, nil
}

// Resolve turns a color name or hex literal into a parsed color.
func (f File) Resolve(ref string) (contrast.RGB, error) {
	ref = strings.TrimSpace(ref)
	if v, ok := f.Colors[ref]; ok {
		return contrast.ParseColor(strings.TrimSpace(v))
	}
	c, err := contrast.ParseColor(ref)
	if err != nil {
		return contrast.RGB{}, fmt.Errorf("unknown color %q: %w", ref, err)
	}
	return c, nil
}

// PairsToCheck returns the explicit pairs, or all ordered pairs of distinct
// named colors sorted by name when none are listed.
func (f File) PairsToCheck() []Pair {
	if len(f.Pairs) > 0 {
		return f.Pairs
	}
	names := make([]string, 0, len(f.Colors))
	for n := range f.Colors {
		names = append(names, n)
	}
	sort.Strings(names)
	var out []Pair
	for _, fg := range names {
		for _, bg := range names {
			if fg != bg {
				out = append(out, Pair{Foreground: fg, Background: bg})
			}
		}
	}
	return out
}

// Audit checks every pair of f. Bad pairs are reported, not fatal.
func Audit(f File) []Finding {
	pairs := f.PairsToCheck()
	out := make([]Finding, 0, len(pairs))
	for _, p := range pairs {
		fd := Finding{Palette: f.Name, Pair: p}
		fg, err := f.Resolve(p.Foreground)
		if err != nil {
			fd.Err = "foreground: " + err.Error()
			out = append(out, fd)
			continue
		}
		bg, err := f.Resolve(p.Background)
		if err != nil {
			fd.Err = "background: " + err.Error()
			out = append(out, fd)
			continue
		}
		fd.Result = contrast.CheckRGB(fg, bg)
		out = append(out, fd)
	}
	return out
}
