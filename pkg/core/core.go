package core

import (
	"github.com/devtoolbox/devtoolbox/internal/contrast"
	"github.com/devtoolbox/devtoolbox/internal/palette"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type RGB = contrast.RGB
type Compliance = contrast.Compliance
type Rating = contrast.Rating
type Result = contrast.Result
type Palette = palette.File
type Finding = palette.Finding

// ErrInvalidColorFormat is returned for input that is not a hex color.
var ErrInvalidColorFormat = contrast.ErrInvalidColorFormat

// WCAG thresholds.
const (
	AANormalThreshold  = contrast.AANormalThreshold
	AALargeThreshold   = contrast.AALargeThreshold
	AAANormalThreshold = contrast.AAANormalThreshold
	AAALargeThreshold  = contrast.AAALargeThreshold
)

// ParseColor parses #RGB, #RRGGBB or #RRGGBBAA (alpha ignored, # optional).
func ParseColor(s string) (RGB, error) { return contrast.ParseColor(s) }

// RelativeLuminance returns the WCAG relative luminance of c in [0, 1].
func RelativeLuminance(c RGB) float64 { return contrast.RelativeLuminance(c) }

// Ratio returns the contrast ratio of two hex colors, in [1, 21].
func Ratio(foreground, background string) (float64, error) {
	return contrast.Ratio(foreground, background)
}

// Classify evaluates a ratio against the four WCAG levels.
func Classify(ratio float64) Compliance { return contrast.Classify(ratio) }

// Check parses, measures and classifies a pair in one call.
func Check(foreground, background string) (Result, error) {
	return contrast.Check(foreground, background)
}

// Suggest returns the closest foreground reaching target against bg.
func Suggest(fg, bg RGB, target float64) (RGB, bool) { return contrast.Suggest(fg, bg, target) }

// LoadPalette reads a palette YAML file.
func LoadPalette(path string) (Palette, error) { return palette.Load(path) }

// AuditPalette checks every pair of p.
func AuditPalette(p Palette) []Finding { return palette.Audit(p) }
