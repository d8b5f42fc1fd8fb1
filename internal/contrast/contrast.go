package contrast

import (
	"fmt"
	"math"
)

// RelativeLuminance returns the WCAG relative luminance of c in [0,1].
// https://www.w3.org/TR/WCAG20/#relativeluminancedef
func RelativeLuminance(c RGB) float64 {
	r := linearize(c.R)
	g := linearize(c.G)
	b := linearize(c.B)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(c uint8) float64 {
	cs := float64(c) / 255.0
	if cs <= 0.03928 {
		return cs / 12.92
	}
	return math.Pow((cs+0.055)/1.055, 2.4)
}

// RatioRGB returns the contrast ratio of two parsed colors, in [1,21].
// The result does not depend on argument order.
func RatioRGB(a, b RGB) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Ratio parses both colors and returns their contrast ratio at full
// precision. Errors wrap ErrInvalidColorFormat.
func Ratio(foreground, background string) (float64, error) {
	fg, bg, err := parsePair(foreground, background)
	if err != nil {
		return 0, err
	}
	return RatioRGB(fg, bg), nil
}

// Result is the full outcome of checking a foreground/background pair.
type Result struct {
	Foreground RGB        `json:"foreground"`
	Background RGB        `json:"background"`
	Ratio      float64    `json:"ratio"`
	Compliance Compliance `json:"compliance"`
	Rating     Rating     `json:"rating"`
}

// Check parses, measures and classifies a color pair.
func Check(foreground, background string) (Result, error) {
	fg, bg, err := parsePair(foreground, background)
	if err != nil {
		return Result{}, err
	}
	return CheckRGB(fg, bg), nil
}

// CheckRGB is Check for already parsed colors.
func CheckRGB(fg, bg RGB) Result {
	ratio := RatioRGB(fg, bg)
	c := Classify(ratio)
	return Result{
		Foreground: fg,
		Background: bg,
		Ratio:      ratio,
		Compliance: c,
		Rating:     Rate(c),
	}
}

func parsePair(foreground, background string) (RGB, RGB, error) {
	fg, err := ParseColor(foreground)
	if err != nil {
		return RGB{}, RGB{}, fmt.Errorf("foreground: %w", err)
	}
	bg, err := ParseColor(background)
	if err != nil {
		return RGB{}, RGB{}, fmt.Errorf("background: %w", err)
	}
	return fg, bg, nil
}
