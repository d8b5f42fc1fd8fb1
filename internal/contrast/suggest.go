package contrast

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	black = colorful.Color{R: 0, G: 0, B: 0}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

// Suggest finds the foreground closest to fg that reaches target against bg.
// It blends fg in CIE-Lab toward black and toward white in 1% steps and
// returns the first passing candidate, trying the direction away from the
// background first. A non-positive target means AA normal text. The boolean
// is false when even pure black or white cannot reach the target.
func Suggest(fg, bg RGB, target float64) (RGB, bool) {
	if target <= 0 {
		target = AANormalThreshold
	}
	if RatioRGB(fg, bg) >= target {
		return fg, true
	}

	base := toColorful(fg)
	dirs := [2]colorful.Color{black, white}
	if RelativeLuminance(bg) < RelativeLuminance(fg) {
		dirs[0], dirs[1] = white, black
	}

	for step := 1; step <= 100; step++ {
		t := float64(step) / 100
		for _, end := range dirs {
			cand := fromColorful(base.BlendLab(end, t))
			if RatioRGB(cand, bg) >= target {
				return cand, true
			}
		}
	}
	return fg, false
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}
