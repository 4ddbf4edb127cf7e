package styles

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/launchtime/launchtheme/internal/argb"
)

// lightThreshold is the CIE L* above which dark text reads better.
const lightThreshold = 0.6

func toColorful(c argb.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.Red()) / 255,
		G: float64(c.Green()) / 255,
		B: float64(c.Blue()) / 255,
	}
}

// IsLight reports whether c is light enough to need dark text on top.
func IsLight(c argb.Color) bool {
	l, _, _ := toColorful(c).Lab()
	return l > lightThreshold
}

// LabelColor returns a legible "#rrggbb" text color for a swatch of c.
func LabelColor(c argb.Color) string {
	if IsLight(c) {
		return "#000000"
	}
	return "#ffffff"
}

// Blend mixes a toward b in Lab space; t=0 is a, t=1 is b.
func Blend(a, b argb.Color, t float64) string {
	return toColorful(a).BlendLab(toColorful(b), t).Clamped().Hex()
}
