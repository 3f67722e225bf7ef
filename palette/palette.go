// Package palette fixes the colors and markers shared by every chart in
// the evaluation pipeline, so the same filter class looks the same across
// plots rendered by different tools.
package palette

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Hue wheel parameters. Saturation and lightness sit where the colors stay
// readable on a light chart panel; the small offset keeps hue zero off pure
// red.
const (
	hueOffset  = 0.01
	saturation = 0.90
	lightness  = 0.65
)

// Hues returns n colors evenly spaced around the HSLuv hue wheel at fixed
// saturation and lightness. Perceptually even spacing keeps any pair of
// neighbors distinguishable. The same n always yields the same colors.
// n <= 0 returns nil.
func Hues(n int) []color.Color {
	if n <= 0 {
		return nil
	}
	out := make([]color.Color, n)
	for i := range out {
		h := math.Mod(float64(i)/float64(n)+hueOffset, 1) * 360
		out[i] = colorful.HSLuv(h, saturation, lightness)
	}
	return out
}
