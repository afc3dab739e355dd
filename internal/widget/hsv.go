package widget

import (
	"image/color"
	"math"
)

// RGBToHSV converts c to hue, saturation, and value, each in [0, 1]. Alpha is ignored.
func RGBToHSV(c color.RGBA) (h, s, v float32) {
	r, g, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	d := max - min
	v = float32(max)
	if max > 0 {
		s = float32(d / max)
	}
	if d == 0 {
		return 0, s, v
	}
	var hh float64
	switch max {
	case r:
		hh = math.Mod((g-b)/d, 6)
	case g:
		hh = (b-r)/d + 2
	default:
		hh = (r-g)/d + 4
	}
	hh /= 6
	if hh < 0 {
		hh++
	}
	return float32(hh), s, v
}

// HSVToRGB converts hue, saturation, and value in [0, 1] to an opaque color.
func HSVToRGB(h, s, v float32) color.RGBA {
	hh := math.Mod(float64(h), 1) * 6
	if hh < 0 {
		hh += 6
	}
	c := float64(v) * float64(s)
	x := c * (1 - math.Abs(math.Mod(hh, 2)-1))
	m := float64(v) - c
	var r, g, b float64
	switch int(hh) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	to8 := func(f float64) uint8 { return uint8(math.Round((f + m) * 255)) }
	return color.RGBA{R: to8(r), G: to8(g), B: to8(b), A: 255}
}
