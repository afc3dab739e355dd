package gallery

import (
	"image/color"

	"shape-demos/internal/material"
)

// DefaultCount is the number of objects in a full gallery.
const DefaultCount = 45

var (
	// Palette cycles every 4 objects.
	Palette = [...]color.RGBA{
		material.FromHex(0x44aa88),
		material.FromHex(0x8844aa),
		material.FromHex(0xaa8844),
		material.FromHex(0x226699),
	}
	// Xs cycles every 9 objects.
	Xs = [...]float32{-8, -6, -4, -2, 0, 2, 4, 6, 8}
	// Ys cycles every 5 objects.
	Ys = [...]float32{-4, -2, 0, 2, 4}
)

// Layout returns the color and position of object i. Because 9 and 5 are coprime, the first 45
// objects land on distinct grid cells.
func Layout(i int) (color.RGBA, [3]float32) {
	return Palette[i%len(Palette)], [3]float32{Xs[i%len(Xs)], Ys[i%len(Ys)], 0}
}

// Speed is the rotation rate of object i in radians per second.
func Speed(i int) float32 {
	return 1 + float32(i)*0.01
}
