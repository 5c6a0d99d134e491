package raster

import "github.com/lucasb-eyer/go-colorful"

// Color is an 8-bit-per-channel RGB value. The zero value is black.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Palette maps an escape-time iteration count to a Color. count equals
// maxIters exactly when the point did not escape within budget; every
// palette must render that case as black.
type Palette func(count, maxIters uint) Color

// EscapeColor is the default palette: points that never escape are black,
// and escaping counts are packed directly into the channels with red taking
// bits 16-23, green bits 8-15, and blue bits 0-7. Counts above 0xFFFFFF wrap
// per channel; there is no clamping.
//
// The non-escape test is count == maxIters, never count == 0: with a budget
// of 0 the kernel returns 0, which equals the budget and is therefore black.
func EscapeColor(count, maxIters uint) Color {
	if count == maxIters {
		return Color{}
	}
	return Color{
		R: uint8(count >> 16),
		G: uint8(count >> 8),
		B: uint8(count),
	}
}

// SmoothPalette returns a palette that spreads escaping counts over an HSV
// hue sweep, which reads far better at low iteration budgets than the raw
// bit packing of [EscapeColor]. Non-escaping points remain black.
func SmoothPalette() Palette {
	return func(count, maxIters uint) Color {
		if count == maxIters {
			return Color{}
		}
		hue := 360 * float64(count) / float64(maxIters)
		r, g, b := colorful.Hsv(hue, 0.85, 1.0).RGB255()
		return Color{R: r, G: g, B: b}
	}
}
