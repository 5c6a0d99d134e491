package raster_test

import (
	"testing"

	"github.com/ahalverson/mandelgrid/raster"
)

func TestEscapeColorPacksChannels(t *testing.T) {
	got := raster.EscapeColor(0x010203, 1<<30)
	want := raster.Color{R: 1, G: 2, B: 3}
	if got != want {
		t.Fatalf("EscapeColor(0x010203): got %+v want %+v", got, want)
	}
}

func TestEscapeColorNonEscapeIsBlack(t *testing.T) {
	// Any count equal to the budget is black, whatever its numeric value.
	for _, max := range []uint{0, 1, 255, 0x010203, 1 << 24} {
		if got := raster.EscapeColor(max, max); got != (raster.Color{}) {
			t.Fatalf("EscapeColor(%d, %d): got %+v want black", max, max, got)
		}
	}
}

func TestEscapeColorZeroCountUnderNonZeroBudget(t *testing.T) {
	// count 0 with a positive budget escaped immediately: it is an escape
	// color (black by value here), not the sentinel path.
	if got := raster.EscapeColor(0, 100); got != (raster.Color{}) {
		t.Fatalf("EscapeColor(0, 100): got %+v want {0 0 0}", got)
	}
}

func TestEscapeColorWrapsPerChannel(t *testing.T) {
	// 0x1000102 masks to the same channels as 0x000102.
	if got, want := raster.EscapeColor(0x1000102, 1<<30), raster.EscapeColor(0x000102, 1<<30); got != want {
		t.Fatalf("channel wrap: got %+v want %+v", got, want)
	}
}

func TestSmoothPaletteBlackOnNonEscape(t *testing.T) {
	p := raster.SmoothPalette()
	if got := p(50, 50); got != (raster.Color{}) {
		t.Fatalf("smooth palette non-escape: got %+v want black", got)
	}
}

func TestSmoothPaletteColorsEscapes(t *testing.T) {
	p := raster.SmoothPalette()
	if got := p(10, 50); got == (raster.Color{}) {
		t.Fatal("smooth palette rendered an escaping point as black")
	}
}
