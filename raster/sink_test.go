package raster_test

import (
	"errors"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ahalverson/mandelgrid/raster"
)

func TestPNGFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	pixels := []raster.Color{
		{R: 255}, {G: 255},
		{B: 255}, {R: 1, G: 2, B: 3},
	}

	sink := raster.PNGFile{Path: path}
	if err := sink.Write(2, 2, pixels); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open written file: %v", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if format != "png" {
		t.Fatalf("format: got %q want png", format)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("bounds: got %v want 2x2", b)
	}

	for i, want := range pixels {
		x, y := i%2, i/2
		r, g, b, _ := img.At(x, y).RGBA()
		got := raster.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
		if got != want {
			t.Fatalf("pixel (%d,%d): got %+v want %+v", x, y, got, want)
		}
	}
}

func TestPNGFilePixelCountMismatch(t *testing.T) {
	sink := raster.PNGFile{Path: filepath.Join(t.TempDir(), "out.png")}
	err := sink.Write(2, 2, make([]raster.Color, 3))
	if !errors.Is(err, raster.ErrPixelCount) {
		t.Fatalf("got %v want ErrPixelCount", err)
	}
}

func TestPNGFileBadDimensions(t *testing.T) {
	sink := raster.PNGFile{Path: filepath.Join(t.TempDir(), "out.png")}
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 4}} {
		err := sink.Write(dims[0], dims[1], nil)
		if !errors.Is(err, raster.ErrBadDimensions) {
			t.Fatalf("Write(%dx%d): got %v want ErrBadDimensions", dims[0], dims[1], err)
		}
	}
}

func TestPNGFileOpenFailure(t *testing.T) {
	sink := raster.PNGFile{Path: filepath.Join(t.TempDir(), "missing", "out.png")}
	err := sink.Write(1, 1, []raster.Color{{}})
	if err == nil {
		t.Fatal("expected a file-open error for a missing directory")
	}
}
