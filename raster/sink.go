package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Sink persists a finished raster. Pixels are supplied in row-major order
// (row 0 first) and must contain exactly width*height entries. A sink
// failure is fatal for the write: sinks never retry, and callers must treat
// the returned error as non-recoverable.
type Sink interface {
	Write(width, height int, pixels []Color) error
}

// PNGFile is a [Sink] that encodes the raster as an 8-bit RGB PNG file.
type PNGFile struct {
	Path string
}

// Write validates the raster shape, encodes it, and writes it to p.Path.
// The file is created fresh; an existing file at the path is truncated.
//
// Failure classes, each wrapped for errors.Is and labeled for humans:
// dimension validation ([ErrBadDimensions], [ErrPixelCount]), file open or
// create failure, encoder failure, and file close failure.
func (p PNGFile) Write(width, height int, pixels []Color) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if len(pixels) != width*height {
		return fmt.Errorf("%w: have %d pixels for %dx%d", ErrPixelCount, len(pixels), width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, px := range pixels {
		img.SetNRGBA(i%width, i/width, color.NRGBA{R: px.R, G: px.G, B: px.B, A: 0xff})
	}

	f, err := os.Create(p.Path)
	if err != nil {
		return fmt.Errorf("raster: open output file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("raster: encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("raster: close output file: %w", err)
	}
	return nil
}
