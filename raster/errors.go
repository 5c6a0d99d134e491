package raster

import "errors"

// Sentinel errors returned by the image sink.
var (
	// ErrPixelCount is returned when the pixel slice handed to a sink does
	// not contain exactly width*height elements.
	ErrPixelCount = errors.New("raster: pixel count does not match dimensions")

	// ErrBadDimensions is returned when a sink is asked to write an image
	// with a non-positive width or height.
	ErrBadDimensions = errors.New("raster: width and height must be positive")
)
