// Package raster holds the color value type shared by the rendering
// pipeline, the escape-count color encodings, and the image sink that
// persists a finished raster to disk.
//
// The sink boundary is deliberately narrow: a [Sink] consumes a
// width x height sequence of [Color] values in row-major order and either
// writes a file or reports a fatal, non-retryable error. Callers must
// propagate sink failures unchanged.
package raster
