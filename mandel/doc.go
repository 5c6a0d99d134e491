// Package mandel computes escape-time rasters of the Mandelbrot set on top
// of the collections container: a pure per-point kernel ([Iterate]) and a
// [Renderer] that composes pixel coordinates, the kernel, and a color
// palette into a Collection of pixels ready for an image sink.
package mandel
