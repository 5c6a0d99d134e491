package mandel

import (
	"golang.org/x/sync/errgroup"

	"github.com/ahalverson/mandelgrid/collections"
	"github.com/ahalverson/mandelgrid/raster"
)

// Viewport is the visible rectangle of the complex plane. Width is derived
// from the raster's aspect ratio; pixels are square.
type Viewport struct {
	Left   float64
	Bottom float64
	Height float64
}

// Top returns the plane coordinate of the raster's first row.
func (v Viewport) Top() float64 { return v.Bottom + v.Height }

// Renderer produces escape-time rasters for a fixed viewport.
type Renderer struct {
	// View is the complex-plane window to sample.
	View Viewport

	// Workers caps the goroutines used to compute iteration counts.
	// Values below 2 select the sequential path.
	Workers int

	// Palette maps iteration counts to colors. Nil selects
	// [raster.EscapeColor].
	Palette raster.Palette
}

// Render samples one kernel evaluation per pixel and returns a Collection of
// width*height colors in row-major order. Row 0 is the top of the image:
// the imaginary coordinate decreases as the row index grows.
//
// A zero width or height yields an empty Collection, not an error. With
// maxIters == 0 every count equals the budget, so the whole raster is black.
func (r Renderer) Render(width, height int, maxIters uint) *collections.Collection[raster.Color] {
	if width <= 0 || height <= 0 {
		return collections.Empty[raster.Color]()
	}

	scale := r.View.Height / float64(height)
	top := r.View.Top()
	left := r.View.Left

	sample := func(idx int) uint {
		row := idx / width
		col := idx % width
		y := top - float64(row)*scale
		x := left + float64(col)*scale
		return Iterate(x, y, maxIters)
	}

	var counts *collections.Collection[uint]
	if r.Workers > 1 {
		counts = r.generateParallel(width, height, sample)
	} else {
		counts = collections.Generate(width*height, sample)
	}

	palette := r.Palette
	if palette == nil {
		palette = raster.EscapeColor
	}
	return collections.Map(counts, func(count uint) raster.Color {
		return palette(count, maxIters)
	})
}

// generateParallel shards the raster by row across Workers goroutines. Each
// output slot is written exactly once, and the group is joined before the
// buffer is handed to the Collection, so readers never observe a partially
// generated raster.
func (r Renderer) generateParallel(width, height int, sample func(int) uint) *collections.Collection[uint] {
	counts := make([]uint, width*height)

	var g errgroup.Group
	g.SetLimit(r.Workers)
	for row := 0; row < height; row++ {
		base := row * width
		g.Go(func() error {
			for col := 0; col < width; col++ {
				counts[base+col] = sample(base + col)
			}
			return nil
		})
	}
	g.Wait() // no task returns an error; the join is the point

	return collections.From(counts)
}
