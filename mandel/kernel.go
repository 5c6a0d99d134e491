package mandel

// Iterate runs the escape-time divergence test for the complex-plane point
// (x0, y0) and returns the iteration at which |z| reached 2, or maxIters if
// that never happened within budget. Callers detect the "did not escape"
// case by comparing the result against maxIters, never against 0.
//
// Iterate is pure: no allocation, no side effects, identical inputs always
// yield identical output, so it is safe to evaluate concurrently per pixel.
func Iterate(x0, y0 float64, maxIters uint) uint {
	x, y := 0.0, 0.0
	var i uint
	for i < maxIters && x*x+y*y < 4.0 {
		// Both accumulators advance from the pre-update x; the update
		// order is part of the math, not a style choice.
		x, y = x*x-y*y+x0, 2*x*y+y0
		i++
	}
	return i
}
