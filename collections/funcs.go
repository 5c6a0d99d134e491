package collections

// This file contains package-level generic functions for operations that
// construct one Collection from others. Go generics do not allow methods to
// introduce their own type parameters, so map and zip live here as
// stand-alone functions rather than methods.

// Map creates a Collection[U] with the same count as src where element i
// equals fn(src element i). src is read once and left untouched; the result
// retains no reference to it.
//
//	labels := collections.Map(counts, func(n uint) string { return strconv.Itoa(int(n)) })
func Map[T, U any](src *Collection[T], fn func(T) U) *Collection[U] {
	out := make([]U, len(src.data))
	for i, item := range src.data {
		out[i] = fn(item)
	}
	return &Collection[U]{data: out}
}

// Zip combines two Collections element-by-element through fn. The result has
// min(a.Count(), b.Count()) elements; trailing elements of the longer input
// are silently ignored. Length mismatch is never an error.
//
//	sums := collections.Zip(u, v, func(a, b float64) float64 { return a + b })
func Zip[A, B, C any](a *Collection[A], b *Collection[B], fn func(A, B) C) *Collection[C] {
	n := min(len(a.data), len(b.data))
	out := make([]C, n)
	for i := 0; i < n; i++ {
		out[i] = fn(a.data[i], b.data[i])
	}
	return &Collection[C]{data: out}
}
