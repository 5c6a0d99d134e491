package collections

// Number constrains the element types accepted by the arithmetic helpers.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ─────────────────────────────────────────────────────────────────────────────
// Element-wise arithmetic
//
// These carry no state of their own: each one is a Zip with the matching
// operator, so the min-count truncation rule of [Zip] applies throughout.
// ─────────────────────────────────────────────────────────────────────────────

// Add returns the element-wise sum of u and v.
func Add[T Number](u, v *Collection[T]) *Collection[T] {
	return Zip(u, v, func(a, b T) T { return a + b })
}

// Sub returns the element-wise difference u - v.
func Sub[T Number](u, v *Collection[T]) *Collection[T] {
	return Zip(u, v, func(a, b T) T { return a - b })
}

// Mul returns the element-wise product of u and v.
func Mul[T Number](u, v *Collection[T]) *Collection[T] {
	return Zip(u, v, func(a, b T) T { return a * b })
}

// Div returns the element-wise quotient u / v.
func Div[T Number](u, v *Collection[T]) *Collection[T] {
	return Zip(u, v, func(a, b T) T { return a / b })
}

// ─────────────────────────────────────────────────────────────────────────────
// Reductions
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of all elements, or 0 for an empty collection.
func Sum[T Number](u *Collection[T]) T {
	return u.Reduce(0, func(a, b T) T { return a + b })
}

// Prod returns the product of all elements.
//
// For an empty collection Prod returns 0, not 1: [Collection.Reduce] yields
// its identity argument only on empty input, and every numeric reduction here
// uses 0. Callers that need the multiplicative identity on empty input should
// call Reduce directly.
func Prod[T Number](u *Collection[T]) T {
	return u.Reduce(0, func(a, b T) T { return a * b })
}

// Dot returns the dot product of u and v: the sum of the element-wise
// products over the first min(u.Count(), v.Count()) elements.
func Dot[T Number](u, v *Collection[T]) T {
	return Sum(Mul(u, v))
}
