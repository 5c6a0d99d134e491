package collections

import (
	"fmt"
	"strings"
)

// Collection is a generic, fixed-size container that exclusively owns a
// contiguous buffer of T.
//
// The element count is set by the constructor and never changes for the life
// of the object. Elements may be overwritten in place with [Collection.Set],
// but there is no append, insert, or remove. Transformations ([Map], [Zip],
// [Collection.Reduce]) are fully eager: they read the source once and
// materialize their result immediately, retaining no reference to the source.
//
// A nil buffer marks the moved-from state left behind by [Collection.Move];
// a live empty Collection always holds a non-nil zero-length buffer.
type Collection[T any] struct {
	data []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Generate creates a Collection of n elements where element i equals fn(i).
// fn is invoked once per index in ascending order and must be free of side
// effects. n <= 0 yields an empty Collection.
func Generate[T any](n int, fn func(int) T) *Collection[T] {
	if n < 0 {
		n = 0
	}
	data := make([]T, n)
	for i := range data {
		data[i] = fn(i)
	}
	return &Collection[T]{data: data}
}

// From creates a Collection that owns a copy of items.
func From[T any](items []T) *Collection[T] {
	data := make([]T, len(items))
	copy(data, items)
	return &Collection[T]{data: data}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{data: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of elements. It is 0 for a moved-from Collection.
func (c *Collection[T]) Count() int { return len(c.data) }

// IsEmpty reports whether the collection contains no elements.
func (c *Collection[T]) IsEmpty() bool { return len(c.data) == 0 }

// Get returns a copy of the element at index.
// It returns [ErrIndexOutOfRange] when index is outside [0, Count()-1] and
// [ErrMoved] when the collection has been moved from.
func (c *Collection[T]) Get(index int) (T, error) {
	var zero T
	if c.data == nil {
		return zero, ErrMoved
	}
	if index < 0 || index >= len(c.data) {
		return zero, fmt.Errorf("%w: %d (count %d)", ErrIndexOutOfRange, index, len(c.data))
	}
	return c.data[index], nil
}

// Set overwrites the element at index in place. The bounds contract matches
// [Collection.Get]. Set is only legal while the Collection still owns its
// buffer; after [Collection.Move] it returns [ErrMoved].
func (c *Collection[T]) Set(index int, value T) error {
	if c.data == nil {
		return ErrMoved
	}
	if index < 0 || index >= len(c.data) {
		return fmt.Errorf("%w: %d (count %d)", ErrIndexOutOfRange, index, len(c.data))
	}
	c.data[index] = value
	return nil
}

// All returns a copy of every element in index order. It is the boundary
// operation for handing data to external consumers such as the image sink.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.data))
	copy(out, c.data)
	return out
}

// String renders the elements as "[a,b,c]".
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	if c.data == nil {
		return "[moved]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range c.data {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%v", item)
	}
	b.WriteByte(']')
	return b.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every element in ascending index order.
func (c *Collection[T]) Each(fn func(T, int)) {
	for i, item := range c.data {
		fn(item, i)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Reduction
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds all elements left-to-right with fn, seeding the fold with the
// first element. identity is returned only when the collection is empty; it
// must be supplied explicitly because no zero value is assumed for T.
//
// fn should be associative in practice; the fold order is index order.
func (c *Collection[T]) Reduce(identity T, fn func(acc, item T) T) T {
	if len(c.data) == 0 {
		return identity
	}
	acc := c.data[0]
	for _, item := range c.data[1:] {
		acc = fn(acc, item)
	}
	return acc
}

// ─────────────────────────────────────────────────────────────────────────────
// Ownership transfer
// ─────────────────────────────────────────────────────────────────────────────

// Move transfers ownership of the buffer to a new Collection and invalidates
// c. After Move, every fallible operation on c reports [ErrMoved] and
// Count reports 0. Moving an already moved-from Collection yields another
// moved-from Collection.
func (c *Collection[T]) Move() *Collection[T] {
	data := c.data
	c.data = nil
	return &Collection[T]{data: data}
}
