package collections

// Cursor is a finite, restartable, forward cursor over a Collection's
// elements in ascending index order. Dereferencing yields a copy of the
// element, never a reference into the buffer.
//
// Two Cursors are equal only when they were produced by the same Collection
// instance and sit at the same index. Because every live Collection is the
// sole owner of its buffer, collection identity and buffer identity coincide:
// cursors over two structurally equal but distinct Collections never compare
// equal.
type Cursor[T any] struct {
	src *Collection[T]
	idx int
}

// Begin returns a cursor positioned at index 0.
func (c *Collection[T]) Begin() Cursor[T] { return Cursor[T]{src: c} }

// End returns the past-the-end cursor. It is the loop sentinel:
//
//	for it := c.Begin(); !it.Equal(c.End()); it = it.Next() {
//	    v, _ := it.Value()
//	    ...
//	}
func (c *Collection[T]) End() Cursor[T] { return Cursor[T]{src: c, idx: len(c.data)} }

// Next returns a cursor advanced by one position.
func (cur Cursor[T]) Next() Cursor[T] { return Cursor[T]{src: cur.src, idx: cur.idx + 1} }

// Prev returns a cursor moved back by one position.
func (cur Cursor[T]) Prev() Cursor[T] { return Cursor[T]{src: cur.src, idx: cur.idx - 1} }

// Index returns the cursor's current position.
func (cur Cursor[T]) Index() int { return cur.idx }

// Value returns a copy of the element under the cursor. The bounds and
// moved-from contracts match [Collection.Get]; in particular, dereferencing
// the End cursor returns [ErrIndexOutOfRange].
func (cur Cursor[T]) Value() (T, error) { return cur.src.Get(cur.idx) }

// Equal reports whether two cursors reference the same Collection instance at
// the same index.
func (cur Cursor[T]) Equal(other Cursor[T]) bool {
	return cur.src == other.src && cur.idx == other.idx
}
