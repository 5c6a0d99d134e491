// Package collections provides a generic, fixed-size Collection type built
// for map/zip/reduce pipelines over numeric data.
//
// # Overview
//
// The central type is [Collection][T], a container that exclusively owns a
// contiguous buffer of T whose length is fixed at construction:
//
//	squares := collections.Generate(10, func(i int) int { return i * i })
//	labels  := collections.Map(squares, strconv.Itoa)
//	total   := collections.Sum(squares)
//
// # Ownership
//
// Every Collection is the sole owner of its buffer. Constructors copy their
// inputs, [Collection.All] returns a copy, and [Collection.Move] transfers the
// buffer to a fresh Collection, leaving the source unusable. There is no way
// for two live Collections to alias the same storage.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are exposed as package-level
// functions:
//
//	counts := collections.Generate(n, sample)
//	colors := collections.Map(counts, encode)          // Collection[uint] → Collection[Color]
//	pairs  := collections.Zip(xs, ys, makePoint)       // two inputs, one output
//
// # Reduce and the empty collection
//
// [Collection.Reduce] folds left-to-right seeded from the first element. The
// identity argument is returned only when the collection is empty; callers
// must supply it explicitly rather than relying on a zero value that may be
// meaningless for T. The numeric helpers ([Sum], [Prod], [Dot]) pass 0, so
// both the sum and the product of an empty collection are 0.
//
// # Errors
//
// Index access is fallible: [Collection.Get] and [Collection.Set] return
// [ErrIndexOutOfRange] for an invalid index and [ErrMoved] when called on a
// Collection whose buffer has been transferred away.
package collections
