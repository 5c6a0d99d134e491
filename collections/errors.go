package collections

import "errors"

// Sentinel errors returned by Collection operations.
var (
	// ErrIndexOutOfRange is returned when an index is outside [0, Count()-1].
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrMoved is returned when a Collection is used after its buffer has
	// been transferred away by [Collection.Move].
	ErrMoved = errors.New("collections: use of moved-from collection")
)
