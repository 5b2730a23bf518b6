package vector

import "errors"

var (
	// ErrOutOfRange is returned by the bounds-checked accessor At for an
	// index outside [0, Size()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrAllocationFailed indicates the allocator could not provide the
	// requested slots. The vector that triggered the allocation is unchanged.
	ErrAllocationFailed = errors.New("vector: allocation failed")

	// ErrLengthExceeded indicates a request for more elements than MaxSize.
	ErrLengthExceeded = errors.New("vector: length exceeds maximum size")

	// ErrNegativeCount indicates a negative element count was supplied.
	ErrNegativeCount = errors.New("vector: negative count")

	// ErrArenaReleased indicates an allocation from an arena after Release.
	ErrArenaReleased = errors.New("vector: arena used after Release()")
)
