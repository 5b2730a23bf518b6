package vector

import "fmt"

// Allocator is the storage strategy of a Vector. It hands out and takes back
// contiguous runs of slots, and begins and ends the lifetime of the elements
// placed in them.
//
// Allocate must return a slice of exactly n zeroed slots or an error. The
// vector passes the same slice back to Deallocate once it is done with it.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(buf []T)
	Construct(slot *T, value T)
	Destroy(slot *T)
	// SelectOnCopy returns the allocator a copy of the vector should use.
	SelectOnCopy() Allocator[T]
}

// Destroyer is implemented by element types that hold resources which must
// be released when the element leaves the vector.
type Destroyer interface {
	Destroy()
}

// Cloner is implemented by element types whose copies must not share state
// with the value they were made from. The vector calls Clone whenever it
// copy-constructs.
type Cloner[T any] interface {
	Clone() T
}

// HeapAllocator is the default allocator. Storage comes from the Go heap and
// is reclaimed by the garbage collector once the vector drops it.
type HeapAllocator[T any] struct{}

// Allocate returns n zeroed slots. A request the Go runtime refuses to
// satisfy is reported as ErrAllocationFailed.
func (HeapAllocator[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	return makeSlots[T](n)
}

// makeSlots is make([]T, n) with the runtime's length-out-of-range panic
// turned into an error.
func makeSlots[T any](n int) (buf []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("make %d slots: %v: %w", n, r, ErrAllocationFailed)
		}
	}()
	return make([]T, n), nil
}

// Deallocate is a no-op; the garbage collector owns reclamation.
func (HeapAllocator[T]) Deallocate([]T) {}

// Construct places value into slot.
func (HeapAllocator[T]) Construct(slot *T, value T) {
	constructAt(slot, value)
}

// Destroy runs the element's Destroyer hook, if any, and zeroes the slot.
func (HeapAllocator[T]) Destroy(slot *T) {
	destroyAt(slot)
}

// SelectOnCopy returns a fresh HeapAllocator.
func (HeapAllocator[T]) SelectOnCopy() Allocator[T] {
	return HeapAllocator[T]{}
}

func constructAt[T any](slot *T, value T) {
	*slot = value
}

func destroyAt[T any](slot *T) {
	if d, ok := any(slot).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	*slot = zero
}

// copyOf returns an independent copy of *src.
func copyOf[T any](src *T) T {
	if c, ok := any(src).(Cloner[T]); ok {
		return c.Clone()
	}
	return *src
}

// relocate moves src into the distinct buffer dst and zeroes src. No
// lifetime hooks run: the element is the same object at a new address.
func relocate[T any](dst, src []T) {
	copy(dst, src)
	clear(src)
}

// shiftRight moves buf[idx:size] to buf[idx+n:size+n], tail first, and
// zeroes the vacated gap buf[idx:idx+n]. len(buf) must be at least size+n.
func shiftRight[T any](buf []T, idx, size, n int) {
	copy(buf[idx+n:size+n], buf[idx:size])
	clear(buf[idx:min(idx+n, size)])
}

// shiftLeft moves buf[idx+n:size] down to buf[idx:size-n] and zeroes the
// n slots left behind at the tail.
func shiftLeft[T any](buf []T, idx, size, n int) {
	copy(buf[idx:], buf[idx+n:size])
	clear(buf[size-n : size])
}
