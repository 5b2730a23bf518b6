package vector

import (
	"fmt"
	"iter"
)

const panicEmptyVector = "vector: access on empty vector"

// Index returns the element at i without a bounds check against Size.
// Reading a slot in [Size(), Capacity()) returns a zero value; anything
// beyond the capacity panics.
func (v *Vector[T]) Index(i int) T { return v.buf[i] }

// Ptr returns a pointer to the slot at i, unchecked like Index. The pointer
// is invalidated by any reallocation.
func (v *Vector[T]) Ptr(i int) *T { return &v.buf[i] }

// Set destroys the element at i and constructs value in its place.
func (v *Vector[T]) Set(i int, value T) {
	a := v.allocator()
	a.Destroy(&v.buf[i])
	a.Construct(&v.buf[i], value)
}

// At returns the element at i, or ErrOutOfRange when i is not in [0, Size()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, fmt.Errorf("At(%d) with size %d: %w", i, v.size, ErrOutOfRange)
	}
	return v.buf[i], nil
}

// Front returns the first element. It panics on an empty vector.
func (v *Vector[T]) Front() T {
	if v.size == 0 {
		panic(panicEmptyVector)
	}
	return v.buf[0]
}

// Back returns the last element. It panics on an empty vector.
func (v *Vector[T]) Back() T {
	if v.size == 0 {
		panic(panicEmptyVector)
	}
	return v.buf[v.size-1]
}

// Data returns the live elements as a slice sharing the vector's storage.
// Its capacity is clipped to Size so appending to it never writes into the
// vector. It is invalidated by any reallocation.
func (v *Vector[T]) Data() []T {
	return v.buf[:v.size:v.size]
}

// All returns an iterator over index/value pairs, front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements, front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs, back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}
