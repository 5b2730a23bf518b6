package vector

import "fmt"

// Reserve ensures Capacity() >= n. When n exceeds the current capacity the
// buffer is replaced by one of exactly n slots and every live element is
// relocated into it in order. Size is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= len(v.buf) {
		return nil
	}
	return v.reallocate(n)
}

// ShrinkToFit reallocates so that Capacity() == Size().
func (v *Vector[T]) ShrinkToFit() error {
	if len(v.buf) == v.size {
		return nil
	}
	return v.reallocate(v.size)
}

// Resize sets Size() to n. Excess elements are destroyed without
// reallocating; new elements are default-constructed.
func (v *Vector[T]) Resize(n int) error {
	return v.resize("Resize", n, nil)
}

// ResizeWith is Resize with new elements copy-constructed from value.
func (v *Vector[T]) ResizeWith(n int, value T) error {
	return v.resize("ResizeWith", n, &value)
}

func (v *Vector[T]) resize(op string, n int, value *T) error {
	if err := checkCount(op, n); err != nil {
		return err
	}
	if n <= v.size {
		v.destroyRange(n, v.size)
		v.size = n
		return nil
	}
	if n > len(v.buf) {
		if err := v.reallocate(v.grownCapacity(n)); err != nil {
			return err
		}
	}
	if value != nil {
		v.fill(v.size, n, value)
	} else {
		a := v.allocator()
		for i := v.size; i < n; i++ {
			a.Construct(&v.buf[i], v.defaultValue())
		}
	}
	v.size = n
	return nil
}

// grownCapacity returns the capacity to use when at least need slots are
// required: one and a half times the current capacity, never below the
// minimum capacity and never below need.
func (v *Vector[T]) grownCapacity(need int) int {
	v.allocator()
	c := len(v.buf)
	next := c + c/2
	if next < c || next > v.MaxSize() {
		next = v.MaxSize()
	}
	next = max(next, v.minCapacity, need)
	return next
}

// reallocate replaces the buffer with one of exactly n slots and relocates
// the live elements into it. If the allocation fails nothing changes.
func (v *Vector[T]) reallocate(n int) error {
	nb, err := v.allocate(n)
	if err != nil {
		return err
	}
	v.replaceBuffer(nb, func(dst, src []T) {
		relocate(dst, src[:v.size])
	})
	return nil
}

// allocate obtains n slots from the allocator.
func (v *Vector[T]) allocate(n int) ([]T, error) {
	if n > v.MaxSize() {
		return nil, fmt.Errorf("allocate %d slots: %w", n, ErrLengthExceeded)
	}
	nb, err := v.allocator().Allocate(n)
	if err == nil && len(nb) != n {
		err = fmt.Errorf("allocator returned %d slots, want %d: %w", len(nb), n, ErrAllocationFailed)
	}
	if err != nil {
		v.logger().Warn("vector: allocation failed",
			"slots", n, "capacity", len(v.buf), "size", v.size, "err", err)
		return nil, err
	}
	return nb, nil
}

// replaceBuffer installs nb after move has relocated the live elements from
// the old buffer, then returns the old buffer to the allocator.
func (v *Vector[T]) replaceBuffer(nb []T, move func(dst, src []T)) {
	old := v.buf
	move(nb, old)
	v.buf = nb
	if old != nil {
		v.allocator().Deallocate(old)
	}
	v.logger().Debug("vector: reallocated",
		"from", len(old), "to", len(nb), "size", v.size)
}

// addOverflowSafe adds two non-negative counts, reporting overflow.
func addOverflowSafe(a, b int) (int, bool) {
	s := a + b
	if s < a {
		return 0, false
	}
	return s, true
}
