package vector

import (
	"fmt"
	"slices"
	"unsafe"
)

const (
	panicInsertPosition = "vector: insert position out of range"
	panicErasePosition  = "vector: erase position out of range"
)

// PushBack appends value, taking ownership of it. When the vector is full
// the capacity grows by half, which keeps repeated appends amortised O(1).
// The minimum capacity is a floor on every growth, not only the first: a
// full 3-element vector grows to 10 slots, not 4.
func (v *Vector[T]) PushBack(value T) error {
	if err := v.growForAppend(); err != nil {
		return err
	}
	v.allocator().Construct(&v.buf[v.size], value)
	v.size++
	return nil
}

// EmplaceBack appends an element built by init. init receives a zeroed
// value; the result is constructed into the new slot by the allocator.
func (v *Vector[T]) EmplaceBack(init func(slot *T)) error {
	if err := v.growForAppend(); err != nil {
		return err
	}
	v.emplaceAt(v.size, init)
	v.size++
	return nil
}

func (v *Vector[T]) emplaceAt(idx int, init func(slot *T)) {
	var value T
	init(&value)
	v.allocator().Construct(&v.buf[idx], value)
}

func (v *Vector[T]) growForAppend() error {
	if v.size < len(v.buf) {
		return nil
	}
	if v.size == v.MaxSize() {
		return fmt.Errorf("PushBack: %w", ErrLengthExceeded)
	}
	return v.reallocate(v.grownCapacity(v.size + 1))
}

// PopBack destroys the last element. It is a no-op on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	v.allocator().Destroy(&v.buf[v.size])
}

// Insert places value before pos, taking ownership of it, and returns an
// iterator to the inserted element.
func (v *Vector[T]) Insert(pos Position[T], value T) (Iterator[T], error) {
	idx := v.insertIndex(pos)
	if err := v.openGap("Insert", idx, 1); err != nil {
		return Iterator[T]{}, err
	}
	v.allocator().Construct(&v.buf[idx], value)
	return v.iterAt(idx), nil
}

// Emplace inserts an element built by init before pos and returns an
// iterator to it. init receives a zeroed value, as with EmplaceBack.
func (v *Vector[T]) Emplace(pos Position[T], init func(slot *T)) (Iterator[T], error) {
	idx := v.insertIndex(pos)
	if err := v.openGap("Emplace", idx, 1); err != nil {
		return Iterator[T]{}, err
	}
	v.emplaceAt(idx, init)
	return v.iterAt(idx), nil
}

// InsertN inserts n copies of value before pos and returns an iterator to
// the first of them (or pos when n is 0).
func (v *Vector[T]) InsertN(pos Position[T], n int, value T) (Iterator[T], error) {
	idx := v.insertIndex(pos)
	if err := checkCount("InsertN", n); err != nil {
		return Iterator[T]{}, err
	}
	if err := v.openGap("InsertN", idx, n); err != nil {
		return Iterator[T]{}, err
	}
	v.fill(idx, idx+n, &value)
	return v.iterAt(idx), nil
}

// InsertRange inserts copies of [first, last) before pos and returns an
// iterator to the first inserted element. The range may come from v itself.
func (v *Vector[T]) InsertRange(pos, first, last Position[T]) (Iterator[T], error) {
	f, l := first.state(), last.state()
	if err := checkCount("InsertRange", l.pos-f.pos); err != nil {
		return Iterator[T]{}, err
	}
	return v.insertValues(pos, f.buf[f.pos:l.pos])
}

// InsertSlice inserts copies of values before pos and returns an iterator to
// the first inserted element.
func (v *Vector[T]) InsertSlice(pos Position[T], values ...T) (Iterator[T], error) {
	return v.insertValues(pos, values)
}

func (v *Vector[T]) insertValues(pos Position[T], src []T) (Iterator[T], error) {
	idx := v.insertIndex(pos)
	if v.aliases(src) {
		src = slices.Clone(src)
	}
	if err := v.openGap("Insert", idx, len(src)); err != nil {
		return Iterator[T]{}, err
	}
	v.copyIn(idx, src)
	return v.iterAt(idx), nil
}

// openGap makes n zeroed, unconstructed slots at idx by moving the tail
// right, growing first if needed, and counts them in the size.
func (v *Vector[T]) openGap(op string, idx, n int) error {
	if n == 0 {
		return nil
	}
	need, ok := addOverflowSafe(v.size, n)
	if !ok || need > v.MaxSize() {
		return fmt.Errorf("%s: %d + %d elements: %w", op, v.size, n, ErrLengthExceeded)
	}
	if need <= len(v.buf) {
		shiftRight(v.buf, idx, v.size, n)
		v.size = need
		return nil
	}
	nb, err := v.allocate(v.grownCapacity(need))
	if err != nil {
		return err
	}
	size := v.size
	v.replaceBuffer(nb, func(dst, src []T) {
		relocate(dst[:idx], src[:idx])
		relocate(dst[idx+n:need], src[idx:size])
	})
	v.size = need
	return nil
}

// Erase destroys the element at pos, closes the gap, and returns an
// iterator to the element that followed it.
func (v *Vector[T]) Erase(pos Position[T]) Iterator[T] {
	idx := pos.state().pos
	if idx < 0 || idx >= v.size {
		panic(panicErasePosition)
	}
	return v.erase(idx, idx+1)
}

// EraseRange destroys the elements in [first, last), closes the gap, and
// returns an iterator to the element that followed the range.
func (v *Vector[T]) EraseRange(first, last Position[T]) Iterator[T] {
	f, l := first.state().pos, last.state().pos
	if f < 0 || l > v.size || f > l {
		panic(panicErasePosition)
	}
	return v.erase(f, l)
}

func (v *Vector[T]) erase(from, to int) Iterator[T] {
	if from == to {
		return v.iterAt(from)
	}
	v.destroyRange(from, to)
	shiftLeft(v.buf, from, v.size, to-from)
	v.size -= to - from
	return v.iterAt(from)
}

// Clear destroys every element. Capacity is retained.
func (v *Vector[T]) Clear() {
	v.destroyRange(0, v.size)
	v.size = 0
}

// Assign replaces the contents with n copies of value.
func (v *Vector[T]) Assign(n int, value T) error {
	if err := checkCount("Assign", n); err != nil {
		return err
	}
	if err := v.prepareAssign(n); err != nil {
		return err
	}
	v.fill(0, n, &value)
	v.size = n
	return nil
}

// AssignRange replaces the contents with copies of [first, last). The range
// may come from v itself.
func (v *Vector[T]) AssignRange(first, last Position[T]) error {
	f, l := first.state(), last.state()
	if err := checkCount("AssignRange", l.pos-f.pos); err != nil {
		return err
	}
	return v.assignValues(f.buf[f.pos:l.pos])
}

// AssignSlice replaces the contents with copies of values.
func (v *Vector[T]) AssignSlice(values ...T) error {
	return v.assignValues(values)
}

func (v *Vector[T]) assignValues(src []T) error {
	if v.aliases(src) {
		// The copies must exist before Clear destroys their sources. An
		// aliased range never exceeds the capacity, so nothing can fail.
		owned := v.snapshot(src)
		v.Clear()
		a := v.allocator()
		for i := range owned {
			a.Construct(&v.buf[i], owned[i])
		}
		v.size = len(owned)
		return nil
	}
	if err := v.prepareAssign(len(src)); err != nil {
		return err
	}
	v.copyIn(0, src)
	v.size = len(src)
	return nil
}

// prepareAssign clears the vector and makes room for exactly n elements.
// The allocation happens before anything is destroyed.
func (v *Vector[T]) prepareAssign(n int) error {
	if n <= len(v.buf) {
		v.Clear()
		return nil
	}
	nb, err := v.allocate(n)
	if err != nil {
		return err
	}
	v.Clear()
	v.replaceBuffer(nb, func([]T, []T) {}) // nothing left to relocate
	return nil
}

func (v *Vector[T]) insertIndex(pos Position[T]) int {
	idx := pos.state().pos
	if idx < 0 || idx > v.size {
		panic(panicInsertPosition)
	}
	return idx
}

// aliases reports whether s points into v's buffer.
func (v *Vector[T]) aliases(s []T) bool {
	if len(s) == 0 || len(v.buf) == 0 {
		return false
	}
	var zero T
	sz := unsafe.Sizeof(zero)
	if sz == 0 {
		return false
	}
	lo := uintptr(unsafe.Pointer(unsafe.SliceData(v.buf)))
	hi := lo + uintptr(len(v.buf))*sz
	p := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	return p >= lo && p < hi
}

// snapshot returns independent copies of s.
func (v *Vector[T]) snapshot(s []T) []T {
	out := make([]T, len(s))
	for i := range s {
		out[i] = copyOf(&s[i])
	}
	return out
}
