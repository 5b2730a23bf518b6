package vector

import "unsafe"

// Position is a location in a vector's buffer. It is implemented only by
// Iterator and ConstIterator, so either flavour can be passed wherever a
// position is expected.
type Position[T any] interface {
	state() cursor[T]
}

// cursor is the state shared by Iterator and ConstIterator: the buffer the
// iterator was issued over, the size at that moment, and a logical offset.
// pos may step outside [0, size] during arithmetic; only dereferencing
// requires it to be in range.
type cursor[T any] struct {
	buf  []T // whole buffer, len == capacity when issued
	size int
	pos  int
}

func (c cursor[T]) state() cursor[T] { return c }

func (c cursor[T]) base() *T { return unsafe.SliceData(c.buf) }

// Pos returns the logical offset from the start of the buffer.
func (c cursor[T]) Pos() int { return c.pos }

// Dereferenceable reports whether the position referred to a live element
// when the iterator was issued. It does not detect invalidation.
func (c cursor[T]) Dereferenceable() bool {
	return c.pos >= 0 && c.pos < c.size
}

// Get returns the element at the iterator's position.
func (c cursor[T]) Get() T { return c.buf[c.pos] }

// At returns the element n positions away, the equivalent of it[n].
func (c cursor[T]) At(n int) T { return c.buf[c.pos+n] }

// Equal reports whether o refers to the same buffer and position.
// Zero-capacity buffers share one address in the Go runtime, so iterators
// of two different empty vectors may compare equal; comparing iterators
// from different vectors is not meaningful.
func (c cursor[T]) Equal(o Position[T]) bool {
	s := o.state()
	return c.base() == s.base() && c.pos == s.pos
}

// NotEqual is the negation of Equal.
func (c cursor[T]) NotEqual(o Position[T]) bool { return !c.Equal(o) }

// Less orders iterators by position. Iterators from different vectors are
// not meaningfully ordered.
func (c cursor[T]) Less(o Position[T]) bool { return c.pos < o.state().pos }

// Greater reports whether c is positioned after o.
func (c cursor[T]) Greater(o Position[T]) bool { return c.pos > o.state().pos }

// LessEqual reports whether c is not positioned after o.
func (c cursor[T]) LessEqual(o Position[T]) bool { return c.pos <= o.state().pos }

// GreaterEqual reports whether c is not positioned before o.
func (c cursor[T]) GreaterEqual(o Position[T]) bool { return c.pos >= o.state().pos }

// Distance returns the signed number of steps from o to c, the equivalent
// of it - o.
func (c cursor[T]) Distance(o Position[T]) int { return c.pos - o.state().pos }

// Iterator is a mutable random-access iterator over a Vector. Iterators are
// issued by the vector and stay valid only until the next operation that
// reallocates, shifts elements, or destroys the vector.
type Iterator[T any] struct {
	cursor[T]
	alloc Allocator[T]
}

// Ptr returns a pointer to the element at the iterator's position.
func (it Iterator[T]) Ptr() *T { return &it.buf[it.pos] }

// Set destroys the element at the iterator's position and constructs value
// in its place, through the vector's allocator like Vector.Set.
func (it Iterator[T]) Set(value T) {
	slot := &it.buf[it.pos]
	if it.alloc == nil {
		destroyAt(slot)
		constructAt(slot, value)
		return
	}
	it.alloc.Destroy(slot)
	it.alloc.Construct(slot, value)
}

// Const converts it to a ConstIterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it.cursor}
}

// Inc advances it by one and returns it (prefix ++).
func (it *Iterator[T]) Inc() *Iterator[T] {
	it.pos++
	return it
}

// PostInc advances it by one and returns its previous value (postfix ++).
func (it *Iterator[T]) PostInc() Iterator[T] {
	old := *it
	it.pos++
	return old
}

// Dec moves it back by one and returns it (prefix --).
func (it *Iterator[T]) Dec() *Iterator[T] {
	it.pos--
	return it
}

// PostDec moves it back by one and returns its previous value (postfix --).
func (it *Iterator[T]) PostDec() Iterator[T] {
	old := *it
	it.pos--
	return old
}

// AddAssign moves it n positions forward (+=).
func (it *Iterator[T]) AddAssign(n int) *Iterator[T] {
	it.pos += n
	return it
}

// SubAssign moves it n positions back (-=).
func (it *Iterator[T]) SubAssign(n int) *Iterator[T] {
	it.pos -= n
	return it
}

// Add returns an iterator n positions after it.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n
	return it
}

// Sub returns an iterator n positions before it.
func (it Iterator[T]) Sub(n int) Iterator[T] {
	it.pos -= n
	return it
}

// ConstIterator is the read-only flavour of Iterator.
type ConstIterator[T any] struct {
	cursor[T]
}

// Inc advances it by one and returns it (prefix ++).
func (it *ConstIterator[T]) Inc() *ConstIterator[T] {
	it.pos++
	return it
}

// PostInc advances it by one and returns its previous value (postfix ++).
func (it *ConstIterator[T]) PostInc() ConstIterator[T] {
	old := *it
	it.pos++
	return old
}

// Dec moves it back by one and returns it (prefix --).
func (it *ConstIterator[T]) Dec() *ConstIterator[T] {
	it.pos--
	return it
}

// PostDec moves it back by one and returns its previous value (postfix --).
func (it *ConstIterator[T]) PostDec() ConstIterator[T] {
	old := *it
	it.pos--
	return old
}

// AddAssign moves it n positions forward (+=).
func (it *ConstIterator[T]) AddAssign(n int) *ConstIterator[T] {
	it.pos += n
	return it
}

// SubAssign moves it n positions back (-=).
func (it *ConstIterator[T]) SubAssign(n int) *ConstIterator[T] {
	it.pos -= n
	return it
}

// Add returns an iterator n positions after it.
func (it ConstIterator[T]) Add(n int) ConstIterator[T] {
	it.pos += n
	return it
}

// Sub returns an iterator n positions before it.
func (it ConstIterator[T]) Sub(n int) ConstIterator[T] {
	it.pos -= n
	return it
}

func (v *Vector[T]) cursorAt(pos int) cursor[T] {
	return cursor[T]{buf: v.buf, size: v.size, pos: pos}
}

func (v *Vector[T]) iterAt(pos int) Iterator[T] {
	return Iterator[T]{cursor: v.cursorAt(pos), alloc: v.allocator()}
}

// Begin returns an iterator at the first element.
func (v *Vector[T]) Begin() Iterator[T] { return v.iterAt(0) }

// End returns an iterator one past the last element.
func (v *Vector[T]) End() Iterator[T] { return v.iterAt(v.size) }

// CBegin returns a read-only iterator at the first element.
func (v *Vector[T]) CBegin() ConstIterator[T] { return ConstIterator[T]{v.cursorAt(0)} }

// CEnd returns a read-only iterator one past the last element.
func (v *Vector[T]) CEnd() ConstIterator[T] { return ConstIterator[T]{v.cursorAt(v.size)} }
