package vector

import (
	"fmt"
	"log/slog"
	"math"
	"unsafe"
)

// Vector is a contiguous sequence of T. Slots [0, Size()) hold live
// elements; slots [Size(), Capacity()) are allocated but empty.
//
// A Vector is not safe for concurrent use. The zero value is an empty vector
// with zero capacity that allocates from the Go heap.
type Vector[T any] struct {
	alloc       Allocator[T]
	buf         []T // len(buf) is the capacity; nil once moved from or destroyed
	size        int
	newValue    func() T
	minCapacity int
	log         *slog.Logger
}

func fromConfig[T any](c config[T]) *Vector[T] {
	return &Vector[T]{
		alloc:       c.alloc,
		newValue:    c.newValue,
		minCapacity: c.minCapacity,
		log:         c.logger,
	}
}

// New returns an empty vector whose capacity is the configured minimum
// (MinCapacity unless WithMinCapacity says otherwise).
func New[T any](opts ...Option[T]) (*Vector[T], error) {
	v := fromConfig(gatherOptions(opts))
	if err := v.reallocate(v.minCapacity); err != nil {
		return nil, err
	}
	return v, nil
}

// NewSized returns a vector of n default-constructed elements with
// Size() == Capacity() == n.
func NewSized[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	if err := checkCount("NewSized", n); err != nil {
		return nil, err
	}
	v := fromConfig(gatherOptions(opts))
	if err := v.reallocate(n); err != nil {
		return nil, err
	}
	for i := range n {
		v.alloc.Construct(&v.buf[i], v.defaultValue())
	}
	v.size = n
	return v, nil
}

// NewFilled returns a vector of n copies of value with
// Size() == Capacity() == n.
func NewFilled[T any](n int, value T, opts ...Option[T]) (*Vector[T], error) {
	if err := checkCount("NewFilled", n); err != nil {
		return nil, err
	}
	v := fromConfig(gatherOptions(opts))
	if err := v.reallocate(n); err != nil {
		return nil, err
	}
	v.fill(0, n, &value)
	v.size = n
	return v, nil
}

// NewFromRange copies the elements of [first, last) into a vector whose
// capacity equals the distance between the two positions. Either iterator
// flavour may be passed.
func NewFromRange[T any](first, last Position[T], opts ...Option[T]) (*Vector[T], error) {
	f, l := first.state(), last.state()
	n := l.pos - f.pos
	if err := checkCount("NewFromRange", n); err != nil {
		return nil, err
	}
	v := fromConfig(gatherOptions(opts))
	if err := v.reallocate(n); err != nil {
		return nil, err
	}
	v.copyIn(0, f.buf[f.pos:l.pos])
	v.size = n
	return v, nil
}

// NewFromSlice copies values into a vector with capacity len(values).
func NewFromSlice[T any](values []T, opts ...Option[T]) (*Vector[T], error) {
	v := fromConfig(gatherOptions(opts))
	if err := v.reallocate(len(values)); err != nil {
		return nil, err
	}
	v.copyIn(0, values)
	v.size = len(values)
	return v, nil
}

// Clone returns a deep copy with the same size and capacity. The copy's
// allocator is chosen by the source allocator's SelectOnCopy.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return v.CloneWith(v.allocator().SelectOnCopy())
}

// CloneWith is Clone with an explicitly supplied allocator.
func (v *Vector[T]) CloneWith(a Allocator[T]) (*Vector[T], error) {
	if a == nil {
		panic(panicNilAllocator)
	}
	v.allocator()
	c := &Vector[T]{
		alloc:       a,
		newValue:    v.newValue,
		minCapacity: v.minCapacity,
		log:         v.log,
	}
	if v.buf == nil {
		return c, nil
	}
	if err := c.reallocate(len(v.buf)); err != nil {
		return nil, err
	}
	c.copyIn(0, v.buf[:v.size])
	c.size = v.size
	return c, nil
}

// CopyFrom replaces the contents of v with a deep copy of src, keeping v's
// allocator. On error v is unchanged.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	tmp, err := src.CloneWith(v.allocator())
	if err != nil {
		return err
	}
	v.Destroy()
	v.buf, v.size = tmp.buf, tmp.size
	return nil
}

// Move transfers the storage of v to a new vector. v is left with no buffer
// and may only be destroyed or reassigned afterwards.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{}
	m.MoveFrom(v)
	return m
}

// MoveFrom destroys the contents of v and takes over the storage and
// allocator of src, leaving src with no buffer.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.Destroy()
	*v = *src
	src.buf, src.size = nil, 0
}

// Destroy destroys every live element in order and returns the buffer to
// the allocator. It is a no-op on a vector without a buffer.
func (v *Vector[T]) Destroy() {
	if v.buf == nil {
		return
	}
	a := v.allocator()
	v.destroyRange(0, v.size)
	a.Deallocate(v.buf)
	v.buf, v.size = nil, 0
}

// Swap exchanges the entire state of v and other.
func (v *Vector[T]) Swap(other *Vector[T]) {
	*v, *other = *other, *v
}

// Swap exchanges the entire state of a and b.
func Swap[T any](a, b *Vector[T]) {
	a.Swap(b)
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int { return v.size }

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int { return len(v.buf) }

// Empty reports whether the vector has no live elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// MaxSize returns the largest element count the vector can address.
func (v *Vector[T]) MaxSize() int {
	var zero T
	sz := int(unsafe.Sizeof(zero))
	if sz == 0 {
		return math.MaxInt
	}
	return math.MaxInt / sz
}

// Allocator returns the allocator that owns the vector's storage.
func (v *Vector[T]) Allocator() Allocator[T] { return v.allocator() }

// String formats the live elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.buf[:v.size])
}

// allocator returns the vector's allocator, completing the setup of a zero
// value Vector on first use.
func (v *Vector[T]) allocator() Allocator[T] {
	if v.alloc == nil {
		v.alloc = HeapAllocator[T]{}
		v.minCapacity = MinCapacity
	}
	return v.alloc
}

func (v *Vector[T]) logger() *slog.Logger {
	if v.log == nil {
		return defaultLogger
	}
	return v.log
}

func (v *Vector[T]) defaultValue() T {
	if v.newValue != nil {
		return v.newValue()
	}
	var zero T
	return zero
}

// fill copy-constructs *value into slots [from, to).
func (v *Vector[T]) fill(from, to int, value *T) {
	a := v.allocator()
	for i := from; i < to; i++ {
		a.Construct(&v.buf[i], copyOf(value))
	}
}

// copyIn copy-constructs src into the slots starting at idx.
func (v *Vector[T]) copyIn(idx int, src []T) {
	a := v.allocator()
	for i := range src {
		a.Construct(&v.buf[idx+i], copyOf(&src[i]))
	}
}

// destroyRange destroys the live elements in [from, to), front to back.
func (v *Vector[T]) destroyRange(from, to int) {
	a := v.allocator()
	for i := from; i < to; i++ {
		a.Destroy(&v.buf[i])
	}
}

func checkCount(op string, n int) error {
	if n < 0 {
		return fmt.Errorf("%s(%d): %w", op, n, ErrNegativeCount)
	}
	return nil
}
