package vector

import (
	"fmt"
	"unsafe"
)

// DefaultChunkSize is the default number of slots per arena chunk.
const DefaultChunkSize = 1 << 10

// chunk is one run of slots within an arena.
type chunk[T any] struct {
	buf    []T // backing slots
	offset int // next free slot within buf
}

// Arena is a chunked bump allocator of T slots. Deallocation only reclaims
// space when the buffer is the most recent allocation of the current chunk;
// everything else is reclaimed in bulk by Reset or Release.
//
// Buffers handed out are valid only while the arena is neither Reset nor
// Released. Not goroutine-safe; use SafeArena to share one between
// goroutines.
type Arena[T any] struct {
	chunks       []chunk[T]
	chunkSize    int
	currentChunk *chunk[T]
}

// NewArena creates an Arena whose chunks hold chunkSize slots.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena[T any](chunkSize int) *Arena[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena[T]{chunkSize: chunkSize}
	a.mustGrow(chunkSize)
	return a
}

// AllocSlots returns n zeroed slots carved from the arena. The slice's
// capacity is clipped to n. Returns nil if n <= 0 and panics after Release
// or when the runtime cannot provide a chunk of n slots.
func (a *Arena[T]) AllocSlots(n int) []T {
	if n <= 0 {
		return nil
	}
	s, err := a.allocSlots(n)
	if err != nil {
		panic(err)
	}
	return s
}

// allocSlots carves n > 0 slots, reporting a failed chunk allocation as an
// error.
func (a *Arena[T]) allocSlots(n int) ([]T, error) {
	// Fast path: use cached current chunk
	c := a.currentChunk
	if c != nil && c.offset+n <= len(c.buf) {
		start := c.offset
		c.offset += n
		return c.buf[start : start+n : start+n], nil
	}

	return a.allocSlotsSlow(n)
}

// allocSlotsSlow handles allocation when the current chunk is too small.
// Chunks emptied by Reset are reused before a new one is grown.
func (a *Arena[T]) allocSlotsSlow(n int) ([]T, error) {
	a.panicIfReleased()
	c := a.reusableChunk(n)
	if c == nil {
		if err := a.grow(n); err != nil {
			return nil, err
		}
		c = a.currentChunk
	}
	a.currentChunk = c
	c.offset = n
	return c.buf[:n:n], nil
}

// reusableChunk returns an untouched chunk that can hold n slots, or nil.
func (a *Arena[T]) reusableChunk(n int) *chunk[T] {
	for i := range a.chunks {
		c := &a.chunks[i]
		if c.offset == 0 && len(c.buf) >= n {
			return c
		}
	}
	return nil
}

// EnsureCapacity ensures the current chunk has at least n free slots.
// If not, it grows the arena with a new chunk.
func (a *Arena[T]) EnsureCapacity(n int) {
	a.panicIfReleased()
	c := a.currentChunk
	if c == nil || c.offset+n > len(c.buf) {
		a.mustGrow(n)
	}
}

// Reset zeroes every handed-out slot and rewinds all chunks for reuse.
// Buffers obtained before Reset must no longer be used.
func (a *Arena[T]) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		clear(a.chunks[i].buf[:a.chunks[i].offset])
		a.chunks[i].offset = 0
	}
	a.currentChunk = &a.chunks[0]
}

// Release drops all chunks and makes the arena unusable. Allocate then
// fails with ErrArenaReleased; the other operations panic.
func (a *Arena[T]) Release() {
	a.chunks = nil
	a.currentChunk = nil
}

// Allocate implements Allocator.
func (a *Arena[T]) Allocate(n int) ([]T, error) {
	if a.chunks == nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailed, ErrArenaReleased)
	}
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if n == 0 {
		return []T{}, nil
	}
	return a.allocSlots(n)
}

// Deallocate rewinds the current chunk when buf is its most recent
// allocation. Other buffers stay in place until Reset.
func (a *Arena[T]) Deallocate(buf []T) {
	c := a.currentChunk
	if c == nil || len(buf) == 0 || len(buf) > c.offset {
		return
	}
	start := c.offset - len(buf)
	if unsafe.SliceData(buf) != &c.buf[start] {
		return
	}
	clear(c.buf[start:c.offset])
	c.offset = start
}

// Construct implements Allocator.
func (a *Arena[T]) Construct(slot *T, value T) { constructAt(slot, value) }

// Destroy implements Allocator.
func (a *Arena[T]) Destroy(slot *T) { destroyAt(slot) }

// SelectOnCopy returns a itself: copies of a vector share its arena.
func (a *Arena[T]) SelectOnCopy() Allocator[T] { return a }

// grow appends a new chunk of at least min slots and makes it current.
func (a *Arena[T]) grow(min int) error {
	size := a.chunkSize
	if min > size {
		size = min
	}
	buf, err := makeSlots[T](size)
	if err != nil {
		return err
	}
	a.chunks = append(a.chunks, chunk[T]{buf: buf})
	a.currentChunk = &a.chunks[len(a.chunks)-1]
	return nil
}

func (a *Arena[T]) mustGrow(min int) {
	if err := a.grow(min); err != nil {
		panic(err)
	}
}

// panicIfReleased panics if the arena has been released.
func (a *Arena[T]) panicIfReleased() {
	if a.chunks == nil {
		panic("vector: arena use after Release()")
	}
}
