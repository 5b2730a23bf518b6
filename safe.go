package vector

import "sync"

// SafeArena is a mutex-protected wrapper around Arena so that vectors owned
// by different goroutines can draw from one arena. The vectors themselves
// remain unsynchronised.
type SafeArena[T any] struct {
	mu sync.Mutex
	a  *Arena[T]
}

// NewSafeArena creates a new thread-safe arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewSafeArena[T any](chunkSize int) *SafeArena[T] {
	return &SafeArena[T]{a: NewArena[T](chunkSize)}
}

// AllocSlots thread-safely allocates n slots.
// Returns nil if n <= 0.
func (s *SafeArena[T]) AllocSlots(n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocSlots(n)
}

// EnsureCapacity thread-safely ensures the current chunk has at least n free slots.
func (s *SafeArena[T]) EnsureCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.EnsureCapacity(n)
}

// Reset thread-safely rewinds the arena for reuse.
func (s *SafeArena[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops all chunks and makes the arena unusable.
func (s *SafeArena[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// Allocate implements Allocator.
func (s *SafeArena[T]) Allocate(n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocate(n)
}

// Deallocate implements Allocator.
func (s *SafeArena[T]) Deallocate(buf []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Deallocate(buf)
}

// Construct touches only the slot, which belongs to the calling vector.
func (s *SafeArena[T]) Construct(slot *T, value T) { constructAt(slot, value) }

// Destroy touches only the slot, which belongs to the calling vector.
func (s *SafeArena[T]) Destroy(slot *T) { destroyAt(slot) }

// SelectOnCopy returns s itself.
func (s *SafeArena[T]) SelectOnCopy() Allocator[T] { return s }
