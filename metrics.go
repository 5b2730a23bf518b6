package vector

import "fmt"

// SizeInUse returns the number of slots currently handed out.
func (a *Arena[T]) SizeInUse() int {
	if a.chunks == nil {
		return 0
	}
	sum := 0
	for _, c := range a.chunks {
		sum += c.offset
	}
	return sum
}

// NumChunks returns the number of chunks currently allocated by the arena.
func (a *Arena[T]) NumChunks() int {
	if a.chunks == nil {
		return 0
	}
	return len(a.chunks)
}

// Capacity returns the total number of slots across all chunks.
func (a *Arena[T]) Capacity() int {
	if a.chunks == nil {
		return 0
	}
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns the ratio of slots in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena[T]) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// ChunkSize returns the default chunk size, in slots, used by this arena.
func (a *Arena[T]) ChunkSize() int {
	return a.chunkSize
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[T]) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		ChunkSize:   a.ChunkSize(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Slots currently handed out
	Capacity    int     // Total slots
	NumChunks   int     // Number of chunks
	ChunkSize   int     // Default chunk size in slots
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena[T]) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}

// SizeInUse thread-safely returns the number of slots handed out.
func (s *SafeArena[T]) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// NumChunks thread-safely returns the number of chunks.
func (s *SafeArena[T]) NumChunks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.NumChunks()
}

// Capacity thread-safely returns the total number of slots.
func (s *SafeArena[T]) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Utilization thread-safely returns the ratio of slots in use to capacity.
func (s *SafeArena[T]) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// ChunkSize returns the default chunk size in slots.
func (s *SafeArena[T]) ChunkSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.ChunkSize()
}

// AllocatorStats counts the traffic seen by a CountingAllocator.
type AllocatorStats struct {
	Allocations   int // successful Allocate calls
	Failures      int // Allocate calls refused or failed
	Deallocations int
	LiveSlots     int // slots allocated and not yet deallocated
	PeakSlots     int
	Constructs    int
	Destroys      int
}

// CountingAllocator decorates another allocator with counters and an
// optional cap on live slots. It is how callers observe the growth policy
// and simulate allocation failure.
type CountingAllocator[T any] struct {
	inner Allocator[T]
	limit int
	stats AllocatorStats
}

// NewCountingAllocator wraps inner (HeapAllocator when nil). A positive
// limit makes Allocate fail with ErrAllocationFailed whenever it would push
// the live slot count above limit.
func NewCountingAllocator[T any](inner Allocator[T], limit int) *CountingAllocator[T] {
	if inner == nil {
		inner = HeapAllocator[T]{}
	}
	return &CountingAllocator[T]{inner: inner, limit: limit}
}

// SetLimit changes the live slot cap; 0 removes it.
func (c *CountingAllocator[T]) SetLimit(limit int) { c.limit = limit }

// Stats returns a snapshot of the counters.
func (c *CountingAllocator[T]) Stats() AllocatorStats { return c.stats }

// Allocate implements Allocator.
func (c *CountingAllocator[T]) Allocate(n int) ([]T, error) {
	if c.limit > 0 && c.stats.LiveSlots+n > c.limit {
		c.stats.Failures++
		return nil, fmt.Errorf("%d live + %d requested exceeds limit %d: %w",
			c.stats.LiveSlots, n, c.limit, ErrAllocationFailed)
	}
	buf, err := c.inner.Allocate(n)
	if err != nil {
		c.stats.Failures++
		return nil, err
	}
	c.stats.Allocations++
	c.stats.LiveSlots += len(buf)
	c.stats.PeakSlots = max(c.stats.PeakSlots, c.stats.LiveSlots)
	return buf, nil
}

// Deallocate implements Allocator.
func (c *CountingAllocator[T]) Deallocate(buf []T) {
	c.stats.Deallocations++
	c.stats.LiveSlots -= len(buf)
	c.inner.Deallocate(buf)
}

// Construct implements Allocator.
func (c *CountingAllocator[T]) Construct(slot *T, value T) {
	c.stats.Constructs++
	c.inner.Construct(slot, value)
}

// Destroy implements Allocator.
func (c *CountingAllocator[T]) Destroy(slot *T) {
	c.stats.Destroys++
	c.inner.Destroy(slot)
}

// SelectOnCopy returns c itself so copies are counted too.
func (c *CountingAllocator[T]) SelectOnCopy() Allocator[T] { return c }
