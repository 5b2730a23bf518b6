package vector

import (
	"io"
	"log/slog"
)

// MinCapacity is the capacity of a default-constructed vector and the floor
// applied whenever the growth policy computes a new capacity.
const MinCapacity = 10

const (
	panicNilAllocator      = "vector: WithAllocator: allocator must not be nil"
	panicNegativeMinCap    = "vector: WithMinCapacity: capacity must be non-negative"
	panicNilDefaultFactory = "vector: WithDefault: factory must not be nil"
)

// defaultLogger discards everything until a caller supplies WithLogger.
var defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Option configures a Vector at construction time.
// Option constructors panic only on nonsensical values (programmer error).
type Option[T any] func(*config[T])

type config[T any] struct {
	alloc       Allocator[T]
	newValue    func() T
	minCapacity int
	logger      *slog.Logger
}

// WithAllocator sets the allocator that owns the vector's storage and
// performs element construction and destruction.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	if a == nil {
		panic(panicNilAllocator)
	}
	return func(c *config[T]) { c.alloc = a }
}

// WithDefault sets the factory used whenever an element is default-constructed
// (NewSized, Resize). Without it the zero value of T is used.
func WithDefault[T any](fn func() T) Option[T] {
	if fn == nil {
		panic(panicNilDefaultFactory)
	}
	return func(c *config[T]) { c.newValue = fn }
}

// WithMinCapacity overrides MinCapacity for one vector.
func WithMinCapacity[T any](n int) Option[T] {
	if n < 0 {
		panic(panicNegativeMinCap)
	}
	return func(c *config[T]) { c.minCapacity = n }
}

// WithLogger routes reallocation and allocation-failure events to l.
func WithLogger[T any](l *slog.Logger) Option[T] {
	return func(c *config[T]) {
		if l != nil {
			c.logger = l
		}
	}
}

func gatherOptions[T any](opts []Option[T]) config[T] {
	c := config[T]{
		alloc:       HeapAllocator[T]{},
		minCapacity: MinCapacity,
		logger:      defaultLogger,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}
