package pq

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Queue operations.
var (
	// ErrDuplicateKey indicates an Insert of a name that is already queued.
	ErrDuplicateKey = errors.New("pq: duplicate key")

	// ErrNotFound indicates that the referenced name is not in the queue.
	ErrNotFound = errors.New("pq: key not found")

	// ErrEmptyQueue indicates Peek or Pop on a queue with no entries.
	ErrEmptyQueue = errors.New("pq: queue is empty")
)

// Mode selects which end of the priority order is served first.
type Mode int

const (
	// MinFirst serves the smallest priority first (min-heap). Default.
	MinFirst Mode = iota

	// MaxFirst serves the largest priority first (max-heap).
	MaxFirst
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case MinFirst:
		return "min"
	case MaxFirst:
		return "max"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Entry is a single (priority, name) pair held by the queue.
//
// Entries compare as the composite key (Priority, Name): priority according
// to the queue's Mode, and among equal priorities the smaller Name ranks
// higher regardless of Mode.
type Entry[N any, P any] struct {
	Name     N
	Priority P
}

// String renders the entry in (priority, name) order.
func (e Entry[N, P]) String() string {
	return fmt.Sprintf("(%v, %v)", e.Priority, e.Name)
}

// Options configures a Queue at construction time.
//
// Mode     – MinFirst (default) or MaxFirst; fixed for the queue's lifetime.
// Capacity – initial capacity hint for the heap array and the index map.
type Options struct {
	Mode     Mode
	Capacity int
}

// Option represents a functional option for configuring a Queue.
type Option func(*Options)

// WithMode sets the serving order of the queue.
// Panics if mode is neither MinFirst nor MaxFirst.
func WithMode(mode Mode) Option {
	if mode != MinFirst && mode != MaxFirst {
		panic(fmt.Sprintf("pq: invalid mode %d", int(mode)))
	}

	return func(o *Options) {
		o.Mode = mode
	}
}

// WithMax is shorthand for WithMode(MaxFirst).
func WithMax() Option {
	return WithMode(MaxFirst)
}

// WithCapacity pre-sizes the heap array and the index map for n entries.
// Negative values are ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// DefaultOptions returns the defaults: MinFirst, no capacity hint.
func DefaultOptions() Options {
	return Options{Mode: MinFirst}
}
