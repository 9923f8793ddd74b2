package pq

import (
	"cmp"
	"fmt"
	"strings"
)

// Queue is a binary-heap priority queue of uniquely named entries.
//
// Besides the heap array, Queue keeps an index from each name to its
// current slot in the array, so any entry can be re-prioritized or removed
// in O(log n) without a linear search.
//
// Invariants, holding after every public method returns:
//
//   - heap order: no entry outranks its parent (see Entry for the key);
//   - index consistency: heap[index[name]].Name == name for every name;
//   - len(heap) == len(index).
//
// Queue is not safe for concurrent use. Callers sharing a Queue across
// goroutines must serialize every call.
type Queue[N comparable, P any] struct {
	heap  []Entry[N, P] // implicit complete binary tree, root at 0
	index map[N]int     // name → position in heap
	mode  Mode

	comparePriority func(a, b P) int
	compareName     func(a, b N) int
}

// New returns an empty queue whose names and priorities are ordered by
// cmp.Compare.
//
// Complexity: O(1) (O(capacity) with WithCapacity).
func New[N, P cmp.Ordered](opts ...Option) *Queue[N, P] {
	return NewFunc[N, P](cmp.Compare[P], cmp.Compare[N], opts...)
}

// NewFunc returns an empty queue using the given three-way comparators.
// Each comparator must return a negative number when a < b, zero when
// a == b and a positive number when a > b, and must describe a strict
// total order. Panics if either comparator is nil.
//
// Use NewFunc when the priority type is not cmp.Ordered, for example a
// distance type with an explicit "infinite" state.
func NewFunc[N comparable, P any](priority func(a, b P) int, name func(a, b N) int, opts ...Option) *Queue[N, P] {
	if priority == nil || name == nil {
		panic("pq: nil comparator")
	}

	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return &Queue[N, P]{
		heap:            make([]Entry[N, P], 0, cfg.Capacity),
		index:           make(map[N]int, cfg.Capacity),
		mode:            cfg.Mode,
		comparePriority: priority,
		compareName:     name,
	}
}

// Mode reports the serving order chosen at construction.
func (q *Queue[N, P]) Mode() Mode { return q.mode }

// Len returns the number of queued entries.
func (q *Queue[N, P]) Len() int { return len(q.heap) }

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[N, P]) IsEmpty() bool { return len(q.heap) == 0 }

// Contains reports whether name is queued.
//
// Complexity: O(1)
func (q *Queue[N, P]) Contains(name N) bool {
	_, ok := q.index[name]
	return ok
}

// Insert adds name with the given priority.
// Returns ErrDuplicateKey, and leaves the queue untouched, if name is
// already present.
//
// Complexity: O(log n)
func (q *Queue[N, P]) Insert(name N, priority P) error {
	if _, ok := q.index[name]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, name)
	}

	// 1) Append as the last leaf.
	q.heap = append(q.heap, Entry[N, P]{Name: name, Priority: priority})
	last := len(q.heap) - 1
	q.index[name] = last

	// 2) Restore heap order along the path to the root.
	q.up(last)

	return nil
}

// Priority returns the current priority of name, or ErrNotFound.
//
// Complexity: O(1)
func (q *Queue[N, P]) Priority(name N) (P, error) {
	i, ok := q.index[name]
	if !ok {
		var zero P
		return zero, fmt.Errorf("%w: %v", ErrNotFound, name)
	}

	return q.heap[i].Priority, nil
}

// Peek returns the front entry without removing it, or ErrEmptyQueue.
//
// Complexity: O(1)
func (q *Queue[N, P]) Peek() (Entry[N, P], error) {
	if len(q.heap) == 0 {
		return Entry[N, P]{}, ErrEmptyQueue
	}

	return q.heap[0], nil
}

// Pop removes and returns the front entry, or ErrEmptyQueue.
//
// Steps:
//  1. Swap the root with the last slot.
//  2. Shrink the array by one and drop the removed name from the index.
//  3. Sift the new root down.
//
// Complexity: O(log n)
func (q *Queue[N, P]) Pop() (Entry[N, P], error) {
	if len(q.heap) == 0 {
		return Entry[N, P]{}, ErrEmptyQueue
	}

	front := q.heap[0]
	last := len(q.heap) - 1
	q.swap(0, last)
	q.truncate(last)
	q.down(0)

	return front, nil
}

// Update overwrites the priority of name in place and moves the entry
// toward the root if its rank improved, or toward the leaves if it
// worsened. Returns ErrNotFound if name is absent.
//
// Complexity: O(log n)
func (q *Queue[N, P]) Update(name N, priority P) error {
	i, ok := q.index[name]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, name)
	}

	old := q.heap[i]
	q.heap[i].Priority = priority

	switch {
	case q.outranks(q.heap[i], old):
		q.up(i)
	case q.outranks(old, q.heap[i]):
		q.down(i)
	}

	return nil
}

// Remove deletes name from the queue, or returns ErrNotFound.
//
// Steps:
//  1. Locate the slot of name.
//  2. If it is the last slot, shrink and stop.
//  3. Otherwise move the last entry into the slot, shrink,
//     and sift the moved entry up or down relative to the removed one.
//
// Complexity: O(log n)
func (q *Queue[N, P]) Remove(name N) error {
	i, ok := q.index[name]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, name)
	}

	removed := q.heap[i]
	last := len(q.heap) - 1
	if i == last {
		q.truncate(last)
		return nil
	}

	q.swap(i, last)
	q.truncate(last)

	switch {
	case q.outranks(q.heap[i], removed):
		q.up(i)
	case q.outranks(removed, q.heap[i]):
		q.down(i)
	}

	return nil
}

// String renders the heap array in storage order, e.g. "[(1, a) (3, c) (2, b)]".
func (q *Queue[N, P]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range q.heap {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')

	return sb.String()
}

// outranks reports whether a belongs strictly closer to the root than b.
// Priority order follows the mode; the name tie-break is always ascending.
func (q *Queue[N, P]) outranks(a, b Entry[N, P]) bool {
	c := q.comparePriority(a.Priority, b.Priority)
	if q.mode == MaxFirst {
		c = -c
	}
	if c != 0 {
		return c < 0
	}

	return q.compareName(a.Name, b.Name) < 0
}

// swap exchanges two heap slots and both of their index entries.
func (q *Queue[N, P]) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.index[q.heap[i].Name] = i
	q.index[q.heap[j].Name] = j
}

// truncate drops slot n (which must be the last one) and its index entry.
func (q *Queue[N, P]) truncate(n int) {
	delete(q.index, q.heap[n].Name)
	q.heap[n] = Entry[N, P]{} // release references held by N or P
	q.heap = q.heap[:n]
}

// up sifts slot i toward the root while it outranks its parent.
func (q *Queue[N, P]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.outranks(q.heap[i], q.heap[parent]) {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

// down sifts slot i toward the leaves while a child outranks it.
func (q *Queue[N, P]) down(i int) {
	n := len(q.heap)
	for {
		left := 2*i + 1
		if left >= n {
			return // leaf
		}

		// Pick the child that belongs closer to the root.
		best := left
		if right := left + 1; right < n && q.outranks(q.heap[right], q.heap[left]) {
			best = right
		}

		if !q.outranks(q.heap[best], q.heap[i]) {
			return
		}
		q.swap(i, best)
		i = best
	}
}
