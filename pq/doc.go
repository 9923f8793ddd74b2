// Package pq implements an indexed binary-heap priority queue whose entries
// are uniquely named.
//
// Overview:
//
//   - A textbook heap only supports insert and extract-front. Queue also keeps
//     a name → slot index, so any entry can be re-prioritized (Update) or
//     deleted (Remove) in O(log n).
//   - Entries are ordered by the composite key (priority, name). MinFirst
//     (default) serves the smallest priority first, MaxFirst the largest;
//     among equal priorities the smaller name is always served first, which
//     makes extraction order deterministic.
//   - Every slot exchange goes through a single swap that updates the array
//     and the index together, so the two can never disagree.
//
// Operations and complexity (n = Len()):
//
//	Insert(name, p)   O(log n)   ErrDuplicateKey if name is queued
//	Priority(name)    O(1)       ErrNotFound
//	Peek()            O(1)       ErrEmptyQueue
//	Pop()             O(log n)   ErrEmptyQueue
//	Update(name, p)   O(log n)   ErrNotFound
//	Remove(name)      O(log n)   ErrNotFound
//	Contains(name)    O(1)
//	Len(), IsEmpty()  O(1)
//	Snapshot()        O(n log n) entries in serving order, queue untouched
//
// Errors are returned wrapped with the offending name; test them with
// errors.Is. A failing call never mutates the queue.
//
// Example:
//
//	q := pq.New[string, int]()
//	_ = q.Insert("z", 5)
//	_ = q.Insert("a", 5)
//	e, _ := q.Pop() // e.Name == "a": equal priorities fall back to name order
//
// Concurrency:
//
//	Queue is not safe for concurrent use; wrap it in a mutex if it must be
//	shared.
package pq
