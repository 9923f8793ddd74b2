// Package priq is an indexed priority queue with a Dijkstra driver built
// on top of it.
//
// What is in here?
//
//   - pq/        binary-heap priority queue of uniquely named entries, with
//     O(log n) Update and Remove by name (min- or max-first)
//   - dijkstra/  single-source shortest paths relaxed through pq.Update,
//     with explicit unreachable results and path reconstruction
//   - graph/     small thread-safe weighted adjacency builder
//   - cmd/dsp/   demo printing shortest-path tables for a reference network
//
// Quick example:
//
//	q := pq.New[string, int]()
//	_ = q.Insert("b", 2)
//	_ = q.Insert("a", 5)
//	_ = q.Update("a", 1) // decrease-key
//	e, _ := q.Pop()      // e.Name == "a"
//
//	go get github.com/katalvlaran/priq
package priq
