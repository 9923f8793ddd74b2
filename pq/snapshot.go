package pq

import "github.com/google/btree"

// snapshotDegree is the B-tree degree used to order snapshots.
const snapshotDegree = 8

// Snapshot returns every queued entry in the order Pop would serve them,
// without modifying the queue.
//
// Names are unique, so the composite key never yields two equal entries
// and the ordering is total.
//
// Complexity: O(n log n) time, O(n) space.
func (q *Queue[N, P]) Snapshot() []Entry[N, P] {
	if len(q.heap) == 0 {
		return nil
	}

	tree := btree.NewG[Entry[N, P]](snapshotDegree, q.outranks)
	for _, e := range q.heap {
		tree.ReplaceOrInsert(e)
	}

	out := make([]Entry[N, P], 0, tree.Len())
	tree.Ascend(func(e Entry[N, P]) bool {
		out = append(out, e)
		return true
	})

	return out
}
