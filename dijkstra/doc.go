// Package dijkstra provides single-source shortest paths over graphs with
// non-negative edge weights, driven by the indexed priority queue of
// package pq.
//
// Overview:
//
//   - ShortestPaths takes a plain adjacency map, node → (neighbor → weight),
//     and a start node, and returns a Result: one Path per node holding the
//     shortest distance and the predecessor on one shortest path.
//   - OnGraph does the same for a *graph.Graph builder.
//   - Reachability is explicit. Unreachable nodes carry Reachable == false
//     instead of a magic "infinite" number, and the start node carries
//     HasPredecessor == false.
//   - Ties are deterministic: among nodes at equal tentative distance the
//     smaller ID settles first, and a predecessor is only replaced by a
//     strictly shorter path.
//
// Node and weight types are generic: N is any cmp.Ordered type, W any
// integer or floating-point kind (graph.Weight).
//
// Error handling (sentinel errors, test with errors.Is):
//
//   - ErrStartNotFound:   the start node is not a key of the graph.
//   - ErrNegativeWeight:  some edge weight is negative or NaN.
//   - ErrInfiniteWeight:  some edge weight is +Inf.
//   - ErrDistanceOverflow: a path sum does not fit the weight type.
//   - ErrUnknownNeighbor: some edge points at a node that is not a key of the graph.
//   - ErrNilGraph:        OnGraph received a nil *graph.Graph.
//   - ErrBadMaxDistance:  (panic from the WithMaxDistance call itself) a negative or NaN cap.
//   - ErrNodeNotFound, ErrUnreachable: returned by Result.PathTo.
//
// Options:
//
//   - WithMaxDistance(float64): nodes farther than the cap end unreachable.
//   - WithLogger(logrus.FieldLogger): structured Debug events for every
//     settle and relaxation ("node", "via", "distance" fields).
//
// Example:
//
//	g := map[string]map[string]int{
//	    "A": {"B": 1, "C": 4},
//	    "B": {"C": 2},
//	    "C": {},
//	}
//	res, err := dijkstra.ShortestPaths(g, "A")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res["C"]) // (3, B)
//
// Concurrency:
//
//	A single call owns all of its state; concurrent calls on the same
//	read-only input are safe. The input map must not be mutated during a call.
package dijkstra
