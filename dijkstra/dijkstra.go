// Package dijkstra implements Dijkstra's shortest-path algorithm on top of
// the indexed priority queue in package pq.
//
// Every node is queued up front (start at 0, the rest at an explicit
// infinite distance). Relaxation lowers a neighbor's distance in place with
// pq.Queue.Update, so the heap never holds more than V entries and no stale
// entries have to be skipped.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - V extractions, each O(log V).
//   - Up to E decrease-key updates, each O(log V).
//   - Space: O(V)
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative,
//     NaN or +Inf weights and dangling neighbors, and fail fast.
//   - A path sum the weight type cannot represent fails with ErrDistanceOverflow
//     instead of wrapping around.
//   - Nodes popped at infinite distance are recorded unreachable and never relaxed.
//   - Candidates beyond MaxDistance are not relaxed, so those nodes end unreachable.
package dijkstra

import (
	"cmp"
	"fmt"
	"maps"
	"math"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/priq/graph"
	"github.com/katalvlaran/priq/pq"
)

// ShortestPaths computes shortest distances and predecessors from start to
// every node of g, an adjacency map of node → (neighbor → weight).
//
// Returns a Result holding one Path per key of g. Nodes the start cannot
// reach are present with Reachable == false.
//
// Preconditions and validation (in order):
//  1. start must be a key of g (ErrStartNotFound).
//  2. No weight may be negative or NaN (ErrNegativeWeight).
//  3. No weight may be +Inf (ErrInfiniteWeight).
//  4. Every neighbor must itself be a key of g (ErrUnknownNeighbor).
//
// During the run, a distance sum that overflows W (for example two int8
// weights of 100) fails with ErrDistanceOverflow, unless MaxDistance
// already excludes it.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func ShortestPaths[N cmp.Ordered, W graph.Weight](g map[N]map[N]W, start N, opts ...Option) (Result[N, W], error) {
	// 1) Build Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate start is present
	if _, ok := g[start]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	// 3) Pre-scan all edges. Fail fast before any queue work.
	nodes := slices.Sorted(maps.Keys(g))
	if err := validate(g, nodes); err != nil {
		return nil, err
	}

	// 4) Initialize runner and run main loop.
	r := newRunner(g, start, cfg)
	if err := r.init(nodes); err != nil {
		return nil, err
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result, nil
}

// OnGraph runs ShortestPaths on a snapshot of g's adjacency.
// Returns ErrNilGraph if g is nil.
func OnGraph[N cmp.Ordered, W graph.Weight](g *graph.Graph[N, W], start N, opts ...Option) (Result[N, W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return ShortestPaths(g.Adjacency(), start, opts...)
}

// validate checks every edge of g for a negative, NaN or +Inf weight and for a
// neighbor that is not itself a node. nodes fixes the scan order so the
// reported edge is deterministic.
func validate[N cmp.Ordered, W graph.Weight](g map[N]map[N]W, nodes []N) error {
	var u, v N
	var w W
	for _, u = range nodes {
		for _, v = range slices.Sorted(maps.Keys(g[u])) {
			w = g[u][v]
			if w < 0 || w != w { // w != w only for NaN
				return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, u, v, w)
			}
			if math.IsInf(float64(w), 1) {
				return fmt.Errorf("%w: edge %v→%v", ErrInfiniteWeight, u, v)
			}
			if _, ok := g[v]; !ok {
				return fmt.Errorf("%w: edge %v→%v", ErrUnknownNeighbor, u, v)
			}
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[N cmp.Ordered, W graph.Weight] struct {
	g       map[N]map[N]W             // The input graph; read-only within Dijkstra.
	start   N                         // Source node.
	options Options                   // Configuration options.
	queue   *pq.Queue[N, distance[W]] // Every unsettled node keyed by tentative distance.
	prev    map[N]N                   // Best-known predecessor of each reached node.
	settled mapset.Set[N]             // Nodes whose distance is final.
	result  Result[N, W]              // Finalized paths, filled as nodes settle.
	log     logrus.FieldLogger
	debug   bool // log has Debug enabled; gates building per-event fields
}

func newRunner[N cmp.Ordered, W graph.Weight](g map[N]map[N]W, start N, cfg Options) *runner[N, W] {
	return &runner[N, W]{
		g:       g,
		start:   start,
		options: cfg,
		queue:   pq.NewFunc[N, distance[W]](compareDistance[W], cmp.Compare[N], pq.WithCapacity(len(g))),
		prev:    make(map[N]N, len(g)),
		settled: mapset.NewThreadUnsafeSet[N](),
		result:  make(Result[N, W], len(g)),
		log:     cfg.Logger.WithField("start", start),
		debug:   debugEnabled(cfg.Logger),
	}
}

// debugEnabled reports whether l would emit Debug events. Loggers other
// than logrus' own types are assumed to want them.
func debugEnabled(l logrus.FieldLogger) bool {
	switch l := l.(type) {
	case *logrus.Logger:
		return l.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return l.Logger.IsLevelEnabled(logrus.DebugLevel)
	default:
		return true
	}
}

// init queues every node: start at distance 0, all others at infinity.
func (r *runner[N, W]) init(nodes []N) error {
	var d distance[W]
	for _, v := range nodes {
		d = distance[W]{} // infinite
		if v == r.start {
			d = finite[W](0)
		}
		if err := r.queue.Insert(v, d); err != nil {
			return fmt.Errorf("dijkstra: queue %v: %w", v, err)
		}
	}

	return nil
}

// process is the core loop: it repeatedly settles the closest queued node
// and relaxes its outgoing edges until the queue is empty.
func (r *runner[N, W]) process() error {
	for !r.queue.IsEmpty() {
		// 1) Pop the smallest-distance node. Its distance is now final.
		front, err := r.queue.Pop()
		if err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}
		u, d := front.Name, front.Priority
		r.settled.Add(u)

		// 2) Everything still queued is at infinity too; record and move on.
		if !d.finite {
			r.result[u] = Path[N, W]{}
			if r.debug {
				r.log.WithField("node", u).Debug("unreachable")
			}
			continue
		}

		// 3) Record the finalized (distance, predecessor) pair.
		p := Path[N, W]{Distance: d.value, Reachable: true}
		if via, ok := r.prev[u]; ok {
			p.Predecessor, p.HasPredecessor = via, true
		}
		r.result[u] = p
		if r.debug {
			r.log.WithFields(logrus.Fields{"node": u, "distance": d.value}).Debug("settled")
		}

		// 4) Relax all outgoing edges of u.
		if err = r.relax(u, d.value); err != nil {
			return err
		}
	}

	return nil
}

// relax lowers the queued distance of every unsettled neighbor v of u when
// going through u is strictly shorter.
//
// Assumes du is the finalized distance of u.
func (r *runner[N, W]) relax(u N, du W) error {
	var cur distance[W]
	var cand W
	var err error
	for v, w := range r.g[u] {
		if r.settled.Contains(v) {
			continue
		}

		cand = du + w
		if cand < du || math.IsInf(float64(cand), 1) { // wrapped or overflowed; w ≥ 0
			if float64(du)+float64(w) > r.options.MaxDistance {
				continue
			}
			return fmt.Errorf("%w: %v + %v on edge %v→%v", ErrDistanceOverflow, du, w, u, v)
		}
		if float64(cand) > r.options.MaxDistance {
			continue
		}

		if cur, err = r.queue.Priority(v); err != nil {
			return fmt.Errorf("dijkstra: relax %v→%v: %w", u, v, err)
		}
		// Strictly better only: equal paths keep the earlier predecessor.
		if compareDistance(finite(cand), cur) >= 0 {
			continue
		}

		if err = r.queue.Update(v, finite(cand)); err != nil {
			return fmt.Errorf("dijkstra: relax %v→%v: %w", u, v, err)
		}
		r.prev[v] = u
		if r.debug {
			r.log.WithFields(logrus.Fields{"node": v, "via": u, "distance": cand}).Debug("relaxed")
		}
	}

	return nil
}
