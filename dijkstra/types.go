package dijkstra

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/priq/graph"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to OnGraph.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrStartNotFound indicates that the start node is not a key of the graph.
	ErrStartNotFound = errors.New("dijkstra: start node not found in graph")

	// ErrNegativeWeight indicates that a negative (or NaN) edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrInfiniteWeight indicates a +Inf edge weight, which would leak an
	// infinite distance into a reachable Path.
	ErrInfiniteWeight = errors.New("dijkstra: infinite edge weight encountered")

	// ErrDistanceOverflow indicates a path sum that the weight type cannot represent.
	ErrDistanceOverflow = errors.New("dijkstra: distance overflows weight type")

	// ErrUnknownNeighbor indicates an edge whose target is not a key of the graph.
	ErrUnknownNeighbor = errors.New("dijkstra: neighbor is not a graph node")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNodeNotFound indicates a path query for a node absent from the Result.
	ErrNodeNotFound = errors.New("dijkstra: node not found in result")

	// ErrUnreachable indicates a path query for a node the start cannot reach.
	ErrUnreachable = errors.New("dijkstra: node is unreachable")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance – nodes whose shortest distance would exceed this value are
//
//	reported unreachable. Must be ≥ 0. Default is +Inf (no cap).
//
// Logger      – receives settle/relax events at Debug level.
//
//	Default is logrus.StandardLogger().
type Options struct {
	MaxDistance float64
	Logger      logrus.FieldLogger
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Passing a negative or NaN value panics with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		// Invalid configuration is signaled when the option is built, not when applied.
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithLogger routes debug events to l. A nil logger keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns an Options struct with no distance cap and the
// standard logrus logger.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
		Logger:      logrus.StandardLogger(),
	}
}

// Path is the finalized outcome for one node.
//
// Reachable is false for nodes the start cannot reach (or that lie beyond
// MaxDistance); Distance is then meaningless and left zero.
// HasPredecessor is false for the start node and for unreachable nodes.
type Path[N cmp.Ordered, W graph.Weight] struct {
	Distance       W
	Reachable      bool
	Predecessor    N
	HasPredecessor bool
}

// String renders the path as (distance, predecessor), "(0, none)" for the
// start node and "(+inf, unreachable)" for unreachable nodes.
func (p Path[N, W]) String() string {
	if !p.Reachable {
		return "(+inf, unreachable)"
	}
	if !p.HasPredecessor {
		return fmt.Sprintf("(%v, none)", p.Distance)
	}

	return fmt.Sprintf("(%v, %v)", p.Distance, p.Predecessor)
}

// Result maps every node of the input graph to its finalized Path.
type Result[N cmp.Ordered, W graph.Weight] map[N]Path[N, W]

// Nodes returns the node IDs of r sorted ascending.
func (r Result[N, W]) Nodes() []N {
	return slices.Sorted(maps.Keys(r))
}

// PathTo rebuilds the node sequence start → … → target by following
// predecessors.
//
// Returns ErrNodeNotFound if target (or a node on its chain) is missing,
// and ErrUnreachable if target is unreachable.
//
// Complexity: O(path length)
func (r Result[N, W]) PathTo(target N) ([]N, error) {
	p, ok := r[target]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, target)
	}
	if !p.Reachable {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, target)
	}

	path := []N{target}
	for p.HasPredecessor {
		// A predecessor chain longer than the result can only come from a
		// hand-built Result containing a cycle.
		if len(path) > len(r) {
			return nil, fmt.Errorf("dijkstra: predecessor cycle through %v", target)
		}
		next := p.Predecessor
		if p, ok = r[next]; !ok {
			return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, next)
		}
		path = append(path, next)
	}
	slices.Reverse(path)

	return path, nil
}

// distance is a queue priority with an explicit infinite state, so no
// magic numeric sentinel is needed for nodes not yet reached.
type distance[W graph.Weight] struct {
	value  W
	finite bool
}

// finite wraps a known distance.
func finite[W graph.Weight](v W) distance[W] {
	return distance[W]{value: v, finite: true}
}

// compareDistance orders finite distances numerically and all of them
// before the infinite one.
func compareDistance[W graph.Weight](a, b distance[W]) int {
	switch {
	case a.finite && b.finite:
		return cmp.Compare(a.value, b.value)
	case a.finite:
		return -1
	case b.finite:
		return 1
	default:
		return 0
	}
}
