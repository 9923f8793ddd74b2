// Package graph provides a small, thread-safe, weighted adjacency builder
// whose output feeds dijkstra.ShortestPaths.
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - attempt to add a second edge between the same endpoints.
package graph

import (
	"cmp"
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("graph: multi-edges not allowed")
)

// Weight is the set of numeric types usable as edge weights and distances.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Graph is a weighted graph over vertex IDs of type N with weights of type W.
//
// Vertices are created implicitly by AddEdge or explicitly by AddVertex.
// All methods are safe for concurrent use.
type Graph[N cmp.Ordered, W Weight] struct {
	mu sync.RWMutex

	directed   bool
	allowLoops bool

	// adjacency[from][to] = weight; undirected edges are stored in both directions.
	adjacency map[N]map[N]W
	edges     int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*config)

type config struct {
	directed   bool
	allowLoops bool
}

// WithDirected sets whether edges are one-way (true) or mirrored (false, default).
func WithDirected(directed bool) GraphOption {
	return func(c *config) { c.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *config) { c.allowLoops = true }
}

// NewGraph creates an empty Graph configured by opts.
func NewGraph[N cmp.Ordered, W Weight](opts ...GraphOption) *Graph[N, W] {
	var c config
	var opt GraphOption
	for _, opt = range opts {
		opt(&c)
	}

	return &Graph[N, W]{
		directed:   c.directed,
		allowLoops: c.allowLoops,
		adjacency:  make(map[N]map[N]W),
	}
}

// Directed reports whether edges are one-way.
func (g *Graph[N, W]) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph[N, W]) Looped() bool { return g.allowLoops }
