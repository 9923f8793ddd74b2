package graph

import (
	"fmt"
	"maps"
	"slices"
)

// AddVertex inserts id if absent. Adding an existing vertex is a no-op.
//
// Complexity: O(1)
func (g *Graph[N, W]) AddVertex(id N) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensure(id)
}

// HasVertex reports whether id is in the graph.
//
// Complexity: O(1)
func (g *Graph[N, W]) HasVertex(id N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]
	return ok
}

// AddEdge connects from→to with weight w, creating missing endpoints.
// Undirected graphs also store the mirror to→from.
//
// Returns:
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed if the edge already exists.
//
// Weight sign is not checked here; the shortest-path driver rejects
// negative weights itself.
//
// Complexity: O(1) amortized.
func (g *Graph[N, W]) AddEdge(from, to N, w W) error {
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[from][to]; ok {
		return fmt.Errorf("%w: %v→%v", ErrMultiEdgeNotAllowed, from, to)
	}

	g.ensure(from)
	g.ensure(to)
	g.adjacency[from][to] = w
	if !g.directed {
		g.adjacency[to][from] = w
	}
	g.edges++

	return nil
}

// HasEdge reports whether from→to exists (either direction when undirected).
func (g *Graph[N, W]) HasEdge(from, to N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[from][to]
	return ok
}

// Weight returns the weight of from→to, or ErrEdgeNotFound.
func (g *Graph[N, W]) Weight(from, to N) (W, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
	}

	return w, nil
}

// Neighbors returns a copy of the outgoing edges of id as neighbor → weight.
// Returns ErrVertexNotFound if id is absent.
//
// Complexity: O(deg(id))
func (g *Graph[N, W]) Neighbors(id N) (map[N]W, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, id)
	}

	return maps.Clone(nbrs), nil
}

// Vertices returns all vertex IDs sorted ascending.
//
// Complexity: O(V log V)
func (g *Graph[N, W]) Vertices() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Sorted(maps.Keys(g.adjacency))
}

// VertexCount returns the number of vertices.
func (g *Graph[N, W]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of AddEdge calls that succeeded; an
// undirected edge counts once.
func (g *Graph[N, W]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Adjacency returns a deep copy of the graph as vertex → (neighbor → weight).
// Every vertex is a key, including isolated ones with an empty neighbor map.
//
// Complexity: O(V + E)
func (g *Graph[N, W]) Adjacency() map[N]map[N]W {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[N]map[N]W, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		out[id] = maps.Clone(nbrs)
	}

	return out
}

// ensure bootstraps the adjacency bucket of id. Caller holds the write lock.
func (g *Graph[N, W]) ensure(id N) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[N]W)
	}
}
