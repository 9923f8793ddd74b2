// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate precondition errors, the reference scenarios,
// MaxDistance, path reconstruction and the graph.Graph entry point.
package dijkstra_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/priq/dijkstra"
	"github.com/katalvlaran/priq/graph"
)

// referenceGraph is the undirected eight-node network
//
//	    B  6  D
//	  2 3 2 4 1 2
//	A 6 F  7  G 5 H
//	  1 2 3 4 2 3
//	    C  5  E
func referenceGraph() map[string]map[string]int {
	return map[string]map[string]int{
		"a": {"b": 2, "f": 6, "c": 1},
		"b": {"a": 2, "d": 6, "f": 3, "g": 4},
		"c": {"a": 1, "f": 2, "g": 3, "e": 5},
		"d": {"b": 6, "f": 2, "g": 1, "h": 2},
		"e": {"c": 5, "f": 4, "g": 2, "h": 3},
		"f": {"a": 6, "b": 3, "d": 2, "g": 7, "e": 4, "c": 2},
		"g": {"f": 7, "b": 4, "d": 1, "h": 5, "e": 2, "c": 3},
		"h": {"d": 2, "g": 5, "e": 3},
	}
}

// reached builds the Path expected for a node with a predecessor.
func reached(d int, via string) dijkstra.Path[string, int] {
	return dijkstra.Path[string, int]{Distance: d, Reachable: true, Predecessor: via, HasPredecessor: true}
}

// origin is the Path expected for the start node.
func origin[W graph.Weight]() dijkstra.Path[string, W] {
	return dijkstra.Path[string, W]{Reachable: true}
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestShortestPaths_StartNotFound(t *testing.T) {
	_, err := dijkstra.ShortestPaths(map[string]map[string]int{"A": {}}, "X")
	require.ErrorIs(t, err, dijkstra.ErrStartNotFound)

	_, err = dijkstra.ShortestPaths[string, int](nil, "A")
	require.ErrorIs(t, err, dijkstra.ErrStartNotFound, "nil graph has no start")
}

func TestShortestPaths_NegativeWeight(t *testing.T) {
	g := map[string]map[string]int{"A": {"B": -5}, "B": {}}
	_, err := dijkstra.ShortestPaths(g, "A")
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "A→B")
}

func TestShortestPaths_NaNWeight(t *testing.T) {
	g := map[string]map[string]float64{"A": {"B": math.NaN()}, "B": {}}
	_, err := dijkstra.ShortestPaths(g, "A")
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestShortestPaths_InfiniteWeight(t *testing.T) {
	// An infinite edge must not surface as a reachable node at +Inf.
	g := map[string]map[string]float64{"A": {"B": math.Inf(1)}, "B": {}}
	res, err := dijkstra.ShortestPaths(g, "A")
	require.ErrorIs(t, err, dijkstra.ErrInfiniteWeight)
	assert.Nil(t, res)

	g32 := map[string]map[string]float32{"A": {"B": float32(math.Inf(1))}, "B": {}}
	_, err = dijkstra.ShortestPaths(g32, "A")
	require.ErrorIs(t, err, dijkstra.ErrInfiniteWeight)
}

func TestShortestPaths_IntegerOverflow(t *testing.T) {
	// 100 + 100 does not fit int8.
	g := map[string]map[string]int8{"A": {"B": 100}, "B": {"C": 100}, "C": {}}
	_, err := dijkstra.ShortestPaths(g, "A")
	require.ErrorIs(t, err, dijkstra.ErrDistanceOverflow)

	// With a cap below the true sum the edge is simply out of reach.
	res, err := dijkstra.ShortestPaths(g, "A", dijkstra.WithMaxDistance(150))
	require.NoError(t, err)
	assert.True(t, res["B"].Reachable)
	assert.Equal(t, int8(100), res["B"].Distance)
	assert.False(t, res["C"].Reachable)

	u := map[int]map[int]uint8{1: {2: 200}, 2: {3: 100}, 3: {}}
	_, err = dijkstra.ShortestPaths(u, 1)
	require.ErrorIs(t, err, dijkstra.ErrDistanceOverflow)
}

func TestShortestPaths_FloatSumOverflow(t *testing.T) {
	g := map[string]map[string]float64{
		"A": {"B": math.MaxFloat64},
		"B": {"C": math.MaxFloat64},
		"C": {},
	}
	_, err := dijkstra.ShortestPaths(g, "A")
	require.ErrorIs(t, err, dijkstra.ErrDistanceOverflow)
}

func TestShortestPaths_UnknownNeighbor(t *testing.T) {
	g := map[string]map[string]int{"A": {"B": 1}}
	_, err := dijkstra.ShortestPaths(g, "A")
	require.ErrorIs(t, err, dijkstra.ErrUnknownNeighbor)
}

func TestWithMaxDistance_Panics(t *testing.T) {
	// The constructor itself must reject the value, before ShortestPaths runs.
	require.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() { dijkstra.WithMaxDistance(-1) })
	require.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() { dijkstra.WithMaxDistance(math.NaN()) })
	require.NotPanics(t, func() { dijkstra.WithMaxDistance(0) })
	require.NotPanics(t, func() { dijkstra.WithMaxDistance(math.Inf(1)) })
}

func TestOnGraph_Nil(t *testing.T) {
	_, err := dijkstra.OnGraph[string, int](nil, "A")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func TestShortestPaths_ScenarioA(t *testing.T) {
	g := map[string]map[string]int{
		"A": {"B": 1, "C": 4},
		"B": {"C": 2},
		"C": {},
	}
	res, err := dijkstra.ShortestPaths(g, "A")
	require.NoError(t, err)

	require.Equal(t, dijkstra.Result[string, int]{
		"A": origin[int](),
		"B": reached(1, "A"),
		"C": reached(3, "B"),
	}, res)
}

func TestShortestPaths_DisconnectedNode(t *testing.T) {
	g := map[string]map[string]int{
		"A": {"B": 1, "C": 4},
		"B": {"C": 2},
		"C": {},
		"D": {},
	}
	res, err := dijkstra.ShortestPaths(g, "A")
	require.NoError(t, err)

	require.Len(t, res, 4)
	d := res["D"]
	assert.False(t, d.Reachable)
	assert.False(t, d.HasPredecessor)
	assert.Equal(t, "(+inf, unreachable)", d.String())
	assert.Equal(t, reached(3, "B"), res["C"])
}

func TestShortestPaths_ReferenceFromA(t *testing.T) {
	res, err := dijkstra.ShortestPaths(referenceGraph(), "a")
	require.NoError(t, err)

	require.Equal(t, dijkstra.Result[string, int]{
		"a": origin[int](),
		"b": reached(2, "a"),
		"c": reached(1, "a"),
		"d": reached(5, "f"),
		"e": reached(6, "c"),
		"f": reached(3, "c"),
		"g": reached(4, "c"),
		"h": reached(7, "d"),
	}, res)
}

func TestShortestPaths_ReferenceFromD(t *testing.T) {
	res, err := dijkstra.ShortestPaths(referenceGraph(), "d")
	require.NoError(t, err)

	require.Equal(t, dijkstra.Result[string, int]{
		"a": reached(5, "c"),
		"b": reached(5, "g"),
		"c": reached(4, "g"),
		"d": origin[int](),
		"e": reached(3, "g"),
		"f": reached(2, "d"),
		"g": reached(1, "d"),
		"h": reached(2, "d"),
	}, res)
}

func TestShortestPaths_DirectedOneWay(t *testing.T) {
	// B cannot reach A even though A reaches B.
	g := map[int]map[int]uint{1: {2: 3}, 2: {3: 4}, 3: {}}
	res, err := dijkstra.ShortestPaths(g, 2)
	require.NoError(t, err)

	assert.False(t, res[1].Reachable)
	assert.Equal(t, uint(0), res[2].Distance)
	assert.Equal(t, uint(4), res[3].Distance)
	assert.Equal(t, 2, res[3].Predecessor)
}

func TestShortestPaths_FloatWeightsAndSelfLoop(t *testing.T) {
	g := map[string]map[string]float64{
		"s": {"s": 0.5, "x": 0.25, "y": 1.0},
		"x": {"y": 0.25},
		"y": {},
	}
	res, err := dijkstra.ShortestPaths(g, "s")
	require.NoError(t, err)

	assert.Equal(t, origin[float64](), res["s"])
	assert.InDelta(t, 0.5, res["y"].Distance, 1e-12)
	assert.Equal(t, "x", res["y"].Predecessor)
}

func TestShortestPaths_ZeroWeightTieKeepsFirstPredecessor(t *testing.T) {
	// Both b and c reach d at distance 2; b settles first (name order) and
	// c's equal path must not replace it.
	g := map[string]map[string]int{
		"a": {"b": 1, "c": 1},
		"b": {"d": 1},
		"c": {"d": 1},
		"d": {},
	}
	res, err := dijkstra.ShortestPaths(g, "a")
	require.NoError(t, err)
	assert.Equal(t, reached(2, "b"), res["d"])
}

func TestShortestPaths_SingleNode(t *testing.T) {
	res, err := dijkstra.ShortestPaths(map[string]map[string]int{"only": {}}, "only")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Result[string, int]{"only": origin[int]()}, res)
	assert.Equal(t, "(0, none)", res["only"].String())
}

// ------------------------------------------------------------------------
// 3. Options
// ------------------------------------------------------------------------

func TestShortestPaths_MaxDistance(t *testing.T) {
	res, err := dijkstra.ShortestPaths(referenceGraph(), "a", dijkstra.WithMaxDistance(4))
	require.NoError(t, err)

	for _, v := range []string{"a", "b", "c", "f", "g"} {
		assert.True(t, res[v].Reachable, "node %s within cap", v)
	}
	for _, v := range []string{"d", "e", "h"} {
		assert.False(t, res[v].Reachable, "node %s beyond cap", v)
	}
	assert.Len(t, res, 8)
}

func TestShortestPaths_LogsDebugEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	g := map[string]map[string]int{"A": {"B": 1}, "B": {}, "Z": {}}
	_, err := dijkstra.ShortestPaths(g, "A", dijkstra.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=settled")
	assert.Contains(t, out, "msg=relaxed")
	assert.Contains(t, out, "msg=unreachable")
	assert.Contains(t, out, "start=A")
}

func TestShortestPaths_DebugDisabledLogsNothing(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.InfoLevel)

	g := map[string]map[string]int{"A": {"B": 1}, "B": {}, "Z": {}}
	res, err := dijkstra.ShortestPaths(g, "A", dijkstra.WithLogger(logger.WithField("run", 1)))
	require.NoError(t, err)
	assert.Equal(t, reached(1, "A"), res["B"])
	assert.Empty(t, buf.String())
}

// ------------------------------------------------------------------------
// 4. Path reconstruction and the graph.Graph entry point
// ------------------------------------------------------------------------

func TestResult_PathTo(t *testing.T) {
	g := referenceGraph()
	g["z"] = map[string]int{}
	res, err := dijkstra.ShortestPaths(g, "a")
	require.NoError(t, err)

	path, err := res.PathTo("h")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "f", "d", "h"}, path)

	path, err = res.PathTo("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, path)

	_, err = res.PathTo("z")
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
	_, err = res.PathTo("missing")
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotFound)

	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h", "z"}, res.Nodes())
}

func TestResult_PathToCycle(t *testing.T) {
	res := dijkstra.Result[string, int]{
		"x": reached(1, "y"),
		"y": reached(1, "x"),
	}
	_, err := res.PathTo("x")
	assert.Error(t, err)
}

func TestOnGraph_MatchesAdjacency(t *testing.T) {
	gb := graph.NewGraph[string, int]()
	for u, nbrs := range referenceGraph() {
		for v, w := range nbrs {
			if u < v {
				require.NoError(t, gb.AddEdge(u, v, w))
			}
		}
	}

	fromBuilder, err := dijkstra.OnGraph(gb, "d")
	require.NoError(t, err)
	fromMap, err := dijkstra.ShortestPaths(referenceGraph(), "d")
	require.NoError(t, err)
	assert.Equal(t, fromMap, fromBuilder)
}
