// Command dsp runs Dijkstra's shortest paths over the reference eight-node
// network and prints one table per source node.
//
//	    B  6  D
//	  2 3 2 4 1 2
//	A 6 F  7  G 5 H
//	  1 2 3 4 2 3
//	    C  5  E
//
// Usage:
//
//	dsp [-from a,d] [-max-distance 5] [-v]
package main

import (
	"flag"
	"io"
	"math"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/priq/dijkstra"
	"github.com/katalvlaran/priq/graph"
)

// edges of the reference network; every edge is undirected.
var edges = []struct {
	from, to string
	weight   int
}{
	{"a", "b", 2}, {"a", "c", 1}, {"a", "f", 6},
	{"b", "d", 6}, {"b", "f", 3}, {"b", "g", 4},
	{"c", "e", 5}, {"c", "f", 2}, {"c", "g", 3},
	{"d", "f", 2}, {"d", "g", 1}, {"d", "h", 2},
	{"e", "f", 4}, {"e", "g", 2}, {"e", "h", 3},
	{"f", "g", 7}, {"g", "h", 5},
}

func main() {
	from := flag.String("from", "a,d", "comma-separated source nodes")
	maxDistance := flag.Float64("max-distance", math.Inf(1), "report nodes farther than this as unreachable")
	verbose := flag.Bool("v", false, "log every settle and relaxation")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{
		DisableColors: false,
		FullTimestamp: true,
	})
	log.SetOutput(os.Stderr)
	log.SetLevel(log.InfoLevel)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if *maxDistance < 0 || math.IsNaN(*maxDistance) {
		log.Fatalf("-max-distance must be non-negative, got %v", *maxDistance)
	}

	g, err := buildNetwork()
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("network has %d nodes and %d edges", g.VertexCount(), g.EdgeCount())

	for _, src := range strings.Split(*from, ",") {
		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}

		res, err := dijkstra.OnGraph(g, src,
			dijkstra.WithMaxDistance(*maxDistance),
			dijkstra.WithLogger(log.StandardLogger()),
		)
		if err != nil {
			log.Errorf("shortest paths from %q: %v", src, err)
			continue
		}
		render(os.Stdout, src, res)
	}
}

// buildNetwork loads the reference edges into an undirected graph.
func buildNetwork() (*graph.Graph[string, int], error) {
	g := graph.NewGraph[string, int]()
	for _, e := range edges {
		if err := g.AddEdge(e.from, e.to, e.weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// render prints one row per node: distance, predecessor and full path.
func render(w io.Writer, src string, res dijkstra.Result[string, int]) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Shortest paths from " + src)
	t.AppendHeader(table.Row{"NODE", "DISTANCE", "PREDECESSOR", "PATH"})

	for _, v := range res.Nodes() {
		p := res[v]
		switch {
		case !p.Reachable:
			t.AppendRow(table.Row{v, "+inf", "unreachable", "-"})
		case !p.HasPredecessor:
			t.AppendRow(table.Row{v, p.Distance, "none", v})
		default:
			path, err := res.PathTo(v)
			if err != nil {
				log.Warnf("path to %s: %v", v, err)
			}
			t.AppendRow(table.Row{v, p.Distance, p.Predecessor, strings.Join(path, " → ")})
		}
	}

	t.SetStyle(table.StyleLight)
	t.Render()
}
