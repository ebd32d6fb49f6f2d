package routing

import (
	"math"
	"testing"

	"github.com/ttpr0/go-transit/graph"
)

func buildTestGraph() *graph.DirectedWeightedGraph {
	// 0 -> 1 -> 3 costs 3, 0 -> 2 -> 3 costs 2, 4 is unreachable
	g := graph.NewDirectedWeightedGraph(5)
	g.AddEdge(graph.Edge{From: 0, To: 1, Weight: 1})
	g.AddEdge(graph.Edge{From: 1, To: 3, Weight: 2})
	g.AddEdge(graph.Edge{From: 0, To: 2, Weight: 1.5})
	g.AddEdge(graph.Edge{From: 2, To: 3, Weight: 0.5})
	g.AddEdge(graph.Edge{From: 3, To: 0, Weight: 1})
	g.AddEdge(graph.Edge{From: 4, To: 0, Weight: 1})
	return g
}

func equalEdges(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuildRoute(t *testing.T) {
	index := NewShortestPathIndex(buildTestGraph())

	route := index.BuildRoute(0, 3)
	if !route.HasValue() {
		t.Fatalf("route 0 -> 3 not found")
	}
	if math.Abs(route.Value.Weight-2) > 1e-9 {
		t.Errorf("weight = %v; want 2", route.Value.Weight)
	}
	if !equalEdges(route.Value.Edges, []int32{2, 3}) {
		t.Errorf("edges = %v; want [2 3]", route.Value.Edges)
	}

	route = index.BuildRoute(3, 1)
	if !route.HasValue() || !equalEdges(route.Value.Edges, []int32{4, 0}) || math.Abs(route.Value.Weight-2) > 1e-9 {
		t.Errorf("route 3 -> 1 = %+v; want edges [4 0] with weight 2", route)
	}
}

func TestBuildRouteUnreachable(t *testing.T) {
	index := NewShortestPathIndex(buildTestGraph())
	if index.BuildRoute(0, 4).HasValue() {
		t.Errorf("vertex 4 should be unreachable")
	}
	if index.BuildRoute(0, 9).HasValue() || index.BuildRoute(-1, 0).HasValue() {
		t.Errorf("out of range vertices should give no route")
	}
}

func TestBuildRouteToItself(t *testing.T) {
	index := NewShortestPathIndex(buildTestGraph())
	route := index.BuildRoute(2, 2)
	if !route.HasValue() || route.Value.Weight != 0 || len(route.Value.Edges) != 0 {
		t.Errorf("route 2 -> 2 = %+v; want empty route", route)
	}
}

func TestBuildRoutesFrom(t *testing.T) {
	index := NewShortestPathIndex(buildTestGraph())
	tree := index.BuildRoutesFrom(0)
	if !tree.HasValue() {
		t.Fatalf("tree not built")
	}
	want := map[int32]float64{0: 0, 1: 1, 2: 1.5, 3: 2}
	for vertex, weight := range want {
		route := tree.Value.GetShortestPath(vertex)
		if !route.HasValue() || math.Abs(route.Value.Weight-weight) > 1e-9 {
			t.Errorf("route 0 -> %v = %+v; want weight %v", vertex, route, weight)
		}
		one := index.BuildRoute(0, vertex)
		if !equalEdges(one.Value.Edges, route.Value.Edges) {
			t.Errorf("tree and one-to-one routes differ for %v", vertex)
		}
	}
	if tree.Value.GetShortestPath(4).HasValue() {
		t.Errorf("vertex 4 should be unreachable")
	}
	if l := tree.Value.GetPathLength(4); !math.IsInf(l, 1) {
		t.Errorf("path length to vertex 4 = %v; want +Inf", l)
	}
	if l := tree.Value.GetPathLength(3); math.Abs(l-2) > 1e-9 {
		t.Errorf("path length to vertex 3 = %v; want 2", l)
	}
	if index.BuildRoutesFrom(7).HasValue() {
		t.Errorf("out of range source should give no tree")
	}
}

func TestBuildRouteDeterministic(t *testing.T) {
	// two equally fast paths 0 -> 1 -> 3 and 0 -> 2 -> 3
	g := graph.NewDirectedWeightedGraph(4)
	g.AddEdge(graph.Edge{From: 0, To: 1, Weight: 1})
	g.AddEdge(graph.Edge{From: 0, To: 2, Weight: 1})
	g.AddEdge(graph.Edge{From: 1, To: 3, Weight: 1})
	g.AddEdge(graph.Edge{From: 2, To: 3, Weight: 1})
	index := NewShortestPathIndex(g)

	first := index.BuildRoute(0, 3)
	for i := 0; i < 20; i++ {
		route := index.BuildRoute(0, 3)
		if route.Value.Weight != first.Value.Weight || !equalEdges(route.Value.Edges, first.Value.Edges) {
			t.Fatalf("route changed between runs: %+v != %+v", route, first)
		}
	}
	if !equalEdges(first.Value.Edges, []int32{0, 2}) {
		t.Errorf("edges = %v; want [0 2]", first.Value.Edges)
	}
}

func TestNegativeWeightPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for negative weight")
		}
	}()
	g := graph.NewDirectedWeightedGraph(2)
	g.AddEdge(graph.Edge{From: 0, To: 1, Weight: -1})
	NewShortestPathIndex(g)
}
