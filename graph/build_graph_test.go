package graph

import (
	"math"
	"testing"

	"github.com/ttpr0/go-transit/catalogue"
	"github.com/ttpr0/go-transit/geo"
)

func buildTestCatalogue() *catalogue.TransportCatalogue {
	cat := catalogue.NewTransportCatalogue()
	cat.AddStop("A", geo.Coord{Lat: 0, Lon: 0})
	cat.AddStop("B", geo.Coord{Lat: 0, Lon: 0.01})
	cat.AddStop("C", geo.Coord{Lat: 0, Lon: 0.02})
	cat.AddDistance("A", "B", 1000)
	cat.AddDistance("B", "C", 2000)
	cat.AddDistance("C", "B", 1500)
	cat.AddDistance("B", "A", 900)
	return cat
}

func findEdge(g *TransitGraph, from, to int32, name string, span int32) (Edge, bool) {
	for i := 0; i < g.EdgeCount(); i++ {
		e := g.GetEdge(int32(i))
		if e.From == from && e.To == to && e.Name == name && e.SpanCount == span {
			return e, true
		}
	}
	return Edge{}, false
}

func TestBuildWaitEdges(t *testing.T) {
	cat := buildTestCatalogue()
	g := BuildTransitGraph(cat, RoutingSettings{BusWaitTime: 6, BusVelocity: 40})

	if g.VertexCount() != 6 {
		t.Errorf("vertex count = %v; want 6", g.VertexCount())
	}
	if g.EdgeCount() != 3 {
		t.Errorf("edge count = %v; want 3 wait edges", g.EdgeCount())
	}
	for i, name := range []string{"A", "B", "C"} {
		vertex := g.GetStopVertex(name)
		if !vertex.HasValue() || vertex.Value != int32(2*i) {
			t.Errorf("vertex of %v = %+v; want %v", name, vertex, 2*i)
		}
		e := g.GetEdge(int32(i))
		if e.From != ArrivalVertex(int32(i)) || e.To != DepartureVertex(int32(i)) || e.Weight != 6 || e.Type() != WAIT_EDGE || e.Name != name {
			t.Errorf("wait edge %v = %+v", i, e)
		}
	}
	if g.GetStopVertex("Z").HasValue() {
		t.Errorf("unknown stop should have no vertex")
	}
}

func TestBuildRoundtripRideEdges(t *testing.T) {
	cat := buildTestCatalogue()
	cat.AddBus("1", []string{"A", "B"}, true)
	g := BuildTransitGraph(cat, RoutingSettings{BusWaitTime: 5, BusVelocity: 30})

	if g.EdgeCount() != 3+1 {
		t.Fatalf("edge count = %v; want 4", g.EdgeCount())
	}
	e, ok := findEdge(g, DepartureVertex(0), ArrivalVertex(1), "1", 1)
	if !ok {
		t.Fatalf("ride edge A -> B not found")
	}
	if math.Abs(e.Weight-2) > 1e-9 {
		t.Errorf("weight = %v; want 2", e.Weight)
	}
	if _, ok := findEdge(g, DepartureVertex(1), ArrivalVertex(0), "1", 1); ok {
		t.Errorf("round trip bus must not get mirrored edges")
	}
}

func TestBuildLinearRideEdgesUseDirectedDistances(t *testing.T) {
	cat := buildTestCatalogue()
	cat.AddBus("2", []string{"A", "B", "C"}, false)
	// 60 km/h is 1000 m per minute
	g := BuildTransitGraph(cat, RoutingSettings{BusWaitTime: 0, BusVelocity: 60})

	// expanded route A B C B A has 10 position pairs, each mirrored
	if g.EdgeCount() != 3+20 {
		t.Errorf("edge count = %v; want 23", g.EdgeCount())
	}

	a, b, c := int32(0), int32(1), int32(2)
	cases := []struct {
		from, to int32
		span     int32
		weight   float64
	}{
		{a, b, 1, 1.0},
		{b, c, 1, 2.0},
		{a, c, 2, 3.0},
		// mirrored edges of the pairs above use the reverse distances
		{b, a, 1, 0.9},
		{c, b, 1, 1.5},
		{c, a, 2, 2.4},
	}
	for _, cs := range cases {
		e, ok := findEdge(g, DepartureVertex(cs.from), ArrivalVertex(cs.to), "2", cs.span)
		if !ok {
			t.Errorf("edge %v -> %v span %v not found", cs.from, cs.to, cs.span)
			continue
		}
		if math.Abs(e.Weight-cs.weight) > 1e-9 {
			t.Errorf("edge %v -> %v span %v weight = %v; want %v", cs.from, cs.to, cs.span, e.Weight, cs.weight)
		}
	}
}

func TestForAdjacentEdges(t *testing.T) {
	g := NewDirectedWeightedGraph(3)
	g.AddEdge(Edge{From: 0, To: 1, Weight: 1})
	g.AddEdge(Edge{From: 0, To: 2, Weight: 2})
	g.AddEdge(Edge{From: 1, To: 2, Weight: 3})

	others := []int32{}
	g.ForAdjacentEdges(0, func(ref EdgeRef) {
		others = append(others, ref.OtherID)
	})
	if len(others) != 2 || others[0] != 1 || others[1] != 2 {
		t.Errorf("adjacent of 0 = %v; want [1 2]", others)
	}
	count := 0
	g.ForAdjacentEdges(2, func(ref EdgeRef) { count++ })
	if count != 0 {
		t.Errorf("vertex 2 should have no outgoing edges")
	}
}

func TestAddEdgeOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for edge out of range")
		}
	}()
	g := NewDirectedWeightedGraph(2)
	g.AddEdge(Edge{From: 0, To: 2})
}

func TestRoutingSettings(t *testing.T) {
	if err := (RoutingSettings{BusWaitTime: 6, BusVelocity: 40}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (RoutingSettings{BusWaitTime: -1, BusVelocity: 40}).Validate(); err == nil {
		t.Errorf("negative wait time should be rejected")
	}
	if err := (RoutingSettings{BusWaitTime: 1, BusVelocity: 0}).Validate(); err == nil {
		t.Errorf("zero velocity should be rejected")
	}
	if tt := (RoutingSettings{BusVelocity: 30}).TravelTime(1000); math.Abs(tt-2) > 1e-9 {
		t.Errorf("travel time = %v; want 2", tt)
	}
}
