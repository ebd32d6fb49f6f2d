package graph

import (
	"fmt"

	"github.com/ttpr0/go-transit/catalogue"
	. "github.com/ttpr0/go-transit/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// build transit-graph
//*******************************************

// Derives the routing graph from a catalogue that is no longer written to.
//
// For every bus and every pair of positions i < j on its stored route a ride edge
// is added, so the edge count grows quadratically with the route length.
func BuildTransitGraph(cat *catalogue.TransportCatalogue, settings RoutingSettings) *TransitGraph {
	stops := cat.GetAllStops()
	g := NewDirectedWeightedGraph(2 * len(stops))
	stop_vertices := NewDict[string, int32](len(stops))

	for _, stop := range stops {
		stop_vertices[stop.Name] = ArrivalVertex(stop.ID)
		g.AddEdge(Edge{
			From:      ArrivalVertex(stop.ID),
			To:        DepartureVertex(stop.ID),
			Weight:    float64(settings.BusWaitTime),
			Name:      stop.Name,
			SpanCount: 0,
		})
	}

	for _, bus := range cat.GetAllBuses() {
		_AddBusEdges(g, cat, bus, settings)
	}

	slog.Debug(fmt.Sprintf("built transit graph with %v vertices and %v edges", g.VertexCount(), g.EdgeCount()))
	return &TransitGraph{
		DirectedWeightedGraph: g,
		settings:              settings,
		stop_vertices:         stop_vertices,
	}
}

func _AddBusEdges(g *DirectedWeightedGraph, cat *catalogue.TransportCatalogue, bus catalogue.Bus, settings RoutingSettings) {
	stops := bus.Stops
	for i := 0; i+1 < len(stops); i++ {
		forward := 0
		backward := 0
		for j := i + 1; j < len(stops); j++ {
			forward += cat.GetDistance(stops[j-1], stops[j])
			backward += cat.GetDistance(stops[j], stops[j-1])
			span := int32(j - i)

			g.AddEdge(Edge{
				From:      DepartureVertex(stops[i]),
				To:        ArrivalVertex(stops[j]),
				Weight:    settings.TravelTime(forward),
				Name:      bus.Name,
				SpanCount: span,
			})
			if !bus.IsRoundtrip {
				g.AddEdge(Edge{
					From:      DepartureVertex(stops[j]),
					To:        ArrivalVertex(stops[i]),
					Weight:    settings.TravelTime(backward),
					Name:      bus.Name,
					SpanCount: span,
				})
			}
		}
	}
}
