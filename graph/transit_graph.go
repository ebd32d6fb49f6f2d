package graph

import (
	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// transit-graph
//******************************************

// Graph derived from a catalogue. Every stop owns an arrival vertex (2*stop)
// and a departure vertex (2*stop+1).
type TransitGraph struct {
	*DirectedWeightedGraph

	settings      RoutingSettings
	stop_vertices Dict[string, int32]
}

func (self *TransitGraph) Settings() RoutingSettings {
	return self.settings
}
func (self *TransitGraph) StopCount() int {
	return self.stop_vertices.Length()
}

// Returns the arrival vertex of the named stop.
func (self *TransitGraph) GetStopVertex(name string) Optional[int32] {
	return self.stop_vertices.TryGet(name)
}

func ArrivalVertex(stop int32) int32 {
	return 2 * stop
}
func DepartureVertex(stop int32) int32 {
	return 2*stop + 1
}
