package catalogue

import (
	"github.com/ttpr0/go-transit/geo"
)

//*******************************************
// catalogue structs
//*******************************************

type Stop struct {
	ID    int32
	Name  string
	Coord geo.Coord
}

// Stops holds stop ids into the catalogue. Routes that are not round trips are
// stored expanded, [A,B,C] becomes [A,B,C,B,A].
type Bus struct {
	ID          int32
	Name        string
	Stops       []int32
	IsRoundtrip bool
}

// Terminal stops of the declared route, [A] for round trips and [A,C] for A-B-C.
func (self Bus) Terminals() []int32 {
	if len(self.Stops) == 0 {
		return nil
	}
	first := self.Stops[0]
	if self.IsRoundtrip {
		return []int32{first}
	}
	last := self.Stops[len(self.Stops)/2]
	if last == first {
		return []int32{first}
	}
	return []int32{first, last}
}

type BusInfo struct {
	TotalStops  int
	UniqueStops int
	RouteLength int
	Curvature   float64
}

type _StopPair struct {
	From int32
	To   int32
}
