package transit

import (
	"github.com/ttpr0/go-transit/graph"
)

//*******************************************
// route result
//*******************************************

type RouteItem struct {
	Type graph.EdgeType
	// stop name for WAIT items, bus name for BUS items
	Name      string
	Time      float64
	SpanCount int
}

type RouteResult struct {
	TotalTime float64
	Items     []RouteItem
}

// A stop reachable from the query stop and the minutes needed to arrive there.
type ReachableStop struct {
	Name string
	Time float64
}

//*******************************************
// router state
//*******************************************

type RouterState byte

const (
	STALE RouterState = 0
	READY RouterState = 1
)

func (self RouterState) String() string {
	switch self {
	case STALE:
		return "stale"
	case READY:
		return "ready"
	default:
		panic("unknown router state")
	}
}
