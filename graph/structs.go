package graph

//*******************************************
// graph structs
//*******************************************

// Directed weighted edge. Name is the stop name for wait edges and the bus
// name for ride edges, SpanCount is the number of stops a ride passes.
type Edge struct {
	From      int32
	To        int32
	Weight    float64
	Name      string
	SpanCount int32
}

func (self Edge) Type() EdgeType {
	if self.SpanCount == 0 {
		return WAIT_EDGE
	}
	return RIDE_EDGE
}

//*******************************************
// edgeref struct
//*******************************************

type EdgeRef struct {
	EdgeID  int32
	OtherID int32
}
