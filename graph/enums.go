package graph

//*******************************************
// enums
//*******************************************

type EdgeType byte

const (
	WAIT_EDGE EdgeType = 0
	RIDE_EDGE EdgeType = 1
)

func (self EdgeType) String() string {
	switch self {
	case WAIT_EDGE:
		return "Wait"
	case RIDE_EDGE:
		return "Bus"
	default:
		panic("unknown edge type")
	}
}
