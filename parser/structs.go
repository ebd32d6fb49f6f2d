package parser

import (
	"github.com/ttpr0/go-transit/graph"
)

//*******************************************
// json request structs
//*******************************************

type Document struct {
	BaseRequests    []BaseRequest          `json:"base_requests"`
	RoutingSettings *graph.RoutingSettings `json:"routing_settings,omitempty"`
	StatRequests    []StatRequest          `json:"stat_requests"`
}

// Either a stop ("Stop") or a bus ("Bus") declaration.
type BaseRequest struct {
	Type string `json:"type"`
	Name string `json:"name"`

	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	RoadDistances map[string]int `json:"road_distances"`

	Stops       []string `json:"stops"`
	IsRoundtrip bool     `json:"is_roundtrip"`
}

type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

//*******************************************
// csv structs
//*******************************************

type CSVStop struct {
	Name string  `csv:"stop_name"`
	Lat  float64 `csv:"stop_lat"`
	Lon  float64 `csv:"stop_lon"`
}
