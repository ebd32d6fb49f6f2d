package main

import (
	"github.com/ttpr0/go-transit/catalogue"
	"github.com/ttpr0/go-transit/graph"
	"github.com/ttpr0/go-transit/transit"
)

type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

func NewErrorResponse(request string, error any) ErrorResponse {
	return ErrorResponse{
		Request: request,
		Error:   error,
	}
}

//**********************************************************
// stat responses
//**********************************************************

type StatErrorResponse struct {
	RequestID    int    `json:"request_id"`
	ErrorMessage string `json:"error_message"`
}

func NewNotFoundResponse(id int) StatErrorResponse {
	return StatErrorResponse{RequestID: id, ErrorMessage: "not found"}
}

type StopResponse struct {
	RequestID int      `json:"request_id"`
	Buses     []string `json:"buses"`
}

type BusResponse struct {
	RequestID       int     `json:"request_id"`
	Curvature       float64 `json:"curvature"`
	RouteLength     int     `json:"route_length"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
}

func NewBusResponse(id int, info catalogue.BusInfo) BusResponse {
	return BusResponse{
		RequestID:       id,
		Curvature:       info.Curvature,
		RouteLength:     info.RouteLength,
		StopCount:       info.TotalStops,
		UniqueStopCount: info.UniqueStops,
	}
}

type RouteItemResponse struct {
	Type      string  `json:"type"`
	StopName  string  `json:"stop_name,omitempty"`
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	Time      float64 `json:"time"`
}

type RouteResponse struct {
	RequestID int                 `json:"request_id"`
	TotalTime float64             `json:"total_time"`
	Items     []RouteItemResponse `json:"items"`
}

func NewRouteResponse(id int, result transit.RouteResult) RouteResponse {
	items := make([]RouteItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		resp := RouteItemResponse{
			Type: item.Type.String(),
			Time: item.Time,
		}
		if item.Type == graph.WAIT_EDGE {
			resp.StopName = item.Name
		} else {
			resp.Bus = item.Name
			resp.SpanCount = item.SpanCount
		}
		items = append(items, resp)
	}
	return RouteResponse{
		RequestID: id,
		TotalTime: result.TotalTime,
		Items:     items,
	}
}

type ReachableStopResponse struct {
	StopName string  `json:"stop_name"`
	Time     float64 `json:"time"`
}

type ReachableResponse struct {
	From  string                  `json:"from"`
	Stops []ReachableStopResponse `json:"stops"`
}

func NewReachableResponse(from string, stops []transit.ReachableStop) ReachableResponse {
	items := make([]ReachableStopResponse, 0, len(stops))
	for _, stop := range stops {
		items = append(items, ReachableStopResponse{StopName: stop.Name, Time: stop.Time})
	}
	return ReachableResponse{From: from, Stops: items}
}

//**********************************************************
// service responses
//**********************************************************

type HealthResponse struct {
	Status  string `json:"status"`
	Router  string `json:"router"`
	BuildID string `json:"build_id,omitempty"`
	Source  string `json:"source"`
	Stops   int    `json:"stops"`
	Buses   int    `json:"buses"`
}

type SettingsResponse struct {
	Settings graph.RoutingSettings `json:"routing_settings"`
	Router   string                `json:"router"`
}
