package main

import (
	"github.com/ttpr0/go-transit/parser"
)

type BusRequest struct {
	Name string `json:"name"`
}

type StopRequest struct {
	Name string `json:"name"`
}

type RouteRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type ReachableRequest struct {
	From string `json:"from"`
	// minutes
	MaxTime float64 `json:"max_time"`
}

type SettingsRequest struct {
	// omitted values keep the current setting
	BusWaitTime *int     `json:"bus_wait_time"`
	BusVelocity *float64 `json:"bus_velocity"`
}

type StatsRequest struct {
	StatRequests []parser.StatRequest `json:"stat_requests"`
}
