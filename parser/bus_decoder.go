package parser

import (
	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// osm decoder
//*******************************************

type IOSMDecoder interface {
	IsValidStop(tags Dict[string, string]) bool
	IsValidRoute(tags Dict[string, string]) bool
	DecodeRouteName(tags Dict[string, string]) string
	IsRoundtrip(tags Dict[string, string]) bool
	IsStopMember(role string) bool
}

type BusDecoder struct {
}

var stop_types = Dict[string, bool]{"stop_position": true, "platform": true, "station": true}

func (self *BusDecoder) IsValidStop(tags Dict[string, string]) bool {
	if tags.Get("name") == "" {
		return false
	}
	if tags.Get("highway") == "bus_stop" {
		return true
	}
	return stop_types.ContainsKey(tags.Get("public_transport"))
}
func (self *BusDecoder) IsValidRoute(tags Dict[string, string]) bool {
	if tags.Get("type") != "route" {
		return false
	}
	route := tags.Get("route")
	return route == "bus" || route == "trolleybus"
}
func (self *BusDecoder) DecodeRouteName(tags Dict[string, string]) string {
	if ref := tags.Get("ref"); ref != "" {
		return ref
	}
	return tags.Get("name")
}
func (self *BusDecoder) IsRoundtrip(tags Dict[string, string]) bool {
	return tags.Get("roundtrip") == "yes"
}
func (self *BusDecoder) IsStopMember(role string) bool {
	switch role {
	case "stop", "stop_entry_only", "stop_exit_only", "platform", "platform_entry_only", "platform_exit_only":
		return true
	default:
		return false
	}
}
