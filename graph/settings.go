package graph

import (
	"errors"
)

//*******************************************
// routing settings
//*******************************************

type RoutingSettings struct {
	// minutes spent at a stop before boarding
	BusWaitTime int `json:"bus_wait_time" yaml:"bus-wait-time" validate:"gte=0"`
	// km/h
	BusVelocity float64 `json:"bus_velocity" yaml:"bus-velocity" validate:"gt=0"`
}

func (self RoutingSettings) Validate() error {
	if self.BusWaitTime < 0 {
		return errors.New("bus wait time must not be negative")
	}
	if !(self.BusVelocity > 0) {
		return errors.New("bus velocity must be positive")
	}
	return nil
}

// Minutes needed to ride the given meters.
func (self RoutingSettings) TravelTime(meters int) float64 {
	return float64(meters) / (self.BusVelocity * 1000.0 / 60.0)
}
