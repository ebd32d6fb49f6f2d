package geo

import (
	"math"

	"github.com/paulmach/orb"
	orb_geo "github.com/paulmach/orb/geo"
)

// Geographic coordinates in degrees.
type Coord struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

func (self Coord) Point() orb.Point {
	return orb.Point{self.Lon, self.Lat}
}

func (self Coord) IsValid() bool {
	if math.IsNaN(self.Lat) || math.IsNaN(self.Lon) {
		return false
	}
	return self.Lat >= -90 && self.Lat <= 90 && self.Lon >= -180 && self.Lon <= 180
}

// Great-circle distance in meters.
func ComputeDistance(from, to Coord) float64 {
	if from == to {
		return 0
	}
	return orb_geo.DistanceHaversine(from.Point(), to.Point())
}
