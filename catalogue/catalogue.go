package catalogue

import (
	"errors"
	"fmt"

	"github.com/ttpr0/go-transit/geo"
	. "github.com/ttpr0/go-transit/util"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

var (
	ErrFrozen      = errors.New("catalogue is frozen")
	ErrUnknownStop = errors.New("unknown stop")
)

//*******************************************
// transport catalogue
//*******************************************

// Owns stops, buses and directed road distances.
//
// Writes are not synchronized. All ingestion has to be done before the catalogue is
// queried, Freeze marks that point and rejects every later write.
type TransportCatalogue struct {
	stops      List[Stop]
	stop_ids   Dict[string, int32]
	buses      List[Bus]
	bus_ids    Dict[string, int32]
	stop_buses List[Dict[string, struct{}]]
	distances  Dict[_StopPair, int]
	frozen     bool
}

func NewTransportCatalogue() *TransportCatalogue {
	return &TransportCatalogue{
		stops:      NewList[Stop](100),
		stop_ids:   NewDict[string, int32](100),
		buses:      NewList[Bus](10),
		bus_ids:    NewDict[string, int32](10),
		stop_buses: NewList[Dict[string, struct{}]](100),
		distances:  NewDict[_StopPair, int](100),
	}
}

// Adds a stop. A name that is already present keeps its id and gets the new coordinates.
func (self *TransportCatalogue) AddStop(name string, coord geo.Coord) error {
	if self.frozen {
		slog.Error(fmt.Sprintf("failed to add stop %v: catalogue is frozen", name))
		return ErrFrozen
	}
	if id, ok := self.stop_ids[name]; ok {
		slog.Warn(fmt.Sprintf("stop %v added twice, overwriting coordinates", name))
		stop := self.stops[id]
		stop.Coord = coord
		self.stops[id] = stop
		return nil
	}
	id := int32(self.stops.Length())
	self.stops.Add(Stop{ID: id, Name: name, Coord: coord})
	self.stop_buses.Add(NewDict[string, struct{}](4))
	self.stop_ids[name] = id
	return nil
}

// Adds a bus over the named stops. Names that are not in the catalogue are skipped.
// Routes that are not round trips are stored expanded to the back-and-forth sequence.
func (self *TransportCatalogue) AddBus(name string, stop_names []string, is_roundtrip bool) error {
	if self.frozen {
		slog.Error(fmt.Sprintf("failed to add bus %v: catalogue is frozen", name))
		return ErrFrozen
	}
	stops := make([]int32, 0, len(stop_names)*2)
	for _, stop_name := range stop_names {
		id, ok := self.stop_ids[stop_name]
		if !ok {
			slog.Warn(fmt.Sprintf("bus %v: skipping unknown stop %v", name, stop_name))
			continue
		}
		stops = append(stops, id)
	}
	if !is_roundtrip {
		for i := len(stops) - 2; i >= 0; i-- {
			stops = append(stops, stops[i])
		}
	}

	if id, ok := self.bus_ids[name]; ok {
		slog.Warn(fmt.Sprintf("bus %v added twice, replacing route", name))
		for _, stop := range self.buses[id].Stops {
			self.stop_buses[stop].Delete(name)
		}
		self.buses[id] = Bus{ID: id, Name: name, Stops: stops, IsRoundtrip: is_roundtrip}
	} else {
		id := int32(self.buses.Length())
		self.buses.Add(Bus{ID: id, Name: name, Stops: stops, IsRoundtrip: is_roundtrip})
		self.bus_ids[name] = id
	}
	for _, stop := range stops {
		self.stop_buses[stop].Set(name, struct{}{})
	}
	return nil
}

// Stores the road distance in meters driven from one stop to another.
func (self *TransportCatalogue) AddDistance(from, to string, meters int) error {
	if self.frozen {
		slog.Error(fmt.Sprintf("failed to add distance %v -> %v: catalogue is frozen", from, to))
		return ErrFrozen
	}
	from_id, ok := self.stop_ids[from]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownStop, from)
	}
	to_id, ok := self.stop_ids[to]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownStop, to)
	}
	self.distances[_StopPair{from_id, to_id}] = meters
	return nil
}

// Ends the ingestion phase.
func (self *TransportCatalogue) Freeze() {
	self.frozen = true
}
func (self *TransportCatalogue) IsFrozen() bool {
	return self.frozen
}

//*******************************************
// lookups
//*******************************************

func (self *TransportCatalogue) FindStop(name string) Optional[Stop] {
	id, ok := self.stop_ids[name]
	if !ok {
		return None[Stop]()
	}
	return Some(self.stops[id])
}
func (self *TransportCatalogue) FindBus(name string) Optional[Bus] {
	id, ok := self.bus_ids[name]
	if !ok {
		return None[Bus]()
	}
	return Some(self.buses[id])
}
func (self *TransportCatalogue) GetStop(id int32) Stop {
	return self.stops[id]
}
func (self *TransportCatalogue) GetBus(id int32) Bus {
	return self.buses[id]
}
func (self *TransportCatalogue) StopCount() int {
	return self.stops.Length()
}
func (self *TransportCatalogue) BusCount() int {
	return self.buses.Length()
}

// Returns all stops in insertion order.
func (self *TransportCatalogue) GetAllStops() []Stop {
	return slices.Clone(self.stops)
}

// Returns all buses sorted by name.
func (self *TransportCatalogue) GetAllBuses() []Bus {
	buses := slices.Clone(self.buses)
	slices.SortFunc(buses, func(a, b Bus) int {
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})
	return buses
}

// Returns the sorted names of the buses serving a stop.
//
// The result is empty (but present) for a stop no bus passes.
func (self *TransportCatalogue) GetBusesByStop(name string) Optional[[]string] {
	id, ok := self.stop_ids[name]
	if !ok {
		return None[[]string]()
	}
	buses := maps.Keys(self.stop_buses[id])
	slices.Sort(buses)
	return Some(buses)
}

func (self *TransportCatalogue) GetBusInfo(name string) Optional[BusInfo] {
	id, ok := self.bus_ids[name]
	if !ok {
		return None[BusInfo]()
	}
	bus := self.buses[id]

	unique := NewDict[int32, struct{}](len(bus.Stops))
	for _, stop := range bus.Stops {
		unique.Set(stop, struct{}{})
	}
	route_length := self.CalculateFullRouteLength(bus)
	geo_length := 0.0
	for i := 1; i < len(bus.Stops); i++ {
		geo_length += geo.ComputeDistance(self.stops[bus.Stops[i-1]].Coord, self.stops[bus.Stops[i]].Coord)
	}
	// a route collapsing to a single point has no defined curvature
	curvature := 0.0
	if geo_length > 0 {
		curvature = float64(route_length) / geo_length
	}
	return Some(BusInfo{
		TotalStops:  len(bus.Stops),
		UniqueStops: unique.Length(),
		RouteLength: route_length,
		Curvature:   curvature,
	})
}

//*******************************************
// distances
//*******************************************

// Road length along the stored stop sequence of a bus.
func (self *TransportCatalogue) CalculateFullRouteLength(bus Bus) int {
	length := 0
	for i := 1; i < len(bus.Stops); i++ {
		length += self.GetDistance(bus.Stops[i-1], bus.Stops[i])
	}
	return length
}

// Directed distance between two stop ids. Falls back to the reverse direction and
// then to zero when nothing was declared.
func (self *TransportCatalogue) GetDistance(from, to int32) int {
	if d, ok := self.distances[_StopPair{from, to}]; ok {
		return d
	}
	if d, ok := self.distances[_StopPair{to, from}]; ok {
		return d
	}
	return 0
}

func (self *TransportCatalogue) RouteLengthBetweenTwoStops(from, to string) int {
	from_id, ok := self.stop_ids[from]
	if !ok {
		return 0
	}
	to_id, ok := self.stop_ids[to]
	if !ok {
		return 0
	}
	return self.GetDistance(from_id, to_id)
}
