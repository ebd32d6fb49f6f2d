package catalogue

import (
	"errors"
	"math"
	"testing"

	"github.com/ttpr0/go-transit/geo"
)

func buildTestCatalogue() *TransportCatalogue {
	cat := NewTransportCatalogue()
	cat.AddStop("A", geo.Coord{Lat: 0, Lon: 0})
	cat.AddStop("B", geo.Coord{Lat: 0, Lon: 0.01})
	cat.AddStop("C", geo.Coord{Lat: 0, Lon: 0.02})
	cat.AddStop("D", geo.Coord{Lat: 1, Lon: 1})
	cat.AddDistance("A", "B", 1000)
	cat.AddDistance("B", "C", 2000)
	cat.AddDistance("C", "B", 1500)
	cat.AddDistance("B", "A", 900)
	return cat
}

func stopNames(cat *TransportCatalogue, bus Bus) []string {
	names := make([]string, len(bus.Stops))
	for i, id := range bus.Stops {
		names[i] = cat.GetStop(id).Name
	}
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAddBusExpandsLinearRoute(t *testing.T) {
	cat := buildTestCatalogue()
	cat.AddBus("2", []string{"A", "B", "C"}, false)

	bus := cat.FindBus("2")
	if !bus.HasValue() {
		t.Fatalf("bus 2 not found")
	}
	names := stopNames(cat, bus.Value)
	if !equalStrings(names, []string{"A", "B", "C", "B", "A"}) {
		t.Errorf("stops = %v; want [A B C B A]", names)
	}
	info := cat.GetBusInfo("2")
	if !info.HasValue() {
		t.Fatalf("bus info not found")
	}
	if info.Value.TotalStops != 5 || info.Value.UniqueStops != 3 {
		t.Errorf("info = %+v; want 5 total and 3 unique stops", info.Value)
	}
	if info.Value.RouteLength != 1000+2000+1500+900 {
		t.Errorf("route length = %v; want 5400", info.Value.RouteLength)
	}
}

func TestAddBusRoundtrip(t *testing.T) {
	cat := buildTestCatalogue()
	cat.AddBus("1", []string{"A", "B", "C", "A"}, true)

	names := stopNames(cat, cat.FindBus("1").Value)
	if !equalStrings(names, []string{"A", "B", "C", "A"}) {
		t.Errorf("stops = %v; want [A B C A]", names)
	}
	info := cat.GetBusInfo("1").Value
	if info.TotalStops != 4 || info.UniqueStops != 3 {
		t.Errorf("info = %+v", info)
	}
	// A->B 1000, B->C 2000, C->A undeclared in both directions
	if info.RouteLength != 3000 {
		t.Errorf("route length = %v; want 3000", info.RouteLength)
	}
	geo_length := geo.ComputeDistance(geo.Coord{Lat: 0, Lon: 0}, geo.Coord{Lat: 0, Lon: 0.01}) * 4
	if math.Abs(info.Curvature-3000/geo_length) > 1e-9 {
		t.Errorf("curvature = %v; want %v", info.Curvature, 3000/geo_length)
	}
}

func TestAddBusSkipsUnknownStops(t *testing.T) {
	cat := buildTestCatalogue()
	if err := cat.AddBus("3", []string{"A", "X", "B"}, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	names := stopNames(cat, cat.FindBus("3").Value)
	if !equalStrings(names, []string{"A", "B"}) {
		t.Errorf("stops = %v; want [A B]", names)
	}
}

func TestRouteLengthFallback(t *testing.T) {
	cat := NewTransportCatalogue()
	cat.AddStop("A", geo.Coord{Lat: 0, Lon: 0})
	cat.AddStop("B", geo.Coord{Lat: 0, Lon: 0.01})
	cat.AddStop("C", geo.Coord{Lat: 0, Lon: 0.02})
	cat.AddDistance("A", "B", 1000)

	cases := []struct {
		from, to string
		want     int
	}{
		{"A", "B", 1000},
		{"B", "A", 1000},
		{"A", "C", 0},
		{"C", "A", 0},
		{"A", "Z", 0},
	}
	for _, c := range cases {
		if got := cat.RouteLengthBetweenTwoStops(c.from, c.to); got != c.want {
			t.Errorf("RouteLengthBetweenTwoStops(%v, %v) = %v; want %v", c.from, c.to, got, c.want)
		}
	}

	cat.AddDistance("B", "A", 700)
	if got := cat.RouteLengthBetweenTwoStops("B", "A"); got != 700 {
		t.Errorf("declared reverse distance = %v; want 700", got)
	}
	cat.AddDistance("A", "B", 1200)
	if got := cat.RouteLengthBetweenTwoStops("A", "B"); got != 1200 {
		t.Errorf("overwritten distance = %v; want 1200", got)
	}
}

func TestAddDistanceUnknownStop(t *testing.T) {
	cat := buildTestCatalogue()
	err := cat.AddDistance("A", "Z", 10)
	if !errors.Is(err, ErrUnknownStop) {
		t.Errorf("err = %v; want ErrUnknownStop", err)
	}
}

func TestGetBusesByStop(t *testing.T) {
	cat := buildTestCatalogue()
	cat.AddBus("750", []string{"A", "B"}, false)
	cat.AddBus("256", []string{"B", "C", "B"}, true)
	cat.AddBus("828", []string{"B"}, true)

	buses := cat.GetBusesByStop("B")
	if !buses.HasValue() || !equalStrings(buses.Value, []string{"256", "750", "828"}) {
		t.Errorf("buses for B = %+v; want [256 750 828]", buses)
	}
	buses = cat.GetBusesByStop("D")
	if !buses.HasValue() || len(buses.Value) != 0 {
		t.Errorf("buses for D = %+v; want empty result", buses)
	}
	if cat.GetBusesByStop("Z").HasValue() {
		t.Errorf("unknown stop should not be found")
	}
}

func TestReplaceBus(t *testing.T) {
	cat := buildTestCatalogue()
	cat.AddBus("1", []string{"A", "B"}, true)
	cat.AddBus("1", []string{"C", "D"}, true)

	if buses := cat.GetBusesByStop("A").Value; len(buses) != 0 {
		t.Errorf("buses for A = %v; want none", buses)
	}
	if buses := cat.GetBusesByStop("D").Value; !equalStrings(buses, []string{"1"}) {
		t.Errorf("buses for D = %v; want [1]", buses)
	}
	if cat.BusCount() != 1 {
		t.Errorf("bus count = %v; want 1", cat.BusCount())
	}
}

func TestAddStopTwiceKeepsID(t *testing.T) {
	cat := buildTestCatalogue()
	before := cat.FindStop("B").Value
	cat.AddStop("B", geo.Coord{Lat: 5, Lon: 5})
	after := cat.FindStop("B").Value
	if before.ID != after.ID {
		t.Errorf("id changed from %v to %v", before.ID, after.ID)
	}
	if after.Coord != (geo.Coord{Lat: 5, Lon: 5}) {
		t.Errorf("coord = %+v; want {5 5}", after.Coord)
	}
	if cat.StopCount() != 4 {
		t.Errorf("stop count = %v; want 4", cat.StopCount())
	}
}

func TestBusInfoDegenerate(t *testing.T) {
	cat := buildTestCatalogue()
	cat.AddBus("loop", []string{"A", "A"}, true)
	cat.AddBus("empty", []string{"X", "Y"}, true)

	info := cat.GetBusInfo("loop").Value
	if info.TotalStops != 2 || info.UniqueStops != 1 || info.Curvature != 0 {
		t.Errorf("loop info = %+v", info)
	}
	info = cat.GetBusInfo("empty").Value
	if info.TotalStops != 0 || info.RouteLength != 0 || info.Curvature != 0 {
		t.Errorf("empty info = %+v", info)
	}
	if cat.GetBusInfo("none").HasValue() {
		t.Errorf("unknown bus should not be found")
	}
}

func TestBusInfoIdempotent(t *testing.T) {
	cat := buildTestCatalogue()
	cat.AddBus("2", []string{"A", "B", "C"}, false)
	first := cat.GetBusInfo("2")
	second := cat.GetBusInfo("2")
	if first != second {
		t.Errorf("GetBusInfo not idempotent: %+v != %+v", first, second)
	}
}

func TestFreeze(t *testing.T) {
	cat := buildTestCatalogue()
	cat.Freeze()
	if !cat.IsFrozen() {
		t.Fatalf("catalogue should be frozen")
	}
	if err := cat.AddStop("E", geo.Coord{}); !errors.Is(err, ErrFrozen) {
		t.Errorf("AddStop err = %v; want ErrFrozen", err)
	}
	if err := cat.AddBus("9", []string{"A"}, true); !errors.Is(err, ErrFrozen) {
		t.Errorf("AddBus err = %v; want ErrFrozen", err)
	}
	if err := cat.AddDistance("A", "B", 1); !errors.Is(err, ErrFrozen) {
		t.Errorf("AddDistance err = %v; want ErrFrozen", err)
	}
	if cat.FindStop("E").HasValue() {
		t.Errorf("stop E should not have been added")
	}
}

func TestTerminals(t *testing.T) {
	cat := buildTestCatalogue()
	cat.AddBus("lin", []string{"A", "B", "C"}, false)
	cat.AddBus("ring", []string{"A", "B", "A"}, true)

	a := cat.FindStop("A").Value.ID
	c := cat.FindStop("C").Value.ID
	if got := cat.FindBus("lin").Value.Terminals(); len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("linear terminals = %v; want [%v %v]", got, a, c)
	}
	if got := cat.FindBus("ring").Value.Terminals(); len(got) != 1 || got[0] != a {
		t.Errorf("ring terminals = %v; want [%v]", got, a)
	}
}

func TestGetAllBusesSorted(t *testing.T) {
	cat := buildTestCatalogue()
	cat.AddBus("b", []string{"A"}, true)
	cat.AddBus("a", []string{"A"}, true)
	cat.AddBus("c", []string{"A"}, true)
	buses := cat.GetAllBuses()
	if buses[0].Name != "a" || buses[1].Name != "b" || buses[2].Name != "c" {
		t.Errorf("buses not sorted: %v %v %v", buses[0].Name, buses[1].Name, buses[2].Name)
	}
}
