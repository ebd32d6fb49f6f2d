package transit

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/ttpr0/go-transit/catalogue"
	"github.com/ttpr0/go-transit/graph"
	"github.com/ttpr0/go-transit/routing"
	. "github.com/ttpr0/go-transit/util"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

//*******************************************
// transit router
//*******************************************

// Answers itinerary queries over a catalogue.
//
// The graph and the shortest path index are built on the first query after
// creation or after the settings changed (STALE -> READY). Queries may run
// concurrently, rebuilds take the write lock.
type TransitRouter struct {
	mu        sync.RWMutex
	catalogue *catalogue.TransportCatalogue
	settings  RoutingSettings

	state    RouterState
	graph    *graph.TransitGraph
	index    *routing.ShortestPathIndex
	build_id string
}

type RoutingSettings = graph.RoutingSettings

func NewTransitRouter(cat *catalogue.TransportCatalogue, settings RoutingSettings) *TransitRouter {
	return &TransitRouter{
		catalogue: cat,
		settings:  settings,
		state:     STALE,
	}
}

func (self *TransitRouter) State() RouterState {
	self.mu.RLock()
	defer self.mu.RUnlock()
	return self.state
}

func (self *TransitRouter) Settings() RoutingSettings {
	self.mu.RLock()
	defer self.mu.RUnlock()
	return self.settings
}

// Id of the current graph build, empty while the router is stale.
func (self *TransitRouter) BuildID() string {
	self.mu.RLock()
	defer self.mu.RUnlock()
	return self.build_id
}

// Replaces the routing settings and drops the current graph.
func (self *TransitRouter) SetSettings(settings RoutingSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	self.mu.Lock()
	defer self.mu.Unlock()
	self.settings = settings
	self._Invalidate()
	return nil
}

// Drops the current graph, the next query rebuilds it.
func (self *TransitRouter) Invalidate() {
	self.mu.Lock()
	defer self.mu.Unlock()
	self._Invalidate()
}

func (self *TransitRouter) _Invalidate() {
	if self.state == READY {
		slog.Info(fmt.Sprintf("invalidating transit graph %v", self.build_id))
	}
	self.state = STALE
	self.graph = nil
	self.index = nil
	self.build_id = ""
}

// Builds the graph if needed and returns the graph and index to query.
func (self *TransitRouter) _Prepare() (*graph.TransitGraph, *routing.ShortestPathIndex) {
	self.mu.RLock()
	if self.state == READY {
		g, index := self.graph, self.index
		self.mu.RUnlock()
		return g, index
	}
	self.mu.RUnlock()

	self.mu.Lock()
	defer self.mu.Unlock()
	if self.state != READY {
		if !self.catalogue.IsFrozen() {
			self.catalogue.Freeze()
		}
		self.build_id = uuid.New().String()
		slog.Info(fmt.Sprintf("building transit graph %v (wait %v min, velocity %v km/h)", self.build_id, self.settings.BusWaitTime, self.settings.BusVelocity))
		self.graph = graph.BuildTransitGraph(self.catalogue, self.settings)
		self.index = routing.NewShortestPathIndex(self.graph)
		self.state = READY
	}
	return self.graph, self.index
}

// Computes the fastest itinerary between two stops.
//
// The search starts at the arrival vertex of from, so every itinerary begins with
// the wait at the first stop. Unknown stops and unreachable targets give an empty optional.
func (self *TransitRouter) FindRoute(from, to string) Optional[RouteResult] {
	g, index := self._Prepare()

	from_vertex := g.GetStopVertex(from)
	to_vertex := g.GetStopVertex(to)
	if !from_vertex.HasValue() || !to_vertex.HasValue() {
		return None[RouteResult]()
	}

	route := index.BuildRoute(from_vertex.Value, to_vertex.Value)
	if !route.HasValue() {
		slog.Debug(fmt.Sprintf("no route from %v to %v", from, to))
		return None[RouteResult]()
	}

	items := make([]RouteItem, 0, len(route.Value.Edges))
	for _, edge_id := range route.Value.Edges {
		edge := g.GetEdge(edge_id)
		items = append(items, RouteItem{
			Type:      edge.Type(),
			Name:      edge.Name,
			Time:      edge.Weight,
			SpanCount: int(edge.SpanCount),
		})
	}
	return Some(RouteResult{
		TotalTime: route.Value.Weight,
		Items:     items,
	})
}

// Lists the stops whose arrival is at most max_time minutes away from from,
// ordered by time. Includes from itself with time 0.
func (self *TransitRouter) FindReachableStops(from string, max_time float64) Optional[[]ReachableStop] {
	g, index := self._Prepare()

	from_vertex := g.GetStopVertex(from)
	if !from_vertex.HasValue() {
		return None[[]ReachableStop]()
	}
	tree := index.BuildRoutesFrom(from_vertex.Value)
	if !tree.HasValue() {
		return None[[]ReachableStop]()
	}

	stops := make([]ReachableStop, 0, 10)
	for _, stop := range self.catalogue.GetAllStops() {
		time := tree.Value.GetPathLength(graph.ArrivalVertex(stop.ID))
		if time > max_time {
			continue
		}
		stops = append(stops, ReachableStop{Name: stop.Name, Time: time})
	}
	slices.SortStableFunc(stops, func(a, b ReachableStop) int {
		if a.Time < b.Time {
			return -1
		}
		if a.Time > b.Time {
			return 1
		}
		return 0
	})
	return Some(stops)
}
