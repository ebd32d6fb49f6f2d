package main

import (
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"golang.org/x/exp/slog"
)

//**********************************************************
// router setup
//**********************************************************

func NewAPIRouter(allowed_origins []string) chi.Router {
	app := chi.NewRouter()
	app.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowed_origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	MapGet(app, "/health", HandleHealthRequest)
	MapGet(app, "/v0/bus", HandleBusRequest)
	MapGet(app, "/v0/stop", HandleStopRequest)
	MapGet(app, "/v0/route", HandleRouteRequest)
	MapGet(app, "/v0/reachable", HandleReachableRequest)
	MapPost(app, "/v0/settings", HandleSettingsRequest)
	MapPost(app, "/v0/stats", HandleStatsRequest)
	return app
}

//**********************************************************
// query handlers
//**********************************************************

func HandleBusRequest(req BusRequest) Result {
	if req.Name == "" {
		return BadRequest("missing bus name")
	}
	info := MANAGER.GetCatalogue().GetBusInfo(req.Name)
	if !info.HasValue() {
		return NotFound("bus not found")
	}
	return OK(NewBusResponse(0, info.Value))
}

func HandleStopRequest(req StopRequest) Result {
	if req.Name == "" {
		return BadRequest("missing stop name")
	}
	buses := MANAGER.GetCatalogue().GetBusesByStop(req.Name)
	if !buses.HasValue() {
		return NotFound("stop not found")
	}
	return OK(StopResponse{Buses: buses.Value})
}

func HandleRouteRequest(req RouteRequest) Result {
	if req.From == "" || req.To == "" {
		return BadRequest("missing from or to stop")
	}
	slog.Debug(fmt.Sprintf("Start calculating route between %v and %v", req.From, req.To))
	result := MANAGER.GetRouter().FindRoute(req.From, req.To)
	if !result.HasValue() {
		return NotFound("route not found")
	}
	return OK(NewRouteResponse(0, result.Value))
}

func HandleReachableRequest(req ReachableRequest) Result {
	if req.From == "" {
		return BadRequest("missing from stop")
	}
	if !(req.MaxTime >= 0) {
		return BadRequest("max_time must not be negative")
	}
	stops := MANAGER.GetRouter().FindReachableStops(req.From, req.MaxTime)
	if !stops.HasValue() {
		return NotFound("stop not found")
	}
	return OK(NewReachableResponse(req.From, stops.Value))
}

func HandleStatsRequest(req StatsRequest) Result {
	return OK(ProcessStatRequests(MANAGER.GetCatalogue(), MANAGER.GetRouter(), req.StatRequests))
}

//**********************************************************
// service handlers
//**********************************************************

func HandleSettingsRequest(req SettingsRequest) Result {
	router := MANAGER.GetRouter()
	settings := router.Settings()
	if req.BusWaitTime != nil {
		settings.BusWaitTime = *req.BusWaitTime
	}
	if req.BusVelocity != nil {
		settings.BusVelocity = *req.BusVelocity
	}
	if err := router.SetSettings(settings); err != nil {
		return BadRequest(err.Error())
	}
	return OK(SettingsResponse{
		Settings: router.Settings(),
		Router:   router.State().String(),
	})
}

func HandleHealthRequest(req none) Result {
	router := MANAGER.GetRouter()
	cat := MANAGER.GetCatalogue()
	return OK(HealthResponse{
		Status:  "ok",
		Router:  router.State().String(),
		BuildID: router.BuildID(),
		Source:  MANAGER._GetServiceConfig().Source.Type.String(),
		Stops:   cat.StopCount(),
		Buses:   cat.BusCount(),
	})
}
