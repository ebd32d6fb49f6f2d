package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ttpr0/go-transit/catalogue"
	"github.com/ttpr0/go-transit/graph"
	"github.com/ttpr0/go-transit/parser"
	"github.com/ttpr0/go-transit/transit"
	"golang.org/x/exp/slog"
)

//**********************************************************
// json stat requests
//**********************************************************

// Answers stat requests in order, one response per request.
func ProcessStatRequests(cat *catalogue.TransportCatalogue, router *transit.TransitRouter, requests []parser.StatRequest) []any {
	responses := make([]any, 0, len(requests))
	for _, request := range requests {
		switch request.Type {
		case "Stop":
			responses = append(responses, ProcessStopRequest(cat, request))
		case "Bus":
			responses = append(responses, ProcessBusRequest(cat, request))
		case "Route":
			responses = append(responses, ProcessRouteRequest(router, request))
		case "Map":
			responses = append(responses, StatErrorResponse{RequestID: request.ID, ErrorMessage: "not supported"})
		default:
			slog.Warn(fmt.Sprintf("unknown stat request type %v (id %v)", request.Type, request.ID))
			responses = append(responses, StatErrorResponse{RequestID: request.ID, ErrorMessage: "unknown request type"})
		}
	}
	return responses
}

func ProcessStopRequest(cat *catalogue.TransportCatalogue, request parser.StatRequest) any {
	buses := cat.GetBusesByStop(request.Name)
	if !buses.HasValue() {
		return NewNotFoundResponse(request.ID)
	}
	return StopResponse{RequestID: request.ID, Buses: buses.Value}
}

func ProcessBusRequest(cat *catalogue.TransportCatalogue, request parser.StatRequest) any {
	info := cat.GetBusInfo(request.Name)
	if !info.HasValue() {
		return NewNotFoundResponse(request.ID)
	}
	return NewBusResponse(request.ID, info.Value)
}

func ProcessRouteRequest(router *transit.TransitRouter, request parser.StatRequest) any {
	result := router.FindRoute(request.From, request.To)
	if !result.HasValue() {
		return NewNotFoundResponse(request.ID)
	}
	return NewRouteResponse(request.ID, result.Value)
}

// Builds a network from a request document and writes the stat responses as json array.
//
// Settings missing from the document fall back to defaults.
func ProcessDocument(in io.Reader, out io.Writer, defaults graph.RoutingSettings) error {
	doc, err := parser.ReadDocument(in)
	if err != nil {
		return err
	}
	cat := catalogue.NewTransportCatalogue()
	if err := parser.ApplyBaseRequests(cat, doc.BaseRequests); err != nil {
		return err
	}
	cat.Freeze()
	settings := defaults
	if doc.RoutingSettings != nil {
		settings = *doc.RoutingSettings
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid routing settings: %w", err)
	}
	router := transit.NewTransitRouter(cat, settings)

	responses := ProcessStatRequests(cat, router, doc.StatRequests)
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(responses)
}

//**********************************************************
// text stat requests
//**********************************************************

// Writes the answer to a "Bus X" or "Stop X" line.
func PrintStat(cat *catalogue.TransportCatalogue, request string, out io.Writer) {
	switch {
	case strings.HasPrefix(request, "Bus "):
		name := strings.TrimSpace(request[4:])
		info := cat.GetBusInfo(name)
		if !info.HasValue() {
			fmt.Fprintf(out, "Bus %v: not found\n", name)
			return
		}
		fmt.Fprintf(out, "Bus %v: %v stops on route, %v unique stops, %v route length, %v curvature\n",
			name, info.Value.TotalStops, info.Value.UniqueStops, info.Value.RouteLength,
			strconv.FormatFloat(info.Value.Curvature, 'g', 6, 64))
	case strings.HasPrefix(request, "Stop "):
		name := strings.TrimSpace(request[5:])
		buses := cat.GetBusesByStop(name)
		if !buses.HasValue() {
			fmt.Fprintf(out, "Stop %v: not found\n", name)
			return
		}
		if len(buses.Value) == 0 {
			fmt.Fprintf(out, "Stop %v: no buses\n", name)
			return
		}
		fmt.Fprintf(out, "Stop %v: buses %v\n", name, strings.Join(buses.Value, " "))
	default:
		fmt.Fprintln(out, "Unknown request type")
	}
}

// Reads a count followed by that many base lines, then a count followed by
// that many stat lines, and answers the stat lines.
func ProcessTextInput(in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	count, err := _ReadCount(reader)
	if err != nil {
		return err
	}
	input := parser.NewInputReader()
	if err := input.ReadCommands(reader, count); err != nil {
		return err
	}
	cat := catalogue.NewTransportCatalogue()
	if err := input.ApplyCommands(cat); err != nil {
		return err
	}
	cat.Freeze()

	count, err = _ReadCount(reader)
	if err != nil {
		return err
	}
	for i := 0; i < count; {
		line, err := reader.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			PrintStat(cat, line, out)
			i += 1
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func _ReadCount(reader *bufio.Reader) (int, error) {
	for {
		line, err := reader.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			count, err := strconv.Atoi(line)
			if err != nil {
				return 0, fmt.Errorf("expected request count, got %q", line)
			}
			return count, nil
		}
		if err != nil {
			return 0, fmt.Errorf("expected request count: %w", err)
		}
	}
}
