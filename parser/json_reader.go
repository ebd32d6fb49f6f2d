package parser

import (
	"fmt"
	"io"

	"github.com/ttpr0/go-transit/catalogue"
	"github.com/ttpr0/go-transit/geo"
	. "github.com/ttpr0/go-transit/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// json document reader
//*******************************************

func ReadDocument(reader io.Reader) (Document, error) {
	doc, err := ReadJSON[Document](reader)
	if err != nil {
		return doc, fmt.Errorf("failed to decode request document: %w", err)
	}
	return doc, nil
}

func ReadDocumentFromFile(file string) (Document, error) {
	return ReadJSONFromFile[Document](file)
}

// Fills the catalogue from base requests: stops first, then their road distances,
// then buses, so that every reference can be resolved regardless of request order.
func ApplyBaseRequests(cat *catalogue.TransportCatalogue, requests []BaseRequest) error {
	for _, request := range requests {
		if request.Type != "Stop" {
			continue
		}
		if err := cat.AddStop(request.Name, geo.Coord{Lat: request.Latitude, Lon: request.Longitude}); err != nil {
			return err
		}
	}
	for _, request := range requests {
		if request.Type != "Stop" {
			continue
		}
		for other, meters := range request.RoadDistances {
			if err := cat.AddDistance(request.Name, other, meters); err != nil {
				slog.Warn(fmt.Sprintf("skipping road distance %v -> %v: %v", request.Name, other, err))
			}
		}
	}
	for _, request := range requests {
		if request.Type != "Bus" {
			continue
		}
		if err := cat.AddBus(request.Name, request.Stops, request.IsRoundtrip); err != nil {
			return err
		}
	}
	for _, request := range requests {
		if request.Type != "Stop" && request.Type != "Bus" {
			slog.Warn(fmt.Sprintf("ignoring base request of unknown type %v", request.Type))
		}
	}
	return nil
}
