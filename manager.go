package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/ttpr0/go-transit/catalogue"
	"github.com/ttpr0/go-transit/parser"
	"github.com/ttpr0/go-transit/transit"
	"golang.org/x/exp/slog"
)

// Loads the configured network and serves as entry point for all queries.
func NewTransitManager(config Config) (*TransitManager, error) {
	cat := catalogue.NewTransportCatalogue()
	settings := config.RoutingSettings

	if config.Source.StopsCSV != "" {
		count, err := parser.ParseStopsCSVFile(config.Source.StopsCSV, cat)
		if err != nil {
			return nil, fmt.Errorf("failed to load stops from %s: %w", config.Source.StopsCSV, err)
		}
		slog.Info(fmt.Sprintf("loaded %v stops from %v", count, config.Source.StopsCSV))
	}

	switch config.Source.Type {
	case JSON_SOURCE:
		doc, err := parser.ReadDocumentFromFile(config.Source.Path)
		if err != nil {
			return nil, err
		}
		if err := parser.ApplyBaseRequests(cat, doc.BaseRequests); err != nil {
			return nil, err
		}
		if doc.RoutingSettings != nil {
			settings = *doc.RoutingSettings
		}
	case TEXT_SOURCE:
		if err := LoadTextSource(config.Source.Path, cat); err != nil {
			return nil, err
		}
	case OSM_SOURCE:
		if err := parser.ParseOSMFile(config.Source.Path, &parser.BusDecoder{}, cat); err != nil {
			return nil, err
		}
	case CSV_SOURCE:
		if _, err := parser.ParseStopsCSVFile(config.Source.Path, cat); err != nil {
			return nil, err
		}
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid routing settings: %w", err)
	}
	cat.Freeze()
	slog.Info(fmt.Sprintf("loaded network with %v stops and %v buses", cat.StopCount(), cat.BusCount()))

	return &TransitManager{
		config:    config,
		catalogue: cat,
		router:    transit.NewTransitRouter(cat, settings),
	}, nil
}

type TransitManager struct {
	config    Config
	catalogue *catalogue.TransportCatalogue
	router    *transit.TransitRouter
}

func (self *TransitManager) GetCatalogue() *catalogue.TransportCatalogue {
	return self.catalogue
}

func (self *TransitManager) GetRouter() *transit.TransitRouter {
	return self.router
}

func (self *TransitManager) _GetServiceConfig() Config {
	return self.config
}

// Reads a file of "Stop ..." and "Bus ..." lines.
func LoadTextSource(file string, cat *catalogue.TransportCatalogue) error {
	reader, err := os.Open(file)
	if err != nil {
		return err
	}
	defer reader.Close()

	input := parser.NewInputReader()
	if err := input.ReadCommands(bufio.NewReader(reader), -1); err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}
	return input.ApplyCommands(cat)
}
