package parser

import (
	"fmt"
	"io"
	"os"

	"github.com/ttpr0/go-transit/catalogue"
	"github.com/ttpr0/go-transit/geo"
	. "github.com/ttpr0/go-transit/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// stops csv parser
//*******************************************

// Adds the stops of a GTFS-like stops.txt (stop_name, stop_lat, stop_lon columns).
func ParseStopsCSV(reader io.Reader, cat *catalogue.TransportCatalogue) (int, error) {
	count := 0
	for row := range ReadCSV[CSVStop](reader, ',') {
		if row.Name == "" {
			continue
		}
		coord := geo.Coord{Lat: row.Lat, Lon: row.Lon}
		if !coord.IsValid() {
			slog.Warn(fmt.Sprintf("skipping stop %v with invalid coordinates", row.Name))
			continue
		}
		if err := cat.AddStop(row.Name, coord); err != nil {
			return count, err
		}
		count += 1
	}
	return count, nil
}

func ParseStopsCSVFile(file string, cat *catalogue.TransportCatalogue) (int, error) {
	reader, err := os.Open(file)
	if err != nil {
		return 0, err
	}
	defer reader.Close()
	return ParseStopsCSV(reader, cat)
}
