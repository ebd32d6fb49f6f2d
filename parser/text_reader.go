package parser

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ttpr0/go-transit/catalogue"
	"github.com/ttpr0/go-transit/geo"
	. "github.com/ttpr0/go-transit/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// line based input reader
//*******************************************

// Command line like "Stop Tolstopaltsevo: 55.611087, 37.20829, 3900m to Marushkino".
type CommandDescription struct {
	Command     string
	ID          string
	Description string
}

type InputReader struct {
	commands List[CommandDescription]
}

func NewInputReader() *InputReader {
	return &InputReader{
		commands: NewList[CommandDescription](10),
	}
}

// Reads count non-empty command lines, or every line until EOF if count is negative.
func (self *InputReader) ReadCommands(reader *bufio.Reader, count int) error {
	read := 0
	for count < 0 || read < count {
		line, err := reader.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			self.ParseLine(line)
			read += 1
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	if count >= 0 && read < count {
		return fmt.Errorf("expected %v commands, got %v", count, read)
	}
	return nil
}

func (self *InputReader) ParseLine(line string) {
	command := ParseCommandDescription(line)
	if !command.HasValue() {
		slog.Warn(fmt.Sprintf("skipping malformed command %q", line))
		return
	}
	self.commands.Add(command.Value)
}

func (self *InputReader) CommandCount() int {
	return self.commands.Length()
}

// Applies stops, road distances and buses to the catalogue, in that order.
func (self *InputReader) ApplyCommands(cat *catalogue.TransportCatalogue) error {
	for _, command := range self.commands {
		if command.Command != "Stop" {
			continue
		}
		coord := ParseCoordinates(command.Description)
		if !coord.IsValid() {
			slog.Warn(fmt.Sprintf("stop %v has invalid coordinates", command.ID))
		}
		if err := cat.AddStop(command.ID, coord); err != nil {
			return err
		}
	}
	for _, command := range self.commands {
		if command.Command != "Stop" {
			continue
		}
		for _, dist := range ParseDistances(command.Description) {
			if err := cat.AddDistance(command.ID, dist.A, dist.B); err != nil {
				slog.Warn(fmt.Sprintf("skipping road distance %v -> %v: %v", command.ID, dist.A, err))
			}
		}
	}
	for _, command := range self.commands {
		if command.Command != "Bus" {
			continue
		}
		stops, is_roundtrip := ParseRoute(command.Description)
		if err := cat.AddBus(command.ID, stops, is_roundtrip); err != nil {
			return err
		}
	}
	return nil
}

//*******************************************
// parse helpers
//*******************************************

func ParseCommandDescription(line string) Optional[CommandDescription] {
	colon_pos := strings.Index(line, ":")
	if colon_pos == -1 {
		return None[CommandDescription]()
	}
	head := strings.TrimSpace(line[:colon_pos])
	space_pos := strings.Index(head, " ")
	if space_pos == -1 {
		return None[CommandDescription]()
	}
	id := strings.TrimSpace(head[space_pos:])
	if id == "" {
		return None[CommandDescription]()
	}
	return Some(CommandDescription{
		Command:     head[:space_pos],
		ID:          id,
		Description: line[colon_pos+1:],
	})
}

// Parses the leading "lat, lng" of a stop description. Returns NaN coordinates if malformed.
func ParseCoordinates(description string) geo.Coord {
	parts := strings.Split(description, ",")
	if len(parts) < 2 {
		return geo.Coord{Lat: math.NaN(), Lon: math.NaN()}
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return geo.Coord{Lat: math.NaN(), Lon: math.NaN()}
	}
	return geo.Coord{Lat: lat, Lon: lon}
}

// Parses the "Dm to Stop" entries following the coordinates.
func ParseDistances(description string) []Tuple[string, int] {
	parts := strings.Split(description, ",")
	distances := make([]Tuple[string, int], 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		pos := strings.Index(part, "m to ")
		if pos == -1 {
			continue
		}
		meters, err := strconv.Atoi(strings.TrimSpace(part[:pos]))
		if err != nil {
			slog.Warn(fmt.Sprintf("skipping malformed distance %q", part))
			continue
		}
		stop := strings.TrimSpace(part[pos+5:])
		distances = append(distances, MakeTuple(stop, meters))
	}
	return distances
}

// "A > B > A" is a round trip, "A - B - C" is driven back and forth.
func ParseRoute(route string) ([]string, bool) {
	if strings.Contains(route, ">") {
		return _Split(route, ">"), true
	}
	return _Split(route, "-"), false
}

func _Split(str string, delim string) []string {
	parts := strings.Split(str, delim)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
