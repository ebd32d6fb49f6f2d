package parser

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/ttpr0/go-transit/catalogue"
	"github.com/ttpr0/go-transit/geo"
	. "github.com/ttpr0/go-transit/util"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

//*******************************************
// osm transit parser
//*******************************************

type OSMStop struct {
	Name  string
	Point geo.Coord
}

type OSMRoute struct {
	Name        string
	Stops       List[osm.NodeID]
	IsRoundtrip bool
}

// Reads stops and bus routes from an .osm (xml) or .osm.pbf file into the catalogue.
func ParseOSMFile(file string, decoder IOSMDecoder, cat *catalogue.TransportCatalogue) error {
	reader, err := os.Open(file)
	if err != nil {
		return err
	}
	defer reader.Close()

	stops := NewDict[osm.NodeID, OSMStop](1000)
	routes := NewList[OSMRoute](100)
	if strings.HasSuffix(file, ".pbf") {
		scanner := osmpbf.New(context.Background(), reader, runtime.GOMAXPROCS(-1))
		defer scanner.Close()
		scanner.SkipWays = true
		for scanner.Scan() {
			switch object := scanner.Object().(type) {
			case *osm.Node:
				_HandleNode(object, decoder, &stops)
			case *osm.Relation:
				_HandleRelation(object, decoder, &routes)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to scan %s: %w", file, err)
		}
	} else {
		data, err := _DecodeOSMXML(reader)
		if err != nil {
			return fmt.Errorf("failed to decode %s: %w", file, err)
		}
		_CollectOSM(data, decoder, &stops, &routes)
	}
	return _ApplyOSM(cat, &stops, &routes)
}

// Reads stops and bus routes from osm xml.
func ParseOSM(reader io.Reader, decoder IOSMDecoder, cat *catalogue.TransportCatalogue) error {
	data, err := _DecodeOSMXML(reader)
	if err != nil {
		return err
	}
	stops := NewDict[osm.NodeID, OSMStop](len(data.Nodes))
	routes := NewList[OSMRoute](len(data.Relations))
	_CollectOSM(data, decoder, &stops, &routes)
	return _ApplyOSM(cat, &stops, &routes)
}

func _DecodeOSMXML(reader io.Reader) (*osm.OSM, error) {
	data := &osm.OSM{}
	if err := xml.NewDecoder(reader).Decode(data); err != nil {
		return nil, err
	}
	return data, nil
}

func _CollectOSM(data *osm.OSM, decoder IOSMDecoder, stops *Dict[osm.NodeID, OSMStop], routes *List[OSMRoute]) {
	for _, node := range data.Nodes {
		_HandleNode(node, decoder, stops)
	}
	for _, relation := range data.Relations {
		_HandleRelation(relation, decoder, routes)
	}
}

//*******************************************
// osm handler methods
//*******************************************

func _HandleNode(node *osm.Node, decoder IOSMDecoder, stops *Dict[osm.NodeID, OSMStop]) {
	tags := Dict[string, string](node.TagMap())
	if !decoder.IsValidStop(tags) {
		return
	}
	stops.Set(node.ID, OSMStop{
		Name:  tags.Get("name"),
		Point: geo.Coord{Lat: node.Lat, Lon: node.Lon},
	})
}

func _HandleRelation(relation *osm.Relation, decoder IOSMDecoder, routes *List[OSMRoute]) {
	tags := Dict[string, string](relation.TagMap())
	if !decoder.IsValidRoute(tags) {
		return
	}
	name := decoder.DecodeRouteName(tags)
	if name == "" {
		slog.Warn(fmt.Sprintf("skipping unnamed route relation %v", relation.ID))
		return
	}
	route := OSMRoute{
		Name:        name,
		Stops:       NewList[osm.NodeID](len(relation.Members)),
		IsRoundtrip: decoder.IsRoundtrip(tags),
	}
	for _, member := range relation.Members {
		if member.Type != osm.TypeNode || !decoder.IsStopMember(member.Role) {
			continue
		}
		route.Stops.Add(osm.NodeID(member.Ref))
	}
	routes.Add(route)
}

// Adds the collected stops and routes. OSM carries no road distances, consecutive
// stops of a route get the rounded great-circle distance in both directions.
func _ApplyOSM(cat *catalogue.TransportCatalogue, stops *Dict[osm.NodeID, OSMStop], routes *List[OSMRoute]) error {
	ids := NewList[osm.NodeID](stops.Length())
	for id := range *stops {
		ids.Add(id)
	}
	// insertion order decides vertex ids, keep it independent of map order
	slices.Sort(ids)
	for _, id := range ids {
		stop := stops.Get(id)
		if err := cat.AddStop(stop.Name, stop.Point); err != nil {
			return err
		}
	}

	for _, route := range *routes {
		names := make([]string, 0, route.Stops.Length())
		for _, id := range route.Stops {
			stop, ok := (*stops)[id]
			if !ok {
				slog.Warn(fmt.Sprintf("route %v references unknown stop node %v", route.Name, id))
				continue
			}
			// platform and stop position of the same stop usually follow each other
			if len(names) > 0 && names[len(names)-1] == stop.Name {
				continue
			}
			names = append(names, stop.Name)
		}
		for i := 1; i < len(names); i++ {
			from := cat.FindStop(names[i-1]).Value
			to := cat.FindStop(names[i]).Value
			meters := int(math.Round(geo.ComputeDistance(from.Coord, to.Coord)))
			cat.AddDistance(from.Name, to.Name, meters)
			cat.AddDistance(to.Name, from.Name, meters)
		}
		is_roundtrip := route.IsRoundtrip || (len(names) > 1 && names[0] == names[len(names)-1])
		if err := cat.AddBus(route.Name, names, is_roundtrip); err != nil {
			return err
		}
	}
	slog.Info(fmt.Sprintf("imported %v stops and %v routes from osm", stops.Length(), routes.Length()))
	return nil
}
