// Package network defines the static rail topology: six platforms on two
// crossing lines, four single-train shuttles and the heatmap tile layout.
package network

import (
	"github.com/lixenwraith/metro-sim/component"
	"github.com/lixenwraith/metro-sim/parameter"
	"github.com/lixenwraith/metro-sim/vmath"
)

const (
	StationA       component.StationID = "A"
	StationBGreen  component.StationID = "B_green"
	StationC       component.StationID = "C"
	StationD       component.StationID = "D"
	StationBPurple component.StationID = "B_purple"
	StationE       component.StationID = "E"
)

const (
	LineABC component.LineID = "ABC"
	LineCBA component.LineID = "CBA"
	LineDBE component.LineID = "DBE"
	LineEBD component.LineID = "EBD"
)

// StationDef is the static description of one platform
type StationDef struct {
	ID          component.StationID
	Name        string
	Position    vmath.Vec3F
	Interchange bool
	Elevated    bool
}

// LineDef is one shuttle path with three ordered waypoints
type LineDef struct {
	ID        component.LineID
	Color     string
	Elevated  bool
	Waypoints [3]vmath.Vec3F
}

// Stations lists platforms in display order
var Stations = []StationDef{
	{ID: StationA, Name: "Chikpete", Position: vmath.Vec3F{X: 0, Y: 2, Z: 40}, Elevated: true},
	{ID: StationBGreen, Name: "Majestic (Green)", Position: vmath.Vec3F{X: 0, Y: 2, Z: 0}, Interchange: true, Elevated: true},
	{ID: StationC, Name: "Mantri Square", Position: vmath.Vec3F{X: 0, Y: 2, Z: -40}, Elevated: true},
	{ID: StationD, Name: "KSR Station", Position: vmath.Vec3F{X: -40, Y: 0, Z: 0}},
	{ID: StationBPurple, Name: "Majestic (Purple)", Position: vmath.Vec3F{X: 0, Y: 0, Z: 0}, Interchange: true},
	{ID: StationE, Name: "Central College", Position: vmath.Vec3F{X: 40, Y: 0, Z: 0}},
}

// Lines lists shuttles in display order
var Lines = []LineDef{
	{ID: LineABC, Color: "green", Elevated: true, Waypoints: [3]vmath.Vec3F{{X: -1, Y: 2, Z: 40}, {X: -1, Y: 2, Z: 0}, {X: -1, Y: 2, Z: -40}}},
	{ID: LineCBA, Color: "green", Elevated: true, Waypoints: [3]vmath.Vec3F{{X: 1, Y: 2, Z: -40}, {X: 1, Y: 2, Z: 0}, {X: 1, Y: 2, Z: 40}}},
	{ID: LineDBE, Color: "purple", Waypoints: [3]vmath.Vec3F{{X: -40, Y: 0, Z: -1}, {X: 0, Y: 0, Z: -1}, {X: 40, Y: 0, Z: -1}}},
	{ID: LineEBD, Color: "purple", Waypoints: [3]vmath.Vec3F{{X: 40, Y: 0, Z: 1}, {X: 0, Y: 0, Z: 1}, {X: -40, Y: 0, Z: 1}}},
}

// Platforms by waypoint index, picked by elevation tag only
// Both directions of a line share one order
var (
	elevatedStops = [3]component.StationID{StationA, StationBGreen, StationC}
	atGradeStops  = [3]component.StationID{StationD, StationBPurple, StationE}
)

// StationAt maps a waypoint of a line to the platform serving it
func StationAt(line LineDef, index int) component.StationID {
	if line.Elevated {
		return elevatedStops[index]
	}
	return atGradeStops[index]
}

// InterchangePartner returns the other platform of the pooled interchange
func InterchangePartner(id component.StationID) (component.StationID, bool) {
	switch id {
	case StationBGreen:
		return StationBPurple, true
	case StationBPurple:
		return StationBGreen, true
	}
	return "", false
}

// Footprint returns the platform side length
func Footprint(interchange bool) float64 {
	if interchange {
		return parameter.InterchangeFootprint
	}
	return parameter.TerminalFootprint
}

// NewStations builds live stations with empty crowds
func NewStations() []*component.Station {
	stations := make([]*component.Station, 0, len(Stations))
	for _, def := range Stations {
		stations = append(stations, &component.Station{
			ID:          def.ID,
			Name:        def.Name,
			Position:    def.Position,
			Footprint:   Footprint(def.Interchange),
			Interchange: def.Interchange,
			Elevated:    def.Elevated,
			Capacity:    parameter.StationCapacity,
			Crowd:       make([]*component.Human, 0, parameter.StationCapacity),
		})
	}
	return stations
}

// NewTrains builds one train per line parked at its first waypoint
func NewTrains() []*component.Train {
	trains := make([]*component.Train, 0, len(Lines))
	for _, line := range Lines {
		height := parameter.TrainOffset
		if line.Elevated {
			height += parameter.ElevatedHeight
		}

		tr := &component.Train{
			ID:        line.ID,
			Path:      line.Waypoints,
			Height:    height,
			Direction: 1,
			State:     component.TrainMoving,
		}
		for i := range tr.Stops {
			tr.Stops[i] = StationAt(line, i)
		}
		tr.Position = line.Waypoints[0]
		tr.Position.Y = height
		tr.Heading = vmath.Heading(vmath.V3FSub(line.Waypoints[1], line.Waypoints[0]))

		trains = append(trains, tr)
	}
	return trains
}
