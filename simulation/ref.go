package simulation

import (
	"fmt"

	"github.com/lixenwraith/metro-sim/component"
)

// RefKind tags the variant held by a Ref
type RefKind uint8

const (
	RefStation RefKind = iota
	RefTrain
)

// Ref identifies an inspectable object independently of any view
type Ref struct {
	Kind    RefKind
	Station component.StationID
	Train   component.LineID
}

// StationRef builds a reference to a station
func StationRef(id component.StationID) Ref {
	return Ref{Kind: RefStation, Station: id}
}

// TrainRef builds a reference to a train
func TrainRef(id component.LineID) Ref {
	return Ref{Kind: RefTrain, Train: id}
}

func (r Ref) String() string {
	switch r.Kind {
	case RefStation:
		return fmt.Sprintf("station:%s", r.Station)
	case RefTrain:
		return fmt.Sprintf("train:%s", r.Train)
	default:
		return "unknown"
	}
}

// Inspection is the answer to an inspect query
type Inspection struct {
	Ref Ref
	// Label is the display name, interchange halves share one
	Label string
	// Count is humans on the platform(s) for stations, passengers for trains
	Count int
}

// String renders the two-line info panel text
func (i Inspection) String() string {
	if i.Ref.Kind == RefTrain {
		return fmt.Sprintf("Train: %s\nPassengers: %d", i.Label, i.Count)
	}
	return fmt.Sprintf("Station: %s\nHumans: %d", i.Label, i.Count)
}
