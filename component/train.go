package component

import "github.com/lixenwraith/metro-sim/vmath"

// TrainState is the motion phase of a train
type TrainState uint8

const (
	TrainMoving TrainState = iota
	TrainWaiting
)

func (s TrainState) String() string {
	switch s {
	case TrainMoving:
		return "moving"
	case TrainWaiting:
		return "waiting"
	default:
		return "unknown"
	}
}

// Train runs back and forth along a 3-waypoint path
// T is progress in [0,1], snapped to exactly 0, 0.5 or 1 at stops
type Train struct {
	ID LineID

	Path  [3]vmath.Vec3F
	Stops [3]StationID
	// Height is the fixed vertical position of the train body
	Height float64

	T          float64
	Direction  int
	State      TrainState
	WaitTimer  int
	Passengers int

	// Derived every tick from T
	Position vmath.Vec3F
	Heading  float64
}

// StopIndex returns the waypoint index the train sits on, or -1 between stops
func (t *Train) StopIndex() int {
	switch t.T {
	case 0:
		return 0
	case 0.5:
		return 1
	case 1:
		return 2
	}
	return -1
}
