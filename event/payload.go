package event

import "github.com/lixenwraith/metro-sim/component"

// TrainStoppedPayload carries the waypoint a train snapped onto
type TrainStoppedPayload struct {
	Train   component.LineID
	Station component.StationID
}

// BoardingPayload is the outcome of one stop transaction
type BoardingPayload struct {
	Train      component.LineID
	Station    component.StationID
	Alighted   int
	Exited     int
	TurnedAway int
	Boarded    int
	Passengers int
	Crowd      int
}

// SurgePayload describes a peak-hour injection
type SurgePayload struct {
	Station component.StationID
	Added   int
}

// ArrivalsPayload sums an off-peak arrival period
type ArrivalsPayload struct {
	Added int
}

// HeatmapPayload carries the new display mode
type HeatmapPayload struct {
	Enabled bool
}

// PausePayload carries the scheduler pause state
type PausePayload struct {
	Paused bool
}
