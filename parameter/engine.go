package parameter

import "time"

// Simulation Loop & Engine Timing
const (
	// FrameUpdateInterval is the simulation frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// ArrivalInterval is the wall-clock period of the passenger arrival generator
	// Independent of frame cadence, measured in unpaused time
	ArrivalInterval = 5 * time.Second

	// MaxFrameDelta caps a single frame delta after stalls (debugger, suspend)
	MaxFrameDelta = 250 * time.Millisecond
)

// EventQueueSize is the pending event capacity between dispatches
const EventQueueSize = 256

// Priorities, lower runs first within a frame
const (
	PriorityClock  = 10
	PriorityTrain  = 20
	PriorityCrowd  = 30
	PriorityStatus = 90
)
