package event

// EventType represents the type of simulation event
type EventType int

const (
	// EventTrainStopped signals a train entered the waiting state at a waypoint
	// Trigger: TrainSystem on stop snap | Payload: *TrainStoppedPayload
	EventTrainStopped EventType = iota

	// EventBoarding signals a completed alight/exit/board transaction
	// Trigger: TrainSystem one tick after stop | Consumer: logging, audio
	// Payload: *BoardingPayload
	EventBoarding

	// EventPeakSurge signals a peak-hour crowd injection at one station
	// Trigger: ArrivalSystem | Consumer: logging, audio | Payload: *SurgePayload
	EventPeakSurge

	// EventOffPeakArrivals signals the off-peak trickle of one arrival period
	// Trigger: ArrivalSystem | Payload: *ArrivalsPayload
	EventOffPeakArrivals

	// EventHeatmapToggled signals the display mode flip
	// Trigger: Simulation.SetHeatmap | Payload: *HeatmapPayload
	EventHeatmapToggled

	// EventPauseChanged signals scheduler pause or resume
	// Trigger: Scheduler | Payload: *PausePayload
	EventPauseChanged
)

var typeNames = map[EventType]string{
	EventTrainStopped:    "TrainStopped",
	EventBoarding:        "Boarding",
	EventPeakSurge:       "PeakSurge",
	EventOffPeakArrivals: "OffPeakArrivals",
	EventHeatmapToggled:  "HeatmapToggled",
	EventPauseChanged:    "PauseChanged",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is a single queued occurrence
// Frame is the tick counter when the event was emitted
type Event struct {
	Type    EventType
	Payload any
	Frame   int64
}
