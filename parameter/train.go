package parameter

// Train Motion
const (
	// TrainSpeed is path progress per tick, a full 3-waypoint run takes ~600 ticks
	TrainSpeed = 0.0016667

	// WaitFrames is the dwell duration at each stop in ticks
	WaitFrames = 120

	// MidpointEpsilon is the tolerance for snapping onto the mid-route waypoint
	MidpointEpsilon = 0.001

	// TrainCapacity is the maximum passenger count per train
	TrainCapacity = 15

	// TrainOffset lifts train bodies above the track plane
	TrainOffset = 0.25

	// ElevatedHeight is the deck height of elevated lines and stations
	ElevatedHeight = 2.0
)

// Boarding probabilities
const (
	// AlightTerminal is the alight fraction at terminal-class stations
	AlightTerminal = 0.5

	// AlightInterchange is the alight fraction at interchange platforms
	AlightInterchange = 0.2

	// ExitProbability is the fraction of alighted passengers leaving the system
	ExitProbability = 0.9

	// BoardProbability is the per-candidate Bernoulli boarding chance
	BoardProbability = 0.7
)
