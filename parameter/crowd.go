package parameter

// Station Crowd
const (
	// StationCapacity is the maximum crowd per station
	StationCapacity = 40

	// StationFloorHeight is the platform slab thickness
	StationFloorHeight = 0.2

	// TerminalFootprint is the side length of terminal stations
	TerminalFootprint = 9.0

	// InterchangeFootprint is the side length of interchange platforms
	InterchangeFootprint = 18.0

	// BoundsScale shrinks the footprint into the outer movement bounds
	BoundsScale = 0.8

	// TrackZone is the half-width of the forbidden band around the tracks
	TrackZone = 3.0

	// SpawnTrackZone is the half-width avoided when placing new humans
	SpawnTrackZone = 2.0

	// SpawnAttempts bounds rejection sampling of spawn points
	SpawnAttempts = 16

	// SafeMargin keeps humans away from the platform edge
	SafeMargin = 0.5

	// WalkSpeed is the span of each planar velocity component, centred on zero
	WalkSpeed = 0.02
)

// Arrival Generator
const (
	// PeakSurgeLarge is the surge size drawn with PeakSurgeLargeProbability
	PeakSurgeLarge = 25

	// PeakSurgeSmall is the alternative surge size
	PeakSurgeSmall = 15

	// PeakSurgeLargeProbability selects the large surge
	PeakSurgeLargeProbability = 0.6

	// OffPeakFillRatio is the crowd fraction under which off-peak arrivals trickle in
	OffPeakFillRatio = 0.5
)
