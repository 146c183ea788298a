package parameter

import "time"

// Indicator pulse
const (
	// IndicatorThreshold is the crowd size above which the station indicator pulses
	IndicatorThreshold = 25

	// IndicatorBasePeriod is the pulse period divisor in milliseconds
	IndicatorBasePeriod = 200.0

	// IndicatorExcessFactor speeds up the pulse per person over capacity
	IndicatorExcessFactor = 0.1
)

// Heatmap
const (
	// DensitySaturation is the cumulative closeness mapped to the high color
	DensitySaturation = 5.0

	// HeatmapTilesPerSide is the tile grid dimension per station
	HeatmapTilesPerSide = 4

	// TerminalTileSize is the tile edge at terminal stations
	TerminalTileSize = 2.25

	// InterchangeTileSize is the tile edge at interchange platforms
	InterchangeTileSize = 4.5

	// TileLift raises tile centers above the platform surface
	TileLift = 0.01
)

// Heatmap colors as 0xRRGGBB
const (
	DensityLowColor  = 0x00ff00
	DensityHighColor = 0xff0000
)

// Inspection
const (
	// InspectDisplayDuration is how long an inspection result stays on the info panel
	InspectDisplayDuration = 2 * time.Second

	// InterchangeLabel is the pooled display name of both interchange platforms
	InterchangeLabel = "Majestic"
)

// Terminal view
const (
	// PanelWidth is the info panel column count right of the map
	PanelWidth = 34

	// WorldExtent is the half side of the square world area projected onto the map
	WorldExtent = 46.0

	// MinMapSize is the smallest map area drawn, smaller terminals show the panel only
	MinMapSize = 8

	// PickRadius is the cell distance within which a click selects a train
	PickRadius = 2
)
