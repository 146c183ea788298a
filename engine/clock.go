package engine

import (
	"fmt"
	"math"

	"github.com/lixenwraith/metro-sim/parameter"
)

// SimulatedClock tracks time of day in minutes since midnight
// Value is always wrapped into [0, 1440)
type SimulatedClock struct {
	minutes float64
	// scale is real seconds per simulated minute
	scale float64
}

// NewSimulatedClock creates a clock at startMinutes with the given scale
// Non-positive scale falls back to the default
func NewSimulatedClock(startMinutes, scale float64) *SimulatedClock {
	if scale <= 0 {
		scale = parameter.RealSecondsPerSimMinute
	}
	return &SimulatedClock{
		minutes: wrapMinutes(startMinutes),
		scale:   scale,
	}
}

// Advance moves the clock forward by real elapsed seconds
func (c *SimulatedClock) Advance(deltaRealSeconds float64) {
	c.minutes = wrapMinutes(c.minutes + deltaRealSeconds/c.scale)
}

// Minutes returns the current value in [0, 1440)
func (c *SimulatedClock) Minutes() float64 {
	return c.minutes
}

// Scale returns real seconds per simulated minute
func (c *SimulatedClock) Scale() float64 {
	return c.scale
}

// IsPeak reports whether the current time falls in a peak window
func (c *SimulatedClock) IsPeak() bool {
	return IsPeak(c.minutes)
}

// Format renders the value as HH:MM
func (c *SimulatedClock) Format() string {
	return FormatClock(c.minutes)
}

// IsPeak classifies a time of day: hours [7,11) and [17,21) are peak
func IsPeak(minutes float64) bool {
	hour := int(math.Floor(minutes / 60))
	return (hour >= parameter.MorningPeakStart && hour < parameter.MorningPeakEnd) ||
		(hour >= parameter.EveningPeakStart && hour < parameter.EveningPeakEnd)
}

// FormatClock renders minutes since midnight as zero-padded HH:MM
func FormatClock(minutes float64) string {
	m := wrapMinutes(minutes)
	return fmt.Sprintf("%02d:%02d", int(math.Floor(m/60)), int(math.Floor(math.Mod(m, 60))))
}

func wrapMinutes(m float64) float64 {
	m = math.Mod(m, parameter.MinutesPerDay)
	if m < 0 {
		m += parameter.MinutesPerDay
	}
	// Mod of a tiny negative can round up to exactly the modulus
	if m >= parameter.MinutesPerDay {
		m = 0
	}
	return m
}
