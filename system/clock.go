package system

import (
	"time"

	"github.com/lixenwraith/metro-sim/engine"
	"github.com/lixenwraith/metro-sim/parameter"
)

// ClockSystem advances the simulated time of day from the real frame delta
type ClockSystem struct{}

// NewClockSystem creates a new clock system
func NewClockSystem() engine.System {
	return &ClockSystem{}
}

// Name returns system's name
func (s *ClockSystem) Name() string {
	return "clock"
}

// Priority returns the system's priority
func (s *ClockSystem) Priority() int {
	return parameter.PriorityClock
}

// Update converts the frame delta to simulated minutes
func (s *ClockSystem) Update(state *engine.State, dt time.Duration) {
	state.Clock.Advance(dt.Seconds())
}
