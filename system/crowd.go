package system

import (
	"time"

	"github.com/lixenwraith/metro-sim/component"
	"github.com/lixenwraith/metro-sim/engine"
	"github.com/lixenwraith/metro-sim/parameter"
	"github.com/lixenwraith/metro-sim/vmath"
)

// CrowdSystem advances every station occupant's bounded random walk, once per tick
type CrowdSystem struct{}

// NewCrowdSystem creates a new crowd movement system
func NewCrowdSystem() engine.System {
	return &CrowdSystem{}
}

// Name returns system's name
func (s *CrowdSystem) Name() string {
	return "crowd"
}

// Priority returns the system's priority
func (s *CrowdSystem) Priority() int {
	return parameter.PriorityCrowd
}

// Update moves humans by their velocity; speed is per tick, dt is unused
func (s *CrowdSystem) Update(state *engine.State, dt time.Duration) {
	for _, st := range state.Stations {
		for _, h := range st.Crowd {
			MoveHuman(h, st)
		}
	}
}

// MoveHuman applies one step of movement
// The reflect axis keeps the human on its side of the track band and inside the platform edge,
// then the outer bounds clamp and reflect on both axes
func MoveHuman(h *component.Human, st *component.Station) {
	next := vmath.V3FAdd(h.Position, h.Velocity)

	if h.Elevated {
		next.X = st.Position.X + platformStep(h.Position.X-st.Position.X, next.X-st.Position.X, &h.Velocity.X, st.Footprint)
	} else {
		next.Z = st.Position.Z + platformStep(h.Position.Z-st.Position.Z, next.Z-st.Position.Z, &h.Velocity.Z, st.Footprint)
	}
	h.Position = next

	vmath.ReflectAxis(&h.Position.X, &h.Velocity.X, h.Bounds.MinX, h.Bounds.MaxX)
	vmath.ReflectAxis(&h.Position.Z, &h.Velocity.Z, h.Bounds.MinZ, h.Bounds.MaxZ)
}

// platformStep resolves the reflect-axis offset from the station centre
// Side is chosen by the current offset; crossing either limit reverts the step and flips velocity
func platformStep(cur, next float64, vel *float64, footprint float64) float64 {
	lo, hi := -footprint/2+parameter.SafeMargin, -parameter.TrackZone
	if cur >= 0 {
		lo, hi = parameter.TrackZone, footprint/2-parameter.SafeMargin
	}
	if next < lo || next > hi {
		*vel = -*vel
		next = cur
	}
	return vmath.Clamp(next, lo, hi)
}
