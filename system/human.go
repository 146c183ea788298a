package system

import (
	"math"

	"github.com/lixenwraith/metro-sim/component"
	"github.com/lixenwraith/metro-sim/engine"
	"github.com/lixenwraith/metro-sim/parameter"
	"github.com/lixenwraith/metro-sim/vmath"
)

// MovementBounds returns the outer walk rectangle of a station, the footprint scaled by BoundsScale
func MovementBounds(st *component.Station) component.Bounds {
	half := st.Footprint / 2 * parameter.BoundsScale
	return component.Bounds{
		MinX: st.Position.X - half,
		MaxX: st.Position.X + half,
		MinZ: st.Position.Z - half,
		MaxZ: st.Position.Z + half,
	}
}

// NewHuman spawns an occupant at a random point of the station platform
// The point avoids the two track lines on the reflect axis; velocity components are uniform in [-0.01, 0.01)
// Caller holds the update lock; the human is not added to the crowd
func NewHuman(s *engine.State, st *component.Station) *component.Human {
	bounds := MovementBounds(st)
	span := st.Footprint * parameter.BoundsScale

	var dx, dz float64
	for attempt := 0; attempt < parameter.SpawnAttempts; attempt++ {
		dx = (s.RNG.Float64() - 0.5) * span
		dz = (s.RNG.Float64() - 0.5) * span
		off := dz
		if st.Elevated {
			off = dx
		}
		if !nearTrack(off) {
			break
		}
		if attempt == parameter.SpawnAttempts-1 {
			// Give up sampling and snap onto the platform side of the forbidden band
			side := math.Copysign(parameter.TrackZone, off)
			if st.Elevated {
				dx = side
			} else {
				dz = side
			}
		}
	}

	return &component.Human{
		ID: s.NextHumanID(),
		Position: vmath.Vec3F{
			X: st.Position.X + dx,
			Y: st.Position.Y + parameter.StationFloorHeight/2,
			Z: st.Position.Z + dz,
		},
		Velocity: vmath.Vec3F{
			X: (s.RNG.Float64() - 0.5) * parameter.WalkSpeed,
			Z: (s.RNG.Float64() - 0.5) * parameter.WalkSpeed,
		},
		Bounds:   bounds,
		Home:     st.ID,
		Elevated: st.Elevated,
	}
}

// nearTrack reports whether an offset from the station centre lies within spawn distance of either track line at ±1
func nearTrack(off float64) bool {
	return math.Abs(off+1) < parameter.SpawnTrackZone || math.Abs(off-1) < parameter.SpawnTrackZone
}

// Populate fills every station with a startup crowd of floor(rand*(capacity+1)) humans
// Returns the total number spawned
func Populate(s *engine.State) int {
	total := 0
	for _, st := range s.Stations {
		n := int(math.Floor(s.RNG.Float64() * float64(st.Capacity+1)))
		n = min(n, st.Free())
		for i := 0; i < n; i++ {
			st.Push(NewHuman(s, st))
		}
		total += n
	}
	return total
}
