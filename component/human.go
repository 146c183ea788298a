package component

import "github.com/lixenwraith/metro-sim/vmath"

// Bounds is the outer rectangular movement area on the X/Z plane
type Bounds struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// Human is one station occupant performing a bounded random walk
// Velocity.Y is always zero
type Human struct {
	ID       uint64
	Position vmath.Vec3F
	Velocity vmath.Vec3F
	Bounds   Bounds
	Home     StationID
	// Elevated selects the reflect axis: X on elevated platforms, Z at grade
	Elevated bool
}
