package engine

import "time"

// System is advanced once per frame while the update lock is held
type System interface {
	Update(s *State, dt time.Duration)
	Priority() int // Lower values run first
	Name() string
}

// Periodic is fired on its own cadence, independent of the frame rate
type Periodic interface {
	Fire(s *State)
	Name() string
}
