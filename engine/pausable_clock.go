package engine

import (
	"sync"
	"time"
)

// PausableClock reads a TimeProvider minus all time spent paused
// Frame deltas are measured against it so a pause never leaks into the simulated clock
type PausableClock struct {
	mu       sync.Mutex
	src      TimeProvider
	paused   bool
	pausedAt time.Time
	skipped  time.Duration
}

func NewPausableClock(src TimeProvider) *PausableClock {
	return &PausableClock{src: src}
}

// Now returns source time shifted back by completed pauses, frozen while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return pc.pausedAt.Add(-pc.skipped)
	}
	return pc.src.Now().Add(-pc.skipped)
}

// Pause freezes Now, false if already paused
func (pc *PausableClock) Pause() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return false
	}
	pc.paused = true
	pc.pausedAt = pc.src.Now()
	return true
}

// Resume folds the pause into the skipped total, false if not paused
func (pc *PausableClock) Resume() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return false
	}
	pc.skipped += pc.src.Now().Sub(pc.pausedAt)
	pc.paused = false
	return true
}

func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.paused
}

// TotalPauseDuration includes a pause still in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return pc.skipped + pc.src.Now().Sub(pc.pausedAt)
	}
	return pc.skipped
}
