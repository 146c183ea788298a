package engine

import "time"

// manualTime is a TimeProvider that only moves when a test advances it
type manualTime struct {
	now time.Time
}

func newManualTime(start time.Time) *manualTime {
	return &manualTime{now: start}
}

func (m *manualTime) Now() time.Time { return m.now }

func (m *manualTime) Advance(d time.Duration) { m.now = m.now.Add(d) }
