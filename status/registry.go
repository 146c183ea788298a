package status

import "sync/atomic"

// Metric keys written by the simulation systems
const (
	KeyTicks      = "sim.ticks"
	KeyStops      = "sim.stops"
	KeyAlighted   = "sim.alighted"
	KeyExited     = "sim.exited"
	KeyBoarded    = "sim.boarded"
	KeyArrivals   = "sim.arrivals"
	KeySurges     = "sim.surges"
	KeyClockMins  = "sim.clock_minutes"
	KeyFrameDelta = "sim.frame_delta_ms"

	KeyEventsDropped = "events.dropped"
)

// Registry groups run counters and gauges
type Registry struct {
	Ints   *Table[atomic.Int64]
	Floats *Table[Gauge]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   newTable[atomic.Int64](),
		Floats: newTable[Gauge](),
	}
}

// Counters copies all integer metrics into a plain map
func (r *Registry) Counters() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = ptr.Load()
	})
	return out
}

// TotalCount returns the number of counters and gauges
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}
