package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a last-value float metric, written by the scheduler and read by the view
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) { g.bits.Store(math.Float64bits(v)) }

func (g *Gauge) Load() float64 { return math.Float64frombits(g.bits.Load()) }
