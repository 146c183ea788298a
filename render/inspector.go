package render

import (
	"math"
	"time"

	"github.com/lixenwraith/metro-sim/parameter"
	"github.com/lixenwraith/metro-sim/simulation"
)

// InspectSource answers inspection queries
type InspectSource interface {
	Targets() []simulation.Ref
	Inspect(ref simulation.Ref) (simulation.Inspection, bool)
}

// Inspector holds the timed info panel selection
// The shown result is a copy taken at selection time and expires after the display duration
type Inspector struct {
	source   InspectSource
	duration time.Duration
	cursor   int

	current simulation.Inspection
	until   time.Time
}

// NewInspector creates an inspector over source
func NewInspector(source InspectSource) *Inspector {
	return &Inspector{
		source:   source,
		duration: parameter.InspectDisplayDuration,
		cursor:   -1,
	}
}

// Select inspects ref and shows the result until now plus the display duration
func (i *Inspector) Select(ref simulation.Ref, now time.Time) bool {
	res, ok := i.source.Inspect(ref)
	if !ok {
		return false
	}
	i.current = res
	i.until = now.Add(i.duration)
	return true
}

// Next advances through targets in display order, wrapping at the end
func (i *Inspector) Next(now time.Time) bool {
	targets := i.source.Targets()
	if len(targets) == 0 {
		return false
	}
	i.cursor = (i.cursor + 1) % len(targets)
	return i.Select(targets[i.cursor], now)
}

// Active returns the shown result, nil once expired
func (i *Inspector) Active(now time.Time) *simulation.Inspection {
	if i.until.IsZero() || !now.Before(i.until) {
		return nil
	}
	res := i.current
	return &res
}

// Pick resolves a click on cell (col, row) to the nearest train within the pick radius,
// else to the station whose footprint contains it
func Pick(ctx RenderContext, col, row int) (simulation.Ref, bool) {
	if !ctx.HasMap() || !ctx.Proj.Contains(col, row) {
		return simulation.Ref{}, false
	}

	best, bestDist := -1, math.MaxInt
	for idx, tr := range ctx.Snap.Trains {
		x, y := ctx.Proj.Project(tr.Position)
		d := max(abs(x-col), abs(y-row))
		if d <= parameter.PickRadius && d < bestDist {
			best, bestDist = idx, d
		}
	}
	if best >= 0 {
		return simulation.TrainRef(ctx.Snap.Trains[best].ID), true
	}

	for _, st := range ctx.Snap.Stations {
		x0, y0, x1, y1 := ctx.Proj.Rect(st.Position, st.Footprint)
		if col >= x0 && col <= x1 && row >= y0 && row <= y1 {
			return simulation.StationRef(st.ID), true
		}
	}
	return simulation.Ref{}, false
}
