package simulation

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/lixenwraith/metro-sim/component"
	"github.com/lixenwraith/metro-sim/parameter"
	"github.com/lixenwraith/metro-sim/status"
	"github.com/lixenwraith/metro-sim/system"
	"github.com/lixenwraith/metro-sim/vmath"
)

// TrainView is the observable state of one train
type TrainView struct {
	ID         component.LineID
	Elevated   bool
	Position   vmath.Vec3F
	Heading    float64
	State      component.TrainState
	T          float64
	Passengers int
}

// StationView is the observable state of one station
type StationView struct {
	ID          component.StationID
	Name        string
	Position    vmath.Vec3F
	Footprint   float64
	Interchange bool
	Elevated    bool
	Count       int
	Capacity    int
	Occupants   []vmath.Vec3F
	// Indicator shows when the crowd exceeds the threshold, Pulse is its current scale
	Indicator bool
	Pulse     float64
	// Tiles is populated only while heatmap display is active
	Tiles []system.Tile
}

// Snapshot is a consistent copy of everything a view needs for one frame
type Snapshot struct {
	RunID   uuid.UUID
	Frame   int64
	Minutes float64
	Clock   string
	Peak    bool
	Paused  bool
	Heatmap bool

	Trains   []TrainView
	Stations []StationView

	TotalHumans     int
	TotalPassengers int
	Counters        map[string]int64
}

// Snapshot captures current state with the indicator pulse evaluated at wall time now
func (s *Simulation) Snapshot() Snapshot {
	return s.SnapshotAt(time.Now())
}

// SnapshotAt captures current state with the indicator pulse evaluated at now
func (s *Simulation) SnapshotAt(now time.Time) Snapshot {
	ms := float64(now.UnixMilli())
	heatmap := s.state.Heatmap()

	var snap Snapshot
	s.state.RunSafe(func() {
		snap = Snapshot{
			RunID:   s.state.RunID,
			Frame:   s.state.Frame(),
			Minutes: s.state.Clock.Minutes(),
			Clock:   s.state.Clock.Format(),
			Peak:    s.state.Clock.IsPeak(),
			Heatmap: heatmap,
		}

		snap.Trains = lo.Map(s.state.Trains, func(tr *component.Train, _ int) TrainView {
			return TrainView{
				ID:         tr.ID,
				Elevated:   tr.Height > parameter.TrainOffset,
				Position:   tr.Position,
				Heading:    tr.Heading,
				State:      tr.State,
				T:          tr.T,
				Passengers: tr.Passengers,
			}
		})

		snap.Stations = lo.Map(s.state.Stations, func(st *component.Station, _ int) StationView {
			active, pulse := system.IndicatorPulse(st.Len(), st.Capacity, ms)
			view := StationView{
				ID:          st.ID,
				Name:        st.Name,
				Position:    st.Position,
				Footprint:   st.Footprint,
				Interchange: st.Interchange,
				Elevated:    st.Elevated,
				Count:       st.Len(),
				Capacity:    st.Capacity,
				Occupants: lo.Map(st.Crowd, func(h *component.Human, _ int) vmath.Vec3F {
					return h.Position
				}),
				Indicator: active,
				Pulse:     pulse,
			}
			if heatmap {
				view.Tiles = system.DensityField(s.state, st)
			}
			return view
		})
	})

	snap.Paused = s.IsPaused()
	snap.TotalHumans = lo.SumBy(snap.Stations, func(v StationView) int { return v.Count })
	snap.TotalPassengers = lo.SumBy(snap.Trains, func(v TrainView) int { return v.Passengers })
	snap.Counters = s.state.Status.Counters()
	snap.Counters[status.KeyEventsDropped] = int64(s.state.Events.Dropped())
	return snap
}
