package system

import (
	"sync/atomic"

	"github.com/lixenwraith/metro-sim/component"
	"github.com/lixenwraith/metro-sim/engine"
	"github.com/lixenwraith/metro-sim/event"
	"github.com/lixenwraith/metro-sim/parameter"
	"github.com/lixenwraith/metro-sim/status"
)

// ArrivalSystem injects passengers on its own cadence
// Peak periods surge one random station, off-peak periods trickle into under-filled stations
type ArrivalSystem struct {
	statArrivals *atomic.Int64
	statSurges   *atomic.Int64
}

// NewArrivalSystem creates the periodic arrival generator
func NewArrivalSystem(s *engine.State) engine.Periodic {
	return &ArrivalSystem{
		statArrivals: s.Status.Ints.Get(status.KeyArrivals),
		statSurges:   s.Status.Ints.Get(status.KeySurges),
	}
}

// Name returns system's name
func (s *ArrivalSystem) Name() string {
	return "arrival"
}

// Fire runs one arrival period, caller holds the update lock
func (s *ArrivalSystem) Fire(state *engine.State) {
	if state.Clock.IsPeak() {
		st, added := PeakSurge(state)
		if st == nil || added == 0 {
			return
		}
		s.statSurges.Add(1)
		s.statArrivals.Add(int64(added))
		state.Emit(event.EventPeakSurge, &event.SurgePayload{Station: st.ID, Added: added})
		return
	}

	added := OffPeakArrivals(state)
	s.statArrivals.Add(int64(added))
	if added > 0 {
		state.Emit(event.EventOffPeakArrivals, &event.ArrivalsPayload{Added: added})
	}
}

// PeakSurge adds 25 (p=0.6) or 15 humans to one uniformly chosen station, capped by free space
func PeakSurge(s *engine.State) (*component.Station, int) {
	if len(s.Stations) == 0 {
		return nil, 0
	}
	st := s.Stations[s.RNG.Intn(len(s.Stations))]

	extra := parameter.PeakSurgeSmall
	if s.RNG.Float64() < parameter.PeakSurgeLargeProbability {
		extra = parameter.PeakSurgeLarge
	}
	added := min(extra, st.Free())
	for i := 0; i < added; i++ {
		st.Push(NewHuman(s, st))
	}
	return st, added
}

// OffPeakArrivals adds zero or one human to every station below half capacity
func OffPeakArrivals(s *engine.State) int {
	total := 0
	for _, st := range s.Stations {
		if float64(st.Len()) >= float64(st.Capacity)*parameter.OffPeakFillRatio {
			continue
		}
		n := min(s.RNG.Intn(2), st.Free())
		for i := 0; i < n; i++ {
			st.Push(NewHuman(s, st))
		}
		total += n
	}
	return total
}
