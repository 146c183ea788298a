package system

import (
	"math"

	"github.com/lixenwraith/metro-sim/component"
	"github.com/lixenwraith/metro-sim/engine"
	"github.com/lixenwraith/metro-sim/parameter"
)

// BoardingResult summarises one alight, exit and board transaction
// Crowd after = crowd before + Alighted - Exited - TurnedAway - Boarded
type BoardingResult struct {
	Alighted int
	Exited   int
	// TurnedAway counts alighted humans that did not fit on a full platform and left
	TurnedAway int
	Boarded    int
}

// AlightProbability returns the fraction of passengers leaving a train at a station
func AlightProbability(st *component.Station) float64 {
	if st.Interchange {
		return parameter.AlightInterchange
	}
	return parameter.AlightTerminal
}

// Board runs the stop transaction between a train and the station it waits at
// Caller holds the update lock so no intermediate state is observable
func Board(s *engine.State, tr *component.Train, st *component.Station) BoardingResult {
	var res BoardingResult

	// Alight
	res.Alighted = int(math.Floor(float64(tr.Passengers) * AlightProbability(st)))
	tr.Passengers -= res.Alighted

	alighted := make([]*component.Human, res.Alighted)
	for i := range alighted {
		alighted[i] = NewHuman(s, st)
	}

	// Exit: uniform selection without replacement, the shuffled head leaves
	res.Exited = int(math.Floor(float64(res.Alighted) * parameter.ExitProbability))
	s.RNG.Shuffle(len(alighted), func(i, j int) {
		alighted[i], alighted[j] = alighted[j], alighted[i]
	})
	for _, h := range alighted[res.Exited:] {
		if st.Free() == 0 {
			res.TurnedAway++
			continue
		}
		st.Push(h)
	}

	// Board: Bernoulli trial per candidate slot, winners pop from the crowd end
	candidates := min(parameter.TrainCapacity-tr.Passengers, st.Len())
	slots := 0
	for i := 0; i < candidates; i++ {
		if s.RNG.Float64() < parameter.BoardProbability {
			slots++
		}
	}
	for i := 0; i < slots; i++ {
		if _, ok := st.Pop(); !ok {
			break
		}
		tr.Passengers++
		res.Boarded++
	}

	return res
}
