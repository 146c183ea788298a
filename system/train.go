package system

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/metro-sim/component"
	"github.com/lixenwraith/metro-sim/engine"
	"github.com/lixenwraith/metro-sim/event"
	"github.com/lixenwraith/metro-sim/parameter"
	"github.com/lixenwraith/metro-sim/status"
	"github.com/lixenwraith/metro-sim/vmath"
)

// TrainSystem runs the moving/waiting state machine of every train and triggers boarding
type TrainSystem struct {
	statStops    *atomic.Int64
	statAlighted *atomic.Int64
	statExited   *atomic.Int64
	statBoarded  *atomic.Int64
}

// NewTrainSystem creates a new train system bound to the state's registry
func NewTrainSystem(s *engine.State) engine.System {
	return &TrainSystem{
		statStops:    s.Status.Ints.Get(status.KeyStops),
		statAlighted: s.Status.Ints.Get(status.KeyAlighted),
		statExited:   s.Status.Ints.Get(status.KeyExited),
		statBoarded:  s.Status.Ints.Get(status.KeyBoarded),
	}
}

// Name returns system's name
func (s *TrainSystem) Name() string {
	return "train"
}

// Priority returns the system's priority
func (s *TrainSystem) Priority() int {
	return parameter.PriorityTrain
}

// Update advances each train by one tick; speed is per tick, dt is unused
func (s *TrainSystem) Update(state *engine.State, dt time.Duration) {
	for _, tr := range state.Trains {
		if StepTrain(tr) {
			s.statStops.Add(1)
			state.Emit(event.EventTrainStopped, &event.TrainStoppedPayload{
				Train:   tr.ID,
				Station: tr.Stops[tr.StopIndex()],
			})
		}
		PlaceTrain(tr)

		if !BoardingDue(tr) {
			continue
		}
		stationID := tr.Stops[tr.StopIndex()]
		st, ok := state.Station(stationID)
		if !ok {
			continue
		}

		res := Board(state, tr, st)
		s.statAlighted.Add(int64(res.Alighted))
		s.statExited.Add(int64(res.Exited + res.TurnedAway))
		s.statBoarded.Add(int64(res.Boarded))

		state.Emit(event.EventBoarding, &event.BoardingPayload{
			Train:      tr.ID,
			Station:    stationID,
			Alighted:   res.Alighted,
			Exited:     res.Exited,
			TurnedAway: res.TurnedAway,
			Boarded:    res.Boarded,
			Passengers: tr.Passengers,
			Crowd:      st.Len(),
		})
	}
}

// StepTrain advances the motion state machine by one tick
// Returns true when the train entered the waiting state on this tick
func StepTrain(tr *component.Train) bool {
	switch tr.State {
	case component.TrainMoving:
		tr.T += parameter.TrainSpeed * float64(tr.Direction)
		switch {
		case tr.T >= 1:
			tr.T = 1
			tr.Direction = -1
		case tr.T <= 0:
			tr.T = 0
			tr.Direction = 1
		case math.Abs(tr.T-0.5) < parameter.MidpointEpsilon:
			tr.T = 0.5
		default:
			return false
		}
		tr.State = component.TrainWaiting
		tr.WaitTimer = parameter.WaitFrames
		return true

	case component.TrainWaiting:
		tr.WaitTimer--
		if tr.WaitTimer <= 0 {
			tr.State = component.TrainMoving
		}
	}
	return false
}

// PlaceTrain derives world position and heading from path progress
// Heading follows the active segment, not the travel direction
func PlaceTrain(tr *component.Train) {
	from, to := tr.Path[0], tr.Path[1]
	if tr.T >= 0.5 {
		from, to = tr.Path[1], tr.Path[2]
	}
	segT := math.Mod(tr.T, 0.5) * 2
	// T == 1 maps onto the segment end, Mod alone would wrap it to the start
	if tr.T >= 1 {
		segT = 1
	}

	tr.Position = vmath.V3FLerp(from, to, segT)
	tr.Position.Y = tr.Height
	tr.Heading = vmath.Heading(vmath.V3FSub(to, from))
}

// BoardingDue reports the single tick per stop on which boarding runs
// That is the first waiting tick after the stop snap, one decrement into the dwell
func BoardingDue(tr *component.Train) bool {
	return tr.StopIndex() >= 0 &&
		tr.State == component.TrainWaiting &&
		tr.WaitTimer == parameter.WaitFrames-1
}
