package system

import (
	"testing"

	"github.com/lixenwraith/metro-sim/component"
	"github.com/lixenwraith/metro-sim/engine"
	"github.com/lixenwraith/metro-sim/network"
	"github.com/lixenwraith/metro-sim/parameter"
)

func newBoardingState(seed int64) *engine.State {
	return engine.NewState(engine.NewSimulatedClock(780, 0), seed)
}

func fillStation(s *engine.State, st *component.Station, n int) {
	for i := 0; i < n; i++ {
		st.Push(NewHuman(s, st))
	}
}

func TestBoardTerminalScenario(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		s := newBoardingState(seed)
		st, _ := s.Station(network.StationA)
		fillStation(s, st, 20)
		tr := &component.Train{Passengers: 10}

		res := Board(s, tr, st)

		if res.Alighted != 5 {
			t.Fatalf("seed %d: expected 5 alighted, got %d", seed, res.Alighted)
		}
		if res.Exited < 0 || res.Exited > 5 {
			t.Fatalf("seed %d: exited out of [0,5]: %d", seed, res.Exited)
		}
		if res.Boarded > min(15-5, 20+res.Alighted-res.Exited) {
			t.Fatalf("seed %d: boarded %d exceeds candidates", seed, res.Boarded)
		}
		if got, want := st.Len(), 20+res.Alighted-res.Exited-res.TurnedAway-res.Boarded; got != want {
			t.Fatalf("seed %d: crowd %d, want %d", seed, got, want)
		}
		if got, want := tr.Passengers, 10-res.Alighted+res.Boarded; got != want {
			t.Fatalf("seed %d: passengers %d, want %d", seed, got, want)
		}
	}
}

func TestBoardConservation(t *testing.T) {
	tests := []struct {
		name       string
		station    component.StationID
		passengers int
		crowd      int
	}{
		{"terminal empty train", network.StationC, 0, 12},
		{"terminal full train", network.StationD, 15, 30},
		{"interchange", network.StationBPurple, 12, 8},
		{"empty platform", network.StationE, 9, 0},
		{"full platform", network.StationA, 15, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(1); seed <= 50; seed++ {
				s := newBoardingState(seed)
				st, _ := s.Station(tt.station)
				fillStation(s, st, tt.crowd)
				tr := &component.Train{Passengers: tt.passengers}

				res := Board(s, tr, st)

				// Alighters that find the platform full leave as TurnedAway, so the crowd stays within capacity
				if st.Len() != tt.crowd+res.Alighted-res.Exited-res.TurnedAway-res.Boarded {
					t.Fatalf("seed %d: crowd conservation broken: %+v len=%d", seed, res, st.Len())
				}
				if tr.Passengers != tt.passengers-res.Alighted+res.Boarded {
					t.Fatalf("seed %d: passenger conservation broken: %+v", seed, res)
				}
				if tr.Passengers < 0 || tr.Passengers > parameter.TrainCapacity {
					t.Fatalf("seed %d: passengers out of range: %d", seed, tr.Passengers)
				}
				if st.Len() < 0 || st.Len() > parameter.StationCapacity {
					t.Fatalf("seed %d: crowd out of range: %d", seed, st.Len())
				}
			}
		})
	}
}

func TestBoardInterchangeAlightRate(t *testing.T) {
	s := newBoardingState(3)
	st, _ := s.Station(network.StationBGreen)
	tr := &component.Train{Passengers: 15}

	res := Board(s, tr, st)
	// floor(15*0.2) = 3, floor(3*0.9) = 2
	if res.Alighted != 3 || res.Exited != 2 {
		t.Errorf("Expected 3 alighted and 2 exited, got %+v", res)
	}
}

func TestBoardNoOp(t *testing.T) {
	s := newBoardingState(1)
	st, _ := s.Station(network.StationA)
	tr := &component.Train{}

	res := Board(s, tr, st)
	if res != (BoardingResult{}) {
		t.Errorf("Expected zero result for empty train and platform, got %+v", res)
	}
	if st.Len() != 0 || tr.Passengers != 0 {
		t.Errorf("Expected untouched state, got crowd=%d passengers=%d", st.Len(), tr.Passengers)
	}
}

func TestBoardFullPlatformTurnsAway(t *testing.T) {
	s := newBoardingState(5)
	st, _ := s.Station(network.StationC)
	fillStation(s, st, parameter.StationCapacity)
	// Alighting runs before boarding frees any room
	tr := &component.Train{Passengers: 15}

	res := Board(s, tr, st)
	// floor(15*0.5)=7 alight, floor(7*0.9)=6 exit, 1 remaining cannot fit
	if res.Alighted != 7 || res.Exited != 6 || res.TurnedAway != 1 {
		t.Errorf("Expected 7/6/1, got %+v", res)
	}
	if st.Len() > parameter.StationCapacity {
		t.Errorf("Crowd over capacity: %d", st.Len())
	}
}

func TestAlightProbability(t *testing.T) {
	s := newBoardingState(1)
	for _, st := range s.Stations {
		want := parameter.AlightTerminal
		if st.ID == network.StationBGreen || st.ID == network.StationBPurple {
			want = parameter.AlightInterchange
		}
		if got := AlightProbability(st); got != want {
			t.Errorf("%s: expected %v, got %v", st.ID, want, got)
		}
	}
}
