package engine

import (
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lixenwraith/metro-sim/component"
	"github.com/lixenwraith/metro-sim/event"
	"github.com/lixenwraith/metro-sim/network"
	"github.com/lixenwraith/metro-sim/status"
)

// State owns every piece of mutable simulation data
// All mutation goes through RunSafe so the frame tick and the arrival period never interleave
type State struct {
	updateMutex sync.Mutex

	RunID uuid.UUID

	Clock    *SimulatedClock
	Stations []*component.Station
	Trains   []*component.Train
	RNG      *rand.Rand

	Status *status.Registry
	Events *event.Queue

	stationIndex map[component.StationID]*component.Station
	trainIndex   map[component.LineID]*component.Train

	heatmap     atomic.Bool
	frame       atomic.Int64
	nextHumanID uint64
}

// NewState builds the network with empty crowds and trains at their first waypoint
func NewState(clock *SimulatedClock, seed int64) *State {
	s := &State{
		RunID:        uuid.New(),
		Clock:        clock,
		Stations:     network.NewStations(),
		Trains:       network.NewTrains(),
		RNG:          rand.New(rand.NewSource(seed)),
		Status:       status.NewRegistry(),
		Events:       event.NewQueue(),
		stationIndex: make(map[component.StationID]*component.Station),
		trainIndex:   make(map[component.LineID]*component.Train),
	}
	for _, st := range s.Stations {
		s.stationIndex[st.ID] = st
	}
	for _, tr := range s.Trains {
		s.trainIndex[tr.ID] = tr
	}
	return s
}

// RunSafe executes fn while holding the update lock
func (s *State) RunSafe(fn func()) {
	s.updateMutex.Lock()
	defer s.updateMutex.Unlock()
	fn()
}

// Station returns the station with id
func (s *State) Station(id component.StationID) (*component.Station, bool) {
	st, ok := s.stationIndex[id]
	return st, ok
}

// Train returns the train with id
func (s *State) Train(id component.LineID) (*component.Train, bool) {
	tr, ok := s.trainIndex[id]
	return tr, ok
}

// NextHumanID allocates a human identifier, caller holds the update lock
func (s *State) NextHumanID() uint64 {
	s.nextHumanID++
	return s.nextHumanID
}

// Heatmap reports whether density display is active
func (s *State) Heatmap() bool {
	return s.heatmap.Load()
}

// SetHeatmap flips the display mode, takes effect on next read
// Returns true if the value changed
func (s *State) SetHeatmap(enabled bool) bool {
	return s.heatmap.Swap(enabled) != enabled
}

// Frame returns the number of completed frame ticks
func (s *State) Frame() int64 {
	return s.frame.Load()
}

// AdvanceFrame increments the frame counter
func (s *State) AdvanceFrame() int64 {
	return s.frame.Add(1)
}

// Emit queues an event stamped with the current frame
func (s *State) Emit(t event.EventType, payload any) {
	s.Events.Push(event.Event{Type: t, Payload: payload, Frame: s.frame.Load()})
}
