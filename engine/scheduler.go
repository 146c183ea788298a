package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/metro-sim/core"
	"github.com/lixenwraith/metro-sim/event"
	"github.com/lixenwraith/metro-sim/parameter"
	"github.com/lixenwraith/metro-sim/status"
)

type periodicEntry struct {
	task     Periodic
	interval time.Duration
	elapsed  time.Duration
}

// Scheduler drives the simulation from a single goroutine
// Frame systems and periodic tasks share one serialised path: each frame runs
// the systems in priority order, then any periodic task whose interval elapsed,
// all under the state update lock, then dispatches queued events
type Scheduler struct {
	state  *State
	clock  *PausableClock
	router *event.Router

	systems  []System
	periodic []periodicEntry

	frameInterval time.Duration

	mu        sync.Mutex
	lastFrame time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	frameDone chan struct{}

	statTicks *atomic.Int64
	statDelta *status.Gauge
	statClock *status.Gauge
}

// NewScheduler creates a scheduler with the given frame interval
// Returns the scheduler and a channel signalled (non-blocking) after every frame
func NewScheduler(state *State, clock *PausableClock, router *event.Router, frameInterval time.Duration) (*Scheduler, <-chan struct{}) {
	if frameInterval <= 0 {
		frameInterval = parameter.FrameUpdateInterval
	}
	frameDone := make(chan struct{}, 1)

	s := &Scheduler{
		state:         state,
		clock:         clock,
		router:        router,
		frameInterval: frameInterval,
		stopChan:      make(chan struct{}),
		frameDone:     frameDone,
		statTicks:     state.Status.Ints.Get(status.KeyTicks),
		statDelta:     state.Status.Floats.Get(status.KeyFrameDelta),
		statClock:     state.Status.Floats.Get(status.KeyClockMins),
	}
	return s, frameDone
}

// AddSystem registers a frame system, must be called before Start()
func (s *Scheduler) AddSystem(sys System) {
	s.systems = append(s.systems, sys)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(s.systems)-1; i++ {
		for j := 0; j < len(s.systems)-i-1; j++ {
			if s.systems[j].Priority() > s.systems[j+1].Priority() {
				s.systems[j], s.systems[j+1] = s.systems[j+1], s.systems[j]
			}
		}
	}
}

// AddPeriodic registers a task fired every interval of unpaused time, must be called before Start()
func (s *Scheduler) AddPeriodic(task Periodic, interval time.Duration) {
	s.periodic = append(s.periodic, periodicEntry{task: task, interval: interval})
}

// Systems returns registered frame systems in run order
func (s *Scheduler) Systems() []System {
	result := make([]System, len(s.systems))
	copy(result, s.systems)
	return result
}

// Start begins the scheduler loop
func (s *Scheduler) Start() {
	if s.running.CompareAndSwap(false, true) {
		s.mu.Lock()
		s.lastFrame = s.clock.Now()
		s.mu.Unlock()

		s.wg.Add(1)
		core.Go(s.loop)
	}
}

// Stop halts the scheduler loop
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		if s.running.CompareAndSwap(true, false) {
			close(s.stopChan)
			s.wg.Wait()
		}
	})
}

// Pause freezes simulation time, rendering may continue
func (s *Scheduler) Pause() {
	if s.clock.Pause() {
		s.state.Emit(event.EventPauseChanged, &event.PausePayload{Paused: true})
	}
}

// Resume continues simulation time from where it was paused
func (s *Scheduler) Resume() {
	if s.clock.Resume() {
		s.mu.Lock()
		s.lastFrame = s.clock.Now()
		s.mu.Unlock()
		s.state.Emit(event.EventPauseChanged, &event.PausePayload{Paused: false})
	}
}

// TogglePause flips the pause state and returns the new state
func (s *Scheduler) TogglePause() bool {
	if s.clock.IsPaused() {
		s.Resume()
		return false
	}
	s.Pause()
	return true
}

// IsPaused returns current pause state
func (s *Scheduler) IsPaused() bool {
	return s.clock.IsPaused()
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			if s.clock.IsPaused() {
				// Events raised while paused (pause itself, heatmap toggles) still reach handlers
				s.router.DispatchAll()
				continue
			}

			now := s.clock.Now()
			s.mu.Lock()
			dt := now.Sub(s.lastFrame)
			s.lastFrame = now
			s.mu.Unlock()

			s.Step(dt)
		}
	}
}

// Step advances exactly one frame by dt
// Frame systems see dt capped at MaxFrameDelta, periodic tasks accumulate the raw dt
func (s *Scheduler) Step(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	frameDt := dt
	if frameDt > parameter.MaxFrameDelta {
		frameDt = parameter.MaxFrameDelta
	}

	s.state.RunSafe(func() {
		for _, sys := range s.systems {
			sys.Update(s.state, frameDt)
		}
		s.state.AdvanceFrame()

		for i := range s.periodic {
			p := &s.periodic[i]
			if p.interval <= 0 {
				continue
			}
			p.elapsed += dt
			if p.elapsed >= p.interval {
				p.task.Fire(s.state)
				p.elapsed -= p.interval
				// Far behind after a stall: fire once and realign
				if p.elapsed >= p.interval {
					p.elapsed = 0
				}
			}
		}
		s.statClock.Set(s.state.Clock.Minutes())
	})

	s.statTicks.Add(1)
	s.statDelta.Set(float64(frameDt) / float64(time.Millisecond))

	s.router.DispatchAll()

	select {
	case s.frameDone <- struct{}{}:
	default:
	}
}
