// Package simulation is the controller that owns the metro state and exposes the
// view contract: ticking, heatmap toggle, inspection and snapshots.
package simulation

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/metro-sim/config"
	"github.com/lixenwraith/metro-sim/engine"
	"github.com/lixenwraith/metro-sim/event"
	"github.com/lixenwraith/metro-sim/logging"
	"github.com/lixenwraith/metro-sim/network"
	"github.com/lixenwraith/metro-sim/parameter"
	"github.com/lixenwraith/metro-sim/system"
)

// Options configures a Simulation
type Options struct {
	StartMinute      float64
	SecondsPerMinute float64
	// Seed zero seeds from the wall clock
	Seed            int64
	FrameInterval   time.Duration
	ArrivalInterval time.Duration
	Populate        bool
	Heatmap         bool
	// TimeProvider drives the pausable clock, nil uses the monotonic clock
	TimeProvider engine.TimeProvider
}

// OptionsFromConfig maps loaded configuration onto simulation options
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		StartMinute:      cfg.Simulation.StartMinute,
		SecondsPerMinute: cfg.Simulation.SecondsPerMinute,
		Seed:             cfg.Simulation.Seed,
		FrameInterval:    cfg.Simulation.FrameInterval,
		ArrivalInterval:  cfg.Simulation.ArrivalInterval,
		Populate:         cfg.Simulation.Populate,
		Heatmap:          cfg.Display.Heatmap,
	}
}

// Simulation wires state, systems, scheduler and event routing
type Simulation struct {
	state     *engine.State
	scheduler *engine.Scheduler
	router    *event.Router
	frameDone <-chan struct{}

	logger *slog.Logger
	seed   int64
}

// New builds a ready-to-run simulation; call Start for real-time ticking or Tick to step manually
func New(opts Options, logger *slog.Logger) *Simulation {
	if logger == nil {
		logger = logging.Discard()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	provider := opts.TimeProvider
	if provider == nil {
		provider = engine.NewMonotonicTimeProvider()
	}
	arrivalInterval := opts.ArrivalInterval
	if arrivalInterval <= 0 {
		arrivalInterval = parameter.ArrivalInterval
	}

	state := engine.NewState(engine.NewSimulatedClock(opts.StartMinute, opts.SecondsPerMinute), seed)
	clock := engine.NewPausableClock(provider)
	router := event.NewRouter(state.Events)
	scheduler, frameDone := engine.NewScheduler(state, clock, router, opts.FrameInterval)

	scheduler.AddSystem(system.NewClockSystem())
	scheduler.AddSystem(system.NewTrainSystem(state))
	scheduler.AddSystem(system.NewCrowdSystem())
	scheduler.AddPeriodic(system.NewArrivalSystem(state), arrivalInterval)

	sim := &Simulation{
		state:     state,
		scheduler: scheduler,
		router:    router,
		frameDone: frameDone,
		logger:    logger.With("run", state.RunID.String()),
		seed:      seed,
	}
	router.Register(NewLogHandler(sim.logger))

	if opts.Populate {
		var total int
		state.RunSafe(func() {
			total = system.Populate(state)
		})
		sim.logger.Info("stations populated", "humans", total)
	}
	state.SetHeatmap(opts.Heatmap)

	sim.logger.Info("simulation created",
		"seed", seed,
		"start", state.Clock.Format(),
		"stations", len(state.Stations),
		"trains", len(state.Trains),
	)
	return sim
}

// RunID identifies this run in logs and snapshots
func (s *Simulation) RunID() uuid.UUID {
	return s.state.RunID
}

// Seed returns the effective random seed
func (s *Simulation) Seed() int64 {
	return s.seed
}

// Register adds an event handler, must be called before Start
func (s *Simulation) Register(h event.Handler) {
	s.router.Register(h)
}

// Start begins real-time ticking on the scheduler goroutine
func (s *Simulation) Start() {
	s.scheduler.Start()
}

// Stop halts real-time ticking
func (s *Simulation) Stop() {
	s.scheduler.Stop()
}

// FrameDone is signalled after every completed frame
func (s *Simulation) FrameDone() <-chan struct{} {
	return s.frameDone
}

// Tick advances one frame by the real elapsed delta and dispatches its events
// Not to be mixed with Start on the same simulation
func (s *Simulation) Tick(dt time.Duration) {
	s.scheduler.Step(dt)
}

// TogglePause flips pause and returns the new state
func (s *Simulation) TogglePause() bool {
	return s.scheduler.TogglePause()
}

// IsPaused reports whether simulated time is frozen
func (s *Simulation) IsPaused() bool {
	return s.scheduler.IsPaused()
}

// Heatmap reports whether density display is active
func (s *Simulation) Heatmap() bool {
	return s.state.Heatmap()
}

// SetHeatmap switches display mode, effective on the next snapshot
func (s *Simulation) SetHeatmap(enabled bool) {
	if s.state.SetHeatmap(enabled) {
		s.state.Emit(event.EventHeatmapToggled, &event.HeatmapPayload{Enabled: enabled})
	}
}

// ToggleHeatmap flips display mode and returns the new value
func (s *Simulation) ToggleHeatmap() bool {
	enabled := !s.state.Heatmap()
	s.SetHeatmap(enabled)
	return enabled
}

// Inspect resolves a reference to its display label and count
// Returns false for unknown ids
func (s *Simulation) Inspect(ref Ref) (Inspection, bool) {
	var (
		result Inspection
		ok     bool
	)
	s.state.RunSafe(func() {
		result, ok = s.inspect(ref)
	})
	return result, ok
}

func (s *Simulation) inspect(ref Ref) (Inspection, bool) {
	switch ref.Kind {
	case RefStation:
		st, ok := s.state.Station(ref.Station)
		if !ok {
			return Inspection{}, false
		}
		if partnerID, pooled := network.InterchangePartner(st.ID); pooled {
			count := st.Len()
			if partner, ok := s.state.Station(partnerID); ok {
				count += partner.Len()
			}
			return Inspection{Ref: ref, Label: parameter.InterchangeLabel, Count: count}, true
		}
		return Inspection{Ref: ref, Label: st.Name, Count: st.Len()}, true

	case RefTrain:
		tr, ok := s.state.Train(ref.Train)
		if !ok {
			return Inspection{}, false
		}
		return Inspection{Ref: ref, Label: string(tr.ID), Count: tr.Passengers}, true
	}
	return Inspection{}, false
}

// Targets lists every inspectable reference in display order
func (s *Simulation) Targets() []Ref {
	refs := make([]Ref, 0, len(network.Stations)+len(network.Lines))
	for _, def := range network.Stations {
		refs = append(refs, StationRef(def.ID))
	}
	for _, def := range network.Lines {
		refs = append(refs, TrainRef(def.ID))
	}
	return refs
}
