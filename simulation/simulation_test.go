package simulation

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/metro-sim/config"
	"github.com/lixenwraith/metro-sim/event"
	"github.com/lixenwraith/metro-sim/logging"
	"github.com/lixenwraith/metro-sim/network"
	"github.com/lixenwraith/metro-sim/parameter"
)

func newTestSim(t *testing.T, startMinute float64, populate bool) *Simulation {
	t.Helper()
	return New(Options{
		StartMinute: startMinute,
		Seed:        99,
		Populate:    populate,
	}, nil)
}

func TestInvariantsOverLongRun(t *testing.T) {
	sim := newTestSim(t, 6*60, true)

	// ~2 simulated days at 16ms frames with peak surges included
	for i := 0; i < 20000; i++ {
		sim.Tick(parameter.FrameUpdateInterval)

		if i%50 != 0 {
			continue
		}
		snap := sim.Snapshot()
		for _, tr := range snap.Trains {
			if tr.T < 0 || tr.T > 1 {
				t.Fatalf("tick %d: %s progress out of range: %v", i, tr.ID, tr.T)
			}
			if tr.Passengers < 0 || tr.Passengers > parameter.TrainCapacity {
				t.Fatalf("tick %d: %s passengers out of range: %d", i, tr.ID, tr.Passengers)
			}
		}
		for _, st := range snap.Stations {
			if st.Count < 0 || st.Count > parameter.StationCapacity {
				t.Fatalf("tick %d: %s crowd out of range: %d", i, st.ID, st.Count)
			}
			if len(st.Occupants) != st.Count {
				t.Fatalf("tick %d: %s occupant list mismatch", i, st.ID)
			}
		}
		if snap.Minutes < 0 || snap.Minutes >= 1440 {
			t.Fatalf("tick %d: clock out of range: %v", i, snap.Minutes)
		}
	}

	counters := sim.Snapshot().Counters
	if counters["sim.stops"] == 0 || counters["sim.arrivals"] == 0 {
		t.Errorf("Expected stops and arrivals over a long run, got %v", counters)
	}
}

func TestSnapshotTotals(t *testing.T) {
	sim := newTestSim(t, 13*60, true)
	snap := sim.Snapshot()

	sum := 0
	for _, st := range snap.Stations {
		sum += st.Count
	}
	if snap.TotalHumans != sum {
		t.Errorf("Expected total %d, got %d", sum, snap.TotalHumans)
	}
	if snap.TotalPassengers != 0 {
		t.Errorf("Expected empty trains at start, got %d", snap.TotalPassengers)
	}
	if snap.Clock != "13:00" || snap.Peak {
		t.Errorf("Expected off-peak 13:00, got %s peak=%v", snap.Clock, snap.Peak)
	}
	if len(snap.Trains) != 4 || len(snap.Stations) != 6 {
		t.Errorf("Expected 4 trains and 6 stations, got %d/%d", len(snap.Trains), len(snap.Stations))
	}
	if snap.RunID != sim.RunID() {
		t.Error("Expected snapshot to carry run id")
	}
}

func TestHeatmapToggle(t *testing.T) {
	sim := newTestSim(t, 0, true)

	var toggles []bool
	sim.Register(event.HandlerFunc{
		Types: []event.EventType{event.EventHeatmapToggled},
		Fn:    func(ev event.Event) { toggles = append(toggles, ev.Payload.(*event.HeatmapPayload).Enabled) },
	})

	snap := sim.Snapshot()
	for _, st := range snap.Stations {
		if st.Tiles != nil {
			t.Fatalf("%s: expected no tiles while heatmap off", st.ID)
		}
	}

	if !sim.ToggleHeatmap() {
		t.Fatal("Expected heatmap on after toggle")
	}
	sim.SetHeatmap(true) // no change, no event

	snap = sim.Snapshot()
	if !snap.Heatmap {
		t.Error("Expected snapshot to report heatmap on")
	}
	for _, st := range snap.Stations {
		if len(st.Tiles) != 16 {
			t.Errorf("%s: expected 16 tiles, got %d", st.ID, len(st.Tiles))
		}
	}

	sim.Tick(parameter.FrameUpdateInterval)
	if len(toggles) != 1 || !toggles[0] {
		t.Errorf("Expected a single enable event, got %v", toggles)
	}
}

func TestInspect(t *testing.T) {
	sim := newTestSim(t, 0, true)
	snap := sim.Snapshot()
	counts := map[string]int{}
	for _, st := range snap.Stations {
		counts[string(st.ID)] = st.Count
	}

	tests := []struct {
		name  string
		ref   Ref
		label string
		count int
	}{
		{"terminal", StationRef(network.StationA), "Chikpete", counts["A"]},
		{"green half pooled", StationRef(network.StationBGreen), "Majestic", counts["B_green"] + counts["B_purple"]},
		{"purple half pooled", StationRef(network.StationBPurple), "Majestic", counts["B_green"] + counts["B_purple"]},
		{"train", TrainRef(network.LineDBE), "DBE", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sim.Inspect(tt.ref)
			if !ok {
				t.Fatal("Expected inspection to resolve")
			}
			if got.Label != tt.label || got.Count != tt.count {
				t.Errorf("Expected %s/%d, got %s/%d", tt.label, tt.count, got.Label, got.Count)
			}
		})
	}

	if _, ok := sim.Inspect(StationRef("Z")); ok {
		t.Error("Expected unknown station to fail")
	}
	if _, ok := sim.Inspect(TrainRef("XYZ")); ok {
		t.Error("Expected unknown train to fail")
	}
	if _, ok := sim.Inspect(Ref{Kind: 9}); ok {
		t.Error("Expected unknown ref kind to fail")
	}
}

func TestInspectionString(t *testing.T) {
	st := Inspection{Ref: StationRef("A"), Label: "Chikpete", Count: 12}
	if st.String() != "Station: Chikpete\nHumans: 12" {
		t.Errorf("Unexpected station text %q", st.String())
	}
	tr := Inspection{Ref: TrainRef("ABC"), Label: "ABC", Count: 3}
	if tr.String() != "Train: ABC\nPassengers: 3" {
		t.Errorf("Unexpected train text %q", tr.String())
	}
}

func TestTargets(t *testing.T) {
	sim := newTestSim(t, 0, false)
	targets := sim.Targets()
	if len(targets) != 10 {
		t.Fatalf("Expected 10 targets, got %d", len(targets))
	}
	for _, ref := range targets {
		if _, ok := sim.Inspect(ref); !ok {
			t.Errorf("Target %s does not resolve", ref)
		}
	}
}

func TestPauseToggle(t *testing.T) {
	sim := newTestSim(t, 100, false)
	if !sim.TogglePause() {
		t.Fatal("Expected pause")
	}
	if !sim.Snapshot().Paused {
		t.Error("Expected snapshot to report paused")
	}
	sim.TogglePause()
	if sim.IsPaused() {
		t.Error("Expected resumed")
	}
}

func TestLogHandlerWritesBoarding(t *testing.T) {
	var buf bytes.Buffer
	sim := New(Options{StartMinute: 8 * 60, Seed: 5, Populate: true}, logging.NewLogger("debug", &buf))

	// First stop snaps on tick 300 and boards on tick 301
	for i := 0; i < 400; i++ {
		sim.Tick(parameter.FrameUpdateInterval)
	}

	out := buf.String()
	if !strings.Contains(out, "msg=boarding") {
		t.Errorf("Expected boarding log line, got %q", out)
	}
	if !strings.Contains(out, "run="+sim.RunID().String()) {
		t.Error("Expected run id on log lines")
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Simulation.Seed = 3
	cfg.Display.Heatmap = true

	opts := OptionsFromConfig(cfg)
	if opts.Seed != 3 || !opts.Heatmap || opts.ArrivalInterval != 5*time.Second {
		t.Errorf("Unexpected options %+v", opts)
	}

	sim := New(opts, nil)
	if !sim.Heatmap() || sim.Seed() != 3 {
		t.Error("Expected options applied to simulation")
	}
}
