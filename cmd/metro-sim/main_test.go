package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/metro-sim/config"
	"github.com/lixenwraith/metro-sim/logging"
	"github.com/lixenwraith/metro-sim/render"
	"github.com/lixenwraith/metro-sim/simulation"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runRoot(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "metro-sim version "+version) {
		t.Errorf("Unexpected output %q", out)
	}
}

func TestConfigCommandAppliesFlags(t *testing.T) {
	out, err := runRoot(t, "config", "--seed", "7", "--start", "17:30", "--heatmap", "--color", "256")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	for _, want := range []string{"seed: 7", "start_minute: 1050", "heatmap: true", "color_mode: \"256\""} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

func TestConfigCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metro.yaml")
	if err := os.WriteFile(path, []byte("simulation:\n  seed: 42\naudio:\n  volume: 0.25\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out, err := runRoot(t, "config", "--config", path)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out, "seed: 42") || !strings.Contains(out, "volume: 0.25") {
		t.Errorf("Expected file values in output:\n%s", out)
	}
}

func TestInvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad start", []string{"config", "--start", "25:00"}},
		{"bad color", []string{"config", "--color", "mono"}},
		{"negative ticks", []string{"headless", "--ticks", "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runRoot(t, tt.args...); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"00:00", 0, true},
		{"07:05", 425, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"7", 0, false},
		{"aa:bb", 0, false},
	}
	for _, tt := range tests {
		got, err := parseClock(tt.in)
		if (err == nil) != tt.ok || (tt.ok && got != tt.want) {
			t.Errorf("%q: expected %v/%v, got %v/%v", tt.in, tt.want, tt.ok, got, err)
		}
	}
}

func TestSetupLoggingDisabledByDefault(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Dir = filepath.Join(t.TempDir(), "logs")

	logger, closer, err := setupLogging(cfg, false)
	if err != nil || closer != nil || logger == nil {
		t.Fatalf("Expected discard logger without file, got %v %v", closer, err)
	}
	if _, err := os.Stat(cfg.Logging.Dir); !os.IsNotExist(err) {
		t.Error("Expected no log directory without debug")
	}
}

func TestSetupLoggingEnabledWithDebug(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Dir = filepath.Join(t.TempDir(), "logs")

	logger, closer, err := setupLogging(cfg, true)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	logger.Debug("debug line")
	closer.Close()

	data, err := os.ReadFile(filepath.Join(cfg.Logging.Dir, logging.LogFileName))
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "logging started") || !strings.Contains(string(data), "debug line") {
		t.Errorf("Expected debug records in log, got %q", data)
	}
}

func TestSetupLoggingLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		debug     bool
		wantFile  bool
		wantDebug bool
	}{
		{"default discards", "", false, false, false},
		{"configured info", "info", false, true, false},
		{"configured trace", "trace", false, true, true},
		{"debug raises info", "info", true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Logging.Dir = filepath.Join(t.TempDir(), "logs")
			cfg.Logging.Level = tt.level

			logger, closer, err := setupLogging(cfg, tt.debug)
			if err != nil {
				t.Fatalf("setupLogging: %v", err)
			}
			if (closer != nil) != tt.wantFile {
				t.Fatalf("Expected log file %v, got closer %v", tt.wantFile, closer)
			}
			if !tt.wantFile {
				return
			}
			logger.Info("info line")
			logger.Debug("debug line")
			closer.Close()

			data, err := os.ReadFile(filepath.Join(cfg.Logging.Dir, logging.LogFileName))
			if err != nil {
				t.Fatalf("reading log: %v", err)
			}
			if !strings.Contains(string(data), "info line") {
				t.Errorf("Expected info record, got %q", data)
			}
			if strings.Contains(string(data), "debug line") != tt.wantDebug {
				t.Errorf("Expected debug record %v, got %q", tt.wantDebug, data)
			}
		})
	}
}

func TestHeadlessText(t *testing.T) {
	cfg := config.Default()
	cfg.Simulation.Seed = 5

	var out bytes.Buffer
	if err := runHeadless(&out, cfg, logging.Discard(), 400, false); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	text := out.String()
	for _, want := range []string{"seed 5", "400 ticks", "stations:", "Chikpete", "trains:", "ABC", "counters:", "sim.stops"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in summary:\n%s", want, text)
		}
	}
}

func TestHeadlessJSON(t *testing.T) {
	cfg := config.Default()
	cfg.Simulation.Seed = 5

	var out bytes.Buffer
	if err := runHeadless(&out, cfg, logging.Discard(), 400, true); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	var got headlessSummary
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decoding summary: %v", err)
	}
	if got.Seed != 5 || got.Ticks != 400 || len(got.Stations) != 6 || len(got.Trains) != 4 {
		t.Errorf("Unexpected summary %+v", got)
	}
	sum := 0
	for _, n := range got.Stations {
		sum += n
	}
	if sum != got.Humans {
		t.Errorf("Expected station counts to sum to %d, got %d", got.Humans, sum)
	}
	// First stops snap on tick 300
	if got.Counters["sim.stops"] == 0 {
		t.Error("Expected stops within 400 ticks")
	}
}

func newTestApp(t *testing.T) *app {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(120, 40)
	t.Cleanup(screen.Fini)

	sim := simulation.New(simulation.Options{Seed: 8, Populate: true}, logging.Discard())
	return newApp(sim, screen, render.ColorModeTrueColor, logging.Discard())
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHandleKeys(t *testing.T) {
	a := newTestApp(t)
	now := time.Unix(500, 0)
	a.draw(now)

	if !a.handleEvent(key('h'), now) || !a.sim.Heatmap() {
		t.Error("Expected h to enable heatmap")
	}
	if !a.handleEvent(key(' '), now) || !a.sim.IsPaused() {
		t.Error("Expected space to pause")
	}
	if !a.handleEvent(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), now) {
		t.Fatal("Expected tab to continue")
	}
	if got := a.inspector.Active(now); got == nil || got.Ref != a.sim.Targets()[0] {
		t.Errorf("Expected first target inspected, got %+v", got)
	}
	if !a.handleEvent(key('p'), now) || a.panel.IsVisible() {
		t.Error("Expected p to hide the panel")
	}

	if a.handleEvent(key('q'), now) {
		t.Error("Expected q to quit")
	}
	if a.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), now) {
		t.Error("Expected escape to quit")
	}
}

func TestMouseInspectsStation(t *testing.T) {
	a := newTestApp(t)
	now := time.Unix(500, 0)
	a.draw(now)

	// Off-track corner of the interchange platform
	x, y := a.ctx.Proj.Project(a.ctx.Snap.Stations[1].Position)
	x, y = x+5, y-3
	a.handleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone), now)

	got := a.inspector.Active(now)
	if got == nil || got.Label != "Majestic" {
		t.Fatalf("Expected interchange inspection, got %+v", got)
	}

	a.draw(now.Add(time.Second))
	a.draw(now.Add(3 * time.Second))
	if a.inspector.Active(now.Add(3*time.Second)) != nil {
		t.Error("Expected inspection to expire")
	}
}
