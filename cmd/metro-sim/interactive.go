package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/metro-sim/audio"
	"github.com/lixenwraith/metro-sim/config"
	"github.com/lixenwraith/metro-sim/core"
	"github.com/lixenwraith/metro-sim/render"
	"github.com/lixenwraith/metro-sim/simulation"
)

// app binds one simulation to one screen
type app struct {
	sim       *simulation.Simulation
	screen    tcell.Screen
	orch      *render.RenderOrchestrator
	panel     *render.PanelLayer
	inspector *render.Inspector
	logger    *slog.Logger

	// ctx is the layout of the last drawn frame, used to resolve clicks
	ctx render.RenderContext
}

func newApp(sim *simulation.Simulation, screen tcell.Screen, mode render.ColorMode, logger *slog.Logger) *app {
	orch, panel := render.NewDefaultOrchestrator(screen, mode)
	return &app{
		sim:       sim,
		screen:    screen,
		orch:      orch,
		panel:     panel,
		inspector: render.NewInspector(sim),
		logger:    logger,
	}
}

// draw renders the current snapshot with the active inspection
func (a *app) draw(now time.Time) {
	snap := a.sim.SnapshotAt(now)
	insp := a.inspector.Active(now)
	a.ctx = a.orch.Context(&snap, insp)
	a.orch.RenderFrame(&snap, insp)
}

// handleEvent applies one input event, returns false to quit
func (a *app) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyTab:
			a.inspector.Next(now)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				a.logger.Debug("heatmap key", "enabled", a.sim.ToggleHeatmap())
			case ' ':
				a.sim.TogglePause()
			case 'p':
				a.panel.Toggle()
			}
		}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 || a.ctx.Snap == nil {
			return true
		}
		x, y := ev.Position()
		if ref, ok := render.Pick(a.ctx, x, y); ok {
			a.inspector.Select(ref, now)
		}

	case *tcell.EventResize:
		a.orch.Resize()
	}
	return true
}

// runInteractive drives the terminal view until the user quits
func runInteractive(cfg *config.Config, debug bool) error {
	logger, closer, err := setupLogging(cfg, debug)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetResetHook(screen.Fini)
	screen.EnableMouse()
	screen.HideCursor()

	sim := simulation.New(simulation.OptionsFromConfig(cfg), logger)

	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the view runs without sound
			logger.Warn("audio initialization failed", "error", err)
		} else {
			sim.Register(sm)
			defer sm.Cleanup()
		}
	}

	a := newApp(sim, screen, render.ParseColorMode(cfg.Display.ColorMode), logger)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	core.Go(func() {
		screen.ChannelEvents(events, quit)
	})

	sim.Start()
	defer sim.Stop()
	a.draw(time.Now())

	// Paused simulations emit no frames, the ticker keeps the indicator pulse and inspection expiry live
	frameTicker := time.NewTicker(cfg.Simulation.FrameInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.handleEvent(ev, time.Now()) {
				logger.Info("quit requested")
				return nil
			}
			a.draw(time.Now())

		case <-sim.FrameDone():
			a.draw(time.Now())

		case <-frameTicker.C:
			if sim.IsPaused() {
				a.draw(time.Now())
			}
		}
	}
}
