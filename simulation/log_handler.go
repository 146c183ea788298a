package simulation

import (
	"log/slog"

	"github.com/lixenwraith/metro-sim/event"
)

// LogHandler writes simulation events to the structured log
type LogHandler struct {
	logger *slog.Logger
}

// NewLogHandler creates a handler bound to logger
func NewLogHandler(logger *slog.Logger) *LogHandler {
	return &LogHandler{logger: logger}
}

// EventTypes returns the event types LogHandler handles
func (h *LogHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventTrainStopped,
		event.EventBoarding,
		event.EventPeakSurge,
		event.EventOffPeakArrivals,
		event.EventHeatmapToggled,
		event.EventPauseChanged,
	}
}

// HandleEvent logs one event at a level matching its frequency
func (h *LogHandler) HandleEvent(ev event.Event) {
	switch p := ev.Payload.(type) {
	case *event.TrainStoppedPayload:
		h.logger.Debug("train stopped", "frame", ev.Frame, "train", p.Train, "station", p.Station)
	case *event.BoardingPayload:
		h.logger.Debug("boarding",
			"frame", ev.Frame,
			"train", p.Train,
			"station", p.Station,
			"alighted", p.Alighted,
			"exited", p.Exited,
			"turned_away", p.TurnedAway,
			"boarded", p.Boarded,
			"passengers", p.Passengers,
			"crowd", p.Crowd,
		)
	case *event.SurgePayload:
		h.logger.Info("peak surge", "frame", ev.Frame, "station", p.Station, "added", p.Added)
	case *event.ArrivalsPayload:
		h.logger.Debug("off-peak arrivals", "frame", ev.Frame, "added", p.Added)
	case *event.HeatmapPayload:
		h.logger.Info("heatmap toggled", "enabled", p.Enabled)
	case *event.PausePayload:
		h.logger.Info("pause changed", "paused", p.Paused)
	}
}
