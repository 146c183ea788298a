package main

import (
	"io"
	"log/slog"

	"github.com/lixenwraith/metro-sim/config"
	"github.com/lixenwraith/metro-sim/logging"
)

// setupLogging returns a discarding logger unless debug is set or a level is
// configured, in which case records go to the rotated log file under the
// configured directory. Debug raises the level to at least debug.
// The terminal owns stdout and stderr while the view runs
func setupLogging(cfg *config.Config, debug bool) (*slog.Logger, io.Closer, error) {
	if !debug && cfg.Logging.Level == "" {
		return logging.Discard(), nil, nil
	}

	f, err := logging.OpenFile(cfg.Logging.Dir)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.Logging.Level
	if level == "" {
		level = "info"
	}
	if debug && logging.ParseLevel(level) > logging.ParseLevel("debug") {
		level = "debug"
	}
	logger := logging.NewLogger(level, f)
	logger.Info("logging started", "version", version, "level", level)
	return logger, f, nil
}
