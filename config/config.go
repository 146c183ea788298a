// Package config provides unified configuration loading for metro-sim.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/metro-sim/parameter"
)

// Config contains all metro-sim configuration settings.
type Config struct {
	// Simulation contains clock, seeding and cadence settings.
	Simulation SimulationConfig `yaml:"simulation"`

	// Display contains terminal view settings.
	Display DisplayConfig `yaml:"display"`

	// Audio contains sound cue settings.
	Audio AudioConfig `yaml:"audio"`

	// Logging contains settings for the debug log file.
	Logging LoggingConfig `yaml:"logging"`
}

// SimulationConfig configures the simulation core.
type SimulationConfig struct {
	// SecondsPerMinute is real seconds per simulated minute.
	SecondsPerMinute float64 `yaml:"seconds_per_minute"`

	// StartMinute is the time of day at startup, minutes since midnight.
	StartMinute float64 `yaml:"start_minute"`

	// Seed fixes the random source. Zero seeds from the wall clock.
	Seed int64 `yaml:"seed"`

	// ArrivalInterval is the period of the passenger arrival generator.
	ArrivalInterval time.Duration `yaml:"arrival_interval"`

	// FrameInterval is the tick period of the simulation loop.
	FrameInterval time.Duration `yaml:"frame_interval"`

	// Populate fills stations with a random startup crowd.
	Populate bool `yaml:"populate"`
}

// DisplayConfig configures the terminal view.
type DisplayConfig struct {
	// Heatmap starts the view in density mode.
	Heatmap bool `yaml:"heatmap"`

	// ColorMode selects "truecolor" or "256".
	ColorMode string `yaml:"color_mode"`
}

// AudioConfig configures sound cues.
type AudioConfig struct {
	// Enabled turns on boarding chimes and surge tones.
	Enabled bool `yaml:"enabled"`

	// Volume is the master gain, 0.0 to 1.0.
	Volume float64 `yaml:"volume"`
}

// LoggingConfig configures the debug log.
type LoggingConfig struct {
	// Level sets the log verbosity: "info", "debug", or "trace".
	// Empty disables the log file unless --debug is given.
	Level string `yaml:"level"`

	// Dir is the directory holding the rotated log file.
	Dir string `yaml:"dir"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			SecondsPerMinute: parameter.RealSecondsPerSimMinute,
			StartMinute:      6 * 60,
			Seed:             0,
			ArrivalInterval:  parameter.ArrivalInterval,
			FrameInterval:    parameter.FrameUpdateInterval,
			Populate:         true,
		},
		Display: DisplayConfig{
			Heatmap:   false,
			ColorMode: "truecolor",
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.5,
		},
		Logging: LoggingConfig{
			Level: "",
			Dir:   "logs",
		},
	}
}

// Load loads configuration from the default locations and environment variables.
// Order: defaults -> ~/.metro-sim/config.yaml -> environment variables
func Load() (*Config, error) {
	config := Default()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".metro-sim", "config.yaml")
		if _, statErr := os.Stat(configPath); statErr == nil {
			fileConfig, loadErr := LoadFromFile(configPath)
			if loadErr != nil {
				return nil, fmt.Errorf("loading config file: %w", loadErr)
			}
			config = fileConfig
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadPath loads configuration from an explicit file, then applies environment overrides.
func LoadPath(path string) (*Config, error) {
	config, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	applyEnvOverrides(config)
	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Simulation.SecondsPerMinute <= 0 {
		return fmt.Errorf("seconds_per_minute must be positive, got %f", c.Simulation.SecondsPerMinute)
	}

	if c.Simulation.StartMinute < 0 || c.Simulation.StartMinute >= parameter.MinutesPerDay {
		return fmt.Errorf("start_minute must be in [0, 1440), got %f", c.Simulation.StartMinute)
	}

	if c.Simulation.ArrivalInterval <= 0 {
		return fmt.Errorf("arrival_interval must be positive, got %v", c.Simulation.ArrivalInterval)
	}

	if c.Simulation.FrameInterval <= 0 {
		return fmt.Errorf("frame_interval must be positive, got %v", c.Simulation.FrameInterval)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("volume must be between 0 and 1, got %f", c.Audio.Volume)
	}

	validModes := map[string]bool{"truecolor": true, "256": true}
	if !validModes[c.Display.ColorMode] {
		return fmt.Errorf("invalid color mode: %s (valid: truecolor, 256)", c.Display.ColorMode)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty to disable)", c.Logging.Level)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("METRO_SIM_SECONDS_PER_MINUTE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Simulation.SecondsPerMinute = f
		}
	}

	if v := os.Getenv("METRO_SIM_START_MINUTE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Simulation.StartMinute = f
		}
	}

	if v := os.Getenv("METRO_SIM_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.Simulation.Seed = n
		}
	}

	if v := os.Getenv("METRO_SIM_ARRIVAL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.Simulation.ArrivalInterval = d
		}
	}

	if v := os.Getenv("METRO_SIM_HEATMAP"); v != "" {
		config.Display.Heatmap = v == "true" || v == "1"
	}

	if v := os.Getenv("METRO_SIM_AUDIO_ENABLED"); v != "" {
		config.Audio.Enabled = v == "true" || v == "1"
	}

	if v := os.Getenv("METRO_SIM_VOLUME"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Audio.Volume = f
		}
	}

	if v := os.Getenv("METRO_SIM_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
}
