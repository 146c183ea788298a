package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/metro-sim/config"
	"github.com/lixenwraith/metro-sim/core"
)

var version = "0.1.0-dev"

func main() {
	// Panic Recovery: Ensure terminal is reset even if the view crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "metro-sim",
		Short: "Terminal metro simulation",
		Long: `metro-sim runs a four-train, two-line metro with a simulated clock,
peak-hour crowd surges and platform density heatmaps in the terminal.

Keys: h heatmap, tab inspect next, space pause, p panel, q quit.
Click a train or platform to inspect it.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			debug, _ := cmd.Flags().GetBool("debug")
			return runInteractive(cfg, debug)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.metro-sim/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Write a debug log to the log directory")
	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed, 0 seeds from the clock")
	rootCmd.PersistentFlags().String("start", "", "Start time of day as HH:MM")
	rootCmd.PersistentFlags().Bool("heatmap", false, "Start in heatmap view")
	rootCmd.PersistentFlags().String("color", "", "Color mode: truecolor, 256")
	rootCmd.PersistentFlags().Bool("audio", false, "Enable sound cues")

	rootCmd.AddCommand(
		newVersionCmd(),
		newHeadlessCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "metro-sim version %s\n", version)
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

// resolveConfig loads file and environment settings, then applies explicitly set flags
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadPath(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Simulation.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("start") {
		s, _ := flags.GetString("start")
		minutes, err := parseClock(s)
		if err != nil {
			return nil, err
		}
		cfg.Simulation.StartMinute = minutes
	}
	if flags.Changed("heatmap") {
		cfg.Display.Heatmap, _ = flags.GetBool("heatmap")
	}
	if flags.Changed("color") {
		cfg.Display.ColorMode, _ = flags.GetString("color")
	}
	if flags.Changed("audio") {
		cfg.Audio.Enabled, _ = flags.GetBool("audio")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// parseClock converts HH:MM to minutes since midnight
func parseClock(s string) (float64, error) {
	var h, m int
	if n, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil || n != 2 {
		return 0, fmt.Errorf("invalid start time %q (want HH:MM)", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("start time out of range: %q", s)
	}
	return float64(h*60 + m), nil
}
