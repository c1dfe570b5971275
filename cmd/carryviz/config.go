package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/carryviz/internal/config"
	"github.com/san-kum/carryviz/internal/input"
)

// resolve layers the configuration: defaults or preset, then the config
// file, then CARRYVIZ_* variables, then flags the user actually set.
func resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("l1") || flags.Changed("l2") {
		// explicit digits beat any example from the file or preset
		cfg.Example = ""
	}
	if flags.Changed("l1") {
		vals, err := input.Parse(l1Flag)
		if err != nil {
			return nil, fmt.Errorf("--l1: %w", err)
		}
		cfg.L1 = vals
	}
	if flags.Changed("l2") {
		vals, err := input.Parse(l2Flag)
		if err != nil {
			return nil, fmt.Errorf("--l2: %w", err)
		}
		cfg.L2 = vals
	}
	if flags.Changed("example") {
		cfg.Example = example
	}
	if flags.Changed("interval") {
		if interval <= 0 {
			return nil, fmt.Errorf("--interval must be positive, got %v", interval)
		}
		cfg.Interval = interval
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if flags.Changed("journal") {
		cfg.Log.Journal = journal
	}
	return cfg, nil
}
