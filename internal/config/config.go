package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/carryviz/internal/input"
	"github.com/san-kum/carryviz/internal/playback"
)

const (
	DefaultInterval = playback.DefaultInterval
	DefaultTheme    = "cyberpunk"
	DefaultLogLevel = "info"
)

type Config struct {
	L1       []int         `yaml:"l1,flow" env:"L1" envSeparator:","`
	L2       []int         `yaml:"l2,flow" env:"L2" envSeparator:","`
	Example  string        `yaml:"example,omitempty" env:"EXAMPLE"`
	Interval time.Duration `yaml:"interval" env:"INTERVAL"`
	Theme    string        `yaml:"theme" env:"THEME"`
	Log      LogConfig     `yaml:"log" envPrefix:"LOG_"`
}

type LogConfig struct {
	Level   string `yaml:"level" env:"LEVEL"`
	File    string `yaml:"file,omitempty" env:"FILE"`
	Journal bool   `yaml:"journal,omitempty" env:"JOURNAL"`
}

func DefaultConfig() *Config {
	return &Config{
		L1:       slices.Clone(playback.DefaultFirst),
		L2:       slices.Clone(playback.DefaultSecond),
		Interval: DefaultInterval,
		Theme:    DefaultTheme,
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from CARRYVIZ_* variables. Unset variables
// leave the current value alone.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(env.Options{Prefix: "CARRYVIZ_"})
}

func (c *Config) applyEnv(opts env.Options) error {
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Inputs resolves the operand pair: a named example wins over l1/l2.
func (c *Config) Inputs() ([]int, []int, error) {
	if c.Example != "" {
		ex := input.GetExample(c.Example)
		if ex == nil {
			return nil, nil, fmt.Errorf("unknown example: %s (available: %v)", c.Example, input.ListExamples())
		}
		return ex.First, ex.Second, nil
	}
	if err := input.Validate(c.L1); err != nil {
		return nil, nil, fmt.Errorf("l1: %w", err)
	}
	if err := input.Validate(c.L2); err != nil {
		return nil, nil, fmt.Errorf("l2: %w", err)
	}
	return slices.Clone(c.L1), slices.Clone(c.L2), nil
}
