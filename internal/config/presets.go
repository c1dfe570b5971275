package config

import (
	"slices"
	"sort"
	"time"

	"github.com/san-kum/carryviz/internal/playback"
)

var Presets = map[string]*Config{
	"classroom": {
		Example: "basic", Interval: 2 * time.Second, Theme: "minimal",
		Log: LogConfig{Level: DefaultLogLevel},
	},
	"demo": {
		Example: "carry", Interval: 500 * time.Millisecond, Theme: "cyberpunk",
		Log: LogConfig{Level: DefaultLogLevel},
	},
	"quick": {
		Example: "zero", Interval: 250 * time.Millisecond, Theme: "retro",
		Log: LogConfig{Level: DefaultLogLevel},
	},
	"night": {
		Example: "uneven", Interval: time.Second, Theme: "ocean",
		Log: LogConfig{Level: DefaultLogLevel},
	},
}

// GetPreset returns a copy of the named preset, or nil. Operands fall back
// to the defaults so flags can replace just one of them.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.L1 = slices.Clone(playback.DefaultFirst)
	cfg.L2 = slices.Clone(playback.DefaultSecond)
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
