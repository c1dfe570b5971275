package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/san-kum/carryviz/internal/input"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Interval != time.Second {
		t.Errorf("expected 1s interval, got %v", cfg.Interval)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("expected theme %s, got %s", DefaultTheme, cfg.Theme)
	}
	a, b, err := cfg.Inputs()
	if err != nil {
		t.Fatalf("default inputs invalid: %v", err)
	}
	if !slices.Equal(a, []int{2, 4, 3}) || !slices.Equal(b, []int{5, 6, 4}) {
		t.Errorf("default inputs = %v %v", a, b)
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carryviz.yaml")

	cfg := DefaultConfig()
	cfg.L1 = []int{9, 9}
	cfg.L2 = []int{1}
	cfg.Interval = 250 * time.Millisecond
	cfg.Log.File = "carryviz.log"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !slices.Equal(loaded.L1, []int{9, 9}) || !slices.Equal(loaded.L2, []int{1}) {
		t.Errorf("inputs = %v %v", loaded.L1, loaded.L2)
	}
	if loaded.Interval != 250*time.Millisecond {
		t.Errorf("interval = %v", loaded.Interval)
	}
	if loaded.Log.File != "carryviz.log" {
		t.Errorf("log file = %q", loaded.Log.File)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("interval: 2s\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Interval != 2*time.Second {
		t.Errorf("interval = %v", cfg.Interval)
	}
	if cfg.Theme != DefaultTheme || !slices.Equal(cfg.L1, []int{2, 4, 3}) {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.applyEnv(env.Options{
		Prefix: "CARRYVIZ_",
		Environment: map[string]string{
			"CARRYVIZ_L1":        "1,2,3",
			"CARRYVIZ_INTERVAL":  "300ms",
			"CARRYVIZ_LOG_LEVEL": "debug",
		},
	})
	if err != nil {
		t.Fatalf("apply env: %v", err)
	}

	if !slices.Equal(cfg.L1, []int{1, 2, 3}) {
		t.Errorf("L1 = %v", cfg.L1)
	}
	if !slices.Equal(cfg.L2, []int{5, 6, 4}) {
		t.Errorf("L2 should keep its default, got %v", cfg.L2)
	}
	if cfg.Interval != 300*time.Millisecond {
		t.Errorf("interval = %v", cfg.Interval)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("theme = %q", cfg.Theme)
	}
}

func TestInputs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Example = "carry"
	a, b, err := cfg.Inputs()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a) != 7 || len(b) != 4 {
		t.Errorf("carry example = %v %v", a, b)
	}

	cfg.Example = "nonexistent"
	if _, _, err := cfg.Inputs(); err == nil {
		t.Error("expected error for unknown example")
	}

	cfg.Example = ""
	cfg.L1 = []int{12}
	if _, _, err := cfg.Inputs(); !errors.Is(err, input.ErrOutOfRange) {
		t.Errorf("expected out of range, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("classroom")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Interval != 2*time.Second {
		t.Errorf("expected 2s, got %v", cfg.Interval)
	}
	cfg.Interval = 0
	if Presets["classroom"].Interval != 2*time.Second {
		t.Error("GetPreset returned the shared preset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsResolve(t *testing.T) {
	for _, name := range ListPresets() {
		if _, _, err := GetPreset(name).Inputs(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}
