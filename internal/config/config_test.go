package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if cfg.Settings.PlayMode != Random {
		t.Errorf("expected random mode, got %s", cfg.Settings.PlayMode)
	}
	if cfg.Settings.Duration() != 5*time.Second {
		t.Errorf("expected 5s, got %v", cfg.Settings.Duration())
	}
	if !cfg.Settings.AutoAdvance || !cfg.Settings.ShowPreview {
		t.Error("auto advance and show preview should default on")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero duration", func(c *Config) { c.Settings.DurationMS = 0 }, ErrInvalidDuration},
		{"bad mode", func(c *Config) { c.Settings.PlayMode = "shuffle" }, ErrInvalidPlayMode},
		{"fps", func(c *Config) { c.Display.FPS = 0 }, ErrInvalidDisplay},
		{"renderer", func(c *Config) { c.Display.Renderer = "sixel" }, ErrInvalidDisplay},
		{"variation range", func(c *Config) { c.Registry.VariationMaxMS = 10 }, ErrInvalidRegistry},
		{"tiles", func(c *Config) { c.Preview.TileCols = 0 }, ErrInvalidPreview},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saverium.yaml")
	data := "settings:\n  play_mode: sequential\n  duration: 8000\nregistry:\n  sources: [math]\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Settings.PlayMode != Sequential || cfg.Settings.DurationMS != 8000 {
		t.Errorf("settings not loaded: %+v", cfg.Settings)
	}
	if !cfg.Settings.AutoAdvance {
		t.Error("unset fields should keep their defaults")
	}
	if len(cfg.Registry.Sources) != 1 || cfg.Registry.Sources[0] != "math" {
		t.Errorf("sources = %v", cfg.Registry.Sources)
	}
	if cfg.Preview.TileCols != DefaultTileCols {
		t.Errorf("tile cols = %d", cfg.Preview.TileCols)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("settings:\n  duration: -5\n"), 0644)
	if _, err := Load(path); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("expected invalid duration, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := DefaultConfig()
	cfg.Settings.PlayMode = Sequential
	cfg.Journal.Path = "plays.db"
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if back.Settings.PlayMode != Sequential || back.Journal.Path != "plays.db" {
		t.Errorf("round trip lost fields: %+v", back)
	}
}

func TestGetPreset(t *testing.T) {
	s, err := GetPreset("frantic")
	if err != nil {
		t.Fatal(err)
	}
	if s.DurationMS != 3000 {
		t.Errorf("expected 3000ms, got %d", s.DurationMS)
	}

	if _, err := GetPreset("nonexistent"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected unknown preset, got %v", err)
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for _, n := range names {
		s, _ := GetPreset(n)
		if err := s.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", n, err)
		}
	}
}

func TestParsePlayMode(t *testing.T) {
	for _, in := range []string{"random", "Random"} {
		if m, err := ParsePlayMode(in); err != nil || m != Random {
			t.Errorf("ParsePlayMode(%q) = %v, %v", in, m, err)
		}
	}
	if _, err := ParsePlayMode("loop"); !errors.Is(err, ErrInvalidPlayMode) {
		t.Errorf("expected invalid play mode, got %v", err)
	}
}
