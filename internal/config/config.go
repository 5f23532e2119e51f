package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS        = 60
	DefaultVariations = 3
	DefaultTileCols   = 6
	DefaultTileRows   = 4
)

type Config struct {
	Settings Settings       `yaml:"settings"`
	Display  DisplayConfig  `yaml:"display"`
	Registry RegistryConfig `yaml:"registry"`
	Preview  PreviewConfig  `yaml:"preview"`
	Window   WindowConfig   `yaml:"window"`
	Journal  JournalConfig  `yaml:"journal"`
}

type DisplayConfig struct {
	FPS         int     `yaml:"fps"`
	WorldWidth  float64 `yaml:"world_width"`
	WorldHeight float64 `yaml:"world_height"`
	Theme       string  `yaml:"theme"`
	Renderer    string  `yaml:"renderer"`
	HUD         bool    `yaml:"hud"`
}

type RegistryConfig struct {
	Sources        []string `yaml:"sources"`
	Variations     int      `yaml:"variations"`
	VariationMinMS int      `yaml:"variation_min_ms"`
	VariationMaxMS int      `yaml:"variation_max_ms"`
	// Seed 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
}

type PreviewConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	Warmup   int `yaml:"warmup"`
	TileCols int `yaml:"tile_cols"`
	TileRows int `yaml:"tile_rows"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type JournalConfig struct {
	// Empty disables the journal.
	Path string `yaml:"path"`
}

var Renderers = []string{"halfblock", "braille"}

// DefaultSources is the effect source order used when none is configured.
var DefaultSources = []string{"classic", "all", "math", "kinetic", "spectrum"}

func DefaultConfig() *Config {
	return &Config{
		Settings: DefaultSettings(),
		Display: DisplayConfig{
			FPS:         DefaultFPS,
			WorldWidth:  1200,
			WorldHeight: 800,
			Theme:       "midnight",
			Renderer:    "halfblock",
			HUD:         false,
		},
		Registry: RegistryConfig{
			Sources:        slices.Clone(DefaultSources),
			Variations:     DefaultVariations,
			VariationMinMS: 3000,
			VariationMaxMS: 10000,
		},
		Preview: PreviewConfig{
			Width:    180,
			Height:   120,
			Warmup:   5,
			TileCols: DefaultTileCols,
			TileRows: DefaultTileRows,
		},
		Window: WindowConfig{Width: 1200, Height: 800},
	}
}

// Load reads path over the defaults, so a partial file only overrides
// what it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
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

func (c *Config) Validate() error {
	if err := c.Settings.Validate(); err != nil {
		return err
	}
	d := c.Display
	if d.FPS <= 0 || d.FPS > 240 {
		return fmt.Errorf("fps %d: %w", d.FPS, ErrInvalidDisplay)
	}
	if d.WorldWidth <= 0 || d.WorldHeight <= 0 {
		return fmt.Errorf("world %vx%v: %w", d.WorldWidth, d.WorldHeight, ErrInvalidDisplay)
	}
	if !contains(Renderers, d.Renderer) {
		return fmt.Errorf("renderer %q: %w", d.Renderer, ErrInvalidDisplay)
	}
	r := c.Registry
	if r.Variations < 0 {
		return fmt.Errorf("variations %d: %w", r.Variations, ErrInvalidRegistry)
	}
	if r.VariationMinMS <= 0 || r.VariationMaxMS < r.VariationMinMS {
		return fmt.Errorf("variation range %d..%dms: %w", r.VariationMinMS, r.VariationMaxMS, ErrInvalidRegistry)
	}
	p := c.Preview
	if p.Width <= 0 || p.Height <= 0 || p.Warmup < 0 || p.TileCols <= 0 || p.TileRows <= 0 {
		return fmt.Errorf("preview %+v: %w", p, ErrInvalidPreview)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
