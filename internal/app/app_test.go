package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/san-kum/saverium/internal/canvas"
	"github.com/san-kum/saverium/internal/config"
)

func smallConfig(t *testing.T) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Registry.Sources = []string{"math", "nope"}
	cfg.Registry.Variations = 1
	cfg.Registry.Seed = 99
	cfg.Preview.Width, cfg.Preview.Height = 36, 24
	return cfg
}

func TestNew(t *testing.T) {
	c, err := New(smallConfig(t))
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if c.Registry.Len() != 12 {
		t.Errorf("registry size = %d, want 12", c.Registry.Len())
	}
	if len(c.Report.Missing) != 1 || c.Report.Missing[0] != "nope" {
		t.Errorf("missing = %v", c.Report.Missing)
	}
	if c.Settings != &c.Config.Settings {
		t.Error("settings should point into the config")
	}
	if c.Journal != nil {
		t.Error("journal should be off without a path")
	}

	var calls int
	c.WarmPreviews(func(done, total int) { calls++ })
	if calls != 12 || c.Previews.Len() != 12 {
		t.Errorf("warmed %d, cached %d", calls, c.Previews.Len())
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig(t)
	cfg.Settings.DurationMS = 0
	if _, err := New(cfg); !errors.Is(err, config.ErrInvalidDuration) {
		t.Errorf("expected invalid duration, got %v", err)
	}
}

func TestJournalObservesPlayback(t *testing.T) {
	cfg := smallConfig(t)
	cfg.Journal.Path = filepath.Join(t.TempDir(), "plays.db")
	c, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if c.Journal == nil {
		t.Fatal("journal did not open")
	}

	if err := c.Controller.Select(0); err != nil {
		t.Fatal(err)
	}
	c.Controller.Skip()
	c.Controller.Tick(canvas.NewRaster(10, 10, 1200, 800))

	plays, err := c.Journal.Recent(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(plays) != 2 {
		t.Fatalf("plays = %d, want 2", len(plays))
	}
	if plays[0].Reason != "skip" && plays[1].Reason != "skip" {
		t.Errorf("no skip recorded: %+v", plays)
	}
}
