// Package app wires the configured registry, controller, preview cache and
// journal into one context shared by the front ends.
package app

import (
	"log"
	"math/rand"
	"time"

	"github.com/san-kum/saverium/internal/config"
	"github.com/san-kum/saverium/internal/effect"
	"github.com/san-kum/saverium/internal/effects"
	"github.com/san-kum/saverium/internal/journal"
	"github.com/san-kum/saverium/internal/playback"
	"github.com/san-kum/saverium/internal/preview"
	"github.com/san-kum/saverium/internal/registry"
)

type Context struct {
	Config     *config.Config
	Settings   *config.Settings
	Env        effect.Env
	Registry   *registry.Registry
	Report     registry.Report
	Controller *playback.Controller
	Previews   *preview.Cache
	// Journal is nil when disabled or when it failed to open.
	Journal *journal.Journal
}

// New builds everything cfg describes. Only an invalid config is an
// error; a journal that cannot be opened is logged and skipped.
func New(cfg *config.Config) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Registry.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	env := effect.NewEnv(cfg.Display.WorldWidth, cfg.Display.WorldHeight, seed)
	reg, rep := registry.Build(effects.Catalog(), cfg.Registry.Sources, registry.Options{
		Env:         env,
		Variations:  cfg.Registry.Variations,
		MinDuration: time.Duration(cfg.Registry.VariationMinMS) * time.Millisecond,
		MaxDuration: time.Duration(cfg.Registry.VariationMaxMS) * time.Millisecond,
		Rand:        rand.New(rand.NewSource(seed + 1)),
	})
	log.Printf("app: %s", rep)

	c := &Context{
		Config:   cfg,
		Settings: &cfg.Settings,
		Env:      env,
		Registry: reg,
		Report:   rep,
	}
	c.Controller = playback.NewController(reg, c.Settings, env)
	c.Controller.Rand = rand.New(rand.NewSource(seed + 2))

	r := preview.NewRenderer()
	r.Width, r.Height, r.Warmup = cfg.Preview.Width, cfg.Preview.Height, cfg.Preview.Warmup
	r.WorldW, r.WorldH = env.Width, env.Height
	r.Seed = seed
	c.Previews = preview.NewCache(r)

	if path := cfg.Journal.Path; path != "" {
		j, err := journal.Open(path)
		if err != nil {
			log.Printf("app: journal disabled: %v", err)
		} else {
			c.Journal = j
			c.Controller.Observe(j.Observer())
		}
	}
	return c, nil
}

// WarmPreviews renders every thumbnail, logging progress every ten.
func (c *Context) WarmPreviews(progress func(done, total int)) {
	start := time.Now()
	c.Previews.Warm(c.Registry.Entries(), func(done, total int) {
		if done%10 == 0 || done == total {
			log.Printf("app: previews %d/%d", done, total)
		}
		if progress != nil {
			progress(done, total)
		}
	})
	if f := c.Previews.Failures(); len(f) > 0 {
		log.Printf("app: %d previews fell back to placeholders", len(f))
	}
	log.Printf("app: previews ready in %v", time.Since(start).Round(time.Millisecond))
}

func (c *Context) Close() error {
	if c.Journal != nil {
		return c.Journal.Close()
	}
	return nil
}
