package playback_test

import (
	"math/rand"
	"strconv"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/saverium/internal/canvas"
	"github.com/san-kum/saverium/internal/config"
	"github.com/san-kum/saverium/internal/effect"
	"github.com/san-kum/saverium/internal/playback"
	"github.com/san-kum/saverium/internal/registry"
)

type counted struct {
	effect.Base
	updates, draws int
	clicks         []canvas.Point
}

func (c *counted) Update()             { c.updates++ }
func (c *counted) Draw(canvas.Surface) { c.draws++ }

type clicky struct{ counted }

func (c *clicky) PointerMoved(canvas.Point) {}
func (c *clicky) Clicked(p canvas.Point)    { c.clicks = append(c.clicks, p) }

func entries(n int) []registry.Entry {
	out := make([]registry.Entry, n)
	for i := range out {
		name := "E" + strconv.Itoa(i)
		out[i] = registry.Entry{Name: name, Base: name, Duration: 7 * time.Second, Factory: func(env effect.Env) effect.Effect {
			return &counted{Base: effect.NewBase(name, time.Second, env.Rand)}
		}}
	}
	return out
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

var _ = Describe("Controller", func() {
	var (
		clk      *clock
		settings *config.Settings
		ctrl     *playback.Controller
		surface  *canvas.Raster
		switches []playback.Switch
	)

	build := func(n int) {
		reg := registry.New(entries(n))
		ctrl = playback.NewController(reg, settings, effect.NewEnv(0, 0, 1))
		ctrl.Now = clk.now
		ctrl.Rand = rand.New(rand.NewSource(42))
		ctrl.Observe(playback.ObserverFunc(func(s playback.Switch) { switches = append(switches, s) }))
	}

	BeforeEach(func() {
		clk = &clock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
		s := config.DefaultSettings()
		settings = &s
		surface = canvas.NewRaster(12, 8, 1200, 800)
		switches = nil
	})

	It("starts idle and ignores ticks", func() {
		build(3)
		Expect(ctrl.State()).To(Equal(playback.Idle))
		ctrl.Tick(surface)
		ctrl.Skip()
		Expect(ctrl.Current()).To(BeNil())
		Expect(switches).To(BeEmpty())
	})

	It("rejects bad selections", func() {
		build(3)
		Expect(ctrl.Select(3)).To(MatchError(playback.ErrOutOfRange))
		Expect(ctrl.Select(-1)).To(MatchError(playback.ErrOutOfRange))
		build(0)
		Expect(ctrl.Select(0)).To(MatchError(playback.ErrEmptyRegistry))
		Expect(ctrl.SelectRandom()).To(MatchError(playback.ErrEmptyRegistry))
	})

	It("applies the settings duration on select", func() {
		settings.DurationMS = 3000
		build(3)
		Expect(ctrl.Select(1)).To(Succeed())
		Expect(ctrl.State()).To(Equal(playback.Playing))
		Expect(ctrl.Current().Name()).To(Equal("E1"))
		Expect(ctrl.Current().Duration()).To(Equal(3 * time.Second))
		Expect(ctrl.Current().Finished(clk.now())).To(BeFalse())
		Expect(switches).To(HaveLen(1))
		Expect(switches[0].Reason).To(Equal(playback.ReasonSelect))
	})

	It("can play entries for their own duration", func() {
		build(3)
		ctrl.EntryDurations = true
		Expect(ctrl.Select(0)).To(Succeed())
		Expect(ctrl.Current().Duration()).To(Equal(7 * time.Second))
	})

	It("updates and draws exactly once per tick", func() {
		build(2)
		Expect(ctrl.Select(0)).To(Succeed())
		fx := ctrl.Current().(*counted)
		ctrl.Tick(surface)
		ctrl.Tick(surface)
		Expect(fx.updates).To(Equal(2))
		Expect(fx.draws).To(Equal(2))
	})

	It("wraps around in sequential mode", func() {
		settings.DurationMS = 3000
		settings.PlayMode = config.Sequential
		build(5)
		Expect(ctrl.Select(4)).To(Succeed())
		first := ctrl.Current()

		clk.advance(2999 * time.Millisecond)
		ctrl.Tick(surface)
		Expect(ctrl.Index()).To(Equal(4))

		clk.advance(time.Millisecond)
		ctrl.Tick(surface)
		Expect(ctrl.Index()).To(Equal(0))
		Expect(ctrl.Current()).NotTo(BeIdenticalTo(first))
		Expect(ctrl.Current().Finished(clk.now())).To(BeFalse())
		Expect(ctrl.Remaining()).To(Equal(3 * time.Second))

		last := switches[len(switches)-1]
		Expect(last.Reason).To(Equal(playback.ReasonAuto))
		Expect(last.At).To(Equal(clk.now()))
		Expect(last.Mode).To(Equal(config.Sequential))
	})

	It("visits every index in order when skipping sequentially", func() {
		settings.PlayMode = config.Sequential
		build(4)
		Expect(ctrl.Select(2)).To(Succeed())
		var seen []int
		for i := 0; i < 6; i++ {
			ctrl.Skip()
			seen = append(seen, ctrl.Index())
		}
		Expect(seen).To(Equal([]int{3, 0, 1, 2, 3, 0}))
		Expect(switches[1].Reason).To(Equal(playback.ReasonSkip))
	})

	It("does not advance when auto advance is off", func() {
		settings.AutoAdvance = false
		build(3)
		Expect(ctrl.Select(0)).To(Succeed())
		clk.advance(time.Minute)
		ctrl.Tick(surface)
		Expect(ctrl.Index()).To(Equal(0))
		Expect(ctrl.Current().Finished(clk.now())).To(BeTrue())
	})

	It("picks random successors from the whole registry", func() {
		settings.PlayMode = config.Random
		build(3)
		Expect(ctrl.Select(0)).To(Succeed())
		hits := map[int]int{}
		for i := 0; i < 300; i++ {
			ctrl.Skip()
			hits[ctrl.Index()]++
		}
		Expect(hits).To(HaveLen(3))
	})

	It("reads settings changes on the next transition", func() {
		settings.PlayMode = config.Sequential
		build(3)
		Expect(ctrl.Select(0)).To(Succeed())
		settings.DurationMS = 15000
		Expect(ctrl.Current().Duration()).To(Equal(5 * time.Second))
		ctrl.Skip()
		Expect(ctrl.Current().Duration()).To(Equal(15 * time.Second))
	})

	It("forwards pointer input only to interactive effects", func() {
		reg := registry.New([]registry.Entry{{Name: "Clicky", Base: "Clicky", Duration: time.Second, Factory: func(env effect.Env) effect.Effect {
			return &clicky{counted{Base: effect.NewBase("Clicky", time.Second, env.Rand)}}
		}}})
		ctrl = playback.NewController(reg, settings, effect.NewEnv(0, 0, 1))
		ctrl.Click(canvas.Pt(1, 1))
		Expect(ctrl.Select(0)).To(Succeed())
		ctrl.Click(canvas.Pt(5, 6))
		Expect(ctrl.Current().(*clicky).clicks).To(Equal([]canvas.Point{canvas.Pt(5, 6)}))

		build(1)
		Expect(ctrl.Select(0)).To(Succeed())
		Expect(func() { ctrl.Click(canvas.Pt(1, 1)) }).NotTo(Panic())
	})

	It("returns to idle on stop", func() {
		build(2)
		Expect(ctrl.Select(1)).To(Succeed())
		ctrl.Stop()
		Expect(ctrl.State()).To(Equal(playback.Idle))
		Expect(ctrl.Current()).To(BeNil())
		Expect(ctrl.Remaining()).To(BeZero())
	})

	It("selects by fuzzy name", func() {
		build(3)
		Expect(ctrl.SelectName("e2")).To(Succeed())
		Expect(ctrl.Index()).To(Equal(2))
	})
})
