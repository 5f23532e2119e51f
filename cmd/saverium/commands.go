package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/san-kum/saverium/internal/app"
	"github.com/san-kum/saverium/internal/canvas"
	"github.com/san-kum/saverium/internal/journal"
	"github.com/san-kum/saverium/internal/preview"
	"github.com/san-kum/saverium/internal/registry"
)

func listEffects(cmd *cobra.Command, args []string) error {
	ctx, err := newContext(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tBASE\tDURATION")
	for i, e := range ctx.Registry.Entries() {
		base := "-"
		if e.IsVariation() {
			base = e.Base
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%v\n", i+1, e.Name, base, e.Duration)
	}
	w.Flush()
	fmt.Printf("\n%s\n", ctx.Report)
	return nil
}

// selectEntries returns the named entry, or all of them when args is empty.
func selectEntries(ctx *app.Context, args []string) ([]registry.Entry, error) {
	if len(args) == 0 {
		return ctx.Registry.Entries(), nil
	}
	e, err := ctx.Registry.Find(args[0])
	if err != nil {
		return nil, err
	}
	return []registry.Entry{e}, nil
}

func previewEffect(cmd *cobra.Command, args []string) error {
	ctx, err := newContext(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()

	entries, err := selectEntries(ctx, args)
	if err != nil {
		return err
	}

	if pngDir != "" {
		x := preview.NewExporter(pngDir)
		if err := x.Init(); err != nil {
			return err
		}
		m, err := x.Save(entries, ctx.Previews)
		if err != nil {
			return err
		}
		fmt.Printf("wrote %d previews to %s\n", len(m.Entries), pngDir)
		if f := ctx.Previews.Failures(); len(f) > 0 {
			fmt.Printf("placeholders used for: %v\n", f)
		}
		return nil
	}

	if len(args) == 0 {
		return errors.New("preview needs an effect name, or --png DIR to export all")
	}

	cols := 60
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		cols = min(w, 120)
	}
	pw, ph := ctx.Previews.Size()
	rows := max(cols*ph/pw/2, 1)

	img := ctx.Previews.Get(entries[0])
	fmt.Println(canvas.HalfBlock(img, cols, rows, termenv.ColorProfile()))
	fmt.Println(entries[0].Name)
	return nil
}

type benchResult struct {
	name   string
	frames []float64 // ms
}

func (r benchResult) mean() float64 {
	var sum float64
	for _, f := range r.frames {
		sum += f
	}
	return sum / float64(len(r.frames))
}

func (r benchResult) percentile(p float64) float64 {
	s := slices.Clone(r.frames)
	slices.Sort(s)
	return s[int(p*float64(len(s)-1))]
}

// benchEntry runs frames update and draw cycles offscreen at the preview
// size.
func benchEntry(ctx *app.Context, e registry.Entry, frames int) benchResult {
	pw, ph := ctx.Previews.Size()
	r := canvas.NewRaster(pw, ph, ctx.Env.Width, ctx.Env.Height)
	fx := e.New(ctx.Env)
	fx.Start(time.Now())

	res := benchResult{name: e.Name, frames: make([]float64, 0, frames)}
	for i := 0; i < frames; i++ {
		start := time.Now()
		r.Fill(canvas.Black)
		fx.Update()
		fx.Draw(r)
		res.frames = append(res.frames, float64(time.Since(start).Microseconds())/1000)
	}
	return res
}

func benchEffects(cmd *cobra.Command, args []string) error {
	if benchFrames < 1 {
		return fmt.Errorf("frames must be positive, got %d", benchFrames)
	}
	ctx, err := newContext(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()

	entries, err := selectEntries(ctx, args)
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %d effects, %d frames each\n\n", len(entries), benchFrames)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMEAN\tP95\tMAX FPS")

	var last benchResult
	for _, e := range entries {
		res := benchEntry(ctx, e, benchFrames)
		mean := res.mean()
		fps := 0.0
		if mean > 0 {
			fps = 1000 / mean
		}
		fmt.Fprintf(w, "%s\t%.3fms\t%.3fms\t%.0f\n", res.name, mean, res.percentile(0.95), fps)
		last = res
	}
	w.Flush()

	if len(args) > 0 {
		fmt.Println()
		graph := asciigraph.Plot(last.frames,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(last.name+" frame time (ms)"),
		)
		fmt.Println(graph)
	}
	return nil
}

func showHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Journal.Path == "" {
		return errors.New("no journal configured (use --journal or journal.path)")
	}
	j, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		return err
	}
	defer j.Close()

	bg := context.Background()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	if historyTop {
		counts, err := j.Counts(bg)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "EFFECT\tPLAYS")
		for _, c := range counts {
			fmt.Fprintf(w, "%s\t%d\n", c.Effect, c.Plays)
		}
		return nil
	}

	plays, err := j.Recent(bg, historyLimit)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "STARTED\tEFFECT\tREASON\tMODE")
	for _, p := range plays {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.StartedAt.Format("2006-01-02 15:04:05"), p.Effect, p.Reason, p.Mode)
	}
	return nil
}
