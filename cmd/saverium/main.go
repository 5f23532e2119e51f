package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/san-kum/saverium/internal/app"
	"github.com/san-kum/saverium/internal/config"
	"github.com/san-kum/saverium/internal/tui"
	"github.com/san-kum/saverium/internal/window"
)

var (
	configFile     string
	preset         string
	playMode       string
	durationSec    int
	autoAdvance    bool
	showPreview    bool
	seed           int64
	journalPath    string
	logFile        string
	entryDurations bool
	sources        []string
	renderer       string
	theme          string
	hud            bool
	gifDir         string
	pngDir         string
	benchFrames    int
	historyLimit   int
	historyTop     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "saverium",
		Short: "screensaver effects gallery",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, "")
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "settings preset")
	pf.StringVar(&playMode, "mode", "random", "play mode (random, sequential)")
	pf.IntVar(&durationSec, "duration", 5, "seconds per effect")
	pf.BoolVar(&autoAdvance, "auto-advance", true, "advance when an effect's time is up")
	pf.BoolVar(&showPreview, "show-preview", true, "draw gallery thumbnails")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	pf.StringVar(&journalPath, "journal", "", "sqlite play journal path")
	pf.StringVar(&logFile, "log", "", "log file for the terminal gallery")
	pf.BoolVar(&entryDurations, "entry-durations", false, "use each effect's own duration instead of --duration")
	pf.StringSliceVar(&sources, "sources", nil, "effect sources to load")

	tuiFlags := func(c *cobra.Command) {
		c.Flags().StringVar(&renderer, "renderer", "halfblock", "terminal renderer (halfblock, braille)")
		c.Flags().StringVar(&theme, "theme", "midnight", "colour theme ("+strings.Join(tui.ThemeNames(), ", ")+")")
		c.Flags().BoolVar(&hud, "hud", false, "show the frame-time HUD")
		c.Flags().StringVar(&gifDir, "gif-dir", ".", "directory for GIF recordings")
	}
	tuiFlags(rootCmd)

	playCmd := &cobra.Command{
		Use:   "play [name]",
		Short: "start playing immediately",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "*"
			if len(args) > 0 {
				name = args[0]
			}
			return runTUI(cmd, name)
		},
	}
	tuiFlags(playCmd)

	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "open the gallery in a desktop window",
		RunE:  runWindow,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list registered effects",
		RunE:  listEffects,
	}

	previewCmd := &cobra.Command{
		Use:   "preview [name]",
		Short: "print a preview thumbnail, or write PNGs with --png",
		Args:  cobra.MaximumNArgs(1),
		RunE:  previewEffect,
	}
	previewCmd.Flags().StringVar(&pngDir, "png", "", "write captioned PNG thumbnails and a manifest to this directory")

	benchCmd := &cobra.Command{
		Use:   "bench [name]",
		Short: "benchmark effect update and draw",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchEffects,
	}
	benchCmd.Flags().IntVar(&benchFrames, "frames", 300, "frames per effect")

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "show recently played effects",
		RunE:  showHistory,
	}
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "number of plays to show")
	historyCmd.Flags().BoolVar(&historyTop, "top", false, "show play counts per effect")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list settings presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				s, _ := config.GetPreset(name)
				fmt.Printf("  %-10s %s, %ds, auto advance %v\n", name, s.PlayMode.Title(), s.DurationMS/1000, s.AutoAdvance)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "saverium.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(playCmd, windowCmd, listCmd, previewCmd, benchCmd, historyCmd, presetsCmd, configCmd)
	return rootCmd
}

// loadConfig layers defaults, the config file, a preset and then any flags
// given explicitly on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if preset != "" {
		s, err := config.GetPreset(preset)
		if err != nil {
			return nil, fmt.Errorf("%w (available: %v)", err, config.ListPresets())
		}
		cfg.Settings = s
	}

	f := cmd.Flags()
	if f.Changed("mode") {
		m, err := config.ParsePlayMode(playMode)
		if err != nil {
			return nil, err
		}
		cfg.Settings.PlayMode = m
	}
	if f.Changed("duration") {
		cfg.Settings.SetDuration(time.Duration(durationSec) * time.Second)
	}
	if f.Changed("auto-advance") {
		cfg.Settings.AutoAdvance = autoAdvance
	}
	if f.Changed("show-preview") {
		cfg.Settings.ShowPreview = showPreview
	}
	if f.Changed("seed") {
		cfg.Registry.Seed = seed
	}
	if f.Changed("journal") {
		cfg.Journal.Path = journalPath
	}
	if f.Changed("sources") {
		cfg.Registry.Sources = sources
	}
	if f.Lookup("renderer") != nil && f.Changed("renderer") {
		cfg.Display.Renderer = renderer
	}
	if f.Lookup("theme") != nil && f.Changed("theme") {
		cfg.Display.Theme = theme
	}
	if f.Lookup("hud") != nil && f.Changed("hud") {
		cfg.Display.HUD = hud
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkTheme(cfg.Display.Theme); err != nil {
		return nil, err
	}
	return cfg, nil
}

func checkTheme(name string) error {
	if !slices.Contains(tui.ThemeNames(), name) {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(tui.ThemeNames(), ", "))
	}
	return nil
}

func newContext(cmd *cobra.Command) (*app.Context, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	ctx, err := app.New(cfg)
	if err != nil {
		return nil, err
	}
	ctx.Controller.EntryDurations = entryDurations
	return ctx, nil
}

// runTUI starts the terminal gallery. A non-empty start plays that entry
// right away; "*" picks one at random.
func runTUI(cmd *cobra.Command, start string) error {
	// The alt screen owns the terminal, so logs go to a file or nowhere.
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "saverium")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, err := newContext(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()

	fmt.Fprintf(os.Stderr, "rendering %d previews...\n", ctx.Registry.Len())
	ctx.WarmPreviews(nil)

	switch start {
	case "":
	case "*":
		err = ctx.Controller.SelectRandom()
	default:
		err = ctx.Controller.SelectName(start)
	}
	if err != nil {
		return err
	}

	return tui.Run(ctx, tui.Options{
		Profile:  termenv.ColorProfile(),
		Renderer: ctx.Config.Display.Renderer,
		Theme:    ctx.Config.Display.Theme,
		FPS:      ctx.Config.Display.FPS,
		HUD:      ctx.Config.Display.HUD,
		GIFDir:   gifDir,
	})
}

func runWindow(cmd *cobra.Command, args []string) error {
	ctx, err := newContext(cmd)
	if err != nil {
		return err
	}
	defer ctx.Close()

	ctx.WarmPreviews(nil)
	return window.Run(ctx)
}
