package config

import (
	"fmt"
	"time"
)

type PlayMode string

const (
	Random     PlayMode = "random"
	Sequential PlayMode = "sequential"
)

var PlayModes = []PlayMode{Random, Sequential}

// Durations are the choices the settings panel cycles through, in seconds.
var Durations = []int{3, 5, 8, 10, 15}

// Title is the label shown in the settings panel and playing overlay.
func (m PlayMode) Title() string {
	switch m {
	case Random:
		return "Random"
	case Sequential:
		return "Sequential"
	}
	return string(m)
}

func ParsePlayMode(s string) (PlayMode, error) {
	for _, m := range PlayModes {
		if string(m) == s || m.Title() == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrInvalidPlayMode)
}

// Settings is the user-facing playback state shared by the settings
// panel and the controller. Changes take effect on the next transition.
type Settings struct {
	PlayMode    PlayMode `yaml:"play_mode"`
	DurationMS  int      `yaml:"duration"`
	AutoAdvance bool     `yaml:"auto_advance"`
	ShowPreview bool     `yaml:"show_preview"`
}

func DefaultSettings() Settings {
	return Settings{PlayMode: Random, DurationMS: 5000, AutoAdvance: true, ShowPreview: true}
}

func (s *Settings) Duration() time.Duration {
	return time.Duration(s.DurationMS) * time.Millisecond
}

func (s *Settings) SetDuration(d time.Duration) { s.DurationMS = int(d.Milliseconds()) }

func (s *Settings) Validate() error {
	if _, err := ParsePlayMode(string(s.PlayMode)); err != nil {
		return err
	}
	if s.DurationMS <= 0 {
		return fmt.Errorf("duration %dms: %w", s.DurationMS, ErrInvalidDuration)
	}
	return nil
}
