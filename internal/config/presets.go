package config

import (
	"fmt"
	"sort"
)

var Presets = map[string]Settings{
	"calm":     {PlayMode: Sequential, DurationMS: 15000, AutoAdvance: true, ShowPreview: true},
	"frantic":  {PlayMode: Random, DurationMS: 3000, AutoAdvance: true, ShowPreview: true},
	"showcase": {PlayMode: Sequential, DurationMS: 8000, AutoAdvance: true, ShowPreview: true},
	"manual":   {PlayMode: Sequential, DurationMS: 10000, AutoAdvance: false, ShowPreview: true},
}

func GetPreset(name string) (Settings, error) {
	s, ok := Presets[name]
	if !ok {
		return Settings{}, fmt.Errorf("%q: %w", name, ErrUnknownPreset)
	}
	return s, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
