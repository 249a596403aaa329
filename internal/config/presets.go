package config

import (
	"sort"

	"github.com/san-kum/backdrop/internal/scene"
)

var Presets = map[string]*Config{
	"full": {
		FPS: 60, Width: 800, Height: 600, Theme: "teal", Frames: 600,
		Caps: scene.DefaultCaps(), Scale: DefaultScale,
	},
	"landing": {
		FPS: 60, Width: 1280, Height: 720, Theme: "teal", Frames: 900,
		Sections: []string{"hero", "contact"},
		Caps:     scene.DefaultCaps(), Scale: 0.2,
	},
	"minimal": {
		FPS: 30, Width: 320, Height: 240, Theme: "mono", Frames: 300,
		Sections: []string{"hero"},
		Caps:     scene.Caps{Messages: 8, Rings: 2, Streams: 16}, Scale: 0.5,
	},
	"showcase": {
		FPS: 60, Width: 1280, Height: 720, Theme: "sunset", Frames: 1200,
		Caps: scene.DefaultCaps(), Scale: 0.2,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Sections = append([]string(nil), p.Sections...)
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
