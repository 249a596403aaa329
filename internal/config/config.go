package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/backdrop/internal/render"
	"github.com/san-kum/backdrop/internal/scene"
)

const (
	DefaultFPS    = 60
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultFrames = 600
	DefaultTheme  = "teal"
	DefaultScale  = 0.25

	MaxFPS = 240
)

type Config struct {
	FPS      int        `yaml:"fps"`
	Width    int        `yaml:"width"`
	Height   int        `yaml:"height"`
	Theme    string     `yaml:"theme"`
	Seed     int64      `yaml:"seed"`
	Frames   int        `yaml:"frames"`
	Sections []string   `yaml:"sections,omitempty"`
	Caps     scene.Caps `yaml:"caps"`
	// Scale is braille dots per canvas pixel in terminal views.
	Scale float64 `yaml:"scale"`
}

func DefaultConfig() *Config {
	return &Config{
		FPS:    DefaultFPS,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Theme:  DefaultTheme,
		Frames: DefaultFrames,
		Caps:   scene.DefaultCaps(),
		Scale:  DefaultScale,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
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

// Validate checks ranges and names against the section and theme registries.
func (c *Config) Validate() error {
	if c.FPS <= 0 || c.FPS > MaxFPS {
		return fmt.Errorf("fps must be in 1..%d, got %d", MaxFPS, c.FPS)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("canvas size must not be negative, got %dx%d", c.Width, c.Height)
	}
	if c.Frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", c.Frames)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %g", c.Scale)
	}
	if c.Caps.Messages < 0 || c.Caps.Rings < 0 || c.Caps.Streams < 0 {
		return fmt.Errorf("caps must not be negative: %+v", c.Caps)
	}
	if _, ok := render.GetTheme(c.Theme); !ok {
		return fmt.Errorf("unknown theme: %s", c.Theme)
	}
	if _, err := c.Registry().Select(c.Sections); err != nil {
		return err
	}
	return nil
}

// Registry builds the section registry with the configured caps.
func (c *Config) Registry() *scene.Registry {
	return scene.NewRegistry(c.Caps)
}

// SelectedSections resolves the configured section names; empty means all.
func (c *Config) SelectedSections() ([]scene.Section, error) {
	return c.Registry().Select(c.Sections)
}

// ThemeOrDefault resolves the configured theme, falling back to the default.
func (c *Config) ThemeOrDefault() render.Theme {
	t, _ := render.GetTheme(c.Theme)
	return t
}
