// Package config provides configuration loading for array worlds.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is returned for configurations that cannot build a world.
var ErrInvalid = errors.New("invalid config")

// Config holds everything needed to seed and run a world.
type Config struct {
	World      WorldConfig       `yaml:"world"`
	Seed       int64             `yaml:"seed"`
	Params     map[string]int32  `yaml:"params"`
	Placements []PlacementConfig `yaml:"placements"`
	Run        RunConfig         `yaml:"run"`
	Display    DisplayConfig     `yaml:"display"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// WorldConfig sizes the grid and its tiles.
type WorldConfig struct {
	Width     int          `yaml:"width"`
	Height    int          `yaml:"height"`
	TileSize  int          `yaml:"tile_size"`  // 0 = one tile
	DeadTiles []TileConfig `yaml:"dead_tiles"` // tiles that start unmapped
}

// TileConfig addresses a tile by tile coordinates.
type TileConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// PlacementConfig seeds atoms of one element at reset. With Random > 0 the atoms go
// to that many randomly chosen empty sites and X, Y are ignored.
type PlacementConfig struct {
	Element string            `yaml:"element"`
	X       int               `yaml:"x"`
	Y       int               `yaml:"y"`
	Random  int               `yaml:"random,omitempty"`
	Fields  map[string]uint64 `yaml:"fields,omitempty"`
}

// RunConfig controls stepping and output.
type RunConfig struct {
	Ticks         int    `yaml:"ticks"`
	EventsPerTick int    `yaml:"events_per_tick"` // 0 = one event per live site
	TPS           int    `yaml:"tps"`
	OutputDir     string `yaml:"output_dir"`
	LogLevel      string `yaml:"log_level"`
	StatsEvery    int    `yaml:"stats_every"`
}

// DisplayConfig is read by the GUI only.
type DisplayConfig struct {
	Scale    int `yaml:"scale"`
	HUDWidth int `yaml:"hud_width"`
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	Sites    int
	TilesX   int
	TilesY   int
	LogLevel slog.Level
}

// EnvOverrides are applied on top of the YAML config. Unset variables leave the
// loaded values alone.
type EnvOverrides struct {
	Seed      *int64  `env:"DATA_ARRAY_SEED"`
	Width     *int    `env:"DATA_ARRAY_WIDTH"`
	Height    *int    `env:"DATA_ARRAY_HEIGHT"`
	Ticks     *int    `env:"DATA_ARRAY_TICKS"`
	TPS       *int    `env:"DATA_ARRAY_TPS"`
	OutputDir *string `env:"DATA_ARRAY_OUTPUT_DIR"`
	LogLevel  *string `env:"DATA_ARRAY_LOG_LEVEL"`
}

// Defaults returns the embedded default configuration.
func Defaults() (*Config, error) {
	return Load("")
}

// Load reads the embedded defaults and merges the file at path over them. Maps are
// merged key by key; lists such as placements are replaced.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWithEnv is Load followed by ApplyEnv.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ApplyEnv overlays DATA_ARRAY_* variables and recomputes derived values.
func (c *Config) ApplyEnv() error {
	var o EnvOverrides
	if err := ParseEnv(&o); err != nil {
		return err
	}
	if o.Seed != nil {
		c.Seed = *o.Seed
	}
	if o.Width != nil {
		c.World.Width = *o.Width
	}
	if o.Height != nil {
		c.World.Height = *o.Height
	}
	if o.Ticks != nil {
		c.Run.Ticks = *o.Ticks
	}
	if o.TPS != nil {
		c.Run.TPS = *o.TPS
	}
	if o.OutputDir != nil {
		c.Run.OutputDir = *o.OutputDir
	}
	if o.LogLevel != nil {
		c.Run.LogLevel = *o.LogLevel
	}
	return c.computeDerived()
}

// Refresh recomputes derived values after fields were changed in code, e.g. by
// command-line flags.
func (c *Config) Refresh() error { return c.computeDerived() }

func (c *Config) computeDerived() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("%w: world %dx%d", ErrInvalid, c.World.Width, c.World.Height)
	}
	if c.World.TileSize < 0 {
		return fmt.Errorf("%w: tile_size %d", ErrInvalid, c.World.TileSize)
	}
	if c.Run.Ticks < 0 || c.Run.EventsPerTick < 0 {
		return fmt.Errorf("%w: negative run length", ErrInvalid)
	}
	level, err := ParseLevel(c.Run.LogLevel)
	if err != nil {
		return err
	}

	c.Derived.Sites = c.World.Width * c.World.Height
	tile := c.World.TileSize
	if tile == 0 {
		tile = max(c.World.Width, c.World.Height)
	}
	c.Derived.TilesX = (c.World.Width + tile - 1) / tile
	c.Derived.TilesY = (c.World.Height + tile - 1) / tile
	for _, t := range c.World.DeadTiles {
		if t.X < 0 || t.Y < 0 || t.X >= c.Derived.TilesX || t.Y >= c.Derived.TilesY {
			return fmt.Errorf("%w: dead tile (%d,%d) outside %dx%d tiles", ErrInvalid, t.X, t.Y, c.Derived.TilesX, c.Derived.TilesY)
		}
	}
	for i, p := range c.Placements {
		if strings.TrimSpace(p.Element) == "" {
			return fmt.Errorf("%w: placement %d has no element", ErrInvalid, i)
		}
	}
	c.Derived.LogLevel = level
	return nil
}

// ParseLevel maps debug, info, warn or error to a slog level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, s)
	}
	return l, nil
}

// WriteYAML saves the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
