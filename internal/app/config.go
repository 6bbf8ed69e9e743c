package app

import (
	"flag"

	"data-array/internal/config"
)

// Config holds the command-line options of the GUI driver.
type Config struct {
	Sim        string
	ConfigPath string
	Seed       int64
	Scale      int
	TPS        int
	HUDWidth   int
}

// NewConfig returns the driver defaults. Zero Scale, TPS and HUDWidth defer to the
// loaded world configuration.
func NewConfig() Config {
	return Config{Sim: "array"}
}

// Bind registers the options on fs.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML world config merged over the defaults")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 keeps the config seed)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per site")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels, 0 keeps the config value")
}

// Apply overlays the non-zero options onto cfg.
func (c Config) Apply(cfg *config.Config) error {
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	if c.Scale > 0 {
		cfg.Display.Scale = c.Scale
	}
	if c.TPS > 0 {
		cfg.Run.TPS = c.TPS
	}
	if c.HUDWidth > 0 {
		cfg.Display.HUDWidth = c.HUDWidth
	}
	if cfg.Display.Scale <= 0 {
		cfg.Display.Scale = 1
	}
	return cfg.Refresh()
}
