package app

import (
	"flag"
	"time"

	"gol-torus/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Scale    int
	TPS      int
	HUDWidth int
	Delay    time.Duration
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 8, TPS: 60, HUDWidth: 160, Delay: core.DefaultDelay}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "viewer ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the stats panel in pixels (0 hides it)")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "pause between animated rounds")
}
