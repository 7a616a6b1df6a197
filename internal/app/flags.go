package app

import (
	"flag"
	"fmt"
	"strconv"

	"mad-sand/internal/sims/sand"
)

// Config represents the command-line parameters shared by the front-ends.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	Width    int
	Height   int
	Scenario string
	Brush    string
	Sound    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "sand", Scale: 4, TPS: 60, Width: 160, Height: 120, Scenario: sand.ScenarioEmpty, Brush: "sand"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 keeps the default stream)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "start state painted on reset")
	fs.StringVar(&c.Brush, "brush", c.Brush, "initial brush material name")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play a cue when gunpowder explodes")
}

// Validate rejects settings no front-end can run with.
func (c *Config) Validate() error {
	switch {
	case c.Scale <= 0:
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	case c.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if _, ok := sand.ParseMaterial(c.Brush); !ok {
		return fmt.Errorf("unknown brush material %q", c.Brush)
	}
	return nil
}

// BrushMaterial resolves the configured brush name, falling back to Sand.
func (c *Config) BrushMaterial() sand.Material {
	if m, ok := sand.ParseMaterial(c.Brush); ok && m != sand.Empty {
		return m
	}
	return sand.Sand
}

// SimOptions converts the configuration into the factory option map.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"w": strconv.Itoa(c.Width),
		"h": strconv.Itoa(c.Height),
	}
	if c.Scenario != "" {
		opts["scenario"] = c.Scenario
	}
	return opts
}
