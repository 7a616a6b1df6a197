package sand

import (
	"strconv"
	"strings"

	"mad-sand/internal/core"
)

// Config controls the sand universe dimensions and start state.
type Config struct {
	Width  int
	Height int

	// Seed initialises the xorshift stream. Zero selects core.DefaultSeed.
	Seed uint32

	// Scenario names the start state painted on Reset.
	Scenario string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    128,
		Height:   128,
		Seed:     core.DefaultSeed,
		Scenario: ScenarioEmpty,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseUint(v, 0, 32); err == nil && parsed > 0 {
			c.Seed = uint32(parsed)
		}
	}
	if v, ok := cfg["scenario"]; ok {
		name := strings.ToLower(strings.TrimSpace(v))
		if _, known := scenarios[name]; known {
			c.Scenario = name
		}
	}
	return c
}
