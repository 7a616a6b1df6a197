package app

import (
	"flag"
	"testing"
	"time"

	"mad-sand/internal/sims/sand"
)

func TestConfigBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-w", "40", "-h", "30", "-scenario", "volcano", "-seed", "9", "-sound", "-tps", "30"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Width != 40 || cfg.Height != 30 || cfg.Scenario != "volcano" || cfg.Seed != 9 || !cfg.Sound || cfg.TPS != 30 {
		t.Fatalf("config = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	u := sand.NewWithConfig(sand.FromMap(cfg.SimOptions()))
	if u.Width() != 40 || u.Height() != 30 || u.Config().Scenario != "volcano" {
		t.Fatalf("sim built from options = %+v", u.Config())
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.Scale = 0 },
		func(c *Config) { c.TPS = -1 },
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.Height = -3 },
	}
	for i, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if cfg.Validate() == nil {
			t.Fatalf("case %d: expected an error for %+v", i, cfg)
		}
	}
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}
}

func TestConfigBrushMaterial(t *testing.T) {
	cfg := NewConfig()
	if cfg.BrushMaterial() != sand.Sand {
		t.Fatalf("default brush = %v", cfg.BrushMaterial())
	}
	cfg.Brush = " GunPowder "
	if cfg.BrushMaterial() != sand.Gunpowder {
		t.Fatalf("brush = %v, expected Gunpowder", cfg.BrushMaterial())
	}
	cfg.Brush = "empty"
	if cfg.BrushMaterial() != sand.Sand {
		t.Fatal("an empty brush should fall back to sand")
	}
	cfg.Brush = "plasma"
	if cfg.Validate() == nil {
		t.Fatal("unknown brush should fail validation")
	}
}

func TestActionForRune(t *testing.T) {
	cases := map[rune]Action{
		'q': ActionQuit,
		' ': ActionPause,
		'n': ActionStep,
		'c': ActionClear,
		'r': ActionReset,
		's': ActionReseed,
		'h': ActionHeat,
		'[': ActionShrink,
		']': ActionGrow,
		'7': ActionSelect,
		'0': ActionSelect,
		'x': ActionNone,
	}
	for r, want := range cases {
		if got := ActionForRune(r); got != want {
			t.Fatalf("ActionForRune(%q) = %d, expected %d", r, got, want)
		}
	}
}

type countingCue struct {
	calls []int
}

func (c *countingCue) Trigger(n int) bool {
	c.calls = append(c.calls, n)
	return n > 0
}

func TestSessionPauseAndStep(t *testing.T) {
	u := sand.New(8, 8)
	s := NewSession(u, 0, nil)

	if !s.Advance() || u.Generation() != 1 {
		t.Fatalf("running session should tick, generation %d", u.Generation())
	}
	s.Apply(ActionPause, ' ')
	if s.Advance() {
		t.Fatal("paused session should not tick")
	}
	s.Apply(ActionStep, 'n')
	if !s.Advance() || u.Generation() != 2 {
		t.Fatalf("single step should tick once, generation %d", u.Generation())
	}
	if s.Advance() {
		t.Fatal("single step should not repeat")
	}
	s.Resume()
	if !s.Advance() {
		t.Fatal("resumed session should tick")
	}
}

func TestSessionBrushAndPainting(t *testing.T) {
	u := sand.New(9, 9)
	s := NewSession(u, 0, nil)

	s.Apply(ActionSelect, '2')
	s.Apply(ActionGrow, ']')
	if s.Brush().Material != sand.Water || s.Brush().Radius != 2 {
		t.Fatalf("brush = %+v", s.Brush())
	}
	s.PaintAt(4, 4)
	if got := u.Census().Count(sand.Water); got != 13 {
		t.Fatalf("painted %d water cells, expected 13", got)
	}

	s.Apply(ActionClear, 'c')
	if got := u.Census().Occupied(); got != 0 {
		t.Fatalf("%d cells left after clearing", got)
	}

	s.Apply(ActionShrink, '[')
	s.Apply(ActionShrink, '[')
	s.Apply(ActionShrink, '[')
	if s.Brush().Radius != 0 {
		t.Fatalf("radius = %d after shrinking", s.Brush().Radius)
	}
}

func TestSessionResetAndReseed(t *testing.T) {
	cfg := sand.DefaultConfig()
	cfg.Width, cfg.Height = 32, 24
	cfg.Scenario = sand.ScenarioHourglass
	u := sand.NewWithConfig(cfg)
	s := NewSession(u, 5, nil)
	s.now = func() time.Time { return time.Unix(0, 77) }

	s.Apply(ActionReset, 'r')
	if u.Census().Count(sand.Sand) == 0 {
		t.Fatal("reset should repaint the scenario")
	}
	if s.Seed() != 5 {
		t.Fatalf("seed = %d after reset", s.Seed())
	}
	s.Apply(ActionReseed, 's')
	if s.Seed() != 77 {
		t.Fatalf("seed = %d after reseed, expected the clock", s.Seed())
	}
	if u.Generation() != 0 {
		t.Fatalf("generation = %d after reseed", u.Generation())
	}
}

func TestSessionToggles(t *testing.T) {
	s := NewSession(sand.New(4, 4), 0, nil)
	s.Apply(ActionHeat, 'h')
	if !s.HeatVisible() {
		t.Fatal("heat overlay should be on")
	}
	if !s.Apply(ActionQuit, 'q') {
		t.Fatal("quit should report true")
	}
	if s.Apply(ActionNone, 'x') {
		t.Fatal("unbound keys should not quit")
	}
}

func TestSessionFiresCueOnExplosion(t *testing.T) {
	u := sand.New(7, 7)
	u.Paint(6, 3, uint8(sand.Gunpowder), 0)
	u.Paint(6, 2, uint8(sand.Fire), 0)
	cue := &countingCue{}
	s := NewSession(u, 0, cue)

	s.Advance()
	if len(cue.calls) != 1 || cue.calls[0] != 1 {
		t.Fatalf("cue calls = %v, expected one call for one explosion", cue.calls)
	}
}
