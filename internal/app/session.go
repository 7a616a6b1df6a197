package app

import (
	"time"

	"mad-sand/internal/core"
	"mad-sand/internal/sims/sand"
)

// Action is a front-end command decoded from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionStep
	ActionClear
	ActionReset
	ActionReseed
	ActionHeat
	ActionShrink
	ActionGrow
	ActionSelect
)

var runeActions = map[rune]Action{
	'q': ActionQuit,
	'Q': ActionQuit,
	' ': ActionPause,
	'n': ActionStep,
	'N': ActionStep,
	'c': ActionClear,
	'C': ActionClear,
	'r': ActionReset,
	'R': ActionReset,
	's': ActionReseed,
	'S': ActionReseed,
	'h': ActionHeat,
	'H': ActionHeat,
	'[': ActionShrink,
	']': ActionGrow,
}

// ActionForRune maps a typed character onto an action. Digits select a
// brush material.
func ActionForRune(r rune) Action {
	if _, ok := sand.MaterialForKey(r); ok {
		return ActionSelect
	}
	return runeActions[r]
}

// Trigger is implemented by sound cues fired when a tick reports explosions.
type Trigger interface {
	Trigger(n int) bool
}

type explosionReporter interface {
	Explosions() int
}

// Session holds the interactive state shared by the GUI and terminal
// front-ends: the sim, the brush and the run controls.
type Session struct {
	sim   core.Sim
	brush *sand.Brush
	cue   Trigger

	seed     int64
	paused   bool
	tickOnce bool
	showHeat bool

	now func() time.Time
}

// NewSession wraps sim for interactive use. cue may be nil.
func NewSession(sim core.Sim, seed int64, cue Trigger) *Session {
	return &Session{
		sim:   sim,
		brush: sand.DefaultBrush(),
		cue:   cue,
		seed:  seed,
		now:   time.Now,
	}
}

// Sim returns the wrapped simulation.
func (s *Session) Sim() core.Sim { return s.sim }

// Brush returns the brush used for painting.
func (s *Session) Brush() *sand.Brush { return s.brush }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// HeatVisible reports whether the heat overlay is on.
func (s *Session) HeatVisible() bool { return s.showHeat }

// Seed returns the seed the next reset uses.
func (s *Session) Seed() int64 { return s.seed }

// Apply performs an action. r is the key that produced it, used by
// ActionSelect. It reports whether the front-end should quit.
func (s *Session) Apply(a Action, r rune) bool {
	switch a {
	case ActionQuit:
		return true
	case ActionPause:
		s.paused = !s.paused
	case ActionStep:
		s.tickOnce = true
	case ActionClear:
		if p, ok := s.sim.(core.Painter); ok {
			p.Clear()
		}
	case ActionReset:
		s.Reset(s.seed)
	case ActionReseed:
		s.Reset(s.now().UnixNano())
	case ActionHeat:
		s.showHeat = !s.showHeat
	case ActionShrink:
		s.brush.Grow(-1)
	case ActionGrow:
		s.brush.Grow(1)
	case ActionSelect:
		if m, ok := sand.MaterialForKey(r); ok {
			s.brush.Select(m)
		}
	}
	return false
}

// Resume clears the paused flag.
func (s *Session) Resume() { s.paused = false }

// Reset reinitializes the simulation state with the provided seed.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	s.sim.Reset(seed)
	s.tickOnce = false
}

// PaintAt applies the brush at (row, col) when the sim accepts strokes.
func (s *Session) PaintAt(row, col int) {
	if p, ok := s.sim.(core.Painter); ok {
		s.brush.Apply(p, row, col)
	}
}

// Advance steps the sim unless it is paused without a pending single step.
// It reports whether a tick ran.
func (s *Session) Advance() bool {
	if s.paused && !s.tickOnce {
		return false
	}
	s.sim.Step()
	s.tickOnce = false
	if s.cue != nil {
		if r, ok := s.sim.(explosionReporter); ok {
			s.cue.Trigger(r.Explosions())
		}
	}
	return true
}
