package ui

import (
	"image"
	"math"
	"strconv"

	"mad-sand/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	statHeight     = 16
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)

func newControlStates(controls []core.ParameterControl) []hudControlState {
	states := make([]hudControlState, 0, len(controls))
	for _, ctrl := range controls {
		if ctrl.Type != core.ParamTypeInt {
			continue
		}
		states = append(states, hudControlState{control: ctrl, value: "--"})
	}
	return states
}

// snapshotOf collects the parameters of every source that exposes them.
func snapshotOf(sources ...any) core.ParameterSnapshot {
	var snap core.ParameterSnapshot
	for _, src := range sources {
		if provider, ok := src.(parameterProvider); ok {
			snap.Groups = append(snap.Groups, provider.Parameters().Groups...)
		}
	}
	return snap
}

func refreshControlValues(states []hudControlState, snap core.ParameterSnapshot) {
	params := map[string]core.Parameter{}
	for _, group := range snap.Groups {
		for _, param := range group.Params {
			params[param.Key] = param
		}
	}
	for i := range states {
		state := &states[i]
		param, ok := params[state.control.Key]
		parsed, err := strconv.Atoi(param.Value)
		if !ok || err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.intValue = parsed
		state.value = displayValue(param)
		state.hasValue = true
	}
}

// target returns the bounded value one step in direction, and whether it
// differs from the current value.
func (s *hudControlState) target(direction int) (int, bool) {
	if !s.hasValue || direction == 0 {
		return s.intValue, false
	}
	step := int(math.Round(s.control.Step))
	if step <= 0 {
		step = 1
	}
	next := s.intValue + direction*step
	if s.control.HasMin {
		next = max(next, int(math.Round(s.control.Min)))
	}
	if s.control.HasMax {
		next = min(next, int(math.Round(s.control.Max)))
	}
	return next, next != s.intValue
}

func layoutControls(states []hudControlState, width int) {
	if width <= 0 {
		return
	}
	for i := range states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = top
		states[i].minusRect = minusRect
		states[i].plusRect = plusRect
	}
}

// statLines renders the read-only part of a snapshot as text rows. Keys in
// skip are left out. Groups carrying a summary are tallies, so their zero
// rows are omitted.
func statLines(snap core.ParameterSnapshot, skip map[string]bool) []string {
	var lines []string
	for _, group := range snap.Groups {
		var rows []string
		for _, param := range group.Params {
			if skip[param.Key] {
				continue
			}
			if group.Summary != "" && param.Value == "0" {
				continue
			}
			rows = append(rows, "  "+param.Label+": "+displayValue(param))
		}
		if len(rows) == 0 && group.Summary == "" {
			continue
		}
		header := group.Name
		if group.Summary != "" {
			header += " (" + group.Summary + ")"
		}
		lines = append(lines, header)
		lines = append(lines, rows...)
	}
	return lines
}

func displayValue(p core.Parameter) string {
	if p.Description != "" {
		return p.Description
	}
	return p.Value
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
