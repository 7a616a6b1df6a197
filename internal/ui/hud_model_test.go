package ui

import (
	"slices"
	"strconv"
	"testing"

	"mad-sand/internal/core"
)

type fakeTools struct {
	radius int
}

func (f *fakeTools) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Brush",
		Params: []core.Parameter{
			{Key: "radius", Label: "Radius", Type: core.ParamTypeInt, Value: strconv.Itoa(f.radius)},
			{Key: "material", Label: "Material", Type: core.ParamTypeInt, Value: "7", Description: "Oil"},
		},
	}}}
}

func TestSnapshotOfMergesSources(t *testing.T) {
	stats := core.ParameterSnapshot{Groups: []core.ParameterGroup{{Name: "World"}}}
	snap := snapshotOf(staticSnapshot(stats), nil, &fakeTools{radius: 2}, 42)
	var names []string
	for _, g := range snap.Groups {
		names = append(names, g.Name)
	}
	if !slices.Equal(names, []string{"World", "Brush"}) {
		t.Fatalf("groups = %v", names)
	}
}

type staticSnapshot core.ParameterSnapshot

func (s staticSnapshot) Parameters() core.ParameterSnapshot { return core.ParameterSnapshot(s) }

func TestRefreshControlValues(t *testing.T) {
	states := newControlStates([]core.ParameterControl{
		{Key: "radius", Type: core.ParamTypeInt, Step: 1},
		{Key: "material", Type: core.ParamTypeInt, Step: 1},
		{Key: "missing", Type: core.ParamTypeInt, Step: 1},
		{Key: "ratio", Type: core.ParamTypeFloat, Step: 0.1},
	})
	if len(states) != 3 {
		t.Fatalf("expected float controls to be dropped, got %d states", len(states))
	}
	refreshControlValues(states, snapshotOf(&fakeTools{radius: 3}))

	if !states[0].hasValue || states[0].intValue != 3 || states[0].value != "3" {
		t.Fatalf("radius state = %+v", states[0])
	}
	if states[1].value != "Oil" || states[1].intValue != 7 {
		t.Fatalf("material state should display its description: %+v", states[1])
	}
	if states[2].hasValue || states[2].value != "--" {
		t.Fatalf("missing state = %+v", states[2])
	}
}

func TestControlTargetHonoursBounds(t *testing.T) {
	state := hudControlState{
		control:  core.ParameterControl{Key: "radius", Type: core.ParamTypeInt, Step: 2, Min: 0, Max: 5, HasMin: true, HasMax: true},
		intValue: 4,
		hasValue: true,
	}
	if got, ok := state.target(1); got != 5 || !ok {
		t.Fatalf("target(+1) = %d, %v", got, ok)
	}
	state.intValue = 5
	if _, ok := state.target(1); ok {
		t.Fatal("stepping past the maximum should report no change")
	}
	state.intValue = 1
	if got, ok := state.target(-1); got != 0 || !ok {
		t.Fatalf("target(-1) = %d, %v", got, ok)
	}
	state.hasValue = false
	if _, ok := state.target(-1); ok {
		t.Fatal("controls without a value cannot be adjusted")
	}
}

func TestLayoutControlsStacksRows(t *testing.T) {
	states := make([]hudControlState, 2)
	layoutControls(states, 200)
	if states[1].top-states[0].top != lineHeight {
		t.Fatalf("rows are %d apart", states[1].top-states[0].top)
	}
	if states[0].plusRect.Max.X != 200-panelPadding {
		t.Fatalf("plus button ends at %d", states[0].plusRect.Max.X)
	}
	if !(states[0].minusRect.Max.X < states[0].plusRect.Min.X) {
		t.Fatal("minus button should sit left of plus")
	}
	mid := states[0].plusRect.Min
	if !pointInRect(mid.X, mid.Y, states[0].plusRect) || pointInRect(mid.X, mid.Y, states[0].minusRect) {
		t.Fatal("hit testing disagrees with the layout")
	}
}

func TestStatLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "World", Params: []core.Parameter{
			{Key: "generation", Label: "Generation", Value: "0"},
			{Key: "radius", Label: "Radius", Value: "2"},
		}},
		{Name: "Census", Summary: "4 occupied cells", Params: []core.Parameter{
			{Key: "count_Sand", Label: "Sand", Value: "4"},
			{Key: "count_Water", Label: "Water", Value: "0"},
		}},
		{Name: "Hidden", Params: []core.Parameter{{Key: "radius", Label: "Radius", Value: "2"}}},
	}}
	got := statLines(snap, map[string]bool{"radius": true})
	want := []string{
		"World",
		"  Generation: 0",
		"Census (4 occupied cells)",
		"  Sand: 4",
	}
	if !slices.Equal(got, want) {
		t.Fatalf("statLines = %q, expected %q", got, want)
	}
}
