package sand

import "mad-sand/internal/core"

// MaxBrushRadius bounds the brush size exposed to front-ends.
const MaxBrushRadius = 16

// Brush holds the material and radius a front-end paints with.
type Brush struct {
	Material Material
	Radius   int
}

// DefaultBrush returns a radius-1 sand brush.
func DefaultBrush() *Brush {
	return &Brush{Material: Sand, Radius: 1}
}

// Apply paints the brush footprint centred on (row, col).
func (b *Brush) Apply(p core.Painter, row, col int) {
	p.Paint(row, col, uint8(b.Material), b.Radius)
}

// Grow changes the radius by delta, clamped to [0, MaxBrushRadius].
func (b *Brush) Grow(delta int) {
	b.Radius = clampInt(b.Radius+delta, 0, MaxBrushRadius)
}

// Select switches the brush material if m is valid.
func (b *Brush) Select(m Material) {
	if m.Valid() {
		b.Material = m
	}
}

// Parameters reports the brush state for the HUD.
func (b *Brush) Parameters() core.ParameterSnapshot {
	material := intParam("brush_material", "Material", int(b.Material))
	material.Description = b.Material.String()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Brush",
		Params: []core.Parameter{
			intParam("brush_radius", "Brush radius", b.Radius),
			material,
		},
	}}}
}

// ParameterControls lists the adjustable brush settings.
func (b *Brush) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "brush_radius", Label: "Brush radius", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: MaxBrushRadius, HasMin: true, HasMax: true},
		{Key: "brush_material", Label: "Material", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: MaterialCount - 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates a brush setting from the HUD.
func (b *Brush) SetIntParameter(key string, value int) bool {
	switch key {
	case "brush_radius":
		b.Radius = clampInt(value, 0, MaxBrushRadius)
		return true
	case "brush_material":
		b.Select(Material(clampInt(value, 0, MaterialCount-1)))
		return true
	}
	return false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
