//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"mad-sand/internal/core"
	"mad-sand/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type heatFieldProvider interface {
	Temps() []int16
	Ambient() int16
}

// Overlay draws optional visuals on top of the material view: the heat field
// and the outline of the brush under the cursor.
type Overlay struct {
	sim      core.Sim
	scale    int
	showHeat bool

	heat  *render.GridPainter
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetHeatVisible switches the heat view on or off.
func (o *Overlay) SetHeatVisible(on bool) { o.showHeat = on }

// HeatVisible reports whether the heat view is on.
func (o *Overlay) HeatVisible() bool { return o.showHeat }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showHeat {
		return
	}
	provider, ok := o.sim.(heatFieldProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.heat == nil {
		o.heat = render.NewGridPainter(size.W, size.H)
	}
	o.heat.BlitHeat(screen, provider.Temps(), provider.Ambient(), o.scaleOrOne())
}

// DrawBrush outlines a brush of the given radius centred on (row, col).
func (o *Overlay) DrawBrush(screen *ebiten.Image, row, col, radius int) {
	const segments = 24
	scale := float64(o.scaleOrOne())
	cx := (float64(col) + 0.5) * scale
	cy := (float64(row) + 0.5) * scale
	r := (float64(radius) + 0.5) * scale
	outline := color.RGBA{R: 180, G: 180, B: 190, A: 200}

	for i := 0; i < segments; i++ {
		a0 := 2 * math.Pi * float64(i) / segments
		a1 := 2 * math.Pi * float64(i+1) / segments
		o.drawLine(screen,
			cx+r*math.Cos(a0), cy+r*math.Sin(a0),
			cx+r*math.Cos(a1), cy+r*math.Sin(a1),
			1, outline)
	}
}

func (o *Overlay) scaleOrOne() int {
	if o.scale <= 0 {
		return 1
	}
	return o.scale
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
