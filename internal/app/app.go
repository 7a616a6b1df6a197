//go:build ebiten

package app

import (
	"image/color"

	"mad-sand/internal/core"
	"mad-sand/internal/render"
	"mad-sand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width in pixels of the panel right of the grid.
const HUDWidth = 220

type paletteProvider interface {
	Palette() []color.RGBA
}

var fallbackPalette = []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	palette []color.RGBA

	scale int
	chars []rune
}

// New constructs a Game for the provided simulation. cue may be nil.
func New(sim core.Sim, cfg *Config, cue Trigger) *Game {
	size := sim.Size()
	scale := cfg.Scale
	session := NewSession(sim, cfg.Seed, cue)
	session.Brush().Select(cfg.BrushMaterial())
	palette := fallbackPalette
	if p, ok := sim.(paletteProvider); ok {
		palette = p.Palette()
	}
	return &Game{
		session: session,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, scale),
		hud:     ui.NewHUD(sim, session.Brush(), HUDWidth),
		palette: palette,
		scale:   scale,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) { g.session.Reset(seed) }

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.session.Resume()
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		if g.session.Apply(ActionForRune(r), r) {
			return ebiten.Termination
		}
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if row, col, ok := g.cursorCell(); ok {
			g.session.PaintAt(row, col)
		}
	}

	g.overlay.SetHeatVisible(g.session.HeatVisible())
	g.hud.Update(g.gridWidth())
	g.session.Advance()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Sim().Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	if row, col, ok := g.cursorCell(); ok {
		g.overlay.DrawBrush(screen, row, col, g.session.Brush().Radius)
	}
	g.hud.Draw(screen, g.gridWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Sim().Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}

func (g *Game) gridWidth() int { return g.session.Sim().Size().W * g.scale }

func (g *Game) cursorCell() (row, col int, ok bool) {
	x, y := ebiten.CursorPosition()
	if g.scale <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	size := g.session.Sim().Size()
	row, col = y/g.scale, x/g.scale
	return row, col, row < size.H && col < size.W
}
