package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"mad-sand/internal/app"
	"mad-sand/internal/core"
	"mad-sand/internal/render"
	"mad-sand/internal/sims/sand"
)

// frameInterval paces redraws independently of the tick rate.
const frameInterval = 16 * time.Millisecond

// halfBlock draws the upper cell in the foreground colour and the lower cell
// in the background colour.
const halfBlock = '▀'

type heatFieldProvider interface {
	Temps() []int16
	Ambient() int16
}

type paletteProvider interface {
	Palette() []color.RGBA
}

// Viewer renders a session onto a tcell screen, two grid rows per terminal
// row, with a status line below the grid.
type Viewer struct {
	screen  tcell.Screen
	session *app.Session
	clock   *core.FixedStep
	palette []color.RGBA
}

// New builds a viewer for an initialised screen. The caller owns the screen
// and finalises it.
func New(screen tcell.Screen, session *app.Session, tps int) *Viewer {
	v := &Viewer{
		screen:  screen,
		session: session,
		clock:   core.NewFixedStep(tps),
		palette: sand.Palette(),
	}
	if p, ok := session.Sim().(paletteProvider); ok {
		v.palette = p.Palette()
	}
	screen.EnableMouse()
	return v
}

// Run pumps events and ticks the session until the user quits or ctx ends.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("viewer stopped: %w", ctx.Err())
		case ev := <-events:
			if v.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			for v.clock.ShouldStep() {
				v.session.Advance()
			}
			v.Draw()
		}
	}
}

// HandleEvent applies one input event and reports whether to quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyEnter:
			v.session.Resume()
		case tcell.KeyRune:
			r := ev.Rune()
			return v.session.Apply(app.ActionForRune(r), r)
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			v.session.PaintAt(2*y, x)
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return false
}

// Draw renders the grid and the status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	sim := v.session.Sim()
	size := sim.Size()
	cells := sim.Cells()

	var temps []int16
	var ambient int16
	if hp, ok := sim.(heatFieldProvider); ok && v.session.HeatVisible() {
		temps, ambient = hp.Temps(), hp.Ambient()
	}

	cellColor := func(row, col int) tcell.Color {
		if row >= size.H {
			return tcell.ColorBlack
		}
		idx := row*size.W + col
		c := v.paletteColor(cells[idx])
		if temps != nil {
			c = over(render.HeatColor(temps[idx], ambient), c)
		}
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}

	for y := 0; 2*y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			style := tcell.StyleDefault.
				Foreground(cellColor(2*y, x)).
				Background(cellColor(2*y+1, x))
			v.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}

	status := v.status()
	row := (size.H + 1) / 2
	for i, r := range status {
		v.screen.SetContent(i, row, r, nil, tcell.StyleDefault)
	}
	v.screen.Show()
}

func (v *Viewer) status() string {
	brush := v.session.Brush()
	line := fmt.Sprintf("%s r%d", brush.Material, brush.Radius)
	if u, ok := v.session.Sim().(*sand.Universe); ok {
		line = fmt.Sprintf("gen %3d | %s | %d cells", u.Generation(), line, u.Census().Occupied())
	}
	if v.session.Paused() {
		line += " | paused"
	}
	if v.session.HeatVisible() {
		line += " | heat"
	}
	return line
}

func (v *Viewer) paletteColor(code uint8) color.RGBA {
	if len(v.palette) == 0 {
		return color.RGBA{A: 255}
	}
	idx := min(int(code), len(v.palette)-1)
	return v.palette[idx]
}

// over composites premultiplied src on top of dst.
func over(src, dst color.RGBA) color.RGBA {
	k := 255 - uint16(src.A)
	return color.RGBA{
		R: src.R + uint8(uint16(dst.R)*k/255),
		G: src.G + uint8(uint16(dst.G)*k/255),
		B: src.B + uint8(uint16(dst.B)*k/255),
		A: 255,
	}
}
