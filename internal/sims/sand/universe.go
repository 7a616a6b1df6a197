package sand

import (
	"mad-sand/internal/core"
)

// Universe is a falling-sand world: a grid of material cells with a
// temperature field, advanced one tick at a time. It is not safe for
// concurrent use; callers serialise Tick, Paint and Clear.
type Universe struct {
	cfg Config

	grid      *core.ByteGrid
	temps     []int16
	tempsBack []int16
	moved     []bool

	rng    core.Source
	stream *core.XorShift32

	generation uint8
	explosions int
}

// New returns an empty universe with the provided dimensions using defaults.
func New(w, h int) *Universe {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a universe configured from the provided options. The
// grid starts empty at ambient temperature; the scenario is only painted by
// Reset.
func NewWithConfig(cfg Config) *Universe {
	stream := core.NewXorShift32(cfg.Seed)
	u := newUniverse(cfg, stream)
	u.stream = stream
	return u
}

// NewWithSource returns an empty universe that draws every random decision
// from src instead of its own xorshift stream.
func NewWithSource(w, h int, src core.Source) *Universe {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return newUniverse(cfg, src)
}

func newUniverse(cfg Config, src core.Source) *Universe {
	grid := core.NewByteGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = grid.W, grid.H
	total := grid.Len()
	u := &Universe{
		cfg:       cfg,
		grid:      grid,
		temps:     make([]int16, total),
		tempsBack: make([]int16, total),
		moved:     make([]bool, total),
		rng:       src,
	}
	u.Clear()
	return u
}

// Name returns the simulation identifier.
func (u *Universe) Name() string { return "sand" }

// Size reports the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: u.grid.W, H: u.grid.H} }

// Width returns the number of columns.
func (u *Universe) Width() int { return u.grid.W }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.grid.H }

// Cells exposes the raw cell buffer, one material code per cell in row-major
// order. The slice is owned by the universe and must not be written.
func (u *Universe) Cells() []uint8 { return u.grid.Cells() }

// Temps exposes the live temperature buffer. The backing array changes on
// every tick, so callers fetch it again after each Tick.
func (u *Universe) Temps() []int16 { return u.temps }

// Ambient returns the resting temperature of empty space.
func (u *Universe) Ambient() int16 { return AmbientTemperature }

// Generation returns the wrapping tick counter.
func (u *Universe) Generation() uint8 { return u.generation }

// Explosions reports how many explosions the last tick triggered.
func (u *Universe) Explosions() int { return u.explosions }

// Config returns the configuration the universe was built with.
func (u *Universe) Config() Config { return u.cfg }

// At returns the material at (row, col), or Empty outside the grid.
func (u *Universe) At(row, col int) Material {
	if !u.grid.InBounds(col, row) {
		return Empty
	}
	return Decode(u.grid.Cells()[u.grid.Index(col, row)])
}

// Temperature returns the temperature at (row, col), or ambient outside the
// grid.
func (u *Universe) Temperature(row, col int) int16 {
	if !u.grid.InBounds(col, row) {
		return AmbientTemperature
	}
	return u.temps[u.grid.Index(col, row)]
}

// Reset clears the grid, reseeds the random stream and paints the configured
// scenario. A zero seed keeps the configured seed.
func (u *Universe) Reset(seed int64) {
	effective := u.cfg.Seed
	if seed != 0 {
		effective = core.SeedFromInt64(seed)
	}
	if u.stream != nil {
		u.stream.Seed(effective)
	}
	u.Clear()
	u.generation = 0
	u.explosions = 0
	applyScenario(u, u.cfg.Scenario, effective)
}

// Step advances the universe by one tick.
func (u *Universe) Step() { u.Tick() }

// Paint overwrites every cell within radius of (row, col) with the material
// encoded by code. Offsets falling outside the grid are skipped. Painting a
// non-empty material resets the cell temperature to its base temperature.
func (u *Universe) Paint(row, col int, code uint8, radius int) {
	m := Decode(code)
	r2 := radius * radius
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if dr*dr+dc*dc > r2 {
				continue
			}
			if idx, ok := u.grid.Offset(col, row, dc, dr); ok {
				u.set(idx, m)
			}
		}
	}
}

// Clear empties every cell and returns the heat field to ambient.
func (u *Universe) Clear() {
	u.grid.Clear()
	for i := range u.temps {
		u.temps[i] = AmbientTemperature
		u.tempsBack[i] = AmbientTemperature
	}
	clear(u.moved)
}

func (u *Universe) set(idx int, m Material) {
	u.grid.Cells()[idx] = uint8(m)
	if m != Empty {
		u.temps[idx] = m.BaseTemperature()
	}
}

func (u *Universe) swap(a, b int) {
	u.grid.Swap(a, b)
	u.temps[a], u.temps[b] = u.temps[b], u.temps[a]
	u.moved[a] = true
	u.moved[b] = true
}

func (u *Universe) material(idx int) Material {
	return Decode(u.grid.Cells()[idx])
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
