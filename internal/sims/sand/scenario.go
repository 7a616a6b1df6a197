package sand

import (
	"sort"

	"github.com/aquilax/go-perlin"

	"mad-sand/internal/core"
)

// Scenario names accepted by Config.Scenario.
const (
	ScenarioEmpty     = "empty"
	ScenarioLandscape = "landscape"
	ScenarioVolcano   = "volcano"
	ScenarioPowderKeg = "powderkeg"
	ScenarioHourglass = "hourglass"
)

type scenarioFunc func(u *Universe, seed uint32)

var scenarios = map[string]scenarioFunc{
	ScenarioEmpty:     func(*Universe, uint32) {},
	ScenarioLandscape: paintLandscape,
	ScenarioVolcano:   paintVolcano,
	ScenarioPowderKeg: paintPowderKeg,
	ScenarioHourglass: paintHourglass,
}

// Scenarios lists the known scenario names in sorted order.
func Scenarios() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyScenario paints the named start state onto u. Unknown names are
// ignored. Scenarios only use Paint, so they start at base temperatures.
func ApplyScenario(u *Universe, name string, seed uint32) bool {
	fn, ok := scenarios[name]
	if !ok {
		return false
	}
	fn(u, seed)
	return true
}

func applyScenario(u *Universe, name string, seed uint32) {
	if name == "" {
		return
	}
	ApplyScenario(u, name, seed)
}

// fillRect paints the inclusive rectangle [r0, r1] x [c0, c1].
func fillRect(u *Universe, r0, c0, r1, c1 int, m Material) {
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			u.Paint(r, c, uint8(m), 0)
		}
	}
}

// paintLandscape builds rolling stone hills from 1D Perlin noise, topped with
// a sand layer of varying depth, with water filling the valleys.
func paintLandscape(u *Universe, seed uint32) {
	w, h := u.Width(), u.Height()
	terrain := perlin.NewPerlin(2, 2, 3, int64(seed))
	topsoil := perlin.NewPerlin(2, 2, 2, int64(seed)+1)

	base := float64(h) * 0.6
	amplitude := float64(h) * 0.3
	waterLine := int(float64(h) * 0.62)

	for c := 0; c < w; c++ {
		x := float64(c) / float64(w)
		surface := int(base - terrain.Noise1D(x*3)*amplitude)
		surface = clampInt(surface, 1, h-1)
		depth := 2 + int((topsoil.Noise1D(x*5)+1)*3)

		for r := surface; r < h; r++ {
			m := Stone
			if r < surface+depth {
				m = Sand
			}
			u.Paint(r, c, uint8(m), 0)
		}
		for r := waterLine; r < surface; r++ {
			u.Paint(r, c, uint8(Water), 0)
		}
	}
}

// paintVolcano buries a lava chamber under an obsidian crust with a wooded
// slope on either side and an ice cap above.
func paintVolcano(u *Universe, seed uint32) {
	w, h := u.Width(), u.Height()
	rng := core.NewXorShift32(seed)

	ground := h - h/3
	fillRect(u, ground, 0, h-1, w-1, Stone)

	chamber := maxInt(h/8, 2)
	cr, cc := h-chamber-1, w/2
	u.Paint(cr, cc, uint8(Obsidian), chamber+1)
	u.Paint(cr, cc, uint8(Lava), chamber)

	trees := maxInt(w/16, 1)
	for i := 0; i < trees; i++ {
		c := rng.Intn(w)
		if absInt(c-cc) <= chamber+2 {
			continue
		}
		height := 3 + rng.Intn(maxInt(h/10, 1))
		fillRect(u, ground-height, c, ground-1, c, Wood)
		crown := 1
		if rng.Bool() {
			crown = 2
		}
		u.Paint(ground-height-crown, c, uint8(Plant), crown)
	}

	capRow := maxInt(ground-chamber*2, 1)
	fillRect(u, capRow, cc-chamber, capRow+1, cc+chamber, Ice)
}

// paintPowderKeg lays a gunpowder bed on a stone floor with an oil slick on
// one end and a lit fuse on the other.
func paintPowderKeg(u *Universe, seed uint32) {
	w, h := u.Width(), u.Height()
	rng := core.NewXorShift32(seed)

	fillRect(u, h-2, 0, h-1, w-1, Stone)
	bed := maxInt(h/10, 2)
	fillRect(u, h-2-bed, w/4, h-3, w-w/4-1, Gunpowder)
	fillRect(u, h-3, w-w/4, h-3, w-1, Oil)

	walls := 1 + rng.Intn(3)
	for i := 0; i < walls; i++ {
		c := w/4 + rng.Intn(maxInt(w/2, 1))
		fillRect(u, h-3-bed-2, c, h-3, c, Stone)
	}

	fuse := w/4 - 1
	if fuse >= 0 {
		fillRect(u, h-2-bed, fuse, h-3, fuse, Wood)
		u.Paint(h-3-bed, fuse, uint8(Fire), 0)
	}
}

// paintHourglass builds a stone funnel with a narrow neck and fills the upper
// bulb with sand.
func paintHourglass(u *Universe, _ uint32) {
	w, h := u.Width(), u.Height()
	mid := h / 2
	center := w / 2
	neck := maxInt(w/64, 1)

	for r := 0; r < h; r++ {
		dist := absInt(r - mid)
		half := neck + dist*center/maxInt(mid, 1)
		left, right := center-half-1, center+half
		u.Paint(r, left, uint8(Stone), 0)
		u.Paint(r, right, uint8(Stone), 0)
		if r < mid-1 && r > h/8 {
			fillRect(u, r, left+1, r, right-1, Sand)
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
