package sand

import "mad-sand/internal/core"

const (
	explosionRadius  = 3
	explosionSamples = 10
	explosionSpan    = 10
)

// react applies the material rules to the cell at (row, col). It reports
// true when the cell must not move this tick.
func (u *Universe) react(rng core.Source, row, col int, cell Material) bool {
	idx := u.grid.Index(col, row)
	t := u.temps[idx]

	switch cell {
	case Water:
		if t > 100 {
			if chance(rng, 10) {
				u.set(idx, Steam)
			}
			return true
		}
		if t < -5 {
			if chance(rng, 10) {
				u.set(idx, Ice)
			}
			return true
		}
	case Ice:
		if t > 0 {
			if chance(rng, 20) {
				u.set(idx, Water)
			}
			return true
		}
	case Lava:
		if t < 800 {
			if chance(rng, 10) {
				// Cooled lava keeps its heat.
				u.set(idx, Stone)
				u.temps[idx] = t
			}
			return true
		}
	case Sand:
		if t > 500 {
			if chance(rng, 50) {
				u.set(idx, Glass)
			}
			return true
		}
	case Fire:
		if rng.Uint32()&15 == 0 {
			if rng.Uint32()&1 == 0 {
				u.set(idx, Smoke)
			} else {
				u.set(idx, Empty)
			}
			return true
		}
	case Smoke:
		if rng.Uint32()&15 == 0 {
			u.set(idx, Empty)
			return true
		}
	case Steam:
		if t < 80 {
			if chance(rng, 20) {
				u.set(idx, Water)
			}
			return true
		}
	}

	if u.reactAdjacent(rng, row, col, cell) {
		return true
	}
	if u.reactNeighbor(rng, row, col, cell) {
		return true
	}
	return cell.IsStatic()
}

// reactAdjacent checks the contact rules that fire whenever the pair exists.
func (u *Universe) reactAdjacent(rng core.Source, row, col int, cell Material) bool {
	if cell != Ice && cell != Gunpowder {
		return false
	}
	idx := u.grid.Index(col, row)
	for _, d := range neighborOffsets {
		nidx, ok := u.grid.Offset(col, row, d.dx, d.dy)
		if !ok {
			continue
		}
		n := u.material(nidx)
		switch {
		case cell == Ice && n == Lava:
			u.set(idx, Steam)
			u.set(nidx, Obsidian)
			return true
		case cell == Gunpowder && (n == Fire || n == Lava):
			u.explode(rng, row, col)
			return true
		}
	}
	return false
}

// reactNeighbor samples one random neighbour on a 1-in-8 roll and applies the
// pairwise rules for it.
func (u *Universe) reactNeighbor(rng core.Source, row, col int, cell Material) bool {
	if rng.Uint32()&7 != 0 {
		return false
	}
	d := neighborOffsets[rng.Uint32()%uint32(len(neighborOffsets))]
	nidx, ok := u.grid.Offset(col, row, d.dx, d.dy)
	if !ok {
		return false
	}
	idx := u.grid.Index(col, row)
	n := u.material(nidx)

	switch cell {
	case Acid:
		switch n {
		case Lava:
			u.set(idx, Fire)
			u.set(nidx, Steam)
			return true
		case Stone, Obsidian:
			if chance(rng, 20) {
				u.set(nidx, Sand)
				if rng.Uint32()%2 == 0 {
					u.set(idx, Empty)
				}
			}
			return true
		case Wood, Plant, Gunpowder:
			if chance(rng, 10) {
				u.set(nidx, Smoke)
				u.set(idx, Empty)
			}
			return true
		}
	case Lava:
		switch n {
		case Water:
			u.set(idx, Obsidian)
			u.set(nidx, Steam)
			return true
		case Wood, Plant, Gunpowder, Oil:
			u.set(nidx, Fire)
		}
	case Water:
		if n == Plant && chance(rng, 20) {
			u.set(idx, Plant)
			return true
		}
	}

	if n == Fire || n == Lava {
		if p := cell.Flammability(); p > 0 && uint8(rng.Uint32())%100 < p {
			u.set(idx, Fire)
			return true
		}
	}
	return false
}

// explode turns the area around (row, col) into fire and scatters fire and
// smoke over a wider box. Structural materials survive the scatter. New fire
// spreads on later ticks, never within this one.
func (u *Universe) explode(rng core.Source, row, col int) {
	u.explosions++
	u.Paint(row, col, uint8(Fire), explosionRadius)
	for i := 0; i < explosionSamples; i++ {
		dy := int(rng.Uint32()%explosionSpan) - explosionSpan/2
		dx := int(rng.Uint32()%explosionSpan) - explosionSpan/2
		nidx, ok := u.grid.Offset(col, row, dx, dy)
		if !ok {
			continue
		}
		switch u.material(nidx) {
		case Stone, Obsidian, Glass:
			continue
		}
		if rng.Uint32()%2 == 0 {
			u.set(nidx, Fire)
		} else {
			u.set(nidx, Smoke)
		}
	}
}
