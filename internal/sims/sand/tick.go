package sand

import "mad-sand/internal/core"

type offset struct{ dx, dy int }

// neighborOffsets lists the orthogonal neighbours in the order rules visit
// them: right, left, below, above.
var neighborOffsets = [4]offset{
	{dx: 1, dy: 0},
	{dx: -1, dy: 0},
	{dx: 0, dy: 1},
	{dx: 0, dy: -1},
}

// Tick advances the universe by one generation: heat diffuses over the whole
// grid, then every cell is visited once from the bottom row upward. Even
// generations scan columns left to right, odd generations right to left.
//
// A cell that swaps is flagged at both endpoints and is not visited again in
// the same tick. The flag is per index, so a cell carried to an index the scan
// has already passed waits for the next tick.
func (u *Universe) Tick() {
	u.generation++
	u.explosions = 0
	clear(u.moved)

	u.diffuseHeat()

	rng := u.rng
	w, h := u.grid.W, u.grid.H
	if u.generation%2 == 0 {
		for row := h - 1; row >= 0; row-- {
			for col := 0; col < w; col++ {
				u.updateCell(rng, row, col)
			}
		}
		return
	}
	for row := h - 1; row >= 0; row-- {
		for col := w - 1; col >= 0; col-- {
			u.updateCell(rng, row, col)
		}
	}
}

func (u *Universe) updateCell(rng core.Source, row, col int) {
	idx := u.grid.Index(col, row)
	if u.moved[idx] {
		return
	}
	cell := u.material(idx)
	if cell == Empty {
		return
	}

	if u.react(rng, row, col, cell) {
		return
	}

	switch cell.Phase() {
	case PhaseGas:
		u.moveGas(rng, row, col)
	case PhaseSolid, PhaseLiquid:
		u.moveSolidLiquid(rng, row, col, cell)
	}
}

// chance reports a 1-in-n event.
func chance(rng core.Source, n uint32) bool {
	return rng.Uint32()%n == 0
}

// spreadOrder picks which side is tried first for diagonal and lateral moves.
func spreadOrder(rng core.Source) [2]int {
	if rng.Uint32()&1 == 0 {
		return [2]int{-1, 1}
	}
	return [2]int{1, -1}
}
