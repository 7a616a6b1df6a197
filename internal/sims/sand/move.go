package sand

import "mad-sand/internal/core"

// canSink reports whether a falling or flowing mover may take target's place.
func canSink(mover, target Material) bool {
	if target == Empty {
		return true
	}
	return !target.IsStatic() && mover.Density() > target.Density()
}

// canRise reports whether a gas may take target's place.
func canRise(target Material) bool {
	return target == Empty || target.IsLiquid()
}

// moveSolidLiquid lets powders and liquids fall, slide diagonally, and for
// liquids spread sideways.
func (u *Universe) moveSolidLiquid(rng core.Source, row, col int, cell Material) {
	if row == u.grid.H-1 {
		return
	}
	idx := u.grid.Index(col, row)

	below := u.grid.Index(col, row+1)
	if canSink(cell, u.material(below)) {
		u.swap(idx, below)
		return
	}

	dirs := spreadOrder(rng)
	for _, dx := range dirs {
		if diag, ok := u.grid.Offset(col, row, dx, 1); ok && canSink(cell, u.material(diag)) {
			u.swap(idx, diag)
			return
		}
	}

	if !cell.IsLiquid() {
		return
	}
	for _, dx := range dirs {
		if side, ok := u.grid.Offset(col, row, dx, 0); ok && canSink(cell, u.material(side)) {
			u.swap(idx, side)
			return
		}
	}
	// Jump over a neighbour of the same liquid into the gap beyond it.
	for _, dx := range dirs {
		far, ok := u.grid.Offset(col, row, 2*dx, 0)
		if !ok {
			continue
		}
		mid := u.grid.Index(col+dx, row)
		if u.material(mid) == cell && u.material(far) == Empty {
			u.swap(idx, far)
			return
		}
	}
}

// moveGas lets gases rise through empty space and liquids, then drift sideways.
func (u *Universe) moveGas(rng core.Source, row, col int) {
	if row == 0 {
		return
	}
	idx := u.grid.Index(col, row)

	above := u.grid.Index(col, row-1)
	if canRise(u.material(above)) {
		u.swap(idx, above)
		return
	}

	dirs := spreadOrder(rng)
	for _, dx := range dirs {
		if diag, ok := u.grid.Offset(col, row, dx, -1); ok && canRise(u.material(diag)) {
			u.swap(idx, diag)
			return
		}
	}
	for _, dx := range dirs {
		if side, ok := u.grid.Offset(col, row, dx, 0); ok && u.material(side) == Empty {
			u.swap(idx, side)
			return
		}
	}
}
