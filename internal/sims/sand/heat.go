package sand

const (
	// selfWeight is the weight of a cell's own temperature in the local
	// average; each in-bounds orthogonal neighbour weighs 1.
	selfWeight = 1024

	// ambientDriftPeriod controls how often empty cells step toward ambient.
	ambientDriftPeriod = 10
)

// diffuseHeat advances the temperature field by one step. New values are
// written to the back buffer and the buffers are swapped at the end, so the
// scan order never affects the result.
func (u *Universe) diffuseHeat() {
	cells := u.grid.Cells()
	w, h := u.grid.W, u.grid.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			cell := Decode(cells[idx])

			switch cell {
			case Fire, Ice:
				u.tempsBack[idx] = cell.BaseTemperature()
				continue
			}

			sum := int32(u.temps[idx]) * selfWeight
			weight := int32(selfWeight)
			for _, d := range neighborOffsets {
				if n, ok := u.grid.Offset(x, y, d.dx, d.dy); ok {
					sum += int32(u.temps[n])
					weight++
				}
			}
			avg := int16(sum / weight)

			if cell == Empty && (idx+int(u.generation))%ambientDriftPeriod == 0 {
				switch {
				case avg > AmbientTemperature:
					avg--
				case avg < AmbientTemperature:
					avg++
				}
			}

			u.tempsBack[idx] = avg
		}
	}
	u.temps, u.tempsBack = u.tempsBack, u.temps
}
