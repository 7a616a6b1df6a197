package sand

import "hash/fnv"

// Census counts cells per material.
type Census [MaterialCount]int

// Count returns the number of cells holding m.
func (c Census) Count(m Material) int {
	if !m.Valid() {
		return 0
	}
	return c[m]
}

// Total returns the number of cells counted.
func (c Census) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Occupied returns the number of non-empty cells.
func (c Census) Occupied() int { return c.Total() - c[Empty] }

// HeatStats summarises the temperature field.
type HeatStats struct {
	Min  int16
	Max  int16
	Mean float64
}

// Census counts the materials currently on the grid.
func (u *Universe) Census() Census {
	var c Census
	for _, code := range u.grid.Cells() {
		c[Decode(code)]++
	}
	return c
}

// HeatStats reports the extremes and mean of the temperature field.
func (u *Universe) HeatStats() HeatStats {
	if len(u.temps) == 0 {
		return HeatStats{Min: AmbientTemperature, Max: AmbientTemperature, Mean: float64(AmbientTemperature)}
	}
	stats := HeatStats{Min: u.temps[0], Max: u.temps[0]}
	var sum int64
	for _, t := range u.temps {
		if t < stats.Min {
			stats.Min = t
		}
		if t > stats.Max {
			stats.Max = t
		}
		sum += int64(t)
	}
	stats.Mean = float64(sum) / float64(len(u.temps))
	return stats
}

// Checksum hashes the cell and temperature buffers. Two universes with the
// same history produce the same checksum.
func (u *Universe) Checksum() uint64 {
	h := fnv.New64a()
	h.Write(u.grid.Cells())
	buf := make([]byte, 2*len(u.temps))
	for i, t := range u.temps {
		buf[2*i] = byte(uint16(t))
		buf[2*i+1] = byte(uint16(t) >> 8)
	}
	h.Write(buf)
	return h.Sum64()
}
