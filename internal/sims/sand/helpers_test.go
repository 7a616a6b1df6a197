package sand

// scriptedSource replays fixed draws and then repeats fallback. A fallback of
// 1 never fires a probability roll and tries the right-hand side first.
type scriptedSource struct {
	vals     []uint32
	pos      int
	fallback uint32
}

func script(vals ...uint32) *scriptedSource {
	return &scriptedSource{vals: vals, fallback: 1}
}

func (s *scriptedSource) Uint32() uint32 {
	if s.pos < len(s.vals) {
		v := s.vals[s.pos]
		s.pos++
		return v
	}
	return s.fallback
}

// setTemp overwrites a temperature in both heat buffers.
func setTemp(u *Universe, row, col int, t int16) {
	idx := u.grid.Index(col, row)
	u.temps[idx] = t
	u.tempsBack[idx] = t
}
