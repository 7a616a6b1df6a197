package core

// Source is the random stream consumed by simulation rules. Implementations
// must be deterministic for a given seed so runs can be replayed.
type Source interface {
	Uint32() uint32
}

// DefaultSeed is the xorshift state used when no seed is supplied.
const DefaultSeed uint32 = 0xB45BE

// XorShift32 is a 32-bit xorshift generator (13/17/5). It is fast and
// reproducible, not cryptographic.
type XorShift32 struct {
	state uint32
}

// NewXorShift32 creates a stream with the provided seed. Zero is a fixed point
// of xorshift, so it is replaced by DefaultSeed.
func NewXorShift32(seed uint32) *XorShift32 {
	x := &XorShift32{}
	x.Seed(seed)
	return x
}

// Seed resets the generator state.
func (x *XorShift32) Seed(seed uint32) {
	if seed == 0 {
		seed = DefaultSeed
	}
	x.state = seed
}

// State returns the current generator state.
func (x *XorShift32) State() uint32 { return x.state }

// Uint32 advances the stream and returns the next value.
func (x *XorShift32) Uint32() uint32 {
	v := x.state
	v ^= v << 13
	v ^= v >> 17
	v ^= v << 5
	x.state = v
	return v
}

// Bool returns a fair coin toss drawn from the stream.
func (x *XorShift32) Bool() bool {
	return x.Uint32()&1 == 0
}

// Intn returns a value in [0, n). It returns 0 when n <= 0.
func (x *XorShift32) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(x.Uint32() % uint32(n))
}

// SeedFromInt64 folds a 64-bit seed into the 32-bit state space.
func SeedFromInt64(seed int64) uint32 {
	u := uint64(seed)
	return uint32(u) ^ uint32(u>>32)
}
