package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"mad-sand/internal/core"
)

const (
	// SampleRate is the rate every cue is rendered at.
	SampleRate = beep.SampleRate(44100)

	explosionDuration = 450 * time.Millisecond
	rumbleFreq        = 55.0
)

// noise streams white noise from an xorshift stream so bursts are
// reproducible for a given seed.
type noise struct {
	rng      *core.XorShift32
	position int
	duration int
}

func newNoise(seed uint32, duration time.Duration, rate beep.SampleRate) *noise {
	return &noise{rng: core.NewXorShift32(seed), duration: rate.N(duration)}
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if n.position >= n.duration {
			return i, i > 0
		}
		v := float64(n.rng.Uint32())/math.MaxUint32*2 - 1
		samples[i][0] = v
		samples[i][1] = v
		n.position++
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// sine is a fixed-length sine tone.
type sine struct {
	freq     float64
	phase    float64
	rate     beep.SampleRate
	position int
	duration int
}

func newSine(freq float64, duration time.Duration, rate beep.SampleRate) *sine {
	return &sine{freq: freq, rate: rate, duration: rate.N(duration)}
}

func (s *sine) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = v
		samples[i][1] = v
		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }

// decay fades a stream out exponentially over its length.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func newDecay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) *decay {
	return &decay{streamer: s, total: max(rate.N(duration), 1)}
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(-5 * float64(d.position) / float64(d.total))
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// NewExplosionSound renders a decaying noise burst over a low rumble. Bigger
// blasts (more explosions in one tick) play louder, up to full scale.
func NewExplosionSound(rate beep.SampleRate, blasts int, seed uint32) beep.Streamer {
	loudness := math.Min(0.35+0.15*float64(blasts-1), 1)
	burst := newDecay(newNoise(seed, explosionDuration, rate), explosionDuration, rate)
	rumble := newDecay(newSine(rumbleFreq, explosionDuration, rate), explosionDuration, rate)
	mixed := beep.Mix(newVolume(burst, 0.7), newVolume(rumble, 0.3))
	return beep.Take(rate.N(explosionDuration), newVolume(mixed, loudness))
}
