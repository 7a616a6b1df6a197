package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// DefaultCooldown is the minimum gap between two explosion cues.
const DefaultCooldown = 120 * time.Millisecond

// Cue plays an explosion sound when a tick reports explosions. Cues closer
// together than the cooldown are dropped. A Cue that was never initialised,
// or whose speaker failed to open, stays silent.
type Cue struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	play     func(beep.Streamer)
	now      func() time.Time
	cooldown time.Duration
	last     time.Time
	plays    uint32
}

// NewCue returns a silent cue; call Initialize to open the speaker.
func NewCue() *Cue {
	return &Cue{mixer: &beep.Mixer{}, now: time.Now, cooldown: DefaultCooldown}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (c *Cue) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.play != nil {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.play = func(s beep.Streamer) {
		speaker.Lock()
		c.mixer.Add(s)
		speaker.Unlock()
	}
	return nil
}

// Trigger plays one cue for n explosions and reports whether it sounded.
func (c *Cue) Trigger(n int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n <= 0 || c.play == nil {
		return false
	}
	now := c.now()
	if !c.last.IsZero() && now.Sub(c.last) < c.cooldown {
		return false
	}
	c.last = now
	c.plays++
	c.play(NewExplosionSound(SampleRate, n, c.plays))
	return true
}

// Close silences any sound still playing.
func (c *Cue) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.play == nil {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.play = nil
}
