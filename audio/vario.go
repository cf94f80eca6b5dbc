package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Config describes the altitude tone
type Config struct {
	MinHz  float64       // pitch at the lowest altitude
	MaxHz  float64       // pitch at the highest altitude
	Volume float64       // linear, 0..1
	Tone   time.Duration // length of each beep
	Floor  float64       // altitude mapped to MinHz
	Ceil   float64       // altitude mapped to MaxHz
}

// Vario beeps once per frame with a pitch that follows altitude, like a glider variometer.
// Every method is a no-op until Initialize succeeds, so a machine without an audio device runs silent.
type Vario struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
}

// NewVario creates an uninitialized vario
func NewVario(cfg Config) *Vario {
	return &Vario{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (v *Vario) Initialize() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(v.mixer)
	v.initialized = true
	return nil
}

// Cleanup silences pending tones. Safe to call repeatedly.
func (v *Vario) Cleanup() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.initialized {
		return
	}

	speaker.Lock()
	v.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close, clearing the mixer leaves it streaming silence
	v.initialized = false
}

// Play enqueues a tone for altitude z
func (v *Vario) Play(z float64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.initialized {
		return
	}

	tone := NewTone(v.Frequency(z), v.cfg.Tone, v.cfg.Volume, sampleRate)
	speaker.Lock()
	v.mixer.Add(tone)
	speaker.Unlock()
}

// Frequency maps altitude linearly onto [MinHz, MaxHz], clamped at both ends.
// A degenerate altitude range yields the middle pitch.
func (v *Vario) Frequency(z float64) float64 {
	c := v.cfg
	if c.Ceil <= c.Floor {
		return (c.MinHz + c.MaxHz) / 2
	}

	ratio := (z - c.Floor) / (c.Ceil - c.Floor)
	switch {
	case ratio < 0:
		ratio = 0
	case ratio > 1:
		ratio = 1
	}
	return c.MinHz + ratio*(c.MaxHz-c.MinHz)
}
