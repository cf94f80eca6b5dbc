package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	sampleRate = beep.SampleRate(48000)

	toneAttack  = 5 * time.Millisecond
	toneRelease = 20 * time.Millisecond
)

// sine is a fixed-length sine oscillator
type sine struct {
	freq     float64
	phase    float64
	position int
	length   int
	rate     beep.SampleRate
}

// NewSine creates a sine streamer that ends after duration
func NewSine(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sine{
		freq:   freq,
		length: rate.N(duration),
		rate:   rate,
	}
}

func (s *sine) Stream(samples [][2]float64) (n int, ok bool) {
	if s.position >= s.length {
		return 0, false
	}
	for i := range samples {
		if s.position >= s.length {
			return i, true
		}
		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase) // Keep in [0, 1)
		s.position++
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }

// envelope applies a linear attack and release to a stream to avoid clicks
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes a streamer of known duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linear volume onto beep's log2 volume.
// math.Log2(0) is -Inf, so zero volume becomes silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// NewTone builds one enveloped beep at freq
func NewTone(freq float64, duration time.Duration, volume float64, rate beep.SampleRate) beep.Streamer {
	osc := NewSine(freq, duration, rate)
	shaped := NewEnvelope(osc, duration, toneAttack, toneRelease, rate)
	return newVolume(shaped, volume)
}
