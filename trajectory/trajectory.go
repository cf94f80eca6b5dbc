package trajectory

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidDuration = errors.New("duration must be > 0")
	ErrInvalidStep     = errors.New("step must be > 0")
	ErrInvalidPeriod   = errors.New("period must be > 0")
	ErrNegativeParam   = errors.New("parameter must be >= 0")
	ErrTooManySamples  = errors.New("too many samples")
)

// MaxSamples caps duration/step so a trajectory always fits in memory
const MaxSamples = 10_000_000

// Params describes a constant-velocity forward flight with a sinusoidal altitude profile.
// Times are seconds, distances meters.
type Params struct {
	Duration        float64
	Step            float64
	ForwardVelocity float64
	Amplitude       float64
	Period          float64
	BaseAltitude    float64
}

// DefaultParams returns the generator defaults: 20s at 0.1s steps, 2 m/s forward,
// 2m oscillation every 4s around 5m.
func DefaultParams() Params {
	return Params{
		Duration:        20,
		Step:            0.1,
		ForwardVelocity: 2,
		Amplitude:       2,
		Period:          4,
		BaseAltitude:    5,
	}
}

// Validate reports the first parameter that cannot produce a trajectory
func (p Params) Validate() error {
	switch {
	case !(p.Duration > 0) || math.IsInf(p.Duration, 1):
		return fmt.Errorf("duration %v: %w", p.Duration, ErrInvalidDuration)
	case !(p.Step > 0) || math.IsInf(p.Step, 1):
		return fmt.Errorf("step %v: %w", p.Step, ErrInvalidStep)
	case p.Duration/p.Step > MaxSamples:
		return fmt.Errorf("duration %v at step %v exceeds %d: %w", p.Duration, p.Step, MaxSamples, ErrTooManySamples)
	case !(p.Period > 0):
		return fmt.Errorf("period %v: %w", p.Period, ErrInvalidPeriod)
	case p.ForwardVelocity < 0:
		return fmt.Errorf("forward velocity %v: %w", p.ForwardVelocity, ErrNegativeParam)
	case p.Amplitude < 0:
		return fmt.Errorf("amplitude %v: %w", p.Amplitude, ErrNegativeParam)
	case p.BaseAltitude < 0:
		return fmt.Errorf("base altitude %v: %w", p.BaseAltitude, ErrNegativeParam)
	}
	return nil
}

// Trajectory holds the sampled flight. All slices share length and index.
// Treat as read-only after Generate.
type Trajectory struct {
	Params Params

	T  []float64 // seconds since start
	X  []float64 // forward distance
	Z  []float64 // altitude
	VZ []float64 // vertical speed, derivative of Z
}

// Sample is one row of a trajectory
type Sample struct {
	Index int
	T     float64
	X     float64
	Z     float64
	VZ    float64
}

// Generate samples the flight at t = 0, Step, 2*Step, ... while t < Duration.
//
// x(t) = v*t
// z(t) = base + amp*sin(2πt/period)
// vz(t) = amp*(2π/period)*cos(2πt/period)
func Generate(p Params) (*Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := int(math.Ceil(p.Duration / p.Step))
	tr := &Trajectory{
		Params: p,
		T:      make([]float64, n),
		X:      make([]float64, n),
		Z:      make([]float64, n),
		VZ:     make([]float64, n),
	}

	omega := 2 * math.Pi / p.Period
	for i := 0; i < n; i++ {
		t := float64(i) * p.Step
		tr.T[i] = t
		tr.X[i] = p.ForwardVelocity * t
		tr.Z[i] = p.BaseAltitude + p.Amplitude*math.Sin(omega*t)
		tr.VZ[i] = p.Amplitude * omega * math.Cos(omega*t)
	}
	return tr, nil
}

// Len returns the number of samples
func (tr *Trajectory) Len() int {
	return len(tr.T)
}

// At returns sample i. Panics on out of range like a slice index.
func (tr *Trajectory) At(i int) Sample {
	return Sample{
		Index: i,
		T:     tr.T[i],
		X:     tr.X[i],
		Z:     tr.Z[i],
		VZ:    tr.VZ[i],
	}
}

// Last returns the final sample
func (tr *Trajectory) Last() Sample {
	return tr.At(tr.Len() - 1)
}

// Bounds are the plotting limits of a trajectory
type Bounds struct {
	XMin, XMax float64 // forward axis limits
	ZMin, ZMax float64 // altitude axis limits

	// Altitude envelope of the sinusoid
	Floor, Ceiling float64
}

// Bounds returns axis limits with a 1m margin past the last sample and 2m headroom above the crest.
// The altitude axis always starts at ground level.
func (tr *Trajectory) Bounds() Bounds {
	p := tr.Params
	b := Bounds{
		XMin:    0,
		XMax:    1,
		ZMin:    0,
		ZMax:    p.BaseAltitude + p.Amplitude + 2,
		Floor:   p.BaseAltitude - p.Amplitude,
		Ceiling: p.BaseAltitude + p.Amplitude,
	}
	if n := tr.Len(); n > 0 {
		b.XMax = tr.X[n-1] + 1
	}
	return b
}
