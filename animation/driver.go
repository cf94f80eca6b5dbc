package animation

import (
	"time"

	"github.com/lixenwraith/flightpath/trajectory"
)

// State is the lifecycle phase of a Driver
type State uint8

const (
	StateIdle    State = iota // nothing shown yet
	StateRunning              // a frame is displayed
	StateDone                 // past the last frame, no more ticks
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Driver advances a frame cursor across a trajectory, one frame per tick.
// The cursor only moves forward and never wraps. Not safe for concurrent use:
// the owning loop calls Advance from its ticker case.
type Driver struct {
	tr     *trajectory.Trajectory
	state  State
	cursor int
}

// NewDriver returns a driver in StateIdle
func NewDriver(tr *trajectory.Trajectory) *Driver {
	return &Driver{tr: tr}
}

// Interval is the wall-clock tick period: the sampling step scaled to milliseconds
func (d *Driver) Interval() time.Duration {
	ms := d.tr.Params.Step * 1000
	iv := time.Duration(ms * float64(time.Millisecond))
	if iv < time.Millisecond {
		iv = time.Millisecond
	}
	return iv
}

// Advance moves to the next frame and returns it.
// Returns false once the last frame has been passed; the driver then stays in StateDone.
func (d *Driver) Advance() (Frame, bool) {
	switch d.state {
	case StateIdle:
		if d.tr.Len() == 0 {
			d.state = StateDone
			return Frame{}, false
		}
		d.state = StateRunning
		d.cursor = 0
	case StateRunning:
		if d.cursor+1 >= d.tr.Len() {
			d.state = StateDone
			return Frame{}, false
		}
		d.cursor++
	case StateDone:
		return Frame{}, false
	}
	return At(d.tr, d.cursor), true
}

// Current returns the frame on display. Idle drivers have none.
// A done driver keeps reporting its final frame so redraws after resize stay intact.
func (d *Driver) Current() (Frame, bool) {
	if d.state == StateIdle || d.tr.Len() == 0 {
		return Frame{}, false
	}
	return At(d.tr, d.cursor), true
}

// State returns the lifecycle phase
func (d *Driver) State() State {
	return d.state
}

// Cursor returns the index of the displayed frame, -1 when idle
func (d *Driver) Cursor() int {
	if d.state == StateIdle {
		return -1
	}
	return d.cursor
}

// Total returns the number of frames in the run
func (d *Driver) Total() int {
	return d.tr.Len()
}
