package animation

import (
	"testing"
	"time"

	"github.com/lixenwraith/flightpath/trajectory"
)

func newScenario(t *testing.T) *trajectory.Trajectory {
	t.Helper()
	tr, err := trajectory.Generate(trajectory.Params{
		Duration:        8,
		Step:            0.1,
		ForwardVelocity: 4,
		Amplitude:       0.5,
		Period:          1.25,
		BaseAltitude:    5,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return tr
}

// TestFrameZero verifies the first frame shows only the marker
func TestFrameZero(t *testing.T) {
	tr := newScenario(t)
	f := At(tr, 0)

	if f.PathLen() != 0 {
		t.Errorf("Frame 0 path should be empty, got %d points", f.PathLen())
	}
	if f.Marker.X != tr.X[0] || f.Marker.Z != tr.Z[0] {
		t.Errorf("Frame 0 marker = (%v, %v), want (%v, %v)", f.Marker.X, f.Marker.Z, tr.X[0], tr.Z[0])
	}
}

// TestFramePrefix verifies frame k shows samples [0, k] with the marker on k
func TestFramePrefix(t *testing.T) {
	tr := newScenario(t)

	for _, k := range []int{1, 2, 10, 41, tr.Len() - 1} {
		f := At(tr, k)
		if f.PathLen() != k+1 {
			t.Fatalf("Frame %d path has %d points, want %d", k, f.PathLen(), k+1)
		}
		for i := 0; i <= k; i++ {
			if f.PathX[i] != tr.X[i] || f.PathZ[i] != tr.Z[i] {
				t.Errorf("Frame %d path point %d = (%v, %v), want (%v, %v)",
					k, i, f.PathX[i], f.PathZ[i], tr.X[i], tr.Z[i])
			}
		}
		if f.Marker.Index != k || f.Marker.X != tr.X[k] || f.Marker.Z != tr.Z[k] {
			t.Errorf("Frame %d marker = %+v, want sample %d", k, f.Marker, k)
		}
	}
}

// TestFramePathCannotGrowIntoTrajectory verifies appending to a path copies instead of overwriting samples
func TestFramePathCannotGrowIntoTrajectory(t *testing.T) {
	tr := newScenario(t)
	next := tr.X[4]

	f := At(tr, 3)
	_ = append(f.PathX, -1)

	if tr.X[4] != next {
		t.Errorf("Appending to frame path modified trajectory: x[4] = %v, want %v", tr.X[4], next)
	}
}

// TestDriverLifecycle walks Idle -> Frame(0..N-1) -> Done
func TestDriverLifecycle(t *testing.T) {
	tr := newScenario(t)
	d := NewDriver(tr)

	if d.State() != StateIdle {
		t.Fatalf("New driver state = %v, want idle", d.State())
	}
	if _, ok := d.Current(); ok {
		t.Error("Idle driver should have no current frame")
	}
	if d.Cursor() != -1 {
		t.Errorf("Idle cursor = %d, want -1", d.Cursor())
	}

	for i := 0; i < tr.Len(); i++ {
		f, ok := d.Advance()
		if !ok {
			t.Fatalf("Advance stopped early at %d", i)
		}
		if f.Index != i {
			t.Fatalf("Advance returned frame %d, want %d", f.Index, i)
		}
		if d.State() != StateRunning {
			t.Fatalf("State after frame %d = %v, want running", i, d.State())
		}
		cur, ok := d.Current()
		if !ok || cur.Index != i {
			t.Fatalf("Current = (%d, %v), want (%d, true)", cur.Index, ok, i)
		}
	}

	if _, ok := d.Advance(); ok {
		t.Fatal("Advance past last frame should report false")
	}
	if d.State() != StateDone {
		t.Fatalf("State after last frame = %v, want done", d.State())
	}

	// No wraparound
	for i := 0; i < 3; i++ {
		if _, ok := d.Advance(); ok {
			t.Fatal("Done driver must not restart")
		}
	}

	last, ok := d.Current()
	if !ok || last.Index != tr.Len()-1 {
		t.Errorf("Done driver should keep final frame, got (%d, %v)", last.Index, ok)
	}
}

// TestDriverMonotonic verifies the cursor advances by exactly one per tick
func TestDriverMonotonic(t *testing.T) {
	tr := newScenario(t)
	d := NewDriver(tr)

	prev := d.Cursor()
	for {
		if _, ok := d.Advance(); !ok {
			break
		}
		if d.Cursor() != prev+1 {
			t.Fatalf("Cursor jumped from %d to %d", prev, d.Cursor())
		}
		prev = d.Cursor()
	}
	if prev != d.Total()-1 {
		t.Errorf("Final cursor = %d, want %d", prev, d.Total()-1)
	}
}

func TestDriverInterval(t *testing.T) {
	tests := []struct {
		step float64
		want time.Duration
	}{
		{0.1, 100 * time.Millisecond},
		{0.5, 500 * time.Millisecond},
		{1, time.Second},
		{0.0000001, time.Millisecond},
	}

	for _, tt := range tests {
		p := trajectory.DefaultParams()
		p.Step = tt.step
		p.Duration = tt.step * 10
		tr, err := trajectory.Generate(p)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if got := NewDriver(tr).Interval(); got != tt.want {
			t.Errorf("Interval for step %v = %v, want %v", tt.step, got, tt.want)
		}
	}
}

func TestStateString(t *testing.T) {
	names := map[State]string{
		StateIdle:    "idle",
		StateRunning: "running",
		StateDone:    "done",
		State(99):    "unknown",
	}
	for s, want := range names {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, want %q", s, s.String(), want)
		}
	}
}
