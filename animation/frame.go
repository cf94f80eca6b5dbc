package animation

import (
	"github.com/lixenwraith/flightpath/trajectory"
)

// Frame is the visible state at one cursor position.
// PathX and PathZ are prefix views into the trajectory and must not be modified.
type Frame struct {
	Index  int
	PathX  []float64
	PathZ  []float64
	Marker trajectory.Sample
}

// At builds frame i of tr.
// Frame 0 has an empty path with the marker on the first sample,
// frame k > 0 shows samples [0, k] and the marker on sample k.
func At(tr *trajectory.Trajectory, i int) Frame {
	f := Frame{
		Index:  i,
		Marker: tr.At(i),
	}
	if i > 0 {
		f.PathX = tr.X[:i+1:i+1]
		f.PathZ = tr.Z[:i+1:i+1]
	}
	return f
}

// PathLen returns the number of points on the visible path
func (f Frame) PathLen() int {
	return len(f.PathX)
}
