package plot

import (
	"math"

	"github.com/lixenwraith/flightpath/trajectory"
)

// Viewport maps data coordinates onto a rectangle of terminal cells.
// Forward distance grows to the right, altitude grows upward.
type Viewport struct {
	Left, Top     int
	Width, Height int
	Limits        trajectory.Bounds
}

// Right returns the last column inside the viewport
func (v Viewport) Right() int { return v.Left + v.Width - 1 }

// Bottom returns the last row inside the viewport
func (v Viewport) Bottom() int { return v.Top + v.Height - 1 }

// Project returns fractional cell coordinates for a data point.
// The integer part is the cell, XMin/ZMin land on the center of the bottom-left cell.
func (v Viewport) Project(x, z float64) (float64, float64) {
	spanX := v.Limits.XMax - v.Limits.XMin
	spanZ := v.Limits.ZMax - v.Limits.ZMin
	if spanX <= 0 {
		spanX = 1
	}
	if spanZ <= 0 {
		spanZ = 1
	}

	fx := float64(v.Left) + (x-v.Limits.XMin)/spanX*float64(v.Width-1) + 0.5
	fz := float64(v.Bottom()) - (z-v.Limits.ZMin)/spanZ*float64(v.Height-1) + 0.5
	return fx, fz
}

// Cell returns the cell holding a data point and whether it lies inside the viewport
func (v Viewport) Cell(x, z float64) (int, int, bool) {
	fx, fz := v.Project(x, z)
	col, row := int(math.Floor(fx)), int(math.Floor(fz))
	return col, row, v.Contains(col, row)
}

// Contains reports whether a cell is inside the viewport
func (v Viewport) Contains(col, row int) bool {
	return col >= v.Left && col <= v.Right() && row >= v.Top && row <= v.Bottom()
}
