package vmath

import (
	"math"
)

// GridTraverser walks every cell a segment passes through (supercover DDA).
// Zero-alloc: callers loop on Next and read Pos.
type GridTraverser struct {
	currX, currY     int
	targetX, targetY int
	stepX, stepY     int

	tMaxX, tMaxY     int64
	tDeltaX, tDeltaY int64

	started bool
	done    bool
}

// NewGridTraverser creates an iterator from (x1, y1) to (x2, y2) in Q32.32 cell coordinates.
// Cell (i, j) covers [i, i+1) x [j, j+1).
func NewGridTraverser(x1, y1, x2, y2 int64) GridTraverser {
	t := GridTraverser{
		currX: ToInt(x1), currY: ToInt(y1),
		targetX: ToInt(x2), targetY: ToInt(y2),
		stepX: 1, stepY: 1,
	}

	dx, dy := x2-x1, y2-y1
	if dx < 0 {
		t.stepX = -1
		dx = -dx
	}
	if dy < 0 {
		t.stepY = -1
		dy = -dy
	}

	t.tDeltaX, t.tMaxX = axisSetup(x1, dx, t.stepX)
	t.tDeltaY, t.tMaxY = axisSetup(y1, dy, t.stepY)
	return t
}

// NewGridTraverserFloat is NewGridTraverser for float cell coordinates
func NewGridTraverserFloat(x1, y1, x2, y2 float64) GridTraverser {
	return NewGridTraverser(FromFloat(x1), FromFloat(y1), FromFloat(x2), FromFloat(y2))
}

// axisSetup returns the parametric distance between cell borders and to the first border on one axis
func axisSetup(start, delta int64, step int) (tDelta, tMax int64) {
	if delta == 0 {
		return 0, math.MaxInt64
	}
	tDelta = Div(Scale, delta)
	if step > 0 {
		return tDelta, Mul(Scale-Frac(start), tDelta)
	}
	return tDelta, Mul(Frac(start), tDelta)
}

// Next advances to the next cell. The first call yields the start cell.
func (t *GridTraverser) Next() bool {
	if t.done {
		return false
	}
	if !t.started {
		t.started = true
		return true
	}
	if t.currX == t.targetX && t.currY == t.targetY {
		t.done = true
		return false
	}

	switch {
	case t.tMaxX < t.tMaxY:
		if t.currX != t.targetX {
			t.stepAlongX()
		} else {
			t.stepAlongY()
		}
	case t.tMaxX > t.tMaxY:
		if t.currY != t.targetY {
			t.stepAlongY()
		} else {
			t.stepAlongX()
		}
	default:
		// Corner crossing
		if t.currX != t.targetX {
			t.stepAlongX()
		}
		if t.currY != t.targetY {
			t.stepAlongY()
		}
	}
	return true
}

func (t *GridTraverser) stepAlongX() {
	t.currX += t.stepX
	t.tMaxX += t.tDeltaX
}

func (t *GridTraverser) stepAlongY() {
	t.currY += t.stepY
	t.tMaxY += t.tDeltaY
}

// Pos returns the current cell
func (t *GridTraverser) Pos() (int, int) {
	return t.currX, t.currY
}
