package vmath

import (
	"math"
	"testing"
)

func TestFixedPointConversion(t *testing.T) {
	tests := []struct {
		in      float64
		wantInt int
	}{
		{0, 0},
		{1.5, 1},
		{3.999, 3},
		{-0.25, -1},
		{-2, -2},
	}
	for _, tt := range tests {
		f := FromFloat(tt.in)
		if got := ToInt(f); got != tt.wantInt {
			t.Errorf("ToInt(FromFloat(%v)) = %d, want %d", tt.in, got, tt.wantInt)
		}
		if got := ToFloat(f); math.Abs(got-tt.in) > 1e-9 {
			t.Errorf("ToFloat(FromFloat(%v)) = %v", tt.in, got)
		}
	}
	if FromInt(3) != 3*Scale {
		t.Errorf("FromInt(3) = %d, want %d", FromInt(3), int64(3*Scale))
	}
}

func TestMulDiv(t *testing.T) {
	a, b := FromFloat(2.5), FromFloat(-4)
	if got := ToFloat(Mul(a, b)); got != -10 {
		t.Errorf("2.5 * -4 = %v, want -10", got)
	}
	if got := ToFloat(Div(a, b)); got != -0.625 {
		t.Errorf("2.5 / -4 = %v, want -0.625", got)
	}
	if Div(a, 0) != 0 {
		t.Error("Division by zero should yield 0")
	}
	if Div(FromInt(1<<30), 1) != math.MaxInt64 {
		t.Error("Overflowing division should saturate")
	}
}

func collect(tr GridTraverser) [][2]int {
	var cells [][2]int
	for tr.Next() {
		x, y := tr.Pos()
		cells = append(cells, [2]int{x, y})
	}
	return cells
}

// TestTraverserEndpoints verifies the walk starts and ends in the endpoint cells
func TestTraverserEndpoints(t *testing.T) {
	segments := [][4]float64{
		{0.5, 0.5, 10.5, 3.5},
		{10.5, 3.5, 0.5, 0.5},
		{2.5, 8.5, 2.5, 1.5},
		{0.5, 0.5, 0.5, 0.5},
		{1.2, 7.9, 30.7, 2.1},
	}

	for _, s := range segments {
		cells := collect(NewGridTraverserFloat(s[0], s[1], s[2], s[3]))
		if len(cells) == 0 {
			t.Fatalf("Segment %v visited no cells", s)
		}
		first, last := cells[0], cells[len(cells)-1]
		if first != [2]int{int(s[0]), int(s[1])} {
			t.Errorf("Segment %v starts at %v", s, first)
		}
		if last != [2]int{int(s[2]), int(s[3])} {
			t.Errorf("Segment %v ends at %v", s, last)
		}
	}
}

// TestTraverserContiguous verifies consecutive cells touch, so drawn lines have no gaps
func TestTraverserContiguous(t *testing.T) {
	cells := collect(NewGridTraverserFloat(1.2, 7.9, 30.7, 2.1))
	for i := 1; i < len(cells); i++ {
		dx := cells[i][0] - cells[i-1][0]
		dy := cells[i][1] - cells[i-1][1]
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
			t.Fatalf("Cells %v -> %v are not adjacent", cells[i-1], cells[i])
		}
	}
}

// TestTraverserHorizontal verifies a flat segment visits each column once
func TestTraverserHorizontal(t *testing.T) {
	cells := collect(NewGridTraverserFloat(0.5, 4.5, 9.5, 4.5))
	if len(cells) != 10 {
		t.Fatalf("Expected 10 cells, got %d", len(cells))
	}
	for i, c := range cells {
		if c != [2]int{i, 4} {
			t.Errorf("Cell %d = %v, want [%d 4]", i, c, i)
		}
	}
}
