// Package vmath holds the Q32.32 fixed-point helpers used for cell rasterization.
package vmath

import (
	"math"
	"math/bits"
)

// Q32.32 fixed point
const (
	Shift = 32
	Scale = 1 << Shift
	Mask  = Scale - 1
)

func FromInt(i int) int64       { return int64(i) << Shift }
func ToInt(f int64) int         { return int(f >> Shift) }
func FromFloat(f float64) int64 { return int64(math.Round(f * Scale)) }
func ToFloat(f int64) float64   { return float64(f) / Scale }

// Frac returns the fractional part, always in [0, Scale)
func Frac(f int64) int64 { return f & Mask }

// Mul multiplies two Q32.32 values through a 128-bit intermediate
func Mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := abs64(a), abs64(b)

	hi, lo := bits.Mul64(ua, ub)
	result := int64((hi << Shift) | (lo >> Shift))

	if negative {
		return -result
	}
	return result
}

// Div divides a by b, saturating on overflow. Division by zero yields 0.
func Div(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := abs64(a), abs64(b)

	// a << 32 as a 128-bit dividend
	hi := ua >> Shift
	lo := ua << Shift
	if hi >= ub {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	quo, _ := bits.Div64(hi, lo, ub)
	if quo > math.MaxInt64 {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	if negative {
		return -int64(quo)
	}
	return int64(quo)
}

func abs64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}
