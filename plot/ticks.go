package plot

import (
	"math"
	"strconv"
)

// NiceTicks returns round tick values inside [lo, hi] spaced by 1, 2 or 5 times a power of ten.
// At most maxCount values are returned.
func NiceTicks(lo, hi float64, maxCount int) []float64 {
	if maxCount < 2 || !(hi > lo) {
		return []float64{lo}
	}

	step := niceStep((hi - lo) / float64(maxCount-1))
	first := math.Ceil(lo/step) * step
	// Decimal scale of the step, used to snap 0.30000000000000004 to 0.3
	snap := math.Pow(10, math.Max(0, -math.Floor(math.Log10(step))))

	ticks := make([]float64, 0, maxCount)
	for i := 0; ; i++ {
		v := first + float64(i)*step
		if v > hi+step*1e-9 {
			break
		}
		ticks = append(ticks, math.Round(v*snap)/snap)
	}
	return ticks
}

func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch f := raw / mag; {
	case f <= 1:
		return mag
	case f <= 2:
		return 2 * mag
	case f <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// FormatTicks renders tick values with the decimals their spacing needs
func FormatTicks(ticks []float64) []string {
	decimals := 0
	if len(ticks) > 1 {
		step := ticks[1] - ticks[0]
		if step > 0 && step < 1 {
			decimals = int(math.Ceil(-math.Log10(step) - 1e-9))
		}
	}

	labels := make([]string, len(ticks))
	for i, v := range ticks {
		if v == 0 {
			v = 0 // drop negative zero
		}
		labels[i] = strconv.FormatFloat(v, 'f', decimals, 64)
	}
	return labels
}
