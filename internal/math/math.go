package math

import (
	"math"
	"strconv"
)

// Format formats a float with 4 decimals.
func Format(f float64) string {
	return FormatP(f, 4)
}

// FormatP formats a float based on the given precision
func FormatP(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}

// MSE returns the mean squared error of the line w*x+b on the given observations.
func MSE(x, y []float64, w, b float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	var sum float64
	for i := range x {
		e := w*x[i] + b - y[i]
		sum += e * e
	}
	return sum / float64(len(x))
}

// Range returns the min and max of the given values, ignoring NaNs.
// For an empty (or all NaN) slice it returns (0,0).
func Range(values []float64) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if math.IsInf(min, 1) {
		return 0, 0
	}
	return min, max
}
