package buffer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Push(t *testing.T) {

	l := 1001

	type test struct {
		transform func(i int) float64
		avg       float64
		count     int
		diff      float64
		stDev     float64
		variance  float64
		min       float64
		max       float64
	}

	tests := map[string]test{
		"monotonically-increasing-+": {
			transform: func(i int) float64 {
				return float64(i)
			},
			avg:      float64(l / 2),
			count:    l,
			diff:     float64(l) - 1,
			stDev:    289,
			variance: 83500,
			min:      0,
			max:      1000,
		},
		"monotonically-increasing-0": {
			transform: func(i int) float64 {
				return float64(-1*l/2) + float64(i)
			},
			avg:   0,
			count: l,
			// NOTE : these are the same as the one above
			diff:     float64(l) - 1,
			stDev:    289,
			variance: 83500,
			min:      -500,
			max:      500,
		},
		"monotonically-decreasing--": {
			transform: func(i int) float64 {
				return -1 * float64(i)
			},
			avg:   -1 * float64(l/2),
			count: l,
			diff:  -1 * (float64(l) - 1),
			// NOTE : these are the same as for the increasing case
			stDev:    289,
			variance: 83500,
			min:      -1000,
			max:      0,
		},
		"abs-+": {
			transform: func(i int) float64 {
				return math.Abs(-1*float64(l/2) + float64(i))
			},
			avg:   float64(l / 4),
			count: l,
			diff:  0,
			// NOTE : these are half of the monotonical case
			stDev:    289 / 2,
			variance: 83500 / 4,
			min:      0,
			max:      500,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stats := NewStats()
			for i := 0; i < l; i++ {
				v := tt.transform(i)
				stats.Push(v)
			}
			assert.Equal(t, tt.avg, math.Round(stats.Avg()))
			assert.Equal(t, tt.count, stats.Count())
			assert.Equal(t, tt.diff, math.Round(stats.Diff()))
			assert.Equal(t, tt.stDev, math.Round(stats.StDev()))
			assert.Equal(t, tt.variance, math.Round(stats.Variance()))
			assert.Equal(t, tt.min, stats.Min())
			assert.Equal(t, tt.max, stats.Max())
		})
	}
}

func TestStats_Decay(t *testing.T) {

	values := make([]float64, 10)
	for i := range values {
		values[i] = 100 * math.Pow(0.5, float64(i))
	}

	stats := Of(values...)
	assert.Equal(t, 10, stats.Count())
	assert.Equal(t, 100.0, stats.First())
	assert.Equal(t, 100.0, stats.Max())
	assert.InDelta(t, 0.1953125, stats.Last(), 1e-12)
	assert.InDelta(t, 0.1953125, stats.Min(), 1e-12)
	assert.InDelta(t, -99.8046875, stats.Diff(), 1e-12)
	assert.InDelta(t, 19.98046875, stats.Avg(), 1e-9)
}

func TestStats_Empty(t *testing.T) {
	stats := Of()
	assert.Equal(t, 0, stats.Count())
	assert.Equal(t, 0.0, stats.Min())
	assert.Equal(t, 0.0, stats.Max())
	assert.Equal(t, 0.0, stats.Variance())
}
