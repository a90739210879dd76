package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanSkipsNaN(t *testing.T) {
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Equal(t, 2.0, Mean([]float64{1, math.NaN(), 3}))
	assert.Equal(t, 0.0, Mean(nil))
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{"odd count", []float64{3, 1, 2}, 2},
		{"even count", []float64{4, 1, 3, 2}, 2.5},
		{"with NaN", []float64{1, math.NaN(), 3}, 2},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Median(tt.in))
		})
	}
}

func TestModeTieBreaksLow(t *testing.T) {
	assert.Equal(t, 1.0, Mode([]float64{2, 1, 2, 1, 3}))
	assert.Equal(t, 2.0, Mode([]float64{2, 2, 3}))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "S", ModeString([]string{"S", "C", "S", "", "Q"}))
	assert.Equal(t, "C", ModeString([]string{"S", "C"})) // tie: lexicographic
	assert.Equal(t, "", ModeString([]string{"", ""}))
}

func TestQuantileMatchesLinearInterpolation(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	assert.Equal(t, 1.0, Quantile(x, 0))
	assert.InDelta(t, 1.75, Quantile(x, 0.25), 1e-12)
	assert.InDelta(t, 2.5, Quantile(x, 0.5), 1e-12)
	assert.InDelta(t, 3.25, Quantile(x, 0.75), 1e-12)
	assert.Equal(t, 4.0, Quantile(x, 1))
}

func TestStd(t *testing.T) {
	assert.InDelta(t, 2.0, Std([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 1e-12)
}

func TestMinMax(t *testing.T) {
	min, max := MinMax([]float64{3, math.NaN(), -1, 7})
	assert.Equal(t, -1.0, min)
	assert.Equal(t, 7.0, max)
}
