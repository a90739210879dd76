package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogisticLearnsLinearBoundary(t *testing.T) {
	X, y := stripeData(100)
	m := NewLogistic(0.5, 3000)
	require.NoError(t, m.Fit(X, y))

	pred := m.Predict(X)
	assert.GreaterOrEqual(t, Accuracy(y, pred), 0.9)
}

func TestLogisticDeterministic(t *testing.T) {
	X, y := stripeData(50)
	run := func() []float64 {
		m := NewLogistic(0.1, 500)
		require.NoError(t, m.Fit(X, y))
		return m.PredictProba(X)
	}
	assert.Equal(t, run(), run(), "zero-init full-batch descent is reproducible")
}

func TestLogisticProbaRange(t *testing.T) {
	X, y := stripeData(40)
	m := NewLogistic(0.1, 200)
	require.NoError(t, m.Fit(X, y))
	for _, p := range m.PredictProba(X) {
		assert.Greater(t, p, 0.0)
		assert.Less(t, p, 1.0)
	}
}

func TestLogisticValidation(t *testing.T) {
	m := NewLogistic(0.1, 10)
	require.Error(t, m.Fit(nil, nil))
	require.Error(t, m.Fit([][]float64{{1}}, []int{0, 1}))
	require.Error(t, m.Fit([][]float64{{1}}, []int{2}))
}

func TestLogisticPredictThreshold(t *testing.T) {
	m := &Logistic{w: []float64{0}, b: 0}
	// zero weights give p = 0.5 exactly, which rounds up to 1
	assert.Equal(t, []int{1}, m.Predict([][]float64{{3}}))
}
