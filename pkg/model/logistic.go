package model

import (
	"errors"
	"math"
)

// Logistic is a binary logistic-regression baseline trained with
// full-batch gradient descent. Weights start at zero, so fits are
// reproducible without a seed. Labels must be 0 or 1.
type Logistic struct {
	LearningRate float64
	Epochs       int

	w []float64
	b float64
}

// NewLogistic returns a model with the hyperparameters the pipeline
// defaults to.
func NewLogistic(learningRate float64, epochs int) *Logistic {
	return &Logistic{LearningRate: learningRate, Epochs: epochs}
}

// Fit trains the model on X and binary labels y.
func (m *Logistic) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return errors.New("logistic: empty X")
	}
	if len(y) != len(X) {
		return errors.New("logistic: X and y length mismatch")
	}
	for _, lab := range y {
		if lab != 0 && lab != 1 {
			return errors.New("logistic: labels must be 0 or 1")
		}
	}
	n := len(X)
	p := len(X[0])
	m.w = make([]float64, p)
	m.b = 0

	grad := make([]float64, p)
	for epoch := 0; epoch < m.Epochs; epoch++ {
		for j := range grad {
			grad[j] = 0
		}
		gradB := 0.0
		for i, row := range X {
			if len(row) != p {
				return errors.New("logistic: inconsistent feature count")
			}
			d := m.proba(row) - float64(y[i])
			for j, v := range row {
				grad[j] += d * v
			}
			gradB += d
		}
		for j := range m.w {
			m.w[j] -= m.LearningRate * grad[j] / float64(n)
		}
		m.b -= m.LearningRate * gradB / float64(n)
	}
	return nil
}

// Predict returns 0/1 labels with a 0.5 probability threshold.
func (m *Logistic) Predict(X [][]float64) []int {
	out := make([]int, len(X))
	for i, p := range m.PredictProba(X) {
		if p >= 0.5 {
			out[i] = 1
		}
	}
	return out
}

// PredictProba returns p(y=1) per row.
func (m *Logistic) PredictProba(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i, row := range X {
		out[i] = m.proba(row)
	}
	return out
}

func (m *Logistic) proba(row []float64) float64 {
	sum := m.b
	for j, v := range row {
		sum += m.w[j] * v
	}
	return sigmoid(sum)
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
