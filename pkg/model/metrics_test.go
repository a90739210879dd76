package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 0.75, Accuracy([]int{0, 1, 1, 0}, []int{0, 1, 0, 0}))
	assert.Equal(t, 0.0, Accuracy(nil, nil))
	assert.Equal(t, 0.0, Accuracy([]int{1}, []int{1, 0}))
}

func TestConfusion(t *testing.T) {
	yTrue := []int{1, 1, 0, 0, 1, 0}
	yPred := []int{1, 0, 1, 0, 1, 0}
	cm := Confusion(yTrue, yPred)
	assert.Equal(t, ConfusionMatrix{TP: 2, FP: 1, TN: 2, FN: 1}, cm)
}

func TestPrecisionRecallF1(t *testing.T) {
	yTrue := []int{1, 1, 0, 0, 1, 0}
	yPred := []int{1, 0, 1, 0, 1, 0}
	prec, rec, f1 := PrecisionRecallF1(yTrue, yPred)
	assert.InDelta(t, 2.0/3.0, prec, 1e-12)
	assert.InDelta(t, 2.0/3.0, rec, 1e-12)
	assert.InDelta(t, 2.0/3.0, f1, 1e-12)
}

func TestPrecisionRecallF1Degenerate(t *testing.T) {
	// no positive predictions and no positive truth: all ratios are 0
	prec, rec, f1 := PrecisionRecallF1([]int{0, 0}, []int{0, 0})
	assert.Equal(t, 0.0, prec)
	assert.Equal(t, 0.0, rec)
	assert.Equal(t, 0.0, f1)
}
