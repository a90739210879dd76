package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeData(n int) ([][]float64, []int) {
	X := make([][]float64, n)
	y := make([]int, n)
	for i := range X {
		X[i] = []float64{float64(i)}
		y[i] = i % 2
	}
	return X, y
}

func TestTrainTestSplitSizes(t *testing.T) {
	X, y := makeData(10)
	XTrain, yTrain, XVal, yVal, err := TrainTestSplit(X, y, 0.3, 1)
	require.NoError(t, err)
	assert.Len(t, XVal, 3)
	assert.Len(t, XTrain, 7)
	assert.Len(t, yVal, 3)
	assert.Len(t, yTrain, 7)

	// every row lands in exactly one partition
	seen := make(map[float64]int)
	for _, row := range append(append([][]float64{}, XTrain...), XVal...) {
		seen[row[0]]++
	}
	assert.Len(t, seen, 10)
	for v, n := range seen {
		assert.Equal(t, 1, n, "row %v", v)
	}
}

func TestTrainTestSplitDeterministic(t *testing.T) {
	X, y := makeData(20)
	a1, b1, c1, d1, err := TrainTestSplit(X, y, 0.25, 7)
	require.NoError(t, err)
	a2, b2, c2, d2, err := TrainTestSplit(X, y, 0.25, 7)
	require.NoError(t, err)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
	assert.Equal(t, c1, c2)
	assert.Equal(t, d1, d2)

	a3, _, _, _, err := TrainTestSplit(X, y, 0.25, 8)
	require.NoError(t, err)
	assert.NotEqual(t, a1, a3, "different seed should shuffle differently")
}

func TestTrainTestSplitValidation(t *testing.T) {
	X, y := makeData(4)
	_, _, _, _, err := TrainTestSplit(nil, nil, 0.2, 1)
	require.Error(t, err)
	_, _, _, _, err = TrainTestSplit(X, y[:2], 0.2, 1)
	require.Error(t, err)
	_, _, _, _, err = TrainTestSplit(X, y, 1.0, 1)
	require.Error(t, err)
}

func TestShuffleKeepsPairsTogether(t *testing.T) {
	X := [][]float64{{0}, {1}, {2}, {3}}
	y := []int{0, 10, 20, 30}
	XS, yS := Shuffle(X, y, 3)
	require.Len(t, XS, 4)
	for i := range XS {
		assert.Equal(t, XS[i][0]*10, float64(yS[i]))
	}
}

func TestKFoldCoversAllIndices(t *testing.T) {
	folds := KFold(10, 3, 5)
	require.Len(t, folds, 3)
	seen := make(map[int]bool)
	for _, fold := range folds {
		for _, idx := range fold {
			assert.False(t, seen[idx], "index %d appears twice", idx)
			seen[idx] = true
		}
	}
	assert.Len(t, seen, 10)
}
