// Package split partitions the training matrix into train and
// validation subsets. All sampling is driven by an explicit seed so the
// same seed reproduces the same partition.
package split

import (
	"errors"
	"math/rand"
)

// TrainTestSplit shuffles row indices with the given seed and carves off
// the first ratio-sized slice as the validation set.
func TrainTestSplit(X [][]float64, y []int, ratio float64, seed int64) (XTrain [][]float64, yTrain []int, XVal [][]float64, yVal []int, err error) {
	n := len(X)
	if n == 0 {
		return nil, nil, nil, nil, errors.New("split: empty dataset")
	}
	if len(y) != n {
		return nil, nil, nil, nil, errors.New("split: X and y length mismatch")
	}
	if ratio < 0 || ratio >= 1 {
		return nil, nil, nil, nil, errors.New("split: ratio must be in [0, 1)")
	}
	rnd := rand.New(rand.NewSource(seed))
	indices := rnd.Perm(n)
	nVal := int(float64(n) * ratio)
	for i, idx := range indices {
		if i < nVal {
			XVal = append(XVal, X[idx])
			yVal = append(yVal, y[idx])
		} else {
			XTrain = append(XTrain, X[idx])
			yTrain = append(yTrain, y[idx])
		}
	}
	return XTrain, yTrain, XVal, yVal, nil
}

// Shuffle returns X and y reordered by a seeded permutation.
func Shuffle(X [][]float64, y []int, seed int64) ([][]float64, []int) {
	n := len(X)
	rnd := rand.New(rand.NewSource(seed))
	indices := rnd.Perm(n)
	XShuf := make([][]float64, n)
	yShuf := make([]int, n)
	for i, idx := range indices {
		XShuf[i] = X[idx]
		yShuf[i] = y[idx]
	}
	return XShuf, yShuf
}

// KFold returns k index folds drawn from a seeded permutation of n rows.
func KFold(n, k int, seed int64) [][]int {
	rnd := rand.New(rand.NewSource(seed))
	indices := rnd.Perm(n)
	folds := make([][]int, k)
	for i, idx := range indices {
		folds[i%k] = append(folds[i%k], idx)
	}
	return folds
}
