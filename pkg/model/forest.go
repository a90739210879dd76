package model

import (
	"errors"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// Forest is a bagged ensemble of DecisionTrees. Each tree draws its own
// bootstrap sample and feature subsets from a generator seeded with
// Seed + tree index, so trees can train concurrently without making the
// fit depend on scheduling. Prediction is a majority vote; vote ties go
// to the smaller label.
type Forest struct {
	Trees           int
	MaxDepth        int
	MinSamplesSplit int
	MinSamplesLeaf  int
	MaxFeatures     int // 0 means floor(sqrt(p))
	Criterion       string
	Bootstrap       bool
	Seed            int64

	trees   []*DecisionTree
	classes []int
}

// ForestOption configures a Forest.
type ForestOption func(*Forest)

func WithTrees(n int) ForestOption             { return func(f *Forest) { f.Trees = n } }
func WithForestMaxDepth(d int) ForestOption    { return func(f *Forest) { f.MaxDepth = d } }
func WithForestMinSplit(n int) ForestOption    { return func(f *Forest) { f.MinSamplesSplit = n } }
func WithForestMaxFeatures(k int) ForestOption { return func(f *Forest) { f.MaxFeatures = k } }
func WithForestCriterion(c string) ForestOption {
	return func(f *Forest) { f.Criterion = c }
}
func WithBootstrap(b bool) ForestOption { return func(f *Forest) { f.Bootstrap = b } }
func WithSeed(s int64) ForestOption     { return func(f *Forest) { f.Seed = s } }

// NewForest initializes the forest with sensible defaults.
func NewForest(opts ...ForestOption) *Forest {
	f := &Forest{
		Trees:           100,
		MinSamplesSplit: 2,
		MinSamplesLeaf:  1,
		Criterion:       "gini",
		Bootstrap:       true,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Fit trains all trees concurrently.
func (f *Forest) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return errors.New("forest: empty X")
	}
	if len(y) != len(X) {
		return errors.New("forest: X and y length mismatch")
	}
	if f.Trees <= 0 {
		return errors.New("forest: need at least one tree")
	}
	n := len(X)
	maxFeatures := f.MaxFeatures
	if maxFeatures == 0 {
		maxFeatures = int(math.Sqrt(float64(len(X[0]))))
		if maxFeatures < 1 {
			maxFeatures = 1
		}
	}

	f.classes = sortedClasses(y)
	f.trees = make([]*DecisionTree, f.Trees)

	var g errgroup.Group
	for i := 0; i < f.Trees; i++ {
		g.Go(func() error {
			seed := f.Seed + int64(i)
			rnd := rand.New(rand.NewSource(seed))

			Xi, yi := X, y
			if f.Bootstrap {
				Xi = make([][]float64, n)
				yi = make([]int, n)
				for j := 0; j < n; j++ {
					k := rnd.Intn(n)
					Xi[j] = X[k]
					yi[j] = y[k]
				}
			}

			tree := NewDecisionTree(
				WithMaxDepth(f.MaxDepth),
				WithMinSamplesSplit(f.MinSamplesSplit),
				WithMinSamplesLeaf(f.MinSamplesLeaf),
				WithMaxFeatures(maxFeatures),
				WithCriterion(f.Criterion),
				WithTreeSeed(seed),
			)
			if err := tree.Fit(Xi, yi); err != nil {
				return err
			}
			f.trees[i] = tree
			return nil
		})
	}
	return g.Wait()
}

// Predict returns the majority vote across trees for each row.
func (f *Forest) Predict(X [][]float64) []int {
	votes := make([]map[int]int, len(X))
	for i := range votes {
		votes[i] = make(map[int]int, len(f.classes))
	}
	for _, tree := range f.trees {
		for i, label := range tree.Predict(X) {
			votes[i][label]++
		}
	}
	out := make([]int, len(X))
	for i, v := range votes {
		out[i] = majority(v, f.classes)
	}
	return out
}

// PredictProba returns the mean positive-class probability across trees.
func (f *Forest) PredictProba(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for _, tree := range f.trees {
		for i, p := range tree.PredictProba(X) {
			out[i] += p
		}
	}
	for i := range out {
		out[i] /= float64(len(f.trees))
	}
	return out
}

// majority scans classes in sorted order so ties resolve to the
// smallest label.
func majority(votes map[int]int, classes []int) int {
	best, bestVotes := 0, -1
	for _, c := range classes {
		if votes[c] > bestVotes {
			best, bestVotes = c, votes[c]
		}
	}
	return best
}
