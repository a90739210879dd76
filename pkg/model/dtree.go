package model

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// DecisionTree is a CART-style classifier. Splits are binary numeric
// thresholds (x <= t goes left) found by exhaustive midpoint search.
// The split search is serial and scans features in ascending order with
// a strict-improvement rule, so a fit with a fixed Seed is reproducible.
// Feature values must be finite; impute missing data before fitting.
type DecisionTree struct {
	MaxDepth        int     // 0 means no depth limit
	MinSamplesSplit int     // minimum samples to attempt a split
	MinSamplesLeaf  int     // minimum samples in each child
	MaxFeatures     int     // 0 means consider all features
	Criterion       string  // "gini" (default) or "entropy"
	MinGain         float64 // minimum impurity decrease to accept a split
	Seed            int64

	root    *treeNode
	classes []int
}

type treeNode struct {
	leaf      bool
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode

	n      int
	probas []float64 // class distribution, aligned with DecisionTree.classes
	pred   int       // index into classes
}

// TreeOption configures a DecisionTree.
type TreeOption func(*DecisionTree)

func WithMaxDepth(d int) TreeOption        { return func(t *DecisionTree) { t.MaxDepth = d } }
func WithMinSamplesSplit(n int) TreeOption { return func(t *DecisionTree) { t.MinSamplesSplit = n } }
func WithMinSamplesLeaf(n int) TreeOption  { return func(t *DecisionTree) { t.MinSamplesLeaf = n } }
func WithMaxFeatures(k int) TreeOption     { return func(t *DecisionTree) { t.MaxFeatures = k } }
func WithCriterion(c string) TreeOption    { return func(t *DecisionTree) { t.Criterion = c } }
func WithMinGain(g float64) TreeOption     { return func(t *DecisionTree) { t.MinGain = g } }
func WithTreeSeed(s int64) TreeOption      { return func(t *DecisionTree) { t.Seed = s } }

// NewDecisionTree returns a tree with the defaults the forest relies on.
func NewDecisionTree(opts ...TreeOption) *DecisionTree {
	t := &DecisionTree{
		MinSamplesSplit: 2,
		MinSamplesLeaf:  1,
		Criterion:       "gini",
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Classes returns the labels seen at fit time, in sorted order.
func (t *DecisionTree) Classes() []int {
	return append([]int(nil), t.classes...)
}

// Fit trains the tree on X (n rows, p columns) and labels y.
func (t *DecisionTree) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return errors.New("dtree: empty X")
	}
	if len(y) != len(X) {
		return errors.New("dtree: X and y length mismatch")
	}
	p := len(X[0])
	for i := range X {
		if len(X[i]) != p {
			return fmt.Errorf("dtree: row %d has %d features, want %d", i, len(X[i]), p)
		}
		for j, v := range X[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("dtree: row %d feature %d is not finite", i, j)
			}
		}
	}

	t.classes = sortedClasses(y)
	classOf := make(map[int]int, len(t.classes))
	for i, c := range t.classes {
		classOf[c] = i
	}

	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}
	rnd := rand.New(rand.NewSource(t.Seed))
	t.root = t.grow(X, y, classOf, idx, 0, rnd)
	return nil
}

// Predict returns the predicted label for each row.
func (t *DecisionTree) Predict(X [][]float64) []int {
	out := make([]int, len(X))
	for i, x := range X {
		leaf := t.route(x)
		out[i] = t.classes[leaf.pred]
	}
	return out
}

// PredictProba returns p(y = positive class) per row, where the positive
// class is the largest label (1 for binary 0/1 problems).
func (t *DecisionTree) PredictProba(X [][]float64) []float64 {
	out := make([]float64, len(X))
	pos := len(t.classes) - 1
	for i, x := range X {
		out[i] = t.route(x).probas[pos]
	}
	return out
}

func (t *DecisionTree) route(x []float64) *treeNode {
	node := t.root
	for !node.leaf {
		if x[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node
}

func (t *DecisionTree) grow(X [][]float64, y []int, classOf map[int]int, idx []int, depth int, rnd *rand.Rand) *treeNode {
	counts := make([]int, len(t.classes))
	for _, i := range idx {
		counts[classOf[y[i]]]++
	}
	node := &treeNode{n: len(idx)}

	stop := pure(counts) ||
		len(idx) < t.MinSamplesSplit ||
		(t.MaxDepth > 0 && depth >= t.MaxDepth)
	if !stop {
		if best, ok := t.bestSplit(X, y, classOf, idx, counts, rnd); ok {
			node.feature = best.feature
			node.threshold = best.threshold
			node.left = t.grow(X, y, classOf, best.left, depth+1, rnd)
			node.right = t.grow(X, y, classOf, best.right, depth+1, rnd)
			return node
		}
	}

	node.leaf = true
	node.probas = distribution(counts)
	node.pred = argmaxCounts(counts)
	return node
}

type candidate struct {
	feature   int
	threshold float64
	left      []int
	right     []int
}

// bestSplit scans candidate features in ascending index order. Gains are
// compared with a strict >, so the lowest feature index wins ties and
// the search is order-independent of any sampling.
func (t *DecisionTree) bestSplit(X [][]float64, y []int, classOf map[int]int, idx []int, parentCounts []int, rnd *rand.Rand) (candidate, bool) {
	p := len(X[idx[0]])
	features := make([]int, p)
	for j := range features {
		features[j] = j
	}
	if t.MaxFeatures > 0 && t.MaxFeatures < p {
		rnd.Shuffle(p, func(a, b int) { features[a], features[b] = features[b], features[a] })
		features = features[:t.MaxFeatures]
		sort.Ints(features)
	}

	parent := t.impurity(parentCounts)
	total := len(idx)
	bestGain := t.MinGain
	var best candidate
	found := false

	ordered := make([]int, len(idx))
	for _, f := range features {
		copy(ordered, idx)
		sort.SliceStable(ordered, func(a, b int) bool { return X[ordered[a]][f] < X[ordered[b]][f] })

		// Walk the sorted rows once, moving class counts from right to
		// left as the threshold advances.
		leftCounts := make([]int, len(parentCounts))
		rightCounts := append([]int(nil), parentCounts...)
		for s := 1; s < total; s++ {
			ci := classOf[y[ordered[s-1]]]
			leftCounts[ci]++
			rightCounts[ci]--
			if X[ordered[s]][f] == X[ordered[s-1]][f] {
				continue
			}
			if s < t.MinSamplesLeaf || total-s < t.MinSamplesLeaf {
				continue
			}
			weighted := float64(s)/float64(total)*t.impurity(leftCounts) +
				float64(total-s)/float64(total)*t.impurity(rightCounts)
			gain := parent - weighted
			if gain > bestGain {
				bestGain = gain
				best = candidate{
					feature:   f,
					threshold: (X[ordered[s-1]][f] + X[ordered[s]][f]) / 2,
					left:      append([]int(nil), ordered[:s]...),
					right:     append([]int(nil), ordered[s:]...),
				}
				found = true
			}
		}
	}
	return best, found
}

func (t *DecisionTree) impurity(counts []int) float64 {
	if t.Criterion == "entropy" {
		return entropy(counts)
	}
	return gini(counts)
}

func gini(counts []int) float64 {
	n := 0
	for _, c := range counts {
		n += c
	}
	if n == 0 {
		return 0
	}
	res := 0.0
	for _, c := range counts {
		p := float64(c) / float64(n)
		res += p * (1 - p)
	}
	return res
}

func entropy(counts []int) float64 {
	n := 0
	for _, c := range counts {
		n += c
	}
	if n == 0 {
		return 0
	}
	res := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(n)
		res -= p * math.Log2(p)
	}
	return res
}

func pure(counts []int) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}

func distribution(counts []int) []float64 {
	n := 0
	for _, c := range counts {
		n += c
	}
	out := make([]float64, len(counts))
	if n == 0 {
		return out
	}
	for i, c := range counts {
		out[i] = float64(c) / float64(n)
	}
	return out
}

// argmaxCounts returns the index of the largest count; the lowest index
// wins ties, which for sorted classes means the smallest label.
func argmaxCounts(counts []int) int {
	best := 0
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}
	return best
}

func sortedClasses(y []int) []int {
	set := make(map[int]struct{})
	for _, lab := range y {
		set[lab] = struct{}{}
	}
	out := make([]int, 0, len(set))
	for lab := range set {
		out = append(out, lab)
	}
	sort.Ints(out)
	return out
}
