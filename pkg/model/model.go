// Package model provides the from-scratch classifiers and the
// classification metrics used to compare them: a CART decision tree, a
// bagged forest over it, and a logistic-regression baseline.
package model

// Classifier is the supervised learning contract shared by all
// estimators: fit on a feature matrix with integer labels, then predict
// labels for new rows.
type Classifier interface {
	Fit(X [][]float64, y []int) error
	Predict(X [][]float64) []int
}

// ProbClassifier additionally exposes p(y=1) for binary problems.
type ProbClassifier interface {
	Classifier
	PredictProba(X [][]float64) []float64
}
