package model

// Accuracy returns the fraction of matching labels.
func Accuracy(yTrue, yPred []int) float64 {
	if len(yTrue) == 0 || len(yTrue) != len(yPred) {
		return 0
	}
	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(yTrue))
}

// ConfusionMatrix holds binary classification counts with 1 as the
// positive class.
type ConfusionMatrix struct {
	TP, FP, TN, FN int
}

// Confusion tallies the binary confusion matrix.
func Confusion(yTrue, yPred []int) ConfusionMatrix {
	var cm ConfusionMatrix
	for i := range yTrue {
		switch {
		case yPred[i] == 1 && yTrue[i] == 1:
			cm.TP++
		case yPred[i] == 1 && yTrue[i] == 0:
			cm.FP++
		case yPred[i] == 0 && yTrue[i] == 0:
			cm.TN++
		default:
			cm.FN++
		}
	}
	return cm
}

// PrecisionRecallF1 derives precision, recall and F1 for the positive
// class; undefined ratios (empty denominators) come back as 0.
func PrecisionRecallF1(yTrue, yPred []int) (prec, rec, f1 float64) {
	cm := Confusion(yTrue, yPred)
	if cm.TP+cm.FP > 0 {
		prec = float64(cm.TP) / float64(cm.TP+cm.FP)
	}
	if cm.TP+cm.FN > 0 {
		rec = float64(cm.TP) / float64(cm.TP+cm.FN)
	}
	if prec+rec > 0 {
		f1 = 2 * prec * rec / (prec + rec)
	}
	return prec, rec, f1
}
