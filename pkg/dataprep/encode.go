package dataprep

import (
	"errors"
	"fmt"
	"sort"

	"titanic/pkg/dataset"
)

// CategoricalColumns are the columns label-encoded before training, in
// the order they are encoded.
var CategoricalColumns = []string{ColSex, ColEmbarked, ColTitle, ColAgeBin, ColFareBin}

// FeatureColumns is the fixed feature set handed to the classifiers.
// PassengerId, Name and Ticket carry no signal beyond what Title covers.
var FeatureColumns = []string{
	ColPclass, ColSex, ColAge, ColSibSp, ColParch, ColFare, ColEmbarked,
	ColFamilySize, ColIsAlone, ColTitle, ColAgeBin, ColFareBin,
}

// LabelEncoder maps category strings to integer codes. Classes are the
// sorted unique values seen at fit time, so codes are stable across runs.
type LabelEncoder struct {
	Classes []string
	index   map[string]int
}

// Fit learns the sorted class set from a column.
func (e *LabelEncoder) Fit(values []string) error {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	if len(set) == 0 {
		return errors.New("dataprep: cannot fit encoder on empty column")
	}
	e.Classes = make([]string, 0, len(set))
	for v := range set {
		e.Classes = append(e.Classes, v)
	}
	sort.Strings(e.Classes)
	e.index = make(map[string]int, len(e.Classes))
	for i, c := range e.Classes {
		e.index[c] = i
	}
	return nil
}

// Transform maps values to their class codes. A value never seen at fit
// time falls back to the first class, so the test table can always be
// encoded with the train-fitted encoder.
func (e *LabelEncoder) Transform(values []string) []int {
	out := make([]int, len(values))
	for i, v := range values {
		if code, ok := e.index[v]; ok {
			out[i] = code
		}
	}
	return out
}

// EncodePair fits a LabelEncoder per categorical column on the train
// frame and applies it to both frames in place, replacing category cells
// with their integer codes. Returns the fitted encoders by column name.
func EncodePair(train, test *dataset.Frame) (map[string]*LabelEncoder, error) {
	encoders := make(map[string]*LabelEncoder, len(CategoricalColumns))
	for _, col := range CategoricalColumns {
		trainCol, err := train.Column(col)
		if err != nil {
			return nil, fmt.Errorf("dataprep: encode: %w", err)
		}
		enc := &LabelEncoder{}
		if err := enc.Fit(trainCol); err != nil {
			return nil, fmt.Errorf("dataprep: encode %q: %w", col, err)
		}
		if err := applyEncoder(train, col, enc); err != nil {
			return nil, err
		}
		if err := applyEncoder(test, col, enc); err != nil {
			return nil, err
		}
		encoders[col] = enc
	}
	return encoders, nil
}

func applyEncoder(f *dataset.Frame, col string, enc *LabelEncoder) error {
	cells, err := f.Column(col)
	if err != nil {
		return fmt.Errorf("dataprep: encode: %w", err)
	}
	codes := enc.Transform(cells)
	vals := make([]float64, len(codes))
	for i, c := range codes {
		vals[i] = float64(c)
	}
	return f.SetFloatColumn(col, vals)
}

// Matrix assembles the numeric feature matrix over FeatureColumns. Every
// listed column must be present and fully numeric.
func Matrix(f *dataset.Frame) ([][]float64, error) {
	cols := make([][]float64, len(FeatureColumns))
	for j, name := range FeatureColumns {
		vals, err := f.FloatColumn(name)
		if err != nil {
			return nil, fmt.Errorf("dataprep: matrix: %w", err)
		}
		cols[j] = vals
	}
	X := make([][]float64, f.Len())
	for i := range X {
		row := make([]float64, len(cols))
		for j := range cols {
			row[j] = cols[j][i]
		}
		X[i] = row
	}
	return X, nil
}

// Labels extracts the binary survival labels from the train frame.
func Labels(f *dataset.Frame) ([]int, error) {
	vals, err := f.FloatColumn(ColSurvived)
	if err != nil {
		return nil, fmt.Errorf("dataprep: labels: %w", err)
	}
	out := make([]int, len(vals))
	for i, v := range vals {
		switch v {
		case 0, 1:
			out[i] = int(v)
		default:
			return nil, fmt.Errorf("dataprep: labels: row %d has non-binary label %v", i, v)
		}
	}
	return out, nil
}
