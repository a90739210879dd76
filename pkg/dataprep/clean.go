// Package dataprep implements the cleaning, imputation, feature
// engineering and encoding stages between the raw CSV frames and the
// numeric matrices the classifiers consume.
package dataprep

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"titanic/pkg/dataset"
)

// Titanic column names used across the stages.
const (
	ColPassengerID = "PassengerId"
	ColSurvived    = "Survived"
	ColPclass      = "Pclass"
	ColName        = "Name"
	ColSex         = "Sex"
	ColAge         = "Age"
	ColSibSp       = "SibSp"
	ColParch       = "Parch"
	ColTicket      = "Ticket"
	ColFare        = "Fare"
	ColCabin       = "Cabin"
	ColEmbarked    = "Embarked"
)

// Clean applies the fixed cleaning rules for this dataset in place:
// duplicate rows are removed, Cabin is dropped for its missing ratio,
// Age and Fare are imputed with their column median and Embarked with
// its mode. After Clean no retained column has a missing cell.
func Clean(f *dataset.Frame) (*dataset.Frame, error) {
	f = DropDuplicates(f)
	f.DropColumn(ColCabin)

	for _, col := range []string{ColAge, ColFare} {
		if !f.Has(col) {
			continue
		}
		if err := ImputeMedian(f, col); err != nil {
			return nil, fmt.Errorf("dataprep: clean: %w", err)
		}
	}
	if f.Has(ColEmbarked) {
		if err := ImputeMode(f, ColEmbarked); err != nil {
			return nil, fmt.Errorf("dataprep: clean: %w", err)
		}
	}
	log.Info().Int("rows", f.Len()).Msg("data cleaning completed")
	return f, nil
}

// DropDuplicates returns a frame with duplicate rows removed, keeping the
// first occurrence. Row order is otherwise preserved.
func DropDuplicates(f *dataset.Frame) *dataset.Frame {
	seen := make(map[string]struct{}, f.Len())
	var kept [][]string
	for i := 0; i < f.Len(); i++ {
		rec := f.Row(i)
		key := strings.Join(rec, "\x1f")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, rec)
	}
	if len(kept) == f.Len() {
		return f
	}
	out, err := dataset.New(f.Headers(), kept)
	if err != nil {
		// Rows came from the frame itself, so the shape cannot mismatch.
		panic(err)
	}
	log.Debug().Int("dropped", f.Len()-len(kept)).Msg("removed duplicate rows")
	return out
}

// MissingProfile maps each column to the fraction of missing cells.
func MissingProfile(f *dataset.Frame) map[string]float64 {
	out := make(map[string]float64, len(f.Headers()))
	rows := f.Len()
	for _, h := range f.Headers() {
		n, _ := f.MissingCount(h)
		if rows == 0 {
			out[h] = 0
			continue
		}
		out[h] = float64(n) / float64(rows)
	}
	return out
}

// CheckComplete returns an error naming the first column that still
// contains a missing cell.
func CheckComplete(f *dataset.Frame) error {
	for _, h := range f.Headers() {
		n, err := f.MissingCount(h)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("dataprep: column %q has %d missing values after cleaning", h, n)
		}
	}
	return nil
}
