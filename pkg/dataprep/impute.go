package dataprep

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"titanic/pkg/dataset"
	"titanic/pkg/stats"
)

// ImputeMedian fills missing cells of a numeric column with the column
// median computed from the observed values.
func ImputeMedian(f *dataset.Frame, name string) error {
	vals, err := f.FloatColumn(name)
	if err != nil {
		return err
	}
	median := stats.Median(vals)
	filled := 0
	for i, v := range vals {
		if math.IsNaN(v) {
			vals[i] = median
			filled++
		}
	}
	if filled == 0 {
		return nil
	}
	if err := f.SetFloatColumn(name, vals); err != nil {
		return err
	}
	log.Debug().Str("column", name).Int("filled", filled).Float64("median", median).Msg("imputed with median")
	return nil
}

// ImputeMode fills missing cells of a categorical column with the most
// frequent observed value.
func ImputeMode(f *dataset.Frame, name string) error {
	col, err := f.Column(name)
	if err != nil {
		return err
	}
	observed := make([]string, 0, len(col))
	for _, cell := range col {
		if !dataset.IsMissing(cell) {
			observed = append(observed, cell)
		}
	}
	mode := stats.ModeString(observed)
	if mode == "" {
		return fmt.Errorf("dataprep: column %q has no observed values to impute from", name)
	}
	filled := 0
	for i, cell := range col {
		if dataset.IsMissing(cell) {
			col[i] = mode
			filled++
		}
	}
	if filled > 0 {
		log.Debug().Str("column", name).Int("filled", filled).Str("mode", mode).Msg("imputed with mode")
	}
	return nil
}

// ImputeConstant fills missing cells with a fixed replacement value.
func ImputeConstant(f *dataset.Frame, name, constant string) error {
	col, err := f.Column(name)
	if err != nil {
		return err
	}
	for i, cell := range col {
		if dataset.IsMissing(cell) {
			col[i] = constant
		}
	}
	return nil
}

// GroupMedians computes the median of a numeric column within each group
// of a categorical column, e.g. Age by Title. Groups with no observed
// values fall back to the overall median.
func GroupMedians(f *dataset.Frame, valueCol, groupCol string) (map[string]float64, error) {
	vals, err := f.FloatColumn(valueCol)
	if err != nil {
		return nil, err
	}
	groups, err := f.Column(groupCol)
	if err != nil {
		return nil, err
	}
	byGroup := make(map[string][]float64)
	for i, g := range groups {
		if !math.IsNaN(vals[i]) {
			byGroup[g] = append(byGroup[g], vals[i])
		}
	}
	overall := stats.Median(vals)
	out := make(map[string]float64, len(byGroup))
	for g, members := range byGroup {
		if len(members) == 0 {
			out[g] = overall
			continue
		}
		out[g] = stats.Median(members)
	}
	return out, nil
}

// ImputeGroupMedian fills missing cells of a numeric column with the
// median of the rows sharing the same value in groupCol.
func ImputeGroupMedian(f *dataset.Frame, valueCol, groupCol string) error {
	medians, err := GroupMedians(f, valueCol, groupCol)
	if err != nil {
		return err
	}
	vals, err := f.FloatColumn(valueCol)
	if err != nil {
		return err
	}
	groups, err := f.Column(groupCol)
	if err != nil {
		return err
	}
	overall := stats.Median(vals)
	filled := 0
	for i, v := range vals {
		if !math.IsNaN(v) {
			continue
		}
		m, ok := medians[groups[i]]
		if !ok {
			m = overall
		}
		vals[i] = m
		filled++
	}
	if filled == 0 {
		return nil
	}
	if err := f.SetFloatColumn(valueCol, vals); err != nil {
		return err
	}
	log.Debug().Str("column", valueCol).Str("by", groupCol).Int("filled", filled).Msg("imputed with group median")
	return nil
}
