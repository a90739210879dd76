// Package dataset holds the in-memory table the pipeline stages pass
// between each other. A Frame stores raw CSV cells column-major and keyed
// by header name; stages read typed views of single columns and write
// derived columns back.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMissingColumn is returned when a named column is absent from a frame.
var ErrMissingColumn = errors.New("dataset: column not found")

// Frame is a column-major table of string cells.
type Frame struct {
	headers []string
	index   map[string]int
	cols    [][]string
}

// New builds a Frame from a header row and row-major records. Every
// record must have exactly len(headers) cells.
func New(headers []string, records [][]string) (*Frame, error) {
	f := &Frame{
		headers: append([]string(nil), headers...),
		index:   make(map[string]int, len(headers)),
		cols:    make([][]string, len(headers)),
	}
	for j, h := range headers {
		if _, dup := f.index[h]; dup {
			return nil, fmt.Errorf("dataset: duplicate header %q", h)
		}
		f.index[h] = j
		f.cols[j] = make([]string, len(records))
	}
	for i, rec := range records {
		if len(rec) != len(headers) {
			return nil, fmt.Errorf("dataset: row %d has %d cells, want %d", i, len(rec), len(headers))
		}
		for j, cell := range rec {
			f.cols[j][i] = cell
		}
	}
	return f, nil
}

// Headers returns the column names in order.
func (f *Frame) Headers() []string {
	return append([]string(nil), f.headers...)
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	if len(f.cols) == 0 {
		return 0
	}
	return len(f.cols[0])
}

// Has reports whether the frame contains the named column.
func (f *Frame) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Column returns the raw cells of a column. The returned slice is the
// frame's backing storage; callers that mutate it change the frame.
func (f *Frame) Column(name string) ([]string, error) {
	j, ok := f.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	return f.cols[j], nil
}

// SetColumn replaces an existing column or appends a new one. The value
// slice must match the frame's row count.
func (f *Frame) SetColumn(name string, values []string) error {
	if f.Len() != 0 && len(values) != f.Len() {
		return fmt.Errorf("dataset: column %q has %d values, frame has %d rows", name, len(values), f.Len())
	}
	if j, ok := f.index[name]; ok {
		f.cols[j] = values
		return nil
	}
	f.index[name] = len(f.headers)
	f.headers = append(f.headers, name)
	f.cols = append(f.cols, values)
	return nil
}

// DropColumn removes a column if present. Dropping an absent column is a
// no-op, mirroring errors="ignore" semantics in the cleaning rules.
func (f *Frame) DropColumn(name string) {
	j, ok := f.index[name]
	if !ok {
		return
	}
	f.headers = append(f.headers[:j], f.headers[j+1:]...)
	f.cols = append(f.cols[:j], f.cols[j+1:]...)
	delete(f.index, name)
	for h, k := range f.index {
		if k > j {
			f.index[h] = k - 1
		}
	}
}

// Row returns row i as a record in header order.
func (f *Frame) Row(i int) []string {
	rec := make([]string, len(f.cols))
	for j := range f.cols {
		rec[j] = f.cols[j][i]
	}
	return rec
}

// Copy returns a deep copy of the frame.
func (f *Frame) Copy() *Frame {
	cp := &Frame{
		headers: append([]string(nil), f.headers...),
		index:   make(map[string]int, len(f.index)),
		cols:    make([][]string, len(f.cols)),
	}
	for h, j := range f.index {
		cp.index[h] = j
	}
	for j, col := range f.cols {
		cp.cols[j] = append([]string(nil), col...)
	}
	return cp
}

// IsMissing reports whether a cell counts as a missing value.
func IsMissing(cell string) bool {
	switch strings.TrimSpace(cell) {
	case "", "NA", "NaN", "nan", "null":
		return true
	}
	return false
}

// FloatColumn parses a column as float64, mapping missing cells to NaN.
func (f *Frame) FloatColumn(name string) ([]float64, error) {
	col, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(col))
	for i, cell := range col {
		if IsMissing(cell) {
			out[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, fmt.Errorf("dataset: column %q row %d: %w", name, i, err)
		}
		out[i] = v
	}
	return out, nil
}

// SetFloatColumn writes a float column back as cells. NaN becomes an
// empty (missing) cell; integral values are written without a fraction.
func (f *Frame) SetFloatColumn(name string, values []float64) error {
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = formatFloat(v)
	}
	return f.SetColumn(name, cells)
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// MissingCount returns the number of missing cells in a column.
func (f *Frame) MissingCount(name string) (int, error) {
	col, err := f.Column(name)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, cell := range col {
		if IsMissing(cell) {
			n++
		}
	}
	return n, nil
}
