package frame

import (
	"math"
	"strconv"
	"strings"
)

// nullKey renders null cells in composite group keys. It cannot collide with
// a real string value produced by Key because it starts with a NUL byte.
const nullKey = "\x00<null>"

// Series is a single named column. It holds either string cells or numeric
// cells with a validity mask; an invalid numeric cell is the engine's
// undefined marker.
type Series struct {
	name  string
	strs  []string
	vals  []float64
	valid []bool
}

// NewStringSeries creates a string column.
func NewStringSeries(name string, values []string) Series {
	return Series{name: name, strs: values}
}

// NewNumericSeries creates a numeric column. A nil mask means every cell is
// valid; otherwise valid[i] reports whether cell i is defined.
func NewNumericSeries(name string, values []float64, valid []bool) Series {
	return Series{name: name, vals: values, valid: valid}
}

// Name returns the column name.
func (s Series) Name() string { return s.name }

// Len returns the number of cells.
func (s Series) Len() int {
	if s.strs != nil {
		return len(s.strs)
	}
	return len(s.vals)
}

// IsNumeric reports whether the column holds numeric cells.
func (s Series) IsNumeric() bool { return s.strs == nil }

// Value returns the numeric cell at i and whether it is defined.
// It must only be called on numeric columns.
func (s Series) Value(i int) (float64, bool) {
	if s.valid != nil && !s.valid[i] {
		return 0, false
	}
	v := s.vals[i]
	if math.IsNaN(v) {
		// NaN is the native undefined marker of most columnar engines;
		// treat it the same as a masked cell.
		return 0, false
	}
	return v, true
}

// Str returns the string cell at i. It must only be called on string columns.
func (s Series) Str(i int) string { return s.strs[i] }

// Key renders cell i canonically for use in a composite group key.
func (s Series) Key(i int) string {
	if s.strs != nil {
		return s.strs[i]
	}
	v, ok := s.Value(i)
	if !ok {
		return nullKey
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Compare orders cell i against cell j: numeric columns compare numerically
// with undefined cells first, string columns lexicographically.
func (s Series) Compare(i, j int) int {
	if s.strs != nil {
		return strings.Compare(s.strs[i], s.strs[j])
	}
	a, aok := s.Value(i)
	b, bok := s.Value(j)
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// gather builds a new series holding the cells at the given row indices.
func (s Series) gather(rows []int) Series {
	out := Series{name: s.name}
	if s.strs != nil {
		out.strs = make([]string, len(rows))
		for k, r := range rows {
			out.strs[k] = s.strs[r]
		}
		return out
	}
	out.vals = make([]float64, len(rows))
	for k, r := range rows {
		out.vals[k] = s.vals[r]
	}
	if s.valid != nil {
		out.valid = make([]bool, len(rows))
		for k, r := range rows {
			out.valid[k] = s.valid[r]
		}
	}
	return out
}
