// Package frame is a minimal engine-neutral view of tabular data. It exposes
// exactly what grouped metric computations need: wrapping a native dataframe,
// referencing columns, deriving masked columns from expressions, selecting,
// group-by summation, sorting, and converting back to the native kind.
//
// Conventions:
//   - Frames are immutable; every operation returns a new frame sharing no
//     mutable state with its input.
//   - Undefined numeric cells are carried as a validity mask and rendered by
//     adapters as the native engine's missing marker.
//   - External errors must be wrapped via this package's sentinel values.
package frame

import (
	"fmt"
	"sort"
)

// DataFrame is an immutable in-memory columnar table.
type DataFrame struct {
	series  []Series
	index   map[string]int
	rows    int
	adapter Adapter // set when the frame was wrapped from a native structure
}

// New builds a frame from columns. All columns must have the same length and
// distinct names.
func New(series ...Series) (*DataFrame, error) {
	df := &DataFrame{series: series, index: make(map[string]int, len(series))}
	for i, s := range series {
		if _, dup := df.index[s.Name()]; dup {
			return nil, fmt.Errorf("%q: %w", s.Name(), ErrDuplicateColumn)
		}
		df.index[s.Name()] = i
		if i == 0 {
			df.rows = s.Len()
			continue
		}
		if s.Len() != df.rows {
			return nil, fmt.Errorf("%q has %d rows, want %d: %w", s.Name(), s.Len(), df.rows, ErrLengthMismatch)
		}
	}
	return df, nil
}

// Len returns the number of rows.
func (df *DataFrame) Len() int { return df.rows }

// Columns returns the column names in order.
func (df *DataFrame) Columns() []string {
	names := make([]string, len(df.series))
	for i, s := range df.series {
		names[i] = s.Name()
	}
	return names
}

// HasColumn reports whether the frame has a column with the given name.
func (df *DataFrame) HasColumn(name string) bool {
	_, ok := df.index[name]
	return ok
}

// Column returns the named column.
func (df *DataFrame) Column(name string) (Series, error) {
	i, ok := df.index[name]
	if !ok {
		return Series{}, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
	}
	return df.series[i], nil
}

// Select projects the frame onto the named key columns, kept as-is, followed
// by the derived columns, each evaluated row-wise. Derived columns are always
// numeric; rows where an expression evaluates to undefined carry the
// undefined marker.
func (df *DataFrame) Select(keyCols []string, derived []Named) (*DataFrame, error) {
	out := make([]Series, 0, len(keyCols)+len(derived))
	for _, name := range keyCols {
		s, err := df.Column(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	for _, d := range derived {
		if err := d.Expr.validate(df); err != nil {
			return nil, err
		}
		vals := make([]float64, df.rows)
		valid := make([]bool, df.rows)
		for i := 0; i < df.rows; i++ {
			vals[i], valid[i] = d.Expr.eval(df, i)
		}
		out = append(out, NewNumericSeries(d.Name, vals, valid))
	}
	res, err := New(out...)
	if err != nil {
		return nil, err
	}
	res.adapter = df.adapter
	return res, nil
}

// SortBy returns the frame with rows stably sorted ascending by the given
// columns, compared left to right.
func (df *DataFrame) SortBy(cols ...string) (*DataFrame, error) {
	keys := make([]Series, len(cols))
	for i, name := range cols {
		s, err := df.Column(name)
		if err != nil {
			return nil, err
		}
		keys[i] = s
	}
	perm := make([]int, df.rows)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		for _, s := range keys {
			if c := s.Compare(perm[a], perm[b]); c != 0 {
				return c < 0
			}
		}
		return false
	})
	return df.gather(perm), nil
}

// ToNative converts the frame back to the native kind it was wrapped from.
// Frames that were built directly are returned unchanged.
func (df *DataFrame) ToNative() (any, error) {
	if df.adapter == nil {
		return df, nil
	}
	return df.adapter.Unwrap(df)
}

// gather builds a new frame whose rows are the given row indices, in order.
func (df *DataFrame) gather(rows []int) *DataFrame {
	series := make([]Series, len(df.series))
	for i, s := range df.series {
		series[i] = s.gather(rows)
	}
	index := make(map[string]int, len(series))
	for i, s := range series {
		index[s.Name()] = i
	}
	return &DataFrame{series: series, index: index, rows: len(rows), adapter: df.adapter}
}
