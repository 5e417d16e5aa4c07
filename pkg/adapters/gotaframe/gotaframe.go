// Package gotaframe adapts gota dataframes to the engine-neutral frame view.
// Importing the package registers the adapter:
//
//	import _ "github.com/okian/foresight/pkg/adapters/gotaframe"
package gotaframe

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/okian/foresight/pkg/frame"
)

func init() {
	frame.Register(adapter{})
}

// adapter implements frame.Adapter for dataframe.DataFrame values. Numeric
// gota columns become numeric series with NA as the undefined mask; string
// and bool columns become string series. Undefined results are rendered back
// as NaN, gota's missing-value marker for floats.
type adapter struct{}

func (adapter) Name() string { return "gota" }

func (adapter) CanAdapt(native any) bool {
	switch native.(type) {
	case dataframe.DataFrame, *dataframe.DataFrame:
		return true
	default:
		return false
	}
}

func (adapter) Wrap(native any) (*frame.DataFrame, error) {
	var df dataframe.DataFrame
	switch v := native.(type) {
	case dataframe.DataFrame:
		df = v
	case *dataframe.DataFrame:
		df = *v
	default:
		return nil, fmt.Errorf("%T: %w", native, frame.ErrUnsupportedNative)
	}
	if err := df.Error(); err != nil {
		return nil, fmt.Errorf("invalid gota dataframe: %w", err)
	}

	names := df.Names()
	types := df.Types()
	rows := df.Nrow()
	cols := make([]frame.Series, len(names))
	for c, name := range names {
		col := df.Col(name)
		switch types[c] {
		case series.Int, series.Float:
			vals := make([]float64, rows)
			valid := make([]bool, rows)
			for i := 0; i < rows; i++ {
				e := col.Elem(i)
				if e.IsNA() {
					continue
				}
				vals[i] = e.Float()
				valid[i] = true
			}
			cols[c] = frame.NewNumericSeries(name, vals, valid)
		default:
			cols[c] = frame.NewStringSeries(name, col.Records())
		}
	}
	return frame.New(cols...)
}

func (adapter) Unwrap(df *frame.DataFrame) (any, error) {
	names := df.Columns()
	out := make([]series.Series, len(names))
	for c, name := range names {
		col, err := df.Column(name)
		if err != nil {
			return nil, err
		}
		if !col.IsNumeric() {
			strs := make([]string, col.Len())
			for i := range strs {
				strs[i] = col.Str(i)
			}
			out[c] = series.New(strs, series.String, name)
			continue
		}
		vals := make([]float64, col.Len())
		for i := range vals {
			v, ok := col.Value(i)
			if !ok {
				v = math.NaN()
			}
			vals[i] = v
		}
		out[c] = series.New(vals, series.Float, name)
	}
	native := dataframe.New(out...)
	if err := native.Error(); err != nil {
		return nil, fmt.Errorf("building gota dataframe: %w", err)
	}
	return native, nil
}
