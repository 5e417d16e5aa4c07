package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okian/foresight/pkg/frame"
)

func mustNew(t *testing.T, series ...frame.Series) *frame.DataFrame {
	t.Helper()
	df, err := frame.New(series...)
	require.NoError(t, err)
	return df
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		series  []frame.Series
		wantErr error
	}{
		{
			name: "valid mixed columns",
			series: []frame.Series{
				frame.NewStringSeries("id", []string{"a", "b"}),
				frame.NewNumericSeries("y", []float64{1, 2}, nil),
			},
		},
		{
			name: "duplicate column name",
			series: []frame.Series{
				frame.NewStringSeries("id", []string{"a"}),
				frame.NewNumericSeries("id", []float64{1}, nil),
			},
			wantErr: frame.ErrDuplicateColumn,
		},
		{
			name: "length mismatch",
			series: []frame.Series{
				frame.NewStringSeries("id", []string{"a", "b"}),
				frame.NewNumericSeries("y", []float64{1}, nil),
			},
			wantErr: frame.ErrLengthMismatch,
		},
		{
			name: "empty frame",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			df, err := frame.New(tt.series...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.series), len(df.Columns()))
		})
	}
}

func TestColumnAccess(t *testing.T) {
	df := mustNew(t,
		frame.NewStringSeries("id", []string{"a", "b"}),
		frame.NewNumericSeries("y", []float64{1.5, 2.5}, []bool{true, false}),
	)

	assert.Equal(t, []string{"id", "y"}, df.Columns())
	assert.Equal(t, 2, df.Len())
	assert.True(t, df.HasColumn("y"))
	assert.False(t, df.HasColumn("z"))

	y, err := df.Column("y")
	require.NoError(t, err)
	assert.True(t, y.IsNumeric())

	v, ok := y.Value(0)
	assert.True(t, ok)
	assert.Equal(t, 1.5, v)

	_, ok = y.Value(1)
	assert.False(t, ok, "masked cell must read as undefined")

	_, err = df.Column("z")
	require.ErrorIs(t, err, frame.ErrUnknownColumn)
}

func TestSelect(t *testing.T) {
	df := mustNew(t,
		frame.NewStringSeries("id", []string{"a", "b"}),
		frame.NewNumericSeries("y", []float64{10, 20}, nil),
		frame.NewNumericSeries("m", []float64{9, 0}, []bool{true, false}),
	)

	out, err := df.Select([]string{"id"}, []frame.Named{
		frame.Col("y").Sub(frame.Col("m")).Abs().As("abs_err"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "abs_err"}, out.Columns())

	col, err := out.Column("abs_err")
	require.NoError(t, err)

	v, ok := col.Value(0)
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)

	_, ok = col.Value(1)
	assert.False(t, ok, "undefined operand must propagate")

	_, err = df.Select([]string{"nope"}, nil)
	require.ErrorIs(t, err, frame.ErrUnknownColumn)

	_, err = df.Select(nil, []frame.Named{frame.Col("id").As("x")})
	require.ErrorIs(t, err, frame.ErrNotNumeric)
}

func TestSortBy(t *testing.T) {
	df := mustNew(t,
		frame.NewStringSeries("id", []string{"b", "a", "b", "a"}),
		frame.NewNumericSeries("fold", []float64{2, 2, 1, 1}, nil),
		frame.NewNumericSeries("y", []float64{1, 2, 3, 4}, nil),
	)

	sorted, err := df.SortBy("id", "fold")
	require.NoError(t, err)

	id, err := sorted.Column("id")
	require.NoError(t, err)
	fold, err := sorted.Column("fold")
	require.NoError(t, err)

	gotIDs := make([]string, sorted.Len())
	gotFolds := make([]float64, sorted.Len())
	for i := 0; i < sorted.Len(); i++ {
		gotIDs[i] = id.Str(i)
		gotFolds[i], _ = fold.Value(i)
	}
	assert.Equal(t, []string{"a", "a", "b", "b"}, gotIDs)
	assert.Equal(t, []float64{1, 2, 1, 2}, gotFolds)

	// Numeric sort must be numeric, not lexicographic.
	nums := mustNew(t,
		frame.NewNumericSeries("k", []float64{10, 9, 100}, nil),
	)
	sorted, err = nums.SortBy("k")
	require.NoError(t, err)
	k, err := sorted.Column("k")
	require.NoError(t, err)
	first, _ := k.Value(0)
	last, _ := k.Value(2)
	assert.Equal(t, 9.0, first)
	assert.Equal(t, 100.0, last)

	_, err = df.SortBy("missing")
	require.ErrorIs(t, err, frame.ErrUnknownColumn)
}

func TestFromNative(t *testing.T) {
	df := mustNew(t, frame.NewNumericSeries("y", []float64{1}, nil))

	got, err := frame.FromNative(df)
	require.NoError(t, err)
	assert.Same(t, df, got, "a frame passes through unwrapped")

	native, err := df.ToNative()
	require.NoError(t, err)
	assert.Same(t, df, native, "a directly built frame is its own native kind")

	_, err = frame.FromNative(struct{}{})
	require.ErrorIs(t, err, frame.ErrUnsupportedNative)
}
