package frame

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Columnar aggregation fans out across value columns once the frame is large
// enough for the goroutine overhead to pay off.
const parallelRowThreshold = 4096

// keySeparator joins cell renderings into a composite group key. It cannot
// appear in numeric renderings and is vanishingly unlikely in identifiers.
const keySeparator = "\x1f"

// GroupBySum partitions rows by the tuple of key columns and sums every other
// column within each partition. Undefined cells contribute nothing; a
// partition with no defined cells for a column sums to zero. Every non-key
// column must be numeric. Result rows appear in first-seen key order; callers
// wanting a deterministic order sort afterwards.
func (df *DataFrame) GroupBySum(keyCols []string) (*DataFrame, error) {
	keySet := make(map[string]bool, len(keyCols))
	keys := make([]Series, len(keyCols))
	for i, name := range keyCols {
		s, err := df.Column(name)
		if err != nil {
			return nil, err
		}
		keys[i] = s
		keySet[name] = true
	}
	var values []Series
	for _, s := range df.series {
		if keySet[s.Name()] {
			continue
		}
		if !s.IsNumeric() {
			return nil, fmt.Errorf("cannot sum %q: %w", s.Name(), ErrNotNumeric)
		}
		values = append(values, s)
	}

	// Single sequential pass assigns every row to a group so that the
	// per-column sums below are order-deterministic.
	rowGroup := make([]int, df.rows)
	firstRow := make([]int, 0)
	seen := make(map[string]int)
	var sb strings.Builder
	for i := 0; i < df.rows; i++ {
		sb.Reset()
		for k, s := range keys {
			if k > 0 {
				sb.WriteString(keySeparator)
			}
			sb.WriteString(s.Key(i))
		}
		key := sb.String()
		g, ok := seen[key]
		if !ok {
			g = len(firstRow)
			seen[key] = g
			firstRow = append(firstRow, i)
		}
		rowGroup[i] = g
	}

	out := make([]Series, len(keyCols)+len(values))
	for i, s := range keys {
		out[i] = s.gather(firstRow)
	}

	sum := func(col int) {
		s := values[col]
		sums := make([]float64, len(firstRow))
		for i := 0; i < df.rows; i++ {
			if v, ok := s.Value(i); ok {
				sums[rowGroup[i]] += v
			}
		}
		out[len(keyCols)+col] = NewNumericSeries(s.Name(), sums, nil)
	}

	if len(values) > 1 && df.rows >= parallelRowThreshold {
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for col := range values {
			col := col
			g.Go(func() error {
				sum(col)
				return nil
			})
		}
		// Column summation cannot fail; Wait only joins the pool.
		_ = g.Wait()
	} else {
		for col := range values {
			sum(col)
		}
	}

	res, err := New(out...)
	if err != nil {
		return nil, err
	}
	res.adapter = df.adapter
	return res, nil
}
