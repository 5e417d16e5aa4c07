package losses

import "github.com/okian/foresight/pkg/frame"

// KeyResolver determines the grouping columns for one evaluation.
type KeyResolver interface {
	// GroupColumns returns the ordered grouping column names for the
	// dataset. Implementations must inspect the schema only, never the
	// data.
	GroupColumns(df *frame.DataFrame, idCol, cutoffCol string) []string
}

// SchemaResolver is the default KeyResolver. When the cutoff column is part
// of the schema the data holds several forecast folds per series and the
// grouping is [cutoff, id]; otherwise it is [id] alone. Absence of the
// cutoff column is a valid state, not a failure.
type SchemaResolver struct{}

// GroupColumns implements KeyResolver.
func (SchemaResolver) GroupColumns(df *frame.DataFrame, idCol, cutoffCol string) []string {
	if df.HasColumn(cutoffCol) {
		return []string{cutoffCol, idCol}
	}
	return []string{idCol}
}

// StaticResolver always resolves to a fixed set of grouping columns. It is
// for callers whose surrounding framework already owns the grouping decision.
type StaticResolver []string

// GroupColumns implements KeyResolver.
func (r StaticResolver) GroupColumns(*frame.DataFrame, string, string) []string {
	return []string(r)
}
