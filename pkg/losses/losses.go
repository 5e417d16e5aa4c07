// Package losses computes scale-normalized forecast-accuracy metrics over
// tabular datasets, grouped by series and, when present, by forecast-origin
// cutoff. Datasets enter and leave in the caller's native tabular kind
// through the frame adapter registry; see pkg/frame and pkg/adapters.
//
// Conventions:
//   - Inputs are never mutated; every call is a pure, deterministic
//     transform of its arguments.
//   - All errors are returned synchronously to the caller; there are no
//     retries and no partial results.
//   - Undefined ratios (zero or never-summed denominators) are in-band
//     values carried as the native engine's missing marker, not errors.
package losses

import "context"

// Metric kinds reported to telemetry.
const (
	metricWAPE = "wape"
	metricBIAS = "bias"
)

// WAPE computes the Weighted Absolute Percentage Error per group.
//
// WAPE sums the absolute errors (actual - forecast) across all periods with
// available forecasts and divides by the sum of actuals over the same
// periods. The result has the grouping columns followed by one column per
// model, in the caller's model order, sorted ascending by the grouping
// columns.
//
// df is any dataset kind a registered frame adapter supports; models are the
// prediction column names. Column names default to "unique_id", "y" and
// "cutoff" and are overridden with options.
//
// The denominator is used as summed: a group whose actuals sum to a negative
// value yields a negative WAPE. That is the literal arithmetic, kept as-is.
func WAPE(ctx context.Context, df any, models []string, opts ...Option) (any, error) {
	return ratioMetric(ctx, df, models, newConfig(opts...), true, metricWAPE)
}

// BIAS computes the relative bias per group.
//
// BIAS sums the signed error (actual - forecast) over all periods with
// available forecasts and scales it by the sum of actuals over those
// periods. A positive value means the forecasts ran below the actuals, a
// negative value means they ran above. Same shape and ordering as WAPE.
func BIAS(ctx context.Context, df any, models []string, opts ...Option) (any, error) {
	return ratioMetric(ctx, df, models, newConfig(opts...), false, metricBIAS)
}
