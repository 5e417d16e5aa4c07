package losses

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/foresight/pkg/frame"
	"github.com/okian/foresight/pkg/logger"
)

// Derived-column name templates. The double underscore keeps them out of the
// way of real column names; they never appear in the result.
const (
	numeratorTemplate   = "__metric_%d_num"
	denominatorTemplate = "__metric_%d_den"
)

// ratioMetric computes a per-group sum(numerator)/sum(denominator) metric,
// one result column per model. The numerator is the per-row error, absolute
// or signed; the denominator is the actual value. Rows where a model made no
// prediction are masked out of both sums for that model only, so the sums
// always run over the same row set and models never perturb each other.
//
// The division happens after aggregation. Averaging per-row ratios instead
// would weight every row equally regardless of scale and is exactly the
// mistake this engine exists to avoid.
func ratioMetric(ctx context.Context, native any, models []string, cfg config, absoluteError bool, metric string) (any, error) {
	start := time.Now()

	df, err := frame.FromNative(native)
	if err != nil {
		cfg.telemetry.RecordError(metric)
		return nil, fmt.Errorf("adapting input dataset: %w", err)
	}
	if err := requireColumns(df, cfg.targetCol, models); err != nil {
		cfg.telemetry.RecordError(metric)
		return nil, err
	}

	groupCols := cfg.resolver.GroupColumns(df, cfg.idCol, cfg.cutoffCol)
	cfg.log.Debug(ctx, "resolved grouping columns",
		logger.String("metric", metric),
		logger.Any("group_cols", groupCols),
		logger.Int("models", len(models)),
		logger.Int("rows", df.Len()),
	)

	derived := make([]frame.Named, 0, 2*len(models))
	for idx, model := range models {
		errExpr := frame.Col(cfg.targetCol).Sub(frame.Col(model))
		if absoluteError {
			errExpr = errExpr.Abs()
		}
		predNotNull := frame.Col(model).IsNotNull()

		// Mask both sides under the same condition: a row where the
		// model abstained must vanish from its error sum and from its
		// denominator sum, while staying visible to every other model.
		derived = append(derived,
			frame.When(predNotNull).Then(errExpr).Otherwise(frame.NullLit()).As(fmt.Sprintf(numeratorTemplate, idx)),
			frame.When(predNotNull).Then(frame.Col(cfg.targetCol)).Otherwise(frame.NullLit()).As(fmt.Sprintf(denominatorTemplate, idx)),
		)
	}

	selected, err := df.Select(groupCols, derived)
	if err != nil {
		cfg.telemetry.RecordError(metric)
		return nil, err
	}
	aggregated, err := selected.GroupBySum(groupCols)
	if err != nil {
		cfg.telemetry.RecordError(metric)
		return nil, err
	}

	ratios := make([]frame.Named, len(models))
	for idx, model := range models {
		den := zeroToNull(frame.Col(fmt.Sprintf(denominatorTemplate, idx)))
		ratios[idx] = frame.Col(fmt.Sprintf(numeratorTemplate, idx)).Div(den).As(model)
	}
	result, err := aggregated.Select(groupCols, ratios)
	if err != nil {
		cfg.telemetry.RecordError(metric)
		return nil, err
	}
	sorted, err := result.SortBy(groupCols...)
	if err != nil {
		cfg.telemetry.RecordError(metric)
		return nil, err
	}

	out, err := sorted.ToNative()
	if err != nil {
		cfg.telemetry.RecordError(metric)
		return nil, fmt.Errorf("converting result to native dataset: %w", err)
	}

	cfg.telemetry.RecordEvaluation(metric, df.Len(), sorted.Len(), len(models), time.Since(start))
	cfg.log.Debug(ctx, "evaluation complete",
		logger.String("metric", metric),
		logger.Int("groups", sorted.Len()),
		logger.Float64("seconds", time.Since(start).Seconds()),
	)
	return out, nil
}

// requireColumns rejects a dataset missing the target or any model column,
// naming the first absent column.
func requireColumns(df *frame.DataFrame, targetCol string, models []string) error {
	if !df.HasColumn(targetCol) {
		return fmt.Errorf("target column %q: %w", targetCol, ErrMissingColumn)
	}
	for _, model := range models {
		if !df.HasColumn(model) {
			return fmt.Errorf("model column %q: %w", model, ErrMissingColumn)
		}
	}
	return nil
}

// zeroToNull replaces an exactly-zero value with the undefined marker before
// division. A zero denominator means no actual value accumulated for that
// model in that group; the ratio is undefined, not infinite.
func zeroToNull(e frame.Expr) frame.Expr {
	return frame.When(e.Eq(frame.Lit(0))).Then(frame.NullLit()).Otherwise(e)
}
