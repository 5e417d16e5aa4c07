package losses

import (
	"github.com/okian/foresight/pkg/logger"
	"github.com/okian/foresight/pkg/telemetry"
)

// Default column names, matching the conventions of forecasting pipelines
// that label series, actuals and folds this way.
const (
	defaultIDColumn     = "unique_id"
	defaultTargetColumn = "y"
	defaultCutoffColumn = "cutoff"
)

// config carries the per-call evaluation settings.
type config struct {
	idCol     string
	targetCol string
	cutoffCol string
	resolver  KeyResolver
	log       logger.Logger
	telemetry *telemetry.Manager
}

func newConfig(opts ...Option) config {
	c := config{
		idCol:     defaultIDColumn,
		targetCol: defaultTargetColumn,
		cutoffCol: defaultCutoffColumn,
		resolver:  SchemaResolver{},
		log:       logger.Get().Named("losses"),
	}

	// Apply all options
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Option applies a configuration option to an evaluation.
type Option func(*config)

// WithIDColumn sets the column that identifies each series.
func WithIDColumn(name string) Option {
	return func(c *config) {
		if name != "" {
			c.idCol = name
		}
	}
}

// WithTargetColumn sets the column that contains the actual values.
func WithTargetColumn(name string) Option {
	return func(c *config) {
		if name != "" {
			c.targetCol = name
		}
	}
}

// WithCutoffColumn sets the column that identifies the forecast-origin
// cutoff of each cross-validation fold.
func WithCutoffColumn(name string) Option {
	return func(c *config) {
		if name != "" {
			c.cutoffCol = name
		}
	}
}

// WithKeyResolver replaces the grouping-column resolver.
func WithKeyResolver(r KeyResolver) Option {
	return func(c *config) {
		if r != nil {
			c.resolver = r
		}
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l logger.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithTelemetry wires a telemetry manager that records evaluations.
func WithTelemetry(m *telemetry.Manager) Option {
	return func(c *config) {
		c.telemetry = m
	}
}
