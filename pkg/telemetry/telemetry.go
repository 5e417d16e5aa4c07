// Package telemetry provides Prometheus instrumentation for metric
// evaluations. The library computes silently by default; a host application
// that wants operational visibility builds a Manager and passes it to the
// evaluation call.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages the Prometheus metrics for loss evaluations.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Evaluation metrics - one evaluation is one WAPE/BIAS call
	evaluationsTotal   *prometheus.CounterVec
	evaluationErrors   *prometheus.CounterVec
	evaluationDuration *prometheus.HistogramVec

	// Scale metrics - shape of the last evaluated dataset
	lastGroupCount prometheus.Gauge
	lastModelCount prometheus.Gauge
	lastRowCount   prometheus.Gauge
}

// NewManager creates a new telemetry manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "foresight",
		subsystem:        "losses",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry
	auto := promauto.With(m.registry)

	m.evaluationsTotal = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "evaluations_total",
			Help:      "Total number of completed loss evaluations by metric kind",
		},
		[]string{"metric"},
	)

	m.evaluationErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "evaluation_errors_total",
			Help:      "Total number of failed loss evaluations by metric kind",
		},
		[]string{"metric"},
	)

	m.evaluationDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "evaluation_duration_seconds",
			Help:      "Histogram of loss evaluation duration in seconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"metric"},
	)

	m.lastGroupCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_group_count",
		Help:      "Number of distinct group keys in the most recent evaluation",
	})

	m.lastModelCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_model_count",
		Help:      "Number of model columns in the most recent evaluation",
	})

	m.lastRowCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_row_count",
		Help:      "Number of input rows in the most recent evaluation",
	})
}

// RecordEvaluation records one completed evaluation.
func (m *Manager) RecordEvaluation(metric string, rows, groups, models int, duration time.Duration) {
	if m == nil || !m.enabled {
		return
	}
	m.evaluationsTotal.WithLabelValues(metric).Inc()
	m.evaluationDuration.WithLabelValues(metric).Observe(duration.Seconds())
	m.lastRowCount.Set(float64(rows))
	m.lastGroupCount.Set(float64(groups))
	m.lastModelCount.Set(float64(models))
}

// RecordError records one failed evaluation.
func (m *Manager) RecordError(metric string) {
	if m == nil || !m.enabled {
		return
	}
	m.evaluationErrors.WithLabelValues(metric).Inc()
}
