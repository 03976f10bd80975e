package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vango-dev/keepfocus/internal/errors"
	"github.com/vango-dev/keepfocus/pkg/host"
	"github.com/vango-dev/keepfocus/pkg/reconcile"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "keepfocus").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for patch duration.
	// Patches are fast, so the default starts at 10µs.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "keepfocus",
		Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1, .5},
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics records reconciliation metrics.
type Metrics struct {
	patchesTotal   *prometheus.CounterVec
	patchErrors    *prometheus.CounterVec
	patchDuration  *prometheus.HistogramVec
	fallbacksTotal *prometheus.CounterVec
	spineDepth     prometheus.Histogram
	mutationsTotal *prometheus.CounterVec
	activeSessions prometheus.Gauge
}

// NewMetrics creates and registers the metrics. Registering twice with
// the same registry panics, as with any promauto collector.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		patchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patches_total",
			Help:        "Total number of completed patches by outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"outcome"}),

		patchErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patch_errors_total",
			Help:        "Total number of failed patches by error code",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),

		patchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patch_duration_seconds",
			Help:        "Patch duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"outcome"}),

		fallbacksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "fallbacks_total",
			Help:        "Total number of wholesale replacements by reason",
			ConstLabels: config.ConstLabels,
		}, []string{"reason"}),

		spineDepth: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "spine_depth",
			Help:        "Length of the focus spine for reconciled patches",
			ConstLabels: config.ConstLabels,
			Buckets:     prometheus.LinearBuckets(1, 2, 10),
		}),

		mutationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mutations_total",
			Help:        "Total number of host mutations by op",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_sessions",
			Help:        "Number of open playground sessions",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// ObservePatch implements reconcile.Observer.
func (m *Metrics) ObservePatch(res reconcile.Result, elapsed time.Duration, err error) {
	if err != nil {
		code := errors.Code(err)
		if code == "" {
			code = "unknown"
		}
		m.patchErrors.WithLabelValues(code).Inc()
		return
	}

	outcome := res.Outcome.String()
	m.patchesTotal.WithLabelValues(outcome).Inc()
	m.patchDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())

	switch res.Outcome {
	case reconcile.Replaced:
		m.fallbacksTotal.WithLabelValues(res.Reason.String()).Inc()
	case reconcile.Reconciled:
		m.spineDepth.Observe(float64(res.SpineDepth))
	}
}

// ObserveMutation counts a host mutation. It has the host.Observer shape.
func (m *Metrics) ObserveMutation(mu host.Mutation) {
	m.mutationsTotal.WithLabelValues(mu.Op.String()).Inc()
}

// SessionOpened records a new playground session.
func (m *Metrics) SessionOpened() {
	m.activeSessions.Inc()
}

// SessionClosed records a closed playground session.
func (m *Metrics) SessionClosed() {
	m.activeSessions.Dec()
}

var _ reconcile.Observer = (*Metrics)(nil)
