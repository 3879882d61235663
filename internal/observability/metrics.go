package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tradeforge/internal/trade"
)

// Metrics holds all Prometheus metrics for trade processing.
type Metrics struct {
	TradesProcessed    *prometheus.CounterVec // type, status
	ValidationFailures *prometheus.CounterVec // type
	Timeouts           *prometheus.CounterVec // type
	MessagesConsumed   prometheus.Counter
	ActiveProcessing   prometheus.Gauge
	ProcessingDuration *prometheus.HistogramVec // type
}

// NewMetrics creates and registers all metrics against the given
// registerer. The service passes prometheus.DefaultRegisterer; tests
// pass a fresh registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	durationBuckets := []float64{
		0.001, 0.005, 0.01, 0.025, 0.05, 0.1,
		0.25, 0.5, 1, 2.5, 5, 10, 30,
	}

	return &Metrics{
		TradesProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "trades_processed_total",
			Help: "Total trades processed",
		}, []string{"type", "status"}),

		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "trades_validation_failed_total",
			Help: "Total validation failures",
		}, []string{"type"}),

		Timeouts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "trades_timeout_total",
			Help: "Total processing timeouts",
		}, []string{"type"}),

		MessagesConsumed: factory.NewCounter(prometheus.CounterOpts{
			Name: "trade_messages_consumed_total",
			Help: "Total trade messages consumed from the transport",
		}),

		ActiveProcessing: factory.NewGauge(prometheus.GaugeOpts{
			Name: "trade_active_processing_count",
			Help: "Number of trades currently being processed",
		}),

		ProcessingDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trade_processing_duration_seconds",
			Help:    "Trade processing duration as observed by the dispatcher",
			Buckets: durationBuckets,
		}, []string{"type"}),
	}
}

// RecordProcessing records one completed trade with its final status
// and end-to-end duration.
func (m *Metrics) RecordProcessing(t trade.Type, status trade.Status, duration time.Duration) {
	m.TradesProcessed.WithLabelValues(t.String(), status.String()).Inc()
	m.ProcessingDuration.WithLabelValues(t.String()).Observe(duration.Seconds())
}

// RecordValidationFailure records one validation failure by type.
func (m *Metrics) RecordValidationFailure(t trade.Type) {
	m.ValidationFailures.WithLabelValues(t.String()).Inc()
}

// RecordTimeout records one processing timeout by type.
func (m *Metrics) RecordTimeout(t trade.Type) {
	m.Timeouts.WithLabelValues(t.String()).Inc()
}
