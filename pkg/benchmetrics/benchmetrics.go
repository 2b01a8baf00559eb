// Package benchmetrics records Prometheus counters and histograms for the
// benchmark harness, one set per tree variant, grounded on
// github.com/ssargent/freyjadb's pkg/api/metrics.go (same promauto
// constructor style and RecordX naming, repurposed from HTTP/DB-operation
// labels to tree-operation labels).
package benchmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusMiss    = "miss"
)

// Metrics holds the counters and histograms for one benchmark process.
// Variant labels distinguish "eb32", "ebmb", and "pebble" so a single
// registry can back a comparison run.
type Metrics struct {
	opsTotal       *prometheus.CounterVec
	opDuration     *prometheus.HistogramVec
	treeSize       *prometheus.GaugeVec
	treeHeightBits *prometheus.GaugeVec
}

// NewMetrics creates and registers the benchmark metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith creates and registers the benchmark metrics with reg
// instead of the default registry, so a test or an embedding process can
// keep its own registration namespace.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		opsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ebmbtreebench_operations_total",
				Help: "Total number of tree operations performed, by variant, operation, and outcome",
			},
			[]string{"variant", "operation", "status"},
		),
		opDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ebmbtreebench_operation_duration_seconds",
				Help:    "Tree operation duration in seconds, by variant and operation",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"variant", "operation"},
		),
		treeSize: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ebmbtreebench_entries",
				Help: "Number of entries currently held, by variant",
			},
			[]string{"variant"},
		),
		treeHeightBits: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ebmbtreebench_key_width_bits",
				Help: "Key width in bits, by variant",
			},
			[]string{"variant"},
		),
	}
}

// RecordOp records the completion of a single tree operation.
func (m *Metrics) RecordOp(variant, operation string, hit bool, duration time.Duration) {
	status := statusSuccess
	if !hit {
		status = statusMiss
	}
	m.opsTotal.WithLabelValues(variant, operation, status).Inc()
	m.opDuration.WithLabelValues(variant, operation).Observe(duration.Seconds())
}

// SetEntries records the current entry count for variant.
func (m *Metrics) SetEntries(variant string, count int) {
	m.treeSize.WithLabelValues(variant).Set(float64(count))
}

// SetKeyWidthBits records the key width in bits for variant.
func (m *Metrics) SetKeyWidthBits(variant string, bits int) {
	m.treeHeightBits.WithLabelValues(variant).Set(float64(bits))
}

// Timed runs op, recording its outcome and duration under variant/operation.
// hit reports whether the operation found what it was looking for (always
// true for insert/delete; lookup-dependent for lookup).
func (m *Metrics) Timed(variant, operation string, op func() bool) bool {
	start := time.Now()
	hit := op()
	m.RecordOp(variant, operation, hit, time.Since(start))
	return hit
}
