// Package metrics exposes Prometheus counters for data model validation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the validation metrics.
type Metrics struct {
	// Objects
	objectsChecked *prometheus.CounterVec

	// Rule violations
	violations *prometheus.CounterVec

	// Tree walks
	treeDuration *prometheus.HistogramVec
}

// New creates the metrics and registers them with reg. A nil reg leaves
// them unregistered, which suits tests and one-shot CLI runs.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		objectsChecked: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tr069_validation_objects_total",
				Help: "Total number of objects validated",
			},
			[]string{"object"},
		),
		violations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tr069_validation_violations_total",
				Help: "Total number of rule violations found",
			},
			[]string{"object", "rule"},
		),
		treeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tr069_validation_tree_duration_seconds",
				Help:    "Time spent validating an object tree",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"root"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.objectsChecked, m.violations, m.treeDuration)
	}
	return m
}

// RecordCheck records one object being validated.
func (m *Metrics) RecordCheck(object string) {
	m.objectsChecked.WithLabelValues(object).Inc()
}

// RecordViolation records a broken rule.
func (m *Metrics) RecordViolation(object, rule string) {
	m.violations.WithLabelValues(object, rule).Inc()
}

// ObserveTree records the duration of a tree validation.
func (m *Metrics) ObserveTree(root string, d time.Duration) {
	m.treeDuration.WithLabelValues(root).Observe(d.Seconds())
}
