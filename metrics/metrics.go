// Package metrics exposes prometheus collectors for filesystem operations
// and control file dispatches.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "uprocfs"

// Outcomes recorded for a dispatch.
const (
	OutcomeHandled = "handled"
	OutcomeError   = "error"
)

// Statuses recorded for an operation.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics tracks filesystem operations and dispatches.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// OperationsTotal counts operations by name and status
	OperationsTotal *prometheus.CounterVec

	// OperationDuration tracks latency per operation
	OperationDuration *prometheus.HistogramVec

	// DispatchTotal counts control file dispatches by event, mode and outcome
	DispatchTotal *prometheus.CounterVec

	// Entries tracks the number of paths in the namespace, including the root
	Entries prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves the collectors unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		OperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total filesystem operations by operation and status",
			},
			[]string{"operation", "status"},
		),
		OperationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Filesystem operation duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		DispatchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dispatch_total",
				Help:      "Total control file dispatches by event, mode and outcome",
			},
			[]string{"event", "mode", "outcome"},
		),
		Entries: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "entries",
				Help:      "Current number of paths in the namespace",
			},
		),
	}

	if reg != nil {
		reg.MustRegister(
			m.OperationsTotal,
			m.OperationDuration,
			m.DispatchTotal,
			m.Entries,
		)
	}

	return m
}

// RecordOperation records one completed filesystem operation.
func (m *Metrics) RecordOperation(operation string, start time.Time, err error) {
	if m == nil {
		return
	}

	status := StatusOK
	if err != nil {
		status = StatusError
	}

	m.OperationsTotal.WithLabelValues(operation, status).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// RecordDispatch records one dispatch attempt.
func (m *Metrics) RecordDispatch(event, mode, outcome string) {
	if m == nil {
		return
	}
	m.DispatchTotal.WithLabelValues(event, mode, outcome).Inc()
}

// SetEntries updates the entries gauge.
func (m *Metrics) SetEntries(count int) {
	if m == nil {
		return
	}
	m.Entries.Set(float64(count))
}
