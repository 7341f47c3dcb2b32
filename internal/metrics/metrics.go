// Package metrics exposes Prometheus collectors for the traffic API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Write outcomes used as the "outcome" label.
const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeConflict = "conflict"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	// RecordWrites counts create/update/delete attempts by outcome.
	RecordWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_record_writes_total",
		Help: "Traffic record writes by operation and outcome",
	}, []string{"operation", "outcome"})

	// RecordsStored is the record count seen by the last list or reset.
	RecordsStored = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "traffic_records_stored",
		Help: "Number of traffic records in the store at the last full read",
	})

	// RequestDuration observes HTTP handling time per route.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	// Resets counts completed data resets.
	Resets = promauto.NewCounter(prometheus.CounterOpts{
		Name: "traffic_data_resets_total",
		Help: "Number of completed data resets",
	})
)
