// Package metrics exposes Prometheus collectors for the ingestion pipeline
// and the HTTP surface.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "designermonk"

var (
	// PipelineEvents counts pipeline transitions.
	// Labels: stage, kind (error kind, empty on success)
	PipelineEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "events_total",
			Help:      "Total number of pipeline events by stage and error kind",
		},
		[]string{"stage", "kind"},
	)

	// StageBytes records the payload size leaving a stage.
	StageBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "stage_bytes",
			Help:      "Size in bytes of the image leaving a pipeline stage",
			Buckets:   prometheus.ExponentialBuckets(64*1024, 2, 11),
		},
		[]string{"stage"},
	)

	// StageDuration records how long compression and upload took.
	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "stage_duration_seconds",
			Help:      "Duration of a pipeline stage in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"stage"},
	)

	// Escalations counts compressions that needed the second pass.
	Escalations = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pipeline",
			Name:      "escalations_total",
			Help:      "Total number of compressions that ran the escalation pass",
		},
	)

	// HTTPRequests counts served requests.
	// Labels: method, route, status
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by method, route template and status code",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPDuration records request latency.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "route"},
	)
)
