// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_mutations_total",
			Help: "Total number of tracker mutations",
		},
		[]string{"op"},
	)

	ViewRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "view_renders_total",
			Help: "Total number of projection renders",
		},
		[]string{"view"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)

	StorageSaveFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storage_save_failures_total",
			Help: "Total number of failed write-through saves",
		},
	)
)
