// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus collectors for comparisons and the HTTP
// surface. Collectors are registered on the default registry at init.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/tsalign/distance"
)

// Comparison outcome label values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

var (
	// ComparisonsTotal counts finished comparisons by metric and outcome.
	ComparisonsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tsalign_comparisons_total",
			Help: "Total number of comparisons processed",
		},
		[]string{"metric", "status"},
	)

	// ComparisonDuration measures wall time per comparison.
	ComparisonDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tsalign_comparison_duration_seconds",
			Help:    "Duration of comparisons in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"metric"},
	)

	// MatrixCells tracks the accumulated-cost matrix size (L·N) per comparison.
	MatrixCells = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tsalign_matrix_cells",
			Help:    "Accumulated-cost matrix cells per comparison",
			Buckets: prometheus.ExponentialBuckets(16, 4, 10),
		},
	)

	// HTTPRequestsTotal counts HTTP requests by method, path and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tsalign_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures server response time.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tsalign_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)
)

// Recorder feeds comparison outcomes into the collectors. It satisfies
// table.Observer.
type Recorder struct{}

// ObserveComparison records one finished comparison. cells == 0 means the
// comparison failed before alignment and is not added to MatrixCells.
func (Recorder) ObserveComparison(m distance.Metric, cells int, elapsed time.Duration, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	ComparisonsTotal.WithLabelValues(string(m), status).Inc()
	ComparisonDuration.WithLabelValues(string(m)).Observe(elapsed.Seconds())
	if cells > 0 {
		MatrixCells.Observe(float64(cells))
	}
}
