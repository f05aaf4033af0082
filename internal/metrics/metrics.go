package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "felo_pricing"

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Current number of HTTP requests being processed",
		},
	)
)

// Pricing page metrics
var (
	PageViews = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_views_total",
			Help:      "Total number of rendered pricing pages by selection",
		},
		[]string{"variant", "segment", "currency"},
	)

	RejectedSelections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_selections_total",
			Help:      "Total number of rejected segment or currency selections",
		},
		[]string{"field"},
	)
)

// Static export metrics
var (
	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Total number of static exports",
		},
		[]string{"status"},
	)

	ExportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "export_duration_seconds",
			Help:      "Static export run time distribution",
			Buckets:   []float64{.1, .5, 1, 5, 10, 30, 60},
		},
	)

	ExportedPages = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exported_pages_total",
			Help:      "Total number of pages written by static exports",
		},
	)
)
