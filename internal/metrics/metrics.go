package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lightart_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// GenerationDuration tracks inference latency per endpoint.
	GenerationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lightart_generation_duration_seconds",
		Help:    "Time spent on model inference.",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"endpoint"})

	// InputChars tracks the distribution of base-sentence lengths.
	InputChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lightart_input_chars",
		Help:    "Number of characters in the base sentence.",
		Buckets: []float64{10, 25, 50, 100, 250, 500, 1000},
	})

	// BackendAvailable tracks whether the model backend is reachable.
	BackendAvailable = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "lightart_backend_available",
		Help: "Whether a model backend is available (1) or not (0).",
	}, []string{"backend"})
)
