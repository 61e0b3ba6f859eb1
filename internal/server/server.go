package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lightart/lightart/internal/generate"
	"github.com/lightart/lightart/internal/handler"
	"github.com/lightart/lightart/internal/middleware"
)

// Options carries the transport-level settings SetupMux needs.
type Options struct {
	CORSOrigin    string
	APIKey        string
	RatePerMinute int
}

// SetupMux wires handlers with the full middleware chain.
func SetupMux(svc *generate.Service, opts Options) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", handler.Root())
	mux.HandleFunc("/health", handler.Health(svc))
	mux.HandleFunc("/autocomplete", handler.Autocomplete(svc))
	mux.HandleFunc("/refine", handler.Refine(svc))
	mux.Handle("/metrics", promhttp.Handler())

	limit := opts.RatePerMinute
	if limit <= 0 {
		limit = 30
	}
	rl := middleware.NewRateLimiter(limit, time.Minute)
	return middleware.Chain(mux, opts.CORSOrigin, rl, opts.APIKey)
}
