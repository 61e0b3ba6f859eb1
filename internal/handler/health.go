package handler

import (
	"net/http"

	"github.com/lightart/lightart/internal/generate"
	"github.com/lightart/lightart/internal/metrics"
)

type healthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	Backend     string `json:"backend,omitempty"`
}

// Health serves GET /health: 200 with backend status when the text model is
// loaded and reachable, 503 otherwise.
func Health(svc *generate.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		backend := ""
		if b := svc.Backend(); b != nil {
			backend = b.Name()
		}

		ready := svc.Ready()
		gauge := 0.0
		if ready {
			gauge = 1.0
		}
		if backend != "" {
			metrics.BackendAvailable.WithLabelValues(backend).Set(gauge)
		}

		if !ready {
			writeJSON(w, http.StatusServiceUnavailable, healthResponse{
				Status:      "unavailable",
				ModelLoaded: false,
				Backend:     backend,
			})
			return
		}

		writeJSON(w, http.StatusOK, healthResponse{
			Status:      "healthy",
			ModelLoaded: true,
			Backend:     backend,
		})
	}
}
