package handler

import "net/http"

const version = "1.0.0"

type rootResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Root serves GET /: static service metadata.
func Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		writeJSON(w, http.StatusOK, rootResponse{
			Message: "LightArt Autocomplete API",
			Version: version,
			Endpoints: map[string]string{
				"/autocomplete": "POST - Generate text autocompletion",
				"/refine":       "POST - Generate a longer refinement",
				"/health":       "GET - Check API health status",
				"/metrics":      "GET - Prometheus metrics",
			},
		})
	}
}
