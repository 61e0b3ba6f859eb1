package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lightart/lightart/internal/generate"
	"github.com/lightart/lightart/internal/metrics"
)

const maxSentenceLength = 1000

type completeRequest struct {
	Sentence    string   `json:"sentence"`
	Suggestions []string `json:"suggestions"`
}

type completeResponse struct {
	Completion string `json:"completion"`
	FullText   string `json:"full_text"`
}

// Autocomplete serves POST /autocomplete: a short completion drawn from the
// allowed suggestions.
func Autocomplete(svc *generate.Service) http.HandlerFunc {
	return complete("autocomplete", svc.Autocomplete)
}

// Refine serves POST /refine: same contract, longer completion.
func Refine(svc *generate.Service) http.HandlerFunc {
	return complete("refine", svc.Refine)
}

func complete(endpoint string, run func(context.Context, generate.Request) (generate.Result, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req completeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		if len(req.Sentence) > maxSentenceLength {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("sentence too long: %d characters (max %d)", len(req.Sentence), maxSentenceLength))
			return
		}
		metrics.InputChars.Observe(float64(len(req.Sentence)))

		start := time.Now()
		result, err := run(r.Context(), generate.Request{
			Sentence: req.Sentence,
			Phrases:  req.Suggestions,
		})
		metrics.GenerationDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

		if err != nil {
			switch {
			case errors.Is(err, generate.ErrEmptySentence):
				writeError(w, http.StatusBadRequest, "sentence cannot be empty")
			case errors.Is(err, generate.ErrNoPhrases):
				writeError(w, http.StatusBadRequest, "at least one suggestion is required")
			case errors.Is(err, generate.ErrModelUnavailable):
				writeError(w, http.StatusServiceUnavailable, "model not loaded")
			default:
				writeError(w, http.StatusInternalServerError, fmt.Sprintf("error generating %s: %v", endpoint, err))
			}
			return
		}

		writeJSON(w, http.StatusOK, completeResponse{
			Completion: result.Completion,
			FullText:   result.FullText,
		})
	}
}
