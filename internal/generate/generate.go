// Package generate implements the text completion pipelines: validate the
// request, build the constrained prompt, call the backend, normalize the raw
// output, and assemble the response.
package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/lightart/lightart/internal/adapter"
	"github.com/lightart/lightart/internal/prompt"
)

// Sampling settings per pipeline. Temperature stays low so the model sticks
// to the supplied vocabulary; top-p is fixed at 0.9 across variants.
var (
	autocompleteOpts = adapter.GenOptions{MaxTokens: 20, Temperature: 0.1, TopP: 0.9}
	refineOpts       = adapter.GenOptions{MaxTokens: 50, Temperature: 0.2, TopP: 0.9}
)

// Request is a single completion request: the sentence to extend and the
// closed set of phrases the model may draw from.
type Request struct {
	Sentence string
	Phrases  []string
}

// Result combines the generated completion with the assembled full text.
// FullText always starts with the trimmed base sentence; when the completion
// is empty it equals the trimmed sentence.
type Result struct {
	Completion string
	FullText   string
}

// Service runs the text pipelines against one long-lived backend handle.
type Service struct {
	backend adapter.TextCompleter
}

// NewService wraps the given backend. A nil backend is allowed; every call
// then fails with ErrModelUnavailable.
func NewService(backend adapter.TextCompleter) *Service {
	return &Service{backend: backend}
}

// Backend returns the configured backend, or nil when none initialized.
func (s *Service) Backend() adapter.TextCompleter {
	return s.backend
}

// Ready reports whether the backend is initialized and reachable.
func (s *Service) Ready() bool {
	return s.backend != nil && s.backend.Available()
}

// Autocomplete extends the sentence with a short (~20 token) completion.
func (s *Service) Autocomplete(ctx context.Context, req Request) (Result, error) {
	return s.run(ctx, req, prompt.AutocompleteSystem, prompt.Autocomplete(req.Sentence, req.Phrases), autocompleteOpts)
}

// Refine extends the sentence with a longer (~12 word) completion.
func (s *Service) Refine(ctx context.Context, req Request) (Result, error) {
	return s.run(ctx, req, prompt.RefineSystem, prompt.Refine(req.Sentence, req.Phrases), refineOpts)
}

func (s *Service) run(ctx context.Context, req Request, system, user string, opts adapter.GenOptions) (Result, error) {
	base := strings.TrimSpace(req.Sentence)
	if base == "" {
		return Result{}, ErrEmptySentence
	}
	if len(req.Phrases) == 0 {
		return Result{}, ErrNoPhrases
	}
	if s.backend == nil || !s.backend.Available() {
		return Result{}, ErrModelUnavailable
	}

	raw, err := s.backend.Complete(ctx, system, user, opts)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	completion := StripCodeFence(raw)
	return Result{
		Completion: completion,
		FullText:   strings.TrimSpace(base + " " + completion),
	}, nil
}
