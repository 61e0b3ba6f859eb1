package adapter

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// MockAdapter returns canned responses with a configurable delay. It serves
// both the text and vision contracts so tests and the -mock flag can run
// either pipeline without a real backend.
type MockAdapter struct {
	// Response is returned verbatim from every completion call.
	Response string
	// Err, if set, is returned instead of Response.
	Err error
	// Unavailable makes Available report false.
	Unavailable bool
	// Delay simulates inference latency.
	Delay time.Duration

	calls atomic.Int64
}

var (
	_ TextCompleter   = (*MockAdapter)(nil)
	_ VisionCompleter = (*MockAdapter)(nil)
)

func (m *MockAdapter) Name() string { return "Mock" }

func (m *MockAdapter) Complete(ctx context.Context, systemPrompt, userPrompt string, opts GenOptions) (string, error) {
	return m.respond(ctx)
}

func (m *MockAdapter) CompleteWithImage(ctx context.Context, prompt string, img ImagePayload, opts GenOptions) (string, error) {
	return m.respond(ctx)
}

func (m *MockAdapter) respond(ctx context.Context) (string, error) {
	m.calls.Add(1)

	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", fmt.Errorf("mock: %w", ctx.Err())
		}
	}

	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

func (m *MockAdapter) Available() bool { return !m.Unavailable }

// Calls reports how many completion calls the adapter has served. Tests use
// it to assert that input validation short-circuits before any model call.
func (m *MockAdapter) Calls() int { return int(m.calls.Load()) }
