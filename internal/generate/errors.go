package generate

import "errors"

// Sentinel errors for the generation pipelines. Handlers and callers match
// on these with errors.Is to pick status codes.
var (
	// ErrModelUnavailable means the backend never initialized or is
	// unreachable. Requests fail uniformly with it; there is no lazy
	// reinitialization.
	ErrModelUnavailable = errors.New("generate: model unavailable")

	// ErrEmptySentence is returned when the base sentence is empty after
	// trimming. Checked before any model call.
	ErrEmptySentence = errors.New("generate: sentence is empty")

	// ErrNoPhrases is returned when the allowed-phrase list is empty.
	// Checked before any model call.
	ErrNoPhrases = errors.New("generate: at least one suggestion is required")

	// ErrGeneration wraps failures raised by the model call itself.
	ErrGeneration = errors.New("generate: generation failed")
)
