package adapter

import "context"

// GenOptions carries the per-call sampling settings recognized by all backends.
type GenOptions struct {
	// MaxTokens caps the generated output length. Zero means backend default.
	MaxTokens int
	// Temperature biases sampling; the service keeps it low (0.1-0.2) so the
	// model follows the vocabulary constraint.
	Temperature float64
	// TopP is the nucleus-sampling threshold, fixed at 0.9 across pipelines.
	TopP float64
}

// TextCompleter defines the contract for chat-completion backends.
type TextCompleter interface {
	Name() string
	Complete(ctx context.Context, systemPrompt, userPrompt string, opts GenOptions) (string, error)
	Available() bool
}

// VisionCompleter defines the contract for backends that accept an inline
// image alongside the prompt.
type VisionCompleter interface {
	Name() string
	CompleteWithImage(ctx context.Context, prompt string, img ImagePayload, opts GenOptions) (string, error)
	Available() bool
}

// ImagePayload is a base64-encoded image plus its MIME type.
type ImagePayload struct {
	MIMEType string
	Base64   string
}

// DataURI renders the payload as an inline data URI for backends that take
// image URLs rather than raw image blocks.
func (p ImagePayload) DataURI() string {
	return "data:" + p.MIMEType + ";base64," + p.Base64
}
