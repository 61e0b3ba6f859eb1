package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicDefaultMaxTokens = 1024

// AnthropicAdapter serves both pipelines through the official SDK: plain
// chat completion as a text backend and base64 image blocks as a vision
// backend. The SDK handles retries on transient errors.
type AnthropicAdapter struct {
	APIKey string
	Model  string

	client anthropic.Client
}

var (
	_ TextCompleter   = (*AnthropicAdapter)(nil)
	_ VisionCompleter = (*AnthropicAdapter)(nil)
)

// NewAnthropicAdapter builds an adapter with its own SDK client.
func NewAnthropicAdapter(apiKey, model string) *AnthropicAdapter {
	return &AnthropicAdapter{
		APIKey: apiKey,
		Model:  model,
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
	}
}

func (a *AnthropicAdapter) Name() string {
	return fmt.Sprintf("Claude (%s)", a.Model)
}

func (a *AnthropicAdapter) Complete(ctx context.Context, systemPrompt, userPrompt string, opts GenOptions) (string, error) {
	params := a.baseParams(opts)
	params.Messages = []anthropic.MessageParam{
		anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
	}
	if systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: systemPrompt}}
	}
	return a.send(ctx, params)
}

func (a *AnthropicAdapter) CompleteWithImage(ctx context.Context, prompt string, img ImagePayload, opts GenOptions) (string, error) {
	params := a.baseParams(opts)
	params.Messages = []anthropic.MessageParam{
		anthropic.NewUserMessage(
			anthropic.NewTextBlock(prompt),
			anthropic.NewImageBlockBase64(img.MIMEType, img.Base64),
		),
	}
	return a.send(ctx, params)
}

func (a *AnthropicAdapter) baseParams(opts GenOptions) anthropic.MessageNewParams {
	maxTokens := int64(anthropicDefaultMaxTokens)
	if opts.MaxTokens > 0 {
		maxTokens = int64(opts.MaxTokens)
	}
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(a.Model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(opts.Temperature),
	}
	if opts.TopP > 0 {
		params.TopP = anthropic.Float(opts.TopP)
	}
	return params
}

func (a *AnthropicAdapter) send(ctx context.Context, params anthropic.MessageNewParams) (string, error) {
	msg, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("claude: request: %w", err)
	}

	var result strings.Builder
	for _, block := range msg.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			result.WriteString(variant.Text)
		}
	}

	if result.Len() == 0 {
		return "", fmt.Errorf("claude: empty response content")
	}

	return strings.TrimSpace(result.String()), nil
}

func (a *AnthropicAdapter) Available() bool {
	return a.APIKey != ""
}
