package generate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lightart/lightart/internal/adapter"
)

func TestAutocompletePassThrough(t *testing.T) {
	mock := &adapter.MockAdapter{Response: "with a warm amber glow"}
	svc := NewService(mock)

	res, err := svc.Autocomplete(context.Background(), Request{
		Sentence: "soften the overall",
		Phrases:  []string{"warm amber glow"},
	})
	if err != nil {
		t.Fatalf("Autocomplete: %v", err)
	}

	if res.Completion != "with a warm amber glow" {
		t.Errorf("completion: got %q, want %q", res.Completion, "with a warm amber glow")
	}
	if res.FullText != "soften the overall with a warm amber glow" {
		t.Errorf("full_text: got %q, want %q", res.FullText, "soften the overall with a warm amber glow")
	}
	if mock.Calls() != 1 {
		t.Errorf("calls: got %d, want 1", mock.Calls())
	}
}

func TestFullTextStartsWithTrimmedSentence(t *testing.T) {
	tests := []struct {
		name       string
		sentence   string
		completion string
	}{
		{"plain", "soften the overall", "with a warm amber glow"},
		{"trailing space", "soften the overall  ", "with cooler shadows"},
		{"leading space", "  add a gentle", "golden hour warmth"},
		{"empty completion", "keep the mood", ""},
		{"whitespace completion", "keep the mood", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&adapter.MockAdapter{Response: tt.completion})
			res, err := svc.Refine(context.Background(), Request{
				Sentence: tt.sentence,
				Phrases:  []string{"golden hour warmth"},
			})
			if err != nil {
				t.Fatalf("Refine: %v", err)
			}

			base := strings.TrimSpace(tt.sentence)
			if !strings.HasPrefix(res.FullText, base) {
				t.Errorf("full_text %q does not start with %q", res.FullText, base)
			}
			if strings.TrimSpace(tt.completion) == "" && res.FullText != base {
				t.Errorf("empty completion: full_text got %q, want %q", res.FullText, base)
			}
		})
	}
}

func TestInvalidInputBeforeModelCall(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"empty sentence", Request{Sentence: "", Phrases: []string{"a"}}, ErrEmptySentence},
		{"whitespace sentence", Request{Sentence: "   ", Phrases: []string{"a"}}, ErrEmptySentence},
		{"no phrases", Request{Sentence: "soften the overall", Phrases: nil}, ErrNoPhrases},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &adapter.MockAdapter{Response: "anything"}
			svc := NewService(mock)

			if _, err := svc.Autocomplete(context.Background(), tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("Autocomplete error: got %v, want %v", err, tt.wantErr)
			}
			if _, err := svc.Refine(context.Background(), tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("Refine error: got %v, want %v", err, tt.wantErr)
			}
			if mock.Calls() != 0 {
				t.Errorf("model calls: got %d, want 0", mock.Calls())
			}
		})
	}
}

func TestModelUnavailable(t *testing.T) {
	req := Request{Sentence: "soften the overall", Phrases: []string{"a"}}

	t.Run("nil backend", func(t *testing.T) {
		svc := NewService(nil)
		if _, err := svc.Autocomplete(context.Background(), req); !errors.Is(err, ErrModelUnavailable) {
			t.Errorf("got %v, want ErrModelUnavailable", err)
		}
		if svc.Ready() {
			t.Error("Ready: got true, want false")
		}
	})

	t.Run("unavailable backend", func(t *testing.T) {
		mock := &adapter.MockAdapter{Unavailable: true}
		svc := NewService(mock)
		if _, err := svc.Refine(context.Background(), req); !errors.Is(err, ErrModelUnavailable) {
			t.Errorf("got %v, want ErrModelUnavailable", err)
		}
		if mock.Calls() != 0 {
			t.Errorf("model calls: got %d, want 0", mock.Calls())
		}
	})
}

func TestGenerationFailureWrapped(t *testing.T) {
	backendErr := errors.New("backend exploded")
	svc := NewService(&adapter.MockAdapter{Err: backendErr})

	_, err := svc.Autocomplete(context.Background(), Request{
		Sentence: "soften the overall",
		Phrases:  []string{"a"},
	})
	if !errors.Is(err, ErrGeneration) {
		t.Fatalf("got %v, want ErrGeneration", err)
	}
	if !strings.Contains(err.Error(), "backend exploded") {
		t.Errorf("error %q does not carry the backend message", err)
	}
}

func TestCompletionFenceStripped(t *testing.T) {
	svc := NewService(&adapter.MockAdapter{Response: "```\nwith a warm amber glow\n```"})

	res, err := svc.Autocomplete(context.Background(), Request{
		Sentence: "soften the overall",
		Phrases:  []string{"warm amber glow"},
	})
	if err != nil {
		t.Fatalf("Autocomplete: %v", err)
	}
	if res.Completion != "with a warm amber glow" {
		t.Errorf("completion: got %q, want fence stripped", res.Completion)
	}
}
