package adapter

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMockAdapterResponse(t *testing.T) {
	m := &MockAdapter{Response: "with a warm amber glow"}

	got, err := m.Complete(context.Background(), "s", "u", GenOptions{})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "with a warm amber glow" {
		t.Errorf("got %q, want %q", got, "with a warm amber glow")
	}

	got, err = m.CompleteWithImage(context.Background(), "p", ImagePayload{}, GenOptions{})
	if err != nil {
		t.Fatalf("CompleteWithImage: %v", err)
	}
	if got != "with a warm amber glow" {
		t.Errorf("got %q, want %q", got, "with a warm amber glow")
	}

	if m.Calls() != 2 {
		t.Errorf("calls: got %d, want 2", m.Calls())
	}
}

func TestMockAdapterError(t *testing.T) {
	wantErr := errors.New("boom")
	m := &MockAdapter{Err: wantErr}

	if _, err := m.Complete(context.Background(), "s", "u", GenOptions{}); !errors.Is(err, wantErr) {
		t.Errorf("got %v, want %v", err, wantErr)
	}
	if m.Calls() != 1 {
		t.Errorf("calls: got %d, want 1", m.Calls())
	}
}

func TestMockAdapterAvailability(t *testing.T) {
	if !(&MockAdapter{}).Available() {
		t.Error("default mock should be available")
	}
	if (&MockAdapter{Unavailable: true}).Available() {
		t.Error("unavailable mock should report false")
	}
}

func TestMockAdapterContextCancel(t *testing.T) {
	m := &MockAdapter{Response: "x", Delay: 5 * time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := m.Complete(ctx, "s", "u", GenOptions{}); err == nil {
		t.Error("expected error on cancelled context, got nil")
	}
}
