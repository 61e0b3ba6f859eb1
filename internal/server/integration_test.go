package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lightart/lightart/internal/adapter"
	"github.com/lightart/lightart/internal/generate"
)

type completeRequest struct {
	Sentence    string   `json:"sentence"`
	Suggestions []string `json:"suggestions"`
}

type completeResponse struct {
	Completion string `json:"completion"`
	FullText   string `json:"full_text"`
}

func newTestServer(t *testing.T, backend adapter.TextCompleter, opts Options) *httptest.Server {
	t.Helper()
	h := SetupMux(generate.NewService(backend), opts)
	return httptest.NewServer(h)
}

func defaultTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return newTestServer(t, &adapter.MockAdapter{Response: "with a warm amber glow"}, Options{})
}

func TestIntegration_AutocompleteFullFlow(t *testing.T) {
	ts := defaultTestServer(t)
	defer ts.Close()

	body, _ := json.Marshal(completeRequest{
		Sentence:    "soften the overall",
		Suggestions: []string{"warm amber glow"},
	})
	resp, err := http.Post(ts.URL+"/autocomplete", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d, want %d", resp.StatusCode, http.StatusOK)
	}

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS Allow-Origin: got %q, want %q", got, "*")
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header not set")
	}

	var cr completeResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cr.Completion != "with a warm amber glow" {
		t.Errorf("completion: got %q", cr.Completion)
	}
	if !strings.HasPrefix(cr.FullText, "soften the overall") {
		t.Errorf("full_text %q does not start with the sentence", cr.FullText)
	}
}

func TestIntegration_RefineFullFlow(t *testing.T) {
	ts := defaultTestServer(t)
	defer ts.Close()

	body, _ := json.Marshal(completeRequest{
		Sentence:    "give the image",
		Suggestions: []string{"soft golden warmth", "cooler shadows"},
	})
	resp, err := http.Post(ts.URL+"/refine", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestIntegration_EmptySentenceRejected(t *testing.T) {
	mock := &adapter.MockAdapter{Response: "x"}
	ts := newTestServer(t, mock, Options{})
	defer ts.Close()

	for _, path := range []string{"/autocomplete", "/refine"} {
		body, _ := json.Marshal(completeRequest{Sentence: "   ", Suggestions: []string{"a"}})
		resp, err := http.Post(ts.URL+path, "application/json", bytes.NewReader(body))
		if err != nil {
			t.Fatalf("request %s: %v", path, err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s status: got %d, want %d", path, resp.StatusCode, http.StatusBadRequest)
		}
		resp.Body.Close()
	}

	if mock.Calls() != 0 {
		t.Errorf("model calls: got %d, want 0", mock.Calls())
	}
}

func TestIntegration_ModelUnavailableEverywhere(t *testing.T) {
	ts := newTestServer(t, nil, Options{})
	defer ts.Close()

	body, _ := json.Marshal(completeRequest{Sentence: "soften", Suggestions: []string{"a"}})
	for _, path := range []string{"/autocomplete", "/refine"} {
		resp, err := http.Post(ts.URL+path, "application/json", bytes.NewReader(body))
		if err != nil {
			t.Fatalf("request %s: %v", path, err)
		}
		if resp.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("%s status: got %d, want %d", path, resp.StatusCode, http.StatusServiceUnavailable)
		}
		resp.Body.Close()
	}

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("health request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("/health status: got %d, want %d", resp.StatusCode, http.StatusServiceUnavailable)
	}
}

func TestIntegration_HealthFullFlow(t *testing.T) {
	ts := defaultTestServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestIntegration_RootMetadata(t *testing.T) {
	ts := defaultTestServer(t)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var meta map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if meta["message"] != "LightArt Autocomplete API" {
		t.Errorf("message: got %v", meta["message"])
	}
}

func TestIntegration_OptionsPreflightCORS(t *testing.T) {
	ts := defaultTestServer(t)
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/autocomplete", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status: got %d, want %d", resp.StatusCode, http.StatusNoContent)
	}
}

func TestIntegration_APIKeyEnforced(t *testing.T) {
	ts := newTestServer(t, &adapter.MockAdapter{Response: "x"}, Options{APIKey: "secret"})
	defer ts.Close()

	body, _ := json.Marshal(completeRequest{Sentence: "soften", Suggestions: []string{"a"}})

	resp, err := http.Post(ts.URL+"/autocomplete", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("without key: got %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/autocomplete", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", "secret")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request with key: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("with key: got %d, want %d", resp.StatusCode, http.StatusOK)
	}

	// /health stays reachable for monitoring.
	hresp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("health request: %v", err)
	}
	hresp.Body.Close()
	if hresp.StatusCode != http.StatusOK {
		t.Errorf("health without key: got %d, want %d", hresp.StatusCode, http.StatusOK)
	}
}

func TestIntegration_RateLimit(t *testing.T) {
	ts := newTestServer(t, &adapter.MockAdapter{Response: "x"}, Options{RatePerMinute: 2})
	defer ts.Close()

	var last int
	for i := 0; i < 3; i++ {
		body, _ := json.Marshal(completeRequest{Sentence: "soften", Suggestions: []string{"a"}})
		resp, err := http.Post(ts.URL+"/autocomplete", "application/json", bytes.NewReader(body))
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		last = resp.StatusCode
		resp.Body.Close()
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("third request: got %d, want %d", last, http.StatusTooManyRequests)
	}
}
