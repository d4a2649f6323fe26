package advisory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGeminiGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 1 {
			t.Errorf("unexpected request shape: %+v", req)
		}
		w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "hello farmer"}]}}]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient(srv.Client(), "test-key")
	c.baseURL = srv.URL

	text, err := c.Generate(context.Background(), "say hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "hello farmer" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestGeminiGenerateNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	c := NewGeminiClient(srv.Client(), "test-key")
	c.baseURL = srv.URL

	text, err := c.Generate(context.Background(), "say hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty text, got %q", text)
	}
}

func TestGeminiGenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewGeminiClient(srv.Client(), "test-key")
	c.baseURL = srv.URL

	if _, err := c.Generate(context.Background(), "say hello"); err == nil {
		t.Fatal("expected error on non-2xx response")
	}
}
