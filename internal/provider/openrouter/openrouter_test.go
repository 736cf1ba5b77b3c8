package openrouter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ganesh199/AI-APP-Personal/internal/provider"
)

func TestGenerateResponseHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("HTTP-Referer") != Referer || r.Header.Get("X-Title") != Title {
			t.Errorf("missing attribution headers: %v", r.Header)
		}
		if r.Header.Get("Authorization") != "Bearer or-key" {
			t.Errorf("unexpected auth %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"routed"}}]}`))
	}))
	defer srv.Close()

	p := New(provider.Config{APIKey: "or-key", BaseURL: srv.URL + "/", ModelName: "openai/gpt-4"})
	if out := p.GenerateResponse(context.Background(), []provider.Message{{Role: "user", Content: "hi"}}); out != "routed" {
		t.Fatalf("expected routed got %q", out)
	}
}

func TestGenerateResponseMissingContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	p := New(provider.Config{APIKey: "k", BaseURL: srv.URL, ModelName: "openai/gpt-4"})
	out := p.GenerateResponse(context.Background(), []provider.Message{{Role: "user", Content: "hi"}})
	if out != "Error: response missing choices[0].message" {
		t.Fatalf("expected missing message error got %q", out)
	}
}
