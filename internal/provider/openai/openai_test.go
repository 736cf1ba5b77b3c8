package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ganesh199/AI-APP-Personal/internal/provider"
)

func TestGenerateResponse(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer k" {
			t.Errorf("unexpected auth header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello"}}]}`))
	}))
	defer srv.Close()

	p := New(provider.Config{APIKey: "k", BaseURL: srv.URL, ModelName: "gpt-4"})
	out := p.GenerateResponse(context.Background(), []provider.Message{{Role: "user", Content: "hi"}})
	if out != "hello" {
		t.Fatalf("expected hello got %q", out)
	}
	if got.Model != "gpt-4" || got.MaxTokens != 1000 || len(got.Messages) != 1 {
		t.Fatalf("unexpected request %+v", got)
	}
}

func TestGenerateResponseStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := New(provider.Config{APIKey: "k", BaseURL: srv.URL, ModelName: "gpt-4"})
	out := p.GenerateResponse(context.Background(), []provider.Message{{Role: "user", Content: "hi"}})
	if !strings.HasPrefix(out, "Error: ") || !strings.Contains(out, "401") {
		t.Fatalf("expected error reply got %q", out)
	}
}

func TestGenerateResponseNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	p := New(provider.Config{APIKey: "k", BaseURL: srv.URL, ModelName: "gpt-4"})
	out := p.GenerateResponse(context.Background(), nil)
	if !strings.HasPrefix(out, "Error: ") {
		t.Fatalf("expected error reply got %q", out)
	}
}

func TestGenerateResponseUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p := New(provider.Config{APIKey: "k", BaseURL: url, ModelName: "gpt-4"})
	out := p.GenerateResponse(context.Background(), []provider.Message{{Role: "user", Content: "hi"}})
	if !strings.HasPrefix(out, "Error: ") {
		t.Fatalf("expected error reply got %q", out)
	}
}

func TestGenerateResponseMissingContent(t *testing.T) {
	bodies := map[string]string{
		`{"choices":[{"finish_reason":"stop"}]}`:         "choices[0].message",
		`{"choices":[{"message":{"role":"assistant"}}]}`: "choices[0].message.content",
		`{"choices":[{"message":{"content":null}}]}`:     "choices[0].message.content",
	}
	for body, field := range bodies {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		}))
		p := New(provider.Config{APIKey: "k", BaseURL: srv.URL, ModelName: "gpt-4"})
		out := p.GenerateResponse(context.Background(), []provider.Message{{Role: "user", Content: "hi"}})
		srv.Close()
		if out != "Error: response missing "+field {
			t.Fatalf("body %s: expected missing %s error got %q", body, field, out)
		}
	}
}

func TestGenerateResponseEmptyContentIsText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":""}}]}`))
	}))
	defer srv.Close()

	p := New(provider.Config{APIKey: "k", BaseURL: srv.URL, ModelName: "gpt-4"})
	if out := p.GenerateResponse(context.Background(), nil); out != "" {
		t.Fatalf("expected empty text got %q", out)
	}
}
