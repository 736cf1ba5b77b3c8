// Package ollama talks to a local Ollama server.
package ollama

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ganesh199/AI-APP-Personal/internal/provider"
)

type request struct {
	Model    string             `json:"model"`
	Messages []provider.Message `json:"messages"`
	Stream   bool               `json:"stream"`
}

type response struct {
	Message *struct {
		Content *string `json:"content"`
	} `json:"message"`
	Error string `json:"error"`
}

func (r *response) text() (string, error) {
	switch {
	case r.Error != "":
		return "", errors.New(r.Error)
	case r.Message == nil:
		return "", errors.New("response missing message")
	case r.Message.Content == nil:
		return "", errors.New("response missing message.content")
	}
	return *r.Message.Content, nil
}

// Provider sends conversations to a local Ollama server. No auth is sent.
type Provider struct {
	cfg  provider.Config
	http *http.Client
}

// New returns an Ollama adapter. Local models are slow to answer, so the
// timeout is longer than for hosted providers.
func New(cfg provider.Config) *Provider {
	return &Provider{cfg: cfg, http: provider.NewHTTPClient(provider.LocalTimeout)}
}

// GenerateResponse sends messages to /api/chat with streaming off.
func (p *Provider) GenerateResponse(ctx context.Context, messages []provider.Message) string {
	return provider.Generate(ctx, provider.LocalOllama, p.cfg.ModelName, messages, func(ctx context.Context) (string, error) {
		body := request{Model: p.cfg.ModelName, Messages: messages, Stream: false}

		var resp response
		url := strings.TrimRight(p.cfg.BaseURL, "/") + "/api/chat"
		if err := provider.PostJSON(ctx, p.http, url, nil, body, &resp); err != nil {
			return "", err
		}
		return resp.text()
	})
}
