// Package openrouter talks to OpenRouter's OpenAI-compatible endpoint.
package openrouter

import (
	"context"
	"net/http"
	"strings"

	"github.com/ganesh199/AI-APP-Personal/internal/provider"
	"github.com/ganesh199/AI-APP-Personal/internal/provider/openai"
)

// Attribution headers OpenRouter uses to rank client apps.
const (
	Referer = "http://localhost:3000"
	Title   = "Personal PA Chat"
)

// Provider sends conversations to OpenRouter using the OpenAI wire format.
type Provider struct {
	cfg  provider.Config
	http *http.Client
}

// New returns an OpenRouter adapter bound to cfg.
func New(cfg provider.Config) *Provider {
	return &Provider{cfg: cfg, http: provider.NewHTTPClient(provider.RemoteTimeout)}
}

// GenerateResponse sends messages to /chat/completions with Bearer auth and
// the attribution headers.
func (p *Provider) GenerateResponse(ctx context.Context, messages []provider.Message) string {
	return provider.Generate(ctx, provider.OpenRouter, p.cfg.ModelName, messages, func(ctx context.Context) (string, error) {
		header := http.Header{}
		header.Set("Authorization", "Bearer "+p.cfg.APIKey)
		header.Set("HTTP-Referer", Referer)
		header.Set("X-Title", Title)

		var resp openai.Response
		url := strings.TrimRight(p.cfg.BaseURL, "/") + "/chat/completions"
		if err := provider.PostJSON(ctx, p.http, url, header, openai.NewRequest(p.cfg.ModelName, messages), &resp); err != nil {
			return "", err
		}
		return resp.Text()
	})
}
