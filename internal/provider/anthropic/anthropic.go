// Package anthropic talks to the Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ganesh199/AI-APP-Personal/internal/provider"
)

const apiVersion = "2023-06-01"

type request struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []provider.Message `json:"messages"`
}

type response struct {
	Content []struct {
		Type string  `json:"type"`
		Text *string `json:"text"`
	} `json:"content"`
}

func (r *response) text() (string, error) {
	if len(r.Content) == 0 {
		return "", errors.New("response has no content")
	}
	if r.Content[0].Text == nil {
		return "", errors.New("response missing content[0].text")
	}
	return *r.Content[0].Text, nil
}

// split pulls system messages out of the list; the last one wins.
func split(messages []provider.Message) (string, []provider.Message) {
	var system string
	rest := make([]provider.Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == "system" {
			system = m.Content
			continue
		}
		rest = append(rest, m)
	}
	return system, rest
}

// Provider sends conversations to the Messages API.
type Provider struct {
	cfg  provider.Config
	http *http.Client
}

// New returns an Anthropic adapter bound to cfg.
func New(cfg provider.Config) *Provider {
	return &Provider{cfg: cfg, http: provider.NewHTTPClient(provider.RemoteTimeout)}
}

// GenerateResponse sends messages to /v1/messages with system prompts lifted
// into the top-level field.
func (p *Provider) GenerateResponse(ctx context.Context, messages []provider.Message) string {
	return provider.Generate(ctx, provider.Anthropic, p.cfg.ModelName, messages, func(ctx context.Context) (string, error) {
		system, rest := split(messages)
		body := request{Model: p.cfg.ModelName, MaxTokens: 1000, System: system, Messages: rest}

		header := http.Header{}
		header.Set("x-api-key", p.cfg.APIKey)
		header.Set("anthropic-version", apiVersion)

		var resp response
		url := strings.TrimRight(p.cfg.BaseURL, "/") + "/v1/messages"
		if err := provider.PostJSON(ctx, p.http, url, header, body, &resp); err != nil {
			return "", err
		}
		return resp.text()
	})
}
