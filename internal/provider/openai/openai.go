// Package openai talks to the OpenAI chat completions API.
package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ganesh199/AI-APP-Personal/internal/provider"
)

// Request is the chat completions body. OpenRouter accepts the same shape.
type Request struct {
	Model       string             `json:"model"`
	Messages    []provider.Message `json:"messages"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
}

// Response is the subset of the chat completions reply we read.
type Response struct {
	Choices []struct {
		Message *struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Text returns choices[0].message.content. A missing field is an error.
func (r *Response) Text() (string, error) {
	if len(r.Choices) == 0 {
		return "", errors.New("response has no choices")
	}
	m := r.Choices[0].Message
	if m == nil {
		return "", errors.New("response missing choices[0].message")
	}
	if m.Content == nil {
		return "", errors.New("response missing choices[0].message.content")
	}
	return *m.Content, nil
}

// NewRequest builds the body sent for messages.
func NewRequest(model string, messages []provider.Message) Request {
	return Request{Model: model, Messages: messages, MaxTokens: 1000, Temperature: 0.7}
}

// Provider sends conversations to OpenAI.
type Provider struct {
	cfg  provider.Config
	http *http.Client
}

// New returns an OpenAI adapter bound to cfg.
func New(cfg provider.Config) *Provider {
	return &Provider{cfg: cfg, http: provider.NewHTTPClient(provider.RemoteTimeout)}
}

// GenerateResponse sends messages to /chat/completions with Bearer auth.
func (p *Provider) GenerateResponse(ctx context.Context, messages []provider.Message) string {
	return provider.Generate(ctx, provider.OpenAI, p.cfg.ModelName, messages, func(ctx context.Context) (string, error) {
		header := http.Header{}
		header.Set("Authorization", "Bearer "+p.cfg.APIKey)

		var resp Response
		url := strings.TrimRight(p.cfg.BaseURL, "/") + "/chat/completions"
		if err := provider.PostJSON(ctx, p.http, url, header, NewRequest(p.cfg.ModelName, messages), &resp); err != nil {
			return "", err
		}
		return resp.Text()
	})
}
