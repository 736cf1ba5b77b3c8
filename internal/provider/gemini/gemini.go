// Package gemini talks to the Google Gemini generateContent API.
//
// The whole conversation is flattened into a single prompt of
// "role: content" lines; Gemini sees one user turn per request.
package gemini

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/ganesh199/AI-APP-Personal/internal/provider"
)

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type request struct {
	Contents []content `json:"contents"`
}

type response struct {
	Candidates []struct {
		Content *struct {
			Parts []struct {
				Text *string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (r *response) text() (string, error) {
	switch {
	case len(r.Candidates) == 0:
		return "", errors.New("response has no candidates")
	case r.Candidates[0].Content == nil:
		return "", errors.New("response missing candidates[0].content")
	case len(r.Candidates[0].Content.Parts) == 0:
		return "", errors.New("response missing candidates[0].content.parts")
	case r.Candidates[0].Content.Parts[0].Text == nil:
		return "", errors.New("response missing candidates[0].content.parts[0].text")
	}
	return *r.Candidates[0].Content.Parts[0].Text, nil
}

// Prompt joins messages into newline separated "role: content" lines.
func Prompt(messages []provider.Message) string {
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, m.Role+": "+m.Content)
	}
	return strings.Join(lines, "\n")
}

// Provider sends conversations to Gemini. The API key travels as a query parameter.
type Provider struct {
	cfg  provider.Config
	http *http.Client
}

// New returns a Gemini adapter bound to cfg.
func New(cfg provider.Config) *Provider {
	return &Provider{cfg: cfg, http: provider.NewHTTPClient(provider.RemoteTimeout)}
}

func (p *Provider) endpoint() string {
	q := url.Values{}
	q.Set("key", p.cfg.APIKey)
	base := strings.TrimRight(p.cfg.BaseURL, "/")
	return base + "/models/" + url.PathEscape(p.cfg.ModelName) + ":generateContent?" + q.Encode()
}

// GenerateResponse sends the flattened prompt to models/{model}:generateContent.
func (p *Provider) GenerateResponse(ctx context.Context, messages []provider.Message) string {
	return provider.Generate(ctx, provider.Gemini, p.cfg.ModelName, messages, func(ctx context.Context) (string, error) {
		body := request{Contents: []content{{Parts: []part{{Text: Prompt(messages)}}}}}

		var resp response
		if err := provider.PostJSON(ctx, p.http, p.endpoint(), nil, body, &resp); err != nil {
			return "", err
		}
		return resp.text()
	})
}
