// Package chat resolves provider configurations, keeps session transcripts
// and runs chat turns against provider adapters.
package chat

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ganesh199/AI-APP-Personal/internal/guardrails"
	"github.com/ganesh199/AI-APP-Personal/internal/metrics"
	"github.com/ganesh199/AI-APP-Personal/internal/provider"
	"github.com/ganesh199/AI-APP-Personal/internal/routing"
	"github.com/ganesh199/AI-APP-Personal/internal/store"
)

const (
	// DefaultSessionID is used when a caller omits the session id.
	DefaultSessionID = "default"
	// ContextWindow is how many transcript messages go to the provider per turn.
	ContextWindow = 10
)

// ErrClientCreation is returned when a known provider yields no adapter.
var ErrClientCreation = errors.New("Failed to create LLM client")

// Service owns the configuration and session stores.
type Service struct {
	registry *provider.Registry
	router   *routing.Router
	configs  *store.Configs
	sessions *store.Sessions
	guards   *guardrails.Guardrails
	usage    *metrics.Usage
	now      func() time.Time
}

type Option func(*Service)

func WithGuardrails(g *guardrails.Guardrails) Option {
	return func(s *Service) { s.guards = g }
}

func WithUsage(u *metrics.Usage) Option {
	return func(s *Service) { s.usage = u }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(reg *provider.Registry, rt *routing.Router, opts ...Option) *Service {
	s := &Service{
		registry: reg,
		router:   rt,
		configs:  store.NewConfigs(),
		sessions: store.NewSessions(),
		guards:   guardrails.New(),
		usage:    metrics.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ConfigureResult echoes a successful single configuration.
type ConfigureResult struct {
	Provider    string `json:"provider"`
	Model       string `json:"model"`
	SessionID   string `json:"session_id"`
	ProviderKey string `json:"provider_key"`
}

// ConfigKey builds the key a single configuration is stored under.
func ConfigKey(providerName, model string) string {
	return providerName + "_" + model
}

// Configure validates cfg against the provider catalog, stores it under
// "{provider}_{model}" and binds sessionID to it.
func (s *Service) Configure(providerName string, cfg provider.Config, sessionID string) (ConfigureResult, error) {
	if sessionID == "" {
		sessionID = DefaultSessionID
	}
	d, ok := s.registry.Describe(providerName)
	if providerName == "" || !ok {
		return ConfigureResult{}, invalid(InvalidProvider, "Invalid provider")
	}
	if d.RequiresAPIKey && cfg.APIKey == "" {
		return ConfigureResult{}, missing("api_key", "API Key")
	}
	if d.RequiresBaseURL && cfg.BaseURL == "" {
		return ConfigureResult{}, missing("base_url", "Base URL")
	}
	if d.RequiresModelName && cfg.ModelName == "" {
		return ConfigureResult{}, missing("model_name", "Model selection")
	}

	adapter := s.router.Create(providerName, cfg)
	if adapter == nil {
		return ConfigureResult{}, ErrClientCreation
	}

	e := &store.Entry{
		Key:       ConfigKey(providerName, cfg.ModelName),
		Provider:  providerName,
		Config:    cfg,
		Adapter:   adapter,
		CreatedAt: s.now(),
	}
	s.configs.Put(e)
	s.configs.Bind(sessionID, e)
	s.sessions.Ensure(sessionID)

	log.Info().Str("provider", providerName).Str("model", cfg.ModelName).
		Str("session_id", sessionID).Str("provider_key", e.Key).Msg("provider configured")

	return ConfigureResult{
		Provider:    providerName,
		Model:       cfg.ModelName,
		SessionID:   sessionID,
		ProviderKey: e.Key,
	}, nil
}

// BulkEntry is one provider in a bulk configuration request.
type BulkEntry struct {
	Provider string `json:"provider"`
	APIKey   string `json:"apiKey"`
	Model    string `json:"model"`
}

// ConfigureBulk stores each entry under its caller-supplied key. Unknown
// providers are skipped. Sessions are not touched. It returns how many
// entries were stored.
func (s *Service) ConfigureBulk(entries map[string]BulkEntry) int {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	n := 0
	for _, key := range keys {
		be := entries[key]
		if _, ok := s.registry.Describe(be.Provider); !ok {
			log.Warn().Str("provider_key", key).Str("provider", be.Provider).Msg("skipping unknown provider")
			continue
		}
		cfg := provider.Config{APIKey: be.APIKey, ModelName: be.Model}
		adapter := s.router.Create(be.Provider, cfg)
		if adapter == nil {
			continue
		}
		s.configs.Put(&store.Entry{
			Key:       key,
			Provider:  be.Provider,
			Config:    cfg,
			Adapter:   adapter,
			CreatedAt: s.now(),
		})
		n++
	}
	log.Info().Int("configured", n).Int("requested", len(entries)).Msg("bulk configuration applied")
	return n
}

// Reply is the outcome of a chat turn.
type Reply struct {
	Response  string `json:"response"`
	Provider  string `json:"provider"`
	Model     string `json:"model"`
	SessionID string `json:"session_id"`
}

// Chat runs one turn for sessionID. configKey, when it names a stored
// configuration, wins over the session's own binding.
//
// Validation failures come back as *ValidationError. Anything else that
// goes wrong inside the turn, including a panic, comes back as a plain error.
func (s *Service) Chat(ctx context.Context, message, sessionID, configKey string) (reply Reply, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("session_id", sessionID).Msg("chat turn panicked")
			err = fmt.Errorf("chat: %v", r)
		}
	}()

	if sessionID == "" {
		sessionID = DefaultSessionID
	}
	msg, err := s.guards.CheckInput(message)
	switch {
	case errors.Is(err, guardrails.ErrEmpty):
		return Reply{}, invalid(EmptyMessage, "Message is required")
	case err != nil:
		return Reply{}, &ValidationError{Kind: GuardrailViolation, Message: err.Error()}
	}

	e, ok := s.resolve(sessionID, configKey)
	if !ok {
		return Reply{}, invalid(NoProviderConfigured, "No LLM provider configured")
	}

	t := s.sessions.Ensure(sessionID)
	end := t.BeginTurn()
	defer end()

	t.Append("user", msg, s.now())
	window := t.Window(ContextWindow)

	// the turn outlives a caller that goes away; only the provider timeout applies
	start := time.Now()
	text := e.Adapter.GenerateResponse(context.WithoutCancel(ctx), window)
	s.usage.Record(e.Provider, text, time.Since(start))

	t.Append("assistant", text, s.now())

	return Reply{
		Response:  text,
		Provider:  e.Provider,
		Model:     e.Config.ModelName,
		SessionID: sessionID,
	}, nil
}

func (s *Service) resolve(sessionID, configKey string) (*store.Entry, bool) {
	if configKey != "" {
		if e, ok := s.configs.Get(configKey); ok {
			return e, true
		}
	}
	return s.configs.ForSession(sessionID)
}

// History returns the transcript for sessionID, empty if there is none.
func (s *Service) History(sessionID string) []store.Message {
	t, ok := s.sessions.Get(sessionID)
	if !ok {
		return []store.Message{}
	}
	return t.Messages()
}

// SessionInfo summarizes a session that has a bound configuration.
type SessionInfo struct {
	SessionID    string     `json:"session_id"`
	Provider     string     `json:"provider"`
	Model        string     `json:"model"`
	CreatedAt    time.Time  `json:"created_at"`
	MessageCount int        `json:"message_count"`
	LastMessage  *time.Time `json:"last_message"`
}

// Sessions lists every session bound to a configuration.
func (s *Service) Sessions() []SessionInfo {
	bindings := s.configs.Bindings()
	out := make([]SessionInfo, 0, len(bindings))
	for _, b := range bindings {
		info := SessionInfo{
			SessionID: b.SessionID,
			Provider:  b.Entry.Provider,
			Model:     b.Entry.Config.ModelName,
			CreatedAt: b.Entry.CreatedAt,
		}
		if t, ok := s.sessions.Get(b.SessionID); ok {
			info.MessageCount = t.Len()
			if last, ok := t.Last(); ok {
				ts := last.Timestamp
				info.LastMessage = &ts
			}
		}
		out = append(out, info)
	}
	return out
}

// Clear drops the transcript and session binding for sessionID.
func (s *Service) Clear(sessionID string) {
	s.sessions.Delete(sessionID)
	s.configs.Unbind(sessionID)
	log.Info().Str("session_id", sessionID).Msg("session cleared")
}

// Health reports liveness and static provider info.
type Health struct {
	Status         string   `json:"status"`
	ActiveSessions int      `json:"active_sessions"`
	Providers      []string `json:"providers"`
}

func (s *Service) Health() Health {
	return Health{
		Status:         "healthy",
		ActiveSessions: s.configs.BoundSessions(),
		Providers:      s.registry.Names(),
	}
}

// Providers returns the catalog keyed by provider name.
func (s *Service) Providers() map[string]provider.Descriptor {
	out := make(map[string]provider.Descriptor)
	for _, d := range s.registry.List() {
		out[d.Name] = d
	}
	return out
}

// Stats returns per-provider traffic counters.
func (s *Service) Stats() []metrics.ProviderStats {
	return s.usage.Snapshot()
}
