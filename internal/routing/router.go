package routing

import (
	"github.com/rs/zerolog/log"

	"github.com/ganesh199/AI-APP-Personal/internal/provider"
	"github.com/ganesh199/AI-APP-Personal/internal/provider/anthropic"
	"github.com/ganesh199/AI-APP-Personal/internal/provider/gemini"
	"github.com/ganesh199/AI-APP-Personal/internal/provider/ollama"
	"github.com/ganesh199/AI-APP-Personal/internal/provider/openai"
	"github.com/ganesh199/AI-APP-Personal/internal/provider/openrouter"
)

// Constructor builds an adapter bound to cfg.
type Constructor func(cfg provider.Config) provider.Adapter

// Router maps provider names to adapter constructors.
type Router struct {
	registry     *provider.Registry
	constructors map[string]Constructor
}

func New(reg *provider.Registry) *Router {
	return &Router{
		registry:     reg,
		constructors: make(map[string]Constructor),
	}
}

// Default returns a router with every built-in adapter registered.
func Default(reg *provider.Registry) *Router {
	r := New(reg)
	r.Register(provider.OpenAI, func(c provider.Config) provider.Adapter { return openai.New(c) })
	r.Register(provider.Gemini, func(c provider.Config) provider.Adapter { return gemini.New(c) })
	r.Register(provider.OpenRouter, func(c provider.Config) provider.Adapter { return openrouter.New(c) })
	r.Register(provider.Anthropic, func(c provider.Config) provider.Adapter { return anthropic.New(c) })
	r.Register(provider.LocalOllama, func(c provider.Config) provider.Adapter { return ollama.New(c) })
	return r
}

// Register associates a provider name with a constructor.
func (r *Router) Register(name string, fn Constructor) {
	r.constructors[name] = fn
}

// Create returns an adapter for name, or nil if the provider is unknown.
// An empty base URL is filled from the provider's catalog entry.
func (r *Router) Create(name string, cfg provider.Config) provider.Adapter {
	fn, ok := r.constructors[name]
	if !ok {
		log.Error().Str("provider", name).Msg("unknown provider")
		return nil
	}
	if cfg.BaseURL == "" {
		if d, ok := r.registry.Describe(name); ok {
			cfg.BaseURL = d.DefaultBaseURL
		}
	}
	return fn(cfg)
}

// Providers returns the registered provider names in catalog order.
func (r *Router) Providers() []string {
	var out []string
	for _, name := range r.registry.Names() {
		if _, ok := r.constructors[name]; ok {
			out = append(out, name)
		}
	}
	return out
}
