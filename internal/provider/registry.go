package provider

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Names of the supported providers.
const (
	OpenAI      = "OpenAI"
	Gemini      = "Google Gemini"
	OpenRouter  = "OpenRouter"
	Anthropic   = "Anthropic"
	LocalOllama = "Local Ollama"
)

// Supported lists every provider the relay has an adapter for.
var Supported = []string{OpenAI, Gemini, OpenRouter, Anthropic, LocalOllama}

//go:embed providers.yaml
var catalog []byte

// Descriptor describes what a provider needs to be configured.
type Descriptor struct {
	Name              string   `yaml:"name" json:"-"`
	RequiresAPIKey    bool     `yaml:"api_key" json:"api_key"`
	RequiresBaseURL   bool     `yaml:"base_url" json:"base_url"`
	RequiresModelName bool     `yaml:"model_name" json:"model_name"`
	Models            []string `yaml:"models" json:"models"`
	Description       string   `yaml:"description" json:"description"`
	DefaultBaseURL    string   `yaml:"default_base_url" json:"default_base_url"`
}

// Registry is the immutable catalog of supported providers.
type Registry struct {
	order  []string
	byName map[string]Descriptor
}

// NewRegistry decodes the embedded provider catalog.
func NewRegistry() (*Registry, error) {
	return parseRegistry(catalog)
}

// MustRegistry is like NewRegistry but panics if the embedded catalog is broken.
func MustRegistry() *Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

func parseRegistry(data []byte) (*Registry, error) {
	var list []Descriptor
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode provider catalog: %w", err)
	}
	r := &Registry{byName: make(map[string]Descriptor, len(list))}
	for _, d := range list {
		if d.Name == "" {
			return nil, fmt.Errorf("provider catalog: entry without name")
		}
		if _, dup := r.byName[d.Name]; dup {
			return nil, fmt.Errorf("provider catalog: duplicate provider %q", d.Name)
		}
		r.order = append(r.order, d.Name)
		r.byName[d.Name] = d
	}
	for _, name := range Supported {
		if _, ok := r.byName[name]; !ok {
			return nil, fmt.Errorf("provider catalog: missing provider %q", name)
		}
	}
	if len(r.order) != len(Supported) {
		return nil, fmt.Errorf("provider catalog: %d providers, want exactly %d", len(r.order), len(Supported))
	}
	return r, nil
}

// Describe returns the descriptor for name.
func (r *Registry) Describe(name string) (Descriptor, bool) {
	d, ok := r.byName[name]
	if ok {
		d.Models = append([]string(nil), d.Models...)
	}
	return d, ok
}

// List returns all descriptors in catalog order.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		d, _ := r.Describe(name)
		out = append(out, d)
	}
	return out
}

// Names returns provider names in catalog order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}
