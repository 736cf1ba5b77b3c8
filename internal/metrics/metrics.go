package metrics

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// ProviderStats is a snapshot of one provider's chat traffic.
type ProviderStats struct {
	Provider     string  `json:"provider"`
	Requests     int     `json:"requests"`
	ErrorReplies int     `json:"error_replies"`
	AvgLatencyMs float64 `json:"avg_latency_ms"`
}

type counter struct {
	requests int
	errors   int
	latency  time.Duration
}

// Usage counts chat turns per provider.
type Usage struct {
	mu    sync.Mutex
	byKey map[string]*counter
}

func New() *Usage {
	return &Usage{byKey: make(map[string]*counter)}
}

// Record adds one completed turn. Replies in the "Error: " form count as errors.
func (u *Usage) Record(provider, reply string, took time.Duration) {
	u.mu.Lock()
	defer u.mu.Unlock()
	c, ok := u.byKey[provider]
	if !ok {
		c = &counter{}
		u.byKey[provider] = c
	}
	c.requests++
	c.latency += took
	if strings.HasPrefix(reply, "Error: ") {
		c.errors++
	}
}

// Snapshot returns stats sorted by provider name.
func (u *Usage) Snapshot() []ProviderStats {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]ProviderStats, 0, len(u.byKey))
	for name, c := range u.byKey {
		s := ProviderStats{Provider: name, Requests: c.requests, ErrorReplies: c.errors}
		if c.requests > 0 {
			s.AvgLatencyMs = float64(c.latency.Milliseconds()) / float64(c.requests)
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Provider < out[j].Provider })
	return out
}
