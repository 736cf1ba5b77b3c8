package store

import (
	"sort"
	"sync"
	"time"

	"github.com/ganesh199/AI-APP-Personal/internal/provider"
)

// Entry is a configured provider ready to serve chat turns.
type Entry struct {
	Key       string
	Provider  string
	Config    provider.Config
	Adapter   provider.Adapter
	CreatedAt time.Time
}

// Binding is a session-indexed alias for an Entry.
type Binding struct {
	SessionID string
	Entry     *Entry
}

// Configs holds entries by configuration key, plus the session-indexed
// alias table kept for callers that only know their session id.
type Configs struct {
	mu        sync.RWMutex
	byKey     map[string]*Entry
	bySession map[string]*Entry
}

func NewConfigs() *Configs {
	return &Configs{
		byKey:     make(map[string]*Entry),
		bySession: make(map[string]*Entry),
	}
}

// Put stores e under its key, replacing any previous entry.
func (c *Configs) Put(e *Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byKey[e.Key] = e
}

func (c *Configs) Get(key string) (*Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.byKey[key]
	return e, ok
}

// Bind points sessionID at e.
func (c *Configs) Bind(sessionID string, e *Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bySession[sessionID] = e
}

func (c *Configs) ForSession(sessionID string) (*Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.bySession[sessionID]
	return e, ok
}

// Unbind drops the session alias. Entries under their configuration key stay.
func (c *Configs) Unbind(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.bySession, sessionID)
}

// Bindings returns all session aliases ordered by session id.
func (c *Configs) Bindings() []Binding {
	c.mu.RLock()
	out := make([]Binding, 0, len(c.bySession))
	for id, e := range c.bySession {
		out = append(out, Binding{SessionID: id, Entry: e})
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].SessionID < out[j].SessionID })
	return out
}

// BoundSessions is the number of session aliases.
func (c *Configs) BoundSessions() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.bySession)
}
