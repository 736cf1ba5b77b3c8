package store

import (
	"sync"
	"time"

	"github.com/ganesh199/AI-APP-Personal/internal/provider"
)

// Message is one transcript line.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Transcript is the append-only history of one session.
type Transcript struct {
	turn sync.Mutex

	mu       sync.RWMutex
	messages []Message
}

// BeginTurn serializes chat turns on this transcript. The returned func
// ends the turn. It is held across the provider call, so only turns on the
// same session wait for each other.
func (t *Transcript) BeginTurn() (end func()) {
	t.turn.Lock()
	return t.turn.Unlock
}

func (t *Transcript) Append(role, content string, ts time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, Message{Role: role, Content: content, Timestamp: ts})
}

// Window returns the last n messages reduced to role and content.
func (t *Transcript) Window(n int) []provider.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	start := 0
	if len(t.messages) > n {
		start = len(t.messages) - n
	}
	out := make([]provider.Message, 0, len(t.messages)-start)
	for _, m := range t.messages[start:] {
		out = append(out, provider.Message{Role: m.Role, Content: m.Content})
	}
	return out
}

// Messages returns a copy of the transcript.
func (t *Transcript) Messages() []Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]Message{}, t.messages...)
}

func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}

// Last returns the most recent message, if any.
func (t *Transcript) Last() (Message, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

// Sessions maps session ids to transcripts.
type Sessions struct {
	mu          sync.RWMutex
	transcripts map[string]*Transcript
}

func NewSessions() *Sessions {
	return &Sessions{transcripts: make(map[string]*Transcript)}
}

// Ensure returns the transcript for id, creating an empty one if needed.
func (s *Sessions) Ensure(id string) *Transcript {
	s.mu.RLock()
	t, ok := s.transcripts[id]
	s.mu.RUnlock()
	if ok {
		return t
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.transcripts[id]; ok {
		return t
	}
	t = &Transcript{}
	s.transcripts[id] = t
	return t
}

func (s *Sessions) Get(id string) (*Transcript, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transcripts[id]
	return t, ok
}

// Delete removes the transcript for id. A turn still in flight on it
// finishes against the detached transcript.
func (s *Sessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.transcripts, id)
}
