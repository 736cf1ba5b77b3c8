package guardrails

import (
	"errors"
	"strings"
	"sync"
)

var (
	ErrEmpty  = errors.New("Message is required")
	ErrBanned = errors.New("input violates guardrails")
)

// Guardrails performs simple input validation.
type Guardrails struct {
	mu     sync.RWMutex
	banned []string
}

func New(banned ...string) *Guardrails {
	g := &Guardrails{}
	g.SetBanned(banned)
	return g
}

// SetBanned replaces the banned term list. Safe to call while serving.
func (g *Guardrails) SetBanned(terms []string) {
	var banned []string
	for _, w := range terms {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			banned = append(banned, w)
		}
	}
	g.mu.Lock()
	g.banned = banned
	g.mu.Unlock()
}

// CheckInput trims input and returns it, or an error if it is empty or
// contains a banned term.
func (g *Guardrails) CheckInput(input string) (string, error) {
	msg := strings.TrimSpace(input)
	if msg == "" {
		return "", ErrEmpty
	}
	lower := strings.ToLower(msg)
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, w := range g.banned {
		if strings.Contains(lower, w) {
			return "", ErrBanned
		}
	}
	return msg, nil
}
