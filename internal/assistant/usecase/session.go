package usecase

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// defaultSession keys callers that never send a session id.
	defaultSession = "default"

	maxSessions = 512
	sessionTTL  = 30 * time.Minute
)

// Transcript is one session's running conversation, used only as prompt
// context for AI-backed turns. Reads and appends are serialized; concurrent
// requests on the same session must not interleave half-written turns.
type Transcript struct {
	mu    sync.Mutex
	turns []string
}

// PromptFor renders the history plus the pending user turn as the outbound
// prompt, in the "User: …\nBuddy: …" line format.
func (t *Transcript) PromptFor(query string) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var b strings.Builder
	for _, turn := range t.turns {
		b.WriteString(turn)
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("User: %s\nBuddy: ", query))
	return b.String()
}

// Append records one completed exchange.
func (t *Transcript) Append(query, reply string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.turns = append(t.turns, fmt.Sprintf("User: %s", query), fmt.Sprintf("Buddy: %s", reply))
}

// sessionStore holds per-session transcripts. Idle sessions expire; a reset
// swaps in a fresh transcript rather than mutating the old one, so requests
// already holding the old transcript finish against pre-reset history.
type sessionStore struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *Transcript]
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		cache: expirable.NewLRU[string, *Transcript](maxSessions, nil, sessionTTL),
	}
}

func (s *sessionStore) key(id string) string {
	if id == "" {
		return defaultSession
	}
	return id
}

// Get returns the session's transcript, creating it on first use.
func (s *sessionStore) Get(id string) *Transcript {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.cache.Get(s.key(id)); ok {
		return t
	}
	t := &Transcript{}
	s.cache.Add(s.key(id), t)
	return t
}

// Reset discards the session's history.
func (s *sessionStore) Reset(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Add(s.key(id), &Transcript{})
}
