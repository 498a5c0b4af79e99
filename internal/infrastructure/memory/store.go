package memory

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/medicheck/medicheck/internal/domain/entities"
)

// DefaultMaxSessions is the number of session histories kept before the
// least recently used one is dropped.
const DefaultMaxSessions = 1024

// SessionStore keeps one Buffer per session id. Sessions are evicted in
// least-recently-used order once the store is full.
type SessionStore struct {
	mu         sync.Mutex
	sessions   *lru.Cache
	maxEntries int
}

// NewSessionStore creates a store with the given session and per-session
// entry limits. Zero values select the defaults.
func NewSessionStore(maxSessions, maxEntries int) (*SessionStore, error) {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	cache, err := lru.New(maxSessions)
	if err != nil {
		return nil, fmt.Errorf("creating session cache: %w", err)
	}

	return &SessionStore{
		sessions:   cache,
		maxEntries: maxEntries,
	}, nil
}

// buffer returns the session buffer, or nil for unknown sessions.
func (s *SessionStore) buffer(session string) *Buffer {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, _ := s.lookup(session)
	return b
}

// lookup must be called with s.mu held.
func (s *SessionStore) lookup(session string) (*Buffer, bool) {
	v, ok := s.sessions.Get(session)
	if !ok {
		return nil, false
	}
	return v.(*Buffer), true
}

// Append adds an entry to the session history. The store lock is held
// across lookup and append so a concurrent Reset or eviction cannot detach
// the buffer mid-append.
func (s *SessionStore) Append(session string, entry entities.ConversationEntry) error {
	if !entry.Role.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownRole, entry.Role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.lookup(session)
	if !ok {
		b = NewBuffer(s.maxEntries)
		s.sessions.Add(session, b)
	}
	return b.Append(entry)
}

// Snapshot returns a copy of the session history.
func (s *SessionStore) Snapshot(session string) []entities.ConversationEntry {
	b := s.buffer(session)
	if b == nil {
		return []entities.ConversationEntry{}
	}
	return b.Snapshot()
}

// ContextString renders the session history, or "" for unknown sessions.
func (s *SessionStore) ContextString(session string) string {
	b := s.buffer(session)
	if b == nil {
		return ""
	}
	return b.ContextString()
}

// Reset drops the session history.
func (s *SessionStore) Reset(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Remove(session)
}
