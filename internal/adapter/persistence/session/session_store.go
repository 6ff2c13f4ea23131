package session

import (
	"context"
	"sync"
	"time"

	"delta33_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory session store. Sessions live at most ttl and
// die with the process; nothing is ever persisted, which is exactly the
// ephemeral session-marker semantics the credential gate needs.

type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]time.Time
	ttl      time.Duration
	now      func() time.Time
}

var _ interfaces.ISessionStore = (*MemoryStore)(nil)

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &MemoryStore{
		sessions: make(map[string]time.Time),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(_ context.Context) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = s.now().Add(s.ttl)
	return token, nil
}

func (s *MemoryStore) Validate(_ context.Context, token string) bool {
	s.mu.RLock()
	expiresAt, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if s.now().After(expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return false
	}
	return true
}

func (s *MemoryStore) Delete(_ context.Context, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}
