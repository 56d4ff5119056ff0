package store

import (
	"context"
	"sync"

	"github.com/okulikov/go-gatekeeper/models"
)

// memorySessionStore is the in-process implementation of [SessionStore],
// suitable for single-node deployments and tests. Entries live in a
// mutex-guarded map; expiry is enforced on read and by DeleteExpired.
type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewMemorySessionStore constructs an empty in-memory [SessionStore].
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{
		sessions: make(map[string]models.Session),
	}
}

func (s *memorySessionStore) Get(_ context.Context, token string) (models.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok || session.IsExpired() {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (s *memorySessionStore) Set(_ context.Context, session models.Session) error {
	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return nil
}

func (s *memorySessionStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()

	return nil
}

func (s *memorySessionStore) DeleteExpired(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for token, session := range s.sessions {
		if session.IsExpired() {
			delete(s.sessions, token)
			removed++
		}
	}

	return removed, nil
}
