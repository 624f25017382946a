// Package memory provides the in-process session store. It intentionally
// favors clarity over performance.
package memory

import (
	"context"
	"sync"
	"time"

	"arcana/internal/session"
	"arcana/pkg/platform/sentinel"
)

// Store is a mutex-guarded map of sessions. Expiry happens only through Sweep,
// never at read time.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]session.Session
}

func New() *Store {
	return &Store{sessions: make(map[string]session.Session)}
}

func (s *Store) Create(_ context.Context, sess session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *Store) Get(_ context.Context, id string) (session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sess, ok := s.sessions[id]; ok {
		return sess, nil
	}
	return session.Session{}, sentinel.ErrNotFound
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *Store) Sweep(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.CreatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// Len reports the number of live sessions, for tests.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
