// Package sessionstore provides an in-memory implementation of the session
// store port. Intake sessions are ephemeral process state and are never
// persisted; a restart simply drops all in-progress intakes.
package sessionstore

import (
	"sync"
	"time"

	"receipts/internal/core/domain/model/intake"
)

// InMemorySessionStore keeps active intake sessions keyed by actor id.
// Safe for concurrent use; inputs for a single actor are serialized by the
// dispatch layer, not here.
type InMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*intake.Session
}

// NewInMemorySessionStore creates an empty session store.
func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		sessions: make(map[string]*intake.Session),
	}
}

// Get returns the actor's active session, if any.
func (s *InMemorySessionStore) Get(actorID string) (*intake.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[actorID]
	return session, ok
}

// Put stores or replaces the actor's session.
func (s *InMemorySessionStore) Put(session *intake.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ActorID()] = session
}

// Delete removes the actor's session. Removing a missing session is a no-op.
func (s *InMemorySessionStore) Delete(actorID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, actorID)
}

// PurgeIdle removes sessions whose last activity is before the cutoff and
// returns how many were removed.
func (s *InMemorySessionStore) PurgeIdle(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for actorID, session := range s.sessions {
		if session.UpdatedAt().Before(cutoff) {
			delete(s.sessions, actorID)
			purged++
		}
	}

	return purged
}
