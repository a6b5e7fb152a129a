package ports

import (
	"time"

	"receipts/internal/core/domain/model/intake"
)

// SessionStore keeps the active intake session of each operator. Sessions are
// ephemeral process state: implementations must be safe for concurrent use by
// independent actors, but inputs for a single actor are serialized by the
// dispatch layer, never by the store.
type SessionStore interface {
	// Get returns the actor's active session, if any.
	Get(actorID string) (*intake.Session, bool)

	// Put stores or replaces the actor's session.
	Put(session *intake.Session)

	// Delete removes the actor's session. Removing a missing session is a no-op.
	Delete(actorID string)

	// PurgeIdle removes sessions whose last activity is before the cutoff and
	// returns how many were removed.
	PurgeIdle(cutoff time.Time) int
}
