// Package session manages shuffle sessions: the server-side record binding an
// opaque id to the pool of card indices offered to one client.
package session

import (
	"context"
	"time"
)

// Session binds an opaque id to a drawn pool. Sessions are never updated after
// creation; the store is append and delete only.
type Session struct {
	ID        string    `json:"id"`
	Pool      []int     `json:"pool"`
	CreatedAt time.Time `json:"created_at"`
}

// PoolContains reports whether idx was part of this session's draw.
func (s Session) PoolContains(idx int) bool {
	for _, p := range s.Pool {
		if p == idx {
			return true
		}
	}
	return false
}

// Store persists shuffle sessions. Implementations return
// sentinel.ErrNotFound from Get when the id is absent.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
	// Sweep removes sessions created before cutoff and reports how many were
	// removed. Stores with native expiry may implement this as a no-op.
	Sweep(ctx context.Context, cutoff time.Time) (int, error)
}
