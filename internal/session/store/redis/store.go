// Package redis provides the Redis-backed session store for deployments where
// multiple instances need to share shuffle state.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"arcana/internal/session"
	"arcana/pkg/platform/sentinel"
)

// Redis key prefix for shuffle sessions.
const sessionKeyPrefix = "arcana:shuffle:"

// Store keeps each session under its own key with a native TTL, so expiry is
// delegated to Redis and Sweep is a no-op.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// New constructs a Redis-backed session store. Keys expire after ttl.
func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func (s *Store) Create(ctx context.Context, sess session.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.client.Set(ctx, sessionKeyPrefix+sess.ID, payload, s.ttl).Err()
}

func (s *Store) Get(ctx context.Context, id string) (session.Session, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return session.Session{}, sentinel.ErrNotFound
	}
	if err != nil {
		return session.Session{}, fmt.Errorf("get session: %w", err)
	}
	var sess session.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return session.Session{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return sess, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}

// Sweep is a no-op: Redis expires keys natively, which is strictly tighter
// than the sweep-interval staleness bound the memory store accepts.
func (s *Store) Sweep(context.Context, time.Time) (int, error) {
	return 0, nil
}
