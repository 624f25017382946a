package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"arcana/internal/platform/metrics"
)

// Service owns session id generation and the TTL policy. Handlers receive it
// injected; nothing else touches the store directly.
type Service struct {
	store   Store
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewService(store Store, ttl time.Duration, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{store: store, ttl: ttl, logger: logger, metrics: m}
}

// Create persists a new session for the given pool and returns it. The session
// is fully stored before the id is handed back, so an immediately-following
// reading request will observe a consistent pool.
func (s *Service) Create(ctx context.Context, pool []int) (Session, error) {
	sess := Session{
		ID:        uuid.NewString(),
		Pool:      pool,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Create(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Get looks up a session by id. Expiry is not checked here: the periodic sweep
// bounds staleness at TTL plus one sweep interval, which is accepted.
func (s *Service) Get(ctx context.Context, id string) (Session, error) {
	return s.store.Get(ctx, id)
}

// Sweep removes sessions older than the TTL.
func (s *Service) Sweep(ctx context.Context) int {
	removed, err := s.store.Sweep(ctx, time.Now().UTC().Add(-s.ttl))
	if err != nil {
		s.logger.WarnContext(ctx, "session sweep failed", "error", err.Error())
		return 0
	}
	if removed > 0 {
		s.metrics.SessionsSwept.Add(float64(removed))
		s.logger.InfoContext(ctx, "session sweep", "removed", removed)
	}
	return removed
}

// Run sweeps on a fixed interval until ctx is cancelled.
func (s *Service) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}
