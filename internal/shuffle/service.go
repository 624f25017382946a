package shuffle

import (
	"context"
	"log/slog"

	"arcana/internal/catalog"
	"arcana/internal/platform/metrics"
	"arcana/internal/session"
	dErrors "arcana/pkg/domain-errors"
)

// Service draws a pool from the catalog and persists it as a session.
type Service struct {
	catalog  *catalog.Catalog
	sessions *session.Service
	sampler  *Sampler
	poolSize int
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func NewService(cat *catalog.Catalog, sessions *session.Service, sampler *Sampler, poolSize int, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		catalog:  cat,
		sessions: sessions,
		sampler:  sampler,
		poolSize: poolSize,
		logger:   logger,
		metrics:  m,
	}
}

// Shuffle draws a fresh pool and returns the persisted session. The pool holds
// poolSize indices, or fewer if the catalog is smaller.
func (s *Service) Shuffle(ctx context.Context) (session.Session, error) {
	if s.catalog.Len() == 0 {
		return session.Session{}, dErrors.New(dErrors.CodeEmptyCatalog, "no cards loaded")
	}

	pool := s.sampler.Sample(s.catalog.Len(), s.poolSize)
	sess, err := s.sessions.Create(ctx, pool)
	if err != nil {
		return session.Session{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store shuffle session")
	}

	s.metrics.ShufflesIssued.Inc()
	return sess, nil
}
