package reading

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"arcana/internal/catalog"
	"arcana/internal/platform/metrics"
	"arcana/internal/session"
	dErrors "arcana/pkg/domain-errors"
	"arcana/pkg/platform/sentinel"
)

// Request is the client's reading submission. Picks stays raw so the
// validator can tell a non-array apart from bad elements.
type Request struct {
	ShuffleID string          `json:"shuffleId"`
	Question  string          `json:"question"`
	Picks     json.RawMessage `json:"picks"`
}

// RenderedCard is one card's share of the composed reading.
type RenderedCard struct {
	Name  string `json:"name"`
	En    string `json:"en"`
	Img   string `json:"img"`
	Voice string `json:"voice"`
	Desc  string `json:"desc"`
}

// Result is the full reading returned to the client.
type Result struct {
	Cards   []RenderedCard `json:"cards"`
	Closing string         `json:"closing"`
}

// Service validates a reading request against its session and composes the
// reading for each picked card.
type Service struct {
	catalog   *catalog.Catalog
	sessions  *session.Service
	engine    *Engine
	closing   *ClosingComposer
	pickCount int
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

func NewService(cat *catalog.Catalog, sessions *session.Service, engine *Engine, closing *ClosingComposer, pickCount int, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		catalog:   cat,
		sessions:  sessions,
		engine:    engine,
		closing:   closing,
		pickCount: pickCount,
		logger:    logger,
		metrics:   m,
	}
}

// Compose runs the full reading pipeline: session lookup, question presence,
// pick validation, then one composed voice per card plus the closing line.
func (s *Service) Compose(ctx context.Context, req Request) (*Result, error) {
	shuffleID := strings.TrimSpace(req.ShuffleID)
	if shuffleID == "" {
		return nil, dErrors.New(dErrors.CodeMissingShuffleID, "shuffleId is required")
	}

	sess, err := s.sessions.Get(ctx, shuffleID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeShuffleNotFound, "shuffle is unknown or has expired")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load shuffle session")
	}

	// Classification sees the untrimmed question; only the blank check trims.
	if strings.TrimSpace(req.Question) == "" {
		return nil, dErrors.New(dErrors.CodeMissingQuestion, "question is required")
	}

	picks, err := ValidatePicks(sess, req.Picks, s.pickCount)
	if err != nil {
		return nil, err
	}

	cards := make([]RenderedCard, 0, len(picks))
	for _, pick := range picks {
		card := s.catalog.Card(pick)
		cards = append(cards, RenderedCard{
			Name:  card.Name,
			En:    card.En,
			Img:   card.Img,
			Voice: s.engine.Compose(card, req.Question),
			Desc:  card.Desc,
		})
	}

	s.metrics.ReadingsComposed.Inc()
	return &Result{Cards: cards, Closing: s.closing.Compose()}, nil
}
