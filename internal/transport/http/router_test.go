package httptransport_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcana/internal/catalog"
	"arcana/internal/platform/metrics"
	"arcana/internal/platform/random"
	"arcana/internal/reading"
	readinghandler "arcana/internal/reading/handler"
	"arcana/internal/session"
	"arcana/internal/session/store/memory"
	"arcana/internal/shuffle"
	shufflehandler "arcana/internal/shuffle/handler"
	httptransport "arcana/internal/transport/http"
	"arcana/pkg/testutil"
)

type shuffleResponse struct {
	ShuffleID string `json:"shuffleId"`
	Pool      []int  `json:"pool"`
}

func testCards(n int) []catalog.Card {
	cards := make([]catalog.Card, n)
	for i := range cards {
		cards[i] = catalog.Card{
			Name:     "牌",
			En:       "Card",
			Img:      "card.jpg",
			Desc:     "A card.",
			Keywords: []string{"keyword"},
		}
	}
	return cards
}

func newTestRouter(t *testing.T, cat *catalog.Catalog) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New(prometheus.NewRegistry())
	rng := random.NewSeeded(1)

	sessions := session.NewService(memory.New(), 30*time.Minute, logger, m)
	shuffles := shuffle.NewService(cat, sessions, shuffle.NewSampler(rng), 8, logger, m)
	readings := reading.NewService(cat, sessions,
		reading.NewEngine(rng), reading.NewClosingComposer(rng), 7, logger, m)

	return httptransport.NewRouter(logger, m,
		shufflehandler.New(shuffles, logger),
		readinghandler.New(readings, logger, m),
		"",
	)
}

func doShuffle(t *testing.T, router http.Handler) shuffleResponse {
	t.Helper()
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/shuffle"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	return *testutil.UnmarshalResponse[shuffleResponse](t, rr)
}

func TestShuffleReturnsUniquePool(t *testing.T) {
	router := newTestRouter(t, catalog.New(testCards(78)))

	resp := doShuffle(t, router)
	require.NotEmpty(t, resp.ShuffleID)
	require.Len(t, resp.Pool, 8)

	seen := make(map[int]struct{})
	for _, idx := range resp.Pool {
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 78)
		_, dup := seen[idx]
		assert.False(t, dup, "pool contains %d twice", idx)
		seen[idx] = struct{}{}
	}
}

func TestShuffleSmallCatalogShrinksPool(t *testing.T) {
	router := newTestRouter(t, catalog.New(testCards(5)))

	resp := doShuffle(t, router)
	assert.Len(t, resp.Pool, 5)
}

func TestShuffleEmptyCatalogFails(t *testing.T) {
	router := newTestRouter(t, catalog.New(nil))

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/shuffle"))
	testutil.AssertStatusAndError(t, rr, http.StatusInternalServerError, "empty_catalog")
}

func TestReadingHappyPath(t *testing.T) {
	router := newTestRouter(t, catalog.New(testCards(78)))
	pool := doShuffle(t, router)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/reading", map[string]any{
		"shuffleId": pool.ShuffleID,
		"question":  "最近的感情会有进展吗",
		"picks":     pool.Pool[:7],
	})
	rr := testutil.DoRequest(router, req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	result := testutil.UnmarshalResponse[reading.Result](t, rr)
	require.Len(t, result.Cards, 7)
	assert.NotEmpty(t, result.Closing)
	for _, card := range result.Cards {
		assert.NotEmpty(t, card.Voice)
		assert.Equal(t, "Card", card.En)
	}
}

func TestReadingValidationErrors(t *testing.T) {
	router := newTestRouter(t, catalog.New(testCards(78)))
	pool := doShuffle(t, router)

	duplicated := append([]int{}, pool.Pool[:6]...)
	duplicated = append(duplicated, pool.Pool[0])

	outOfPool := []int{100, 101, 102, 103, 104, 105, 106}

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
		wantCode   string
	}{
		{
			"missing shuffle id",
			map[string]any{"question": "why", "picks": pool.Pool[:7]},
			http.StatusBadRequest, "missing_shuffle_id",
		},
		{
			"unknown shuffle id",
			map[string]any{"shuffleId": "nope", "question": "why", "picks": pool.Pool[:7]},
			http.StatusBadRequest, "shuffle_not_found",
		},
		{
			"blank question",
			map[string]any{"shuffleId": pool.ShuffleID, "question": "   ", "picks": pool.Pool[:7]},
			http.StatusBadRequest, "missing_question",
		},
		{
			"picks not an array",
			map[string]any{"shuffleId": pool.ShuffleID, "question": "why", "picks": "1,2,3"},
			http.StatusBadRequest, "picks_not_array",
		},
		{
			"wrong pick count",
			map[string]any{"shuffleId": pool.ShuffleID, "question": "why", "picks": pool.Pool},
			http.StatusBadRequest, "wrong_pick_count",
		},
		{
			"non-integer pick",
			map[string]any{"shuffleId": pool.ShuffleID, "question": "why",
				"picks": []any{"x", pool.Pool[1], pool.Pool[2], pool.Pool[3], pool.Pool[4], pool.Pool[5], pool.Pool[6]}},
			http.StatusBadRequest, "invalid_pick",
		},
		{
			"picks outside the pool",
			map[string]any{"shuffleId": pool.ShuffleID, "question": "why", "picks": outOfPool},
			http.StatusBadRequest, "pick_out_of_pool",
		},
		{
			"duplicate pick",
			map[string]any{"shuffleId": pool.ShuffleID, "question": "why", "picks": duplicated},
			http.StatusBadRequest, "duplicate_pick",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.NewJSONRequest(t, http.MethodPost, "/api/reading", tt.body)
			rr := testutil.DoRequest(router, req)
			testutil.AssertStatusAndError(t, rr, tt.wantStatus, tt.wantCode)
		})
	}
}

func TestReadingMalformedBody(t *testing.T) {
	router := newTestRouter(t, catalog.New(testCards(78)))

	req := testutil.NewRequestWithBody(t, http.MethodPost, "/api/reading", "{not json")
	rr := testutil.DoRequest(router, req)
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
}

func TestReadingExpiredSessionAfterSweep(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New(prometheus.NewRegistry())
	rng := random.NewSeeded(1)
	cat := catalog.New(testCards(78))
	store := memory.New()

	sessions := session.NewService(store, 30*time.Minute, logger, m)
	shuffles := shuffle.NewService(cat, sessions, shuffle.NewSampler(rng), 8, logger, m)
	readings := reading.NewService(cat, sessions,
		reading.NewEngine(rng), reading.NewClosingComposer(rng), 7, logger, m)
	router := httptransport.NewRouter(logger, m,
		shufflehandler.New(shuffles, logger),
		readinghandler.New(readings, logger, m),
		"",
	)

	pool := doShuffle(t, router)

	// Backdate the session past the TTL, then sweep it away.
	sess, err := store.Get(t.Context(), pool.ShuffleID)
	require.NoError(t, err)
	sess.CreatedAt = time.Now().UTC().Add(-31 * time.Minute)
	require.NoError(t, store.Create(t.Context(), sess))
	require.Equal(t, 1, sessions.Sweep(t.Context()))

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/reading", map[string]any{
		"shuffleId": pool.ShuffleID,
		"question":  "still there?",
		"picks":     pool.Pool[:7],
	})
	rr := testutil.DoRequest(router, req)
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "shuffle_not_found")
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, catalog.New(testCards(1)))

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestMetricsEndpointExposed(t *testing.T) {
	router := newTestRouter(t, catalog.New(testCards(1)))

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, body)
}

func TestReadingResponseShape(t *testing.T) {
	router := newTestRouter(t, catalog.New(testCards(78)))
	pool := doShuffle(t, router)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/reading", map[string]any{
		"shuffleId": pool.ShuffleID,
		"question":  "what should I focus on",
		"picks":     pool.Pool[:7],
	})
	rr := testutil.DoRequest(router, req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	require.Contains(t, raw, "cards")
	require.Contains(t, raw, "closing")
}
