// Package handler wires the shuffle endpoint to the shuffle service.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"arcana/internal/platform/middleware"
	"arcana/internal/session"
	"arcana/internal/transport/http/shared"
)

// Service defines the interface for shuffle operations.
type Service interface {
	Shuffle(ctx context.Context) (session.Session, error)
}

// Handler handles the shuffle endpoint.
type Handler struct {
	shuffle Service
	logger  *slog.Logger
}

func New(shuffle Service, logger *slog.Logger) *Handler {
	return &Handler{shuffle: shuffle, logger: logger}
}

// Register registers the shuffle route with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/shuffle", h.handleShuffle)
}

type shuffleResponse struct {
	ShuffleID string `json:"shuffleId"`
	Pool      []int  `json:"pool"`
}

func (h *Handler) handleShuffle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, err := h.shuffle.Shuffle(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "shuffle failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, shuffleResponse{
		ShuffleID: sess.ID,
		Pool:      sess.Pool,
	})
}
