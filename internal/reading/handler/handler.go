// Package handler wires the reading endpoint to the reading service.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"arcana/internal/platform/metrics"
	"arcana/internal/platform/middleware"
	"arcana/internal/reading"
	"arcana/internal/transport/http/shared"
	dErrors "arcana/pkg/domain-errors"
)

// Service defines the interface for reading composition.
type Service interface {
	Compose(ctx context.Context, req reading.Request) (*reading.Result, error)
}

// Handler handles the reading endpoint.
type Handler struct {
	readings Service
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func New(readings Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{readings: readings, logger: logger, metrics: m}
}

// Register registers the reading route with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/reading", h.handleReading)
}

func (h *Handler) handleReading(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req reading.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid reading request body",
			"request_id", requestID,
			"error", err.Error(),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	result, err := h.readings.Compose(ctx, req)
	if err != nil {
		code := dErrors.CodeOf(err)
		if dErrors.ToHTTPStatus(code) == http.StatusBadRequest {
			h.metrics.IncValidationFailure(string(code))
			h.logger.WarnContext(ctx, "reading request rejected",
				"request_id", requestID,
				"code", string(code),
			)
		} else {
			h.logger.ErrorContext(ctx, "reading composition failed",
				"request_id", requestID,
				"error", err.Error(),
			)
		}
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, result)
}
