package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// HealthHandler provides health check endpoint
type HealthHandler struct {
	check  func(ctx context.Context) error
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler. check reports whether the
// store is reachable; nil means always healthy.
func NewHealthHandler(check func(ctx context.Context) error, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		check:  check,
		logger: logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   "1.0.0",
	}
	status := http.StatusOK

	if h.check != nil {
		if err := h.check(r.Context()); err != nil {
			h.logger.Error("health check failed", "error", err)
			response.Status = "unhealthy"
			status = http.StatusServiceUnavailable
		}
	}

	WriteJSON(w, status, response, h.logger)
}
