package handlers

import (
	"log/slog"
	"net/http"

	"github.com/mefdet1/Assignment-5/internal/service"
)

// SandwichHandler handles sandwich catalog HTTP requests
type SandwichHandler struct {
	service *service.SandwichService
	logger  *slog.Logger
}

// NewSandwichHandler creates a new sandwich handler
func NewSandwichHandler(service *service.SandwichService, logger *slog.Logger) *SandwichHandler {
	return &SandwichHandler{
		service: service,
		logger:  logger,
	}
}

// CreateSandwich handles POST /sandwiches/
func (h *SandwichHandler) CreateSandwich(w http.ResponseWriter, r *http.Request) {
	handleCreate(w, r, h.logger, h.service.Create)
}

// ListSandwiches handles GET /sandwiches/
func (h *SandwichHandler) ListSandwiches(w http.ResponseWriter, r *http.Request) {
	handleList(w, r, h.logger, h.service.List)
}

// GetSandwich handles GET /sandwiches/{id}
func (h *SandwichHandler) GetSandwich(w http.ResponseWriter, r *http.Request) {
	handleGet(w, r, h.logger, h.service.Get)
}

// UpdateSandwich handles PUT /sandwiches/{id}
func (h *SandwichHandler) UpdateSandwich(w http.ResponseWriter, r *http.Request) {
	handleUpdate(w, r, h.logger, h.service.Update)
}

// DeleteSandwich handles DELETE /sandwiches/{id}
func (h *SandwichHandler) DeleteSandwich(w http.ResponseWriter, r *http.Request) {
	handleDelete(w, r, h.logger, "Sandwich", h.service.Delete)
}
