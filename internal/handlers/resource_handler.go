package handlers

import (
	"log/slog"
	"net/http"

	"github.com/mefdet1/Assignment-5/internal/service"
)

// ResourceHandler handles inventory resource HTTP requests
type ResourceHandler struct {
	service *service.ResourceService
	logger  *slog.Logger
}

func NewResourceHandler(service *service.ResourceService, logger *slog.Logger) *ResourceHandler {
	return &ResourceHandler{
		service: service,
		logger:  logger,
	}
}

// CreateResource handles POST /resources/
func (h *ResourceHandler) CreateResource(w http.ResponseWriter, r *http.Request) {
	handleCreate(w, r, h.logger, h.service.Create)
}

// ListResources handles GET /resources/
func (h *ResourceHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	handleList(w, r, h.logger, h.service.List)
}

// GetResource handles GET /resources/{id}
func (h *ResourceHandler) GetResource(w http.ResponseWriter, r *http.Request) {
	handleGet(w, r, h.logger, h.service.Get)
}

// UpdateResource handles PUT /resources/{id}
func (h *ResourceHandler) UpdateResource(w http.ResponseWriter, r *http.Request) {
	handleUpdate(w, r, h.logger, h.service.Update)
}

// DeleteResource handles DELETE /resources/{id}
func (h *ResourceHandler) DeleteResource(w http.ResponseWriter, r *http.Request) {
	handleDelete(w, r, h.logger, "Resource", h.service.Delete)
}
