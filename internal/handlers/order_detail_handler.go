package handlers

import (
	"log/slog"
	"net/http"

	"github.com/mefdet1/Assignment-5/internal/service"
)

// OrderDetailHandler handles order line item HTTP requests
type OrderDetailHandler struct {
	service *service.OrderDetailService
	logger  *slog.Logger
}

func NewOrderDetailHandler(service *service.OrderDetailService, logger *slog.Logger) *OrderDetailHandler {
	return &OrderDetailHandler{
		service: service,
		logger:  logger,
	}
}

// CreateOrderDetail handles POST /order_details/
func (h *OrderDetailHandler) CreateOrderDetail(w http.ResponseWriter, r *http.Request) {
	handleCreate(w, r, h.logger, h.service.Create)
}

// ListOrderDetails handles GET /order_details/
func (h *OrderDetailHandler) ListOrderDetails(w http.ResponseWriter, r *http.Request) {
	handleList(w, r, h.logger, h.service.List)
}

// GetOrderDetail handles GET /order_details/{id}
func (h *OrderDetailHandler) GetOrderDetail(w http.ResponseWriter, r *http.Request) {
	handleGet(w, r, h.logger, h.service.Get)
}

// UpdateOrderDetail handles PUT /order_details/{id}
func (h *OrderDetailHandler) UpdateOrderDetail(w http.ResponseWriter, r *http.Request) {
	handleUpdate(w, r, h.logger, h.service.Update)
}

// DeleteOrderDetail handles DELETE /order_details/{id}
func (h *OrderDetailHandler) DeleteOrderDetail(w http.ResponseWriter, r *http.Request) {
	handleDelete(w, r, h.logger, "Order detail", h.service.Delete)
}
