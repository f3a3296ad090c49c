package handlers

import (
	"log/slog"
	"net/http"

	"github.com/mefdet1/Assignment-5/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrder handles POST /orders/
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	handleCreate(w, r, h.log, h.orderService.Create)
}

// ListOrders handles GET /orders/
// Each order embeds its order_details.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	handleList(w, r, h.log, h.orderService.List)
}

// GetOrder handles GET /orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	handleGet(w, r, h.log, h.orderService.Get)
}

// UpdateOrder handles PUT /orders/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	handleUpdate(w, r, h.log, h.orderService.Update)
}

// DeleteOrder handles DELETE /orders/{id}
// Line items of the order are not removed.
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	handleDelete(w, r, h.log, "Order", h.orderService.Delete)
}
