package service

import (
	"context"

	"github.com/mefdet1/Assignment-5/internal/models"
)

// OrderService handles order business logic
type OrderService struct {
	crud crud[models.Order]
}

// NewOrderService creates a new order service. The store is expected to
// preload OrderDetails on reads.
func NewOrderService(store Store[models.Order]) *OrderService {
	return &OrderService{
		crud: crud[models.Order]{store: store, entity: "Order"},
	}
}

func (s *OrderService) Create(ctx context.Context, req models.OrderCreate) (*models.Order, error) {
	order, err := s.crud.create(ctx, req.Model())
	if err != nil {
		return nil, err
	}
	return withDetails(order), nil
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	orders, err := s.crud.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		withDetails(&orders[i])
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, id int64) (*models.Order, error) {
	order, err := s.crud.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return withDetails(order), nil
}

func (s *OrderService) Update(ctx context.Context, id int64, req models.OrderUpdate) (*models.Order, error) {
	order, err := s.crud.update(ctx, id, req.Fields())
	if err != nil {
		return nil, err
	}
	return withDetails(order), nil
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	return s.crud.delete(ctx, id)
}

// withDetails makes order_details serialize as [] rather than null.
func withDetails(o *models.Order) *models.Order {
	if o.OrderDetails == nil {
		o.OrderDetails = []models.OrderDetail{}
	}
	return o
}
