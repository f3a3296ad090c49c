package service

import (
	"context"

	"github.com/mefdet1/Assignment-5/internal/models"
)

// OrderDetailService handles order line items
type OrderDetailService struct {
	crud crud[models.OrderDetail]
}

func NewOrderDetailService(store Store[models.OrderDetail]) *OrderDetailService {
	return &OrderDetailService{
		crud: crud[models.OrderDetail]{store: store, entity: "Order detail"},
	}
}

func (s *OrderDetailService) Create(ctx context.Context, req models.OrderDetailCreate) (*models.OrderDetail, error) {
	return s.crud.create(ctx, req.Model())
}

func (s *OrderDetailService) List(ctx context.Context) ([]models.OrderDetail, error) {
	return s.crud.list(ctx)
}

func (s *OrderDetailService) Get(ctx context.Context, id int64) (*models.OrderDetail, error) {
	return s.crud.get(ctx, id)
}

func (s *OrderDetailService) Update(ctx context.Context, id int64, req models.OrderDetailUpdate) (*models.OrderDetail, error) {
	return s.crud.update(ctx, id, req.Fields())
}

func (s *OrderDetailService) Delete(ctx context.Context, id int64) error {
	return s.crud.delete(ctx, id)
}
