package service

import (
	"context"

	"github.com/mefdet1/Assignment-5/internal/models"
)

// ResourceService handles business logic for inventory resources
type ResourceService struct {
	crud crud[models.Resource]
}

func NewResourceService(store Store[models.Resource]) *ResourceService {
	return &ResourceService{
		crud: crud[models.Resource]{store: store, entity: "Resource"},
	}
}

func (s *ResourceService) Create(ctx context.Context, req models.ResourceCreate) (*models.Resource, error) {
	return s.crud.create(ctx, req.Model())
}

func (s *ResourceService) List(ctx context.Context) ([]models.Resource, error) {
	return s.crud.list(ctx)
}

func (s *ResourceService) Get(ctx context.Context, id int64) (*models.Resource, error) {
	return s.crud.get(ctx, id)
}

func (s *ResourceService) Update(ctx context.Context, id int64, req models.ResourceUpdate) (*models.Resource, error) {
	return s.crud.update(ctx, id, req.Fields())
}

func (s *ResourceService) Delete(ctx context.Context, id int64) error {
	return s.crud.delete(ctx, id)
}
