package service

import (
	"context"

	"github.com/mefdet1/Assignment-5/internal/models"
)

// SandwichService handles business logic for the sandwich catalog
type SandwichService struct {
	crud crud[models.Sandwich]
}

// NewSandwichService creates a new sandwich service
func NewSandwichService(store Store[models.Sandwich]) *SandwichService {
	return &SandwichService{
		crud: crud[models.Sandwich]{store: store, entity: "Sandwich"},
	}
}

func (s *SandwichService) Create(ctx context.Context, req models.SandwichCreate) (*models.Sandwich, error) {
	return s.crud.create(ctx, req.Model())
}

func (s *SandwichService) List(ctx context.Context) ([]models.Sandwich, error) {
	return s.crud.list(ctx)
}

func (s *SandwichService) Get(ctx context.Context, id int64) (*models.Sandwich, error) {
	return s.crud.get(ctx, id)
}

func (s *SandwichService) Update(ctx context.Context, id int64, req models.SandwichUpdate) (*models.Sandwich, error) {
	return s.crud.update(ctx, id, req.Fields())
}

func (s *SandwichService) Delete(ctx context.Context, id int64) error {
	return s.crud.delete(ctx, id)
}

// Empty reports whether the catalog has no sandwiches yet
func (s *SandwichService) Empty(ctx context.Context) (bool, error) {
	return s.crud.empty(ctx)
}
