package service

import (
	"context"

	"github.com/mefdet1/Assignment-5/internal/models"
)

// RecipeService handles recipe line items. Sandwich and resource references
// are stored as given; nothing checks that they exist.
type RecipeService struct {
	crud crud[models.Recipe]
}

func NewRecipeService(store Store[models.Recipe]) *RecipeService {
	return &RecipeService{
		crud: crud[models.Recipe]{store: store, entity: "Recipe"},
	}
}

func (s *RecipeService) Create(ctx context.Context, req models.RecipeCreate) (*models.Recipe, error) {
	return s.crud.create(ctx, req.Model())
}

func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	return s.crud.list(ctx)
}

func (s *RecipeService) Get(ctx context.Context, id int64) (*models.Recipe, error) {
	return s.crud.get(ctx, id)
}

func (s *RecipeService) Update(ctx context.Context, id int64, req models.RecipeUpdate) (*models.Recipe, error) {
	return s.crud.update(ctx, id, req.Fields())
}

func (s *RecipeService) Delete(ctx context.Context, id int64) error {
	return s.crud.delete(ctx, id)
}
