package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/mefdet1/Assignment-5/internal/service"
)

// Stats counts the rows created by Apply
type Stats struct {
	Skipped    bool
	Resources  int
	Sandwiches int
	Recipes    int
}

// Seeder writes catalogs through the regular services
type Seeder struct {
	sandwiches *service.SandwichService
	resources  *service.ResourceService
	recipes    *service.RecipeService
	validate   *validator.Validate
	log        *slog.Logger
}

func NewSeeder(sandwiches *service.SandwichService, resources *service.ResourceService, recipes *service.RecipeService, log *slog.Logger) *Seeder {
	return &Seeder{
		sandwiches: sandwiches,
		resources:  resources,
		recipes:    recipes,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		log:        log,
	}
}

// Apply creates every entry of every catalog, in order: per catalog
// resources, then sandwiches, then recipes. Nothing is written when the
// store already holds sandwiches.
func (s *Seeder) Apply(ctx context.Context, catalogs []Catalog) (Stats, error) {
	var stats Stats

	empty, err := s.sandwiches.Empty(ctx)
	if err != nil {
		return stats, fmt.Errorf("check existing catalog: %w", err)
	}
	if !empty {
		s.log.Info("catalog already present, skipping seed")
		stats.Skipped = true
		return stats, nil
	}

	for i, c := range catalogs {
		for j, req := range c.Resources {
			if err := s.validate.Struct(req); err != nil {
				return stats, fmt.Errorf("catalog %d resource %d: %w", i+1, j+1, err)
			}
			if _, err := s.resources.Create(ctx, req); err != nil {
				return stats, fmt.Errorf("catalog %d resource %d: %w", i+1, j+1, err)
			}
			stats.Resources++
		}

		for j, req := range c.Sandwiches {
			if err := s.validate.Struct(req); err != nil {
				return stats, fmt.Errorf("catalog %d sandwich %d: %w", i+1, j+1, err)
			}
			if _, err := s.sandwiches.Create(ctx, req); err != nil {
				return stats, fmt.Errorf("catalog %d sandwich %d: %w", i+1, j+1, err)
			}
			stats.Sandwiches++
		}

		for j, req := range c.Recipes {
			if err := s.validate.Struct(req); err != nil {
				return stats, fmt.Errorf("catalog %d recipe %d: %w", i+1, j+1, err)
			}
			if _, err := s.recipes.Create(ctx, req); err != nil {
				return stats, fmt.Errorf("catalog %d recipe %d: %w", i+1, j+1, err)
			}
			stats.Recipes++
		}
	}

	s.log.Info("catalog seeded",
		"resources", stats.Resources,
		"sandwiches", stats.Sandwiches,
		"recipes", stats.Recipes,
	)
	return stats, nil
}
