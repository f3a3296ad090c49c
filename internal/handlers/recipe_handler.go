package handlers

import (
	"log/slog"
	"net/http"

	"github.com/mefdet1/Assignment-5/internal/service"
)

type RecipeHandler struct {
	service *service.RecipeService
	logger  *slog.Logger
}

func NewRecipeHandler(service *service.RecipeService, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		service: service,
		logger:  logger,
	}
}

// CreateRecipe handles POST /recipes/
func (h *RecipeHandler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	handleCreate(w, r, h.logger, h.service.Create)
}

// ListRecipes handles GET /recipes/
func (h *RecipeHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	handleList(w, r, h.logger, h.service.List)
}

// GetRecipe handles GET /recipes/{id}
func (h *RecipeHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	handleGet(w, r, h.logger, h.service.Get)
}

// UpdateRecipe handles PUT /recipes/{id}
func (h *RecipeHandler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	handleUpdate(w, r, h.logger, h.service.Update)
}

// DeleteRecipe handles DELETE /recipes/{id}
func (h *RecipeHandler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	handleDelete(w, r, h.logger, "Recipe", h.service.Delete)
}
