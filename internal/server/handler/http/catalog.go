package http

import (
	"context"
	"net/http"

	"github.com/nextbite/nextbite/internal/models"
)

// CatalogService defines the interface for catalog reads required by
// the CatalogHandler.
type CatalogService interface {
	// Snapshot returns the current food items and categories.
	Snapshot(ctx context.Context) ([]models.FoodItem, []models.FoodCategory, error)
	// Categories returns the current category list.
	Categories(ctx context.Context) ([]models.FoodCategory, error)
}

// CatalogHandler handles HTTP requests for the food catalog.
type CatalogHandler struct {
	// CatalogService performs the underlying catalog reads.
	CatalogService CatalogService
	// Production suppresses error details in responses.
	Production bool
}

// FoodData handles GET and POST /api/foodData, returning the full
// product catalog together with the category list.
func (h *CatalogHandler) FoodData(w http.ResponseWriter, r *http.Request) {
	items, categories, err := h.CatalogService.Snapshot(r.Context())
	if err != nil {
		writeServerError(w, h.Production, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"data":       items,
		"categories": categories,
	})
}

// FoodCategory handles GET and POST /api/foodCategory, returning the
// category list only.
func (h *CatalogHandler) FoodCategory(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CatalogService.Categories(r.Context())
	if err != nil {
		writeServerError(w, h.Production, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"categories": categories,
	})
}
