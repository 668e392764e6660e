package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nextbite/nextbite/internal/models"
)

// fakeCatalogService implements CatalogService for testing.
type fakeCatalogService struct {
	items      []models.FoodItem
	categories []models.FoodCategory
	err        error
}

func (f *fakeCatalogService) Snapshot(context.Context) ([]models.FoodItem, []models.FoodCategory, error) {
	return f.items, f.categories, f.err
}

func (f *fakeCatalogService) Categories(context.Context) ([]models.FoodCategory, error) {
	return f.categories, f.err
}

func TestCatalogHandler_FoodData(t *testing.T) {
	svc := &fakeCatalogService{
		items:      []models.FoodItem{{Name: "Pizza", CategoryName: "Mains"}},
		categories: []models.FoodCategory{{CategoryName: "Mains"}},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/foodData", nil)
	(&CatalogHandler{CatalogService: svc}).FoodData(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	var payload struct {
		Success    bool                  `json:"success"`
		Data       []models.FoodItem     `json:"data"`
		Categories []models.FoodCategory `json:"categories"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !payload.Success || len(payload.Data) != 1 || len(payload.Categories) != 1 {
		t.Errorf("payload = %+v", payload)
	}
}

func TestCatalogHandler_FoodCategory(t *testing.T) {
	svc := &fakeCatalogService{categories: []models.FoodCategory{{CategoryName: "Mains"}}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/foodCategory", nil)
	(&CatalogHandler{CatalogService: svc}).FoodCategory(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
}

func TestCatalogHandler_StoreFailure(t *testing.T) {
	svc := &fakeCatalogService{err: errors.New("store down")}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/foodData", nil)
	(&CatalogHandler{CatalogService: svc, Production: true}).FoodData(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", rec.Code)
	}
	var payload map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, leaked := payload["details"]; leaked {
		t.Error("production response must not include details")
	}
}
