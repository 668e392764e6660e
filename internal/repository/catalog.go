package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nextbite/nextbite/internal/models"
)

// MongoCatalogRepository reads the food catalog from the "products" and
// "categories" collections.
type MongoCatalogRepository struct {
	products   *mongo.Collection
	categories *mongo.Collection
}

// NewMongoCatalogRepository creates a MongoCatalogRepository using the given database.
func NewMongoCatalogRepository(db *mongo.Database) *MongoCatalogRepository {
	return &MongoCatalogRepository{
		products:   db.Collection("products"),
		categories: db.Collection("categories"),
	}
}

// FoodItems returns the full product catalog.
func (r *MongoCatalogRepository) FoodItems(ctx context.Context) ([]models.FoodItem, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := r.products.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.FoodItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return items, nil
}

// FoodCategories returns every catalog category.
func (r *MongoCatalogRepository) FoodCategories(ctx context.Context) ([]models.FoodCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := r.categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []models.FoodCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}
