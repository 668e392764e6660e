package service

import (
	"context"
	"sync"
	"time"

	"github.com/nextbite/nextbite/internal/models"
)

// CatalogRepository defines the read operations required by the catalog
// service.
type CatalogRepository interface {
	FoodItems(ctx context.Context) ([]models.FoodItem, error)
	FoodCategories(ctx context.Context) ([]models.FoodCategory, error)
}

// CatalogService serves catalog snapshots through a TTL-bounded cache so
// every request does not hit the store. The cache is owned by the service
// instance, never process-wide state.
type CatalogService struct {
	repo CatalogRepository
	ttl  time.Duration
	now  func() time.Time

	mu         sync.Mutex
	items      []models.FoodItem
	categories []models.FoodCategory
	fetchedAt  time.Time
}

// NewCatalogService constructs a CatalogService. A zero ttl defaults to
// five minutes.
func NewCatalogService(repo CatalogRepository, ttl time.Duration) *CatalogService {
	if ttl == 0 {
		ttl = 5 * time.Minute
	}
	return &CatalogService{repo: repo, ttl: ttl, now: time.Now}
}

// Snapshot returns the current food items and categories, refreshing the
// cache from the store when the TTL has elapsed.
func (s *CatalogService) Snapshot(ctx context.Context) ([]models.FoodItem, []models.FoodCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.fetchedAt.IsZero() && s.now().Sub(s.fetchedAt) < s.ttl {
		return s.items, s.categories, nil
	}

	items, err := s.repo.FoodItems(ctx)
	if err != nil {
		return nil, nil, err
	}
	categories, err := s.repo.FoodCategories(ctx)
	if err != nil {
		return nil, nil, err
	}

	s.items = items
	s.categories = categories
	s.fetchedAt = s.now()
	return items, categories, nil
}

// Items returns the cached product catalog.
func (s *CatalogService) Items(ctx context.Context) ([]models.FoodItem, error) {
	items, _, err := s.Snapshot(ctx)
	return items, err
}

// Categories returns the cached category list.
func (s *CatalogService) Categories(ctx context.Context) ([]models.FoodCategory, error) {
	_, categories, err := s.Snapshot(ctx)
	return categories, err
}
