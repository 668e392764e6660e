package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nextbite/nextbite/internal/models"
	"github.com/nextbite/nextbite/internal/validate"
)

// OrderRepository defines the persistence operations required by the
// order service.
type OrderRepository interface {
	// AppendOrder atomically appends entry to the log owned by email,
	// creating the log on first order. Returns the log identifier.
	AppendOrder(ctx context.Context, email string, entry models.OrderEntry) (string, error)
	// GetOrders returns every entry for email in insertion order, or an
	// empty slice when the account has never ordered.
	GetOrders(ctx context.Context, email string) ([]models.OrderEntry, error)
}

// PriceSource resolves catalog prices for server-side re-pricing of
// submitted line items.
type PriceSource interface {
	// Items returns the current product catalog.
	Items(ctx context.Context) ([]models.FoodItem, error)
}

// OrderService validates order submissions and maintains per-account
// order history.
type OrderService struct {
	repo   OrderRepository
	prices PriceSource
	now    func() time.Time
}

// NewOrderService constructs an OrderService. prices may be nil, in which
// case submitted line-item prices are stored as-is.
func NewOrderService(repo OrderRepository, prices PriceSource) *OrderService {
	return &OrderService{repo: repo, prices: prices, now: time.Now}
}

// PlaceOrder appends one checkout to the order log owned by email.
// The payload is validated before any store mutation: the email must be
// syntactically valid and items must be a non-empty list with positive
// quantities, otherwise ErrInvalidOrderPayload is returned. A zero
// orderDate defaults to the current time. Returns the log identifier.
func (s *OrderService) PlaceOrder(ctx context.Context, email string, items []models.LineItem, orderDate time.Time) (string, error) {
	if !validate.IsEmail(email) || len(items) == 0 {
		return "", ErrInvalidOrderPayload
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return "", ErrInvalidOrderPayload
		}
	}

	if orderDate.IsZero() {
		orderDate = s.now()
	}

	items = s.reprice(ctx, items)

	entry := models.OrderEntry{
		ID:        uuid.NewString(),
		OrderDate: orderDate,
		Items:     items,
	}
	return s.repo.AppendOrder(ctx, validate.NormalizeEmail(email), entry)
}

// History returns the full order history for email, oldest first.
// An account that has never ordered yields an empty slice.
func (s *OrderService) History(ctx context.Context, email string) ([]models.OrderEntry, error) {
	if !validate.IsEmail(email) {
		return nil, ErrInvalidOrderPayload
	}
	return s.repo.GetOrders(ctx, validate.NormalizeEmail(email))
}

// reprice replaces submitted unit prices with catalog prices wherever the
// product and variant are known. Items absent from the catalog keep the
// submitted price.
func (s *OrderService) reprice(ctx context.Context, items []models.LineItem) []models.LineItem {
	if s.prices == nil {
		return items
	}
	catalog, err := s.prices.Items(ctx)
	if err != nil {
		// Pricing is best-effort: a catalog read failure must not block checkout.
		return items
	}

	byName := make(map[string]models.FoodItem, len(catalog))
	for _, product := range catalog {
		byName[product.Name] = product
	}

	repriced := make([]models.LineItem, len(items))
	copy(repriced, items)
	for i, item := range repriced {
		product, ok := byName[item.Name]
		if !ok {
			continue
		}
		if price, ok := product.Options[item.Size]; ok {
			repriced[i].Price = price
		}
	}
	return repriced
}
