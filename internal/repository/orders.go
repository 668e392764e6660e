package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nextbite/nextbite/internal/models"
)

// MongoOrderRepository implements the per-user append-only order log
// against the "orders" collection. One document per email.
type MongoOrderRepository struct {
	collection *mongo.Collection
}

// NewMongoOrderRepository creates a MongoOrderRepository using the given database.
func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{collection: db.Collection("orders")}
}

// AppendOrder appends entry to the order log owned by email, creating the
// log document if it does not exist yet. The upsert-and-push is a single
// atomic update, so concurrent checkouts for the same email cannot lose
// entries. Returns the log document's identifier.
func (r *MongoOrderRepository) AppendOrder(ctx context.Context, email string, entry models.OrderEntry) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"email": email}
	update := bson.M{"$push": bson.M{"orderData": entry}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After).
		SetProjection(bson.M{"_id": 1})

	var log models.OrderLog
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&log)
	if err != nil {
		return "", fmt.Errorf("append order: %w", err)
	}
	return log.ID.Hex(), nil
}

// GetOrders returns every entry in the log owned by email, in insertion
// order. An account that has never ordered yields an empty slice, not an
// error.
func (r *MongoOrderRepository) GetOrders(ctx context.Context, email string) ([]models.OrderEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var log models.OrderLog
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []models.OrderEntry{}, nil
		}
		return nil, fmt.Errorf("get orders: %w", err)
	}
	return log.Entries, nil
}
