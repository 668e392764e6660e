package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitMongo connects to MongoDB, verifies the connection with a ping,
// and ensures the unique indexes the application relies on.
func InitMongo(ctx context.Context, uri, database string) (*mongo.Database, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100).
		SetMinPoolSize(10)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(database)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}

// ensureIndexes creates the unique email indexes backing account identity
// and the one-document-per-email order log.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	emailUnique := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	if _, err := db.Collection("users").Indexes().CreateOne(ctx, emailUnique); err != nil {
		return fmt.Errorf("create users index: %w", err)
	}
	if _, err := db.Collection("orders").Indexes().CreateOne(ctx, emailUnique); err != nil {
		return fmt.Errorf("create orders index: %w", err)
	}
	return nil
}
