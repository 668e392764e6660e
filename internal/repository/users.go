// Package repository provides MongoDB-backed persistence for accounts,
// order logs, and the food catalog.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nextbite/nextbite/internal/models"
)

var (
	// ErrDuplicateEmail is returned when an insert collides with the
	// unique email index.
	ErrDuplicateEmail = errors.New("email already in use")
	// ErrUserNotFound is returned when no account matches the lookup.
	ErrUserNotFound = errors.New("user not found")
)

// opTimeout bounds every store call so a request never hangs on the database.
const opTimeout = 5 * time.Second

// MongoUserRepository implements account persistence against the
// "users" collection.
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a MongoUserRepository using the given database.
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection("users")}
}

// Create inserts a new account and returns its identifier.
// Returns ErrDuplicateEmail when an account with the same email exists.
func (r *MongoUserRepository) Create(ctx context.Context, account *models.Account) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	account.CreatedAt = time.Now()

	res, err := r.collection.InsertOne(ctx, account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicateEmail
		}
		return "", fmt.Errorf("insert user: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert user: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindByEmail fetches the account registered under email.
// Returns ErrUserNotFound when no such account exists.
func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var account models.Account
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &account, nil
}

// SetResetToken stores a password-reset token and its expiry on the account.
// Overwrites any previous token; setting twice is safe.
func (r *MongoUserRepository) SetResetToken(ctx context.Context, email, token string, expiry time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"resetPasswordToken":   token,
		"resetPasswordExpires": expiry,
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return fmt.Errorf("set reset token: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ConsumeResetToken looks up the account holding token, requiring the
// expiry to still be in the future. An expired or unknown token yields
// ErrUserNotFound.
func (r *MongoUserRepository) ConsumeResetToken(ctx context.Context, token string) (*models.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{
		"resetPasswordToken":   token,
		"resetPasswordExpires": bson.M{"$gt": time.Now()},
	}
	var account models.Account
	err := r.collection.FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("consume reset token: %w", err)
	}
	return &account, nil
}

// UpdatePassword replaces the account's password hash and clears any
// outstanding reset token in the same update.
func (r *MongoUserRepository) UpdatePassword(ctx context.Context, email, newHash string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{"password": newHash},
		"$unset": bson.M{
			"resetPasswordToken":   "",
			"resetPasswordExpires": "",
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
