package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// StartResetTokenCleaner clears expired password-reset tokens with interval.
// Consumption already treats expired tokens as invalid; the cleaner keeps
// stale token material from lingering in user documents.
func StartResetTokenCleaner(
	ctx context.Context,
	db *mongo.Database,
	interval time.Duration,
	log *zap.Logger,
) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				filter := bson.M{"resetPasswordExpires": bson.M{"$lt": time.Now()}}
				update := bson.M{"$unset": bson.M{
					"resetPasswordToken":   "",
					"resetPasswordExpires": "",
				}}
				res, err := db.Collection("users").UpdateMany(ctx, filter, update)
				if err != nil {
					log.Error("failed to clean expired reset tokens", zap.Error(err))
					continue
				}
				if res.ModifiedCount > 0 {
					log.Info("cleaned expired reset tokens", zap.Int64("removed", res.ModifiedCount))
				}
			}
		}
	}()
}
