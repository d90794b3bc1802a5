package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/scream-jar-server/internal/logger"
)

// UsernameCacheRepository caches display names in Redis.
type UsernameCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached names
}

// NewUsernameCacheRepository creates a new repository instance with the given TTL.
func NewUsernameCacheRepository(client *redis.Client, expiration time.Duration) *UsernameCacheRepository {
	return &UsernameCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func usernameKey(userID string) string {
	return "username:" + userID
}

// GetUsername returns a cached username or ErrCacheMiss.
func (r *UsernameCacheRepository) GetUsername(ctx context.Context, userID string) (string, error) {
	key := usernameKey(userID)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"result", val,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", err
	}
	return val, nil
}

// SetUsername caches a username with expiration.
func (r *UsernameCacheRepository) SetUsername(ctx context.Context, userID, username string) error {
	key := usernameKey(userID)
	err := r.client.Set(ctx, key, username, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"value", username,
		"error", err,
	)

	return err
}

// DeleteUsername drops a cached username. Deleting a missing key is not an error.
func (r *UsernameCacheRepository) DeleteUsername(ctx context.Context, userID string) error {
	key := usernameKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
