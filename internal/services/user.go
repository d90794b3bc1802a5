package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/scream-jar-server/internal/logger"
	"github.com/sbilibin2017/scream-jar-server/internal/models"
	"github.com/sbilibin2017/scream-jar-server/internal/repositories"
)

//go:generate mockgen -source=user.go -destination=mock_user.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id string) (*models.UserDB, error)
	Exists(ctx context.Context, id string) (bool, error)
	GetUsername(ctx context.Context, id string) (string, error)
}

// UsernameCache keeps display names close to the handlers.
type UsernameCache interface {
	GetUsername(ctx context.Context, userID string) (string, error)
	SetUsername(ctx context.Context, userID, username string) error
	DeleteUsername(ctx context.Context, userID string) error
}

// UserService serves user lookups.
type UserService struct {
	reader UserReader
	cache  UsernameCache
}

// NewUserService creates a new UserService instance. cache may be nil.
func NewUserService(reader UserReader, cache UsernameCache) *UserService {
	return &UserService{
		reader: reader,
		cache:  cache,
	}
}

// LoadUser returns the stored user record.
func (svc *UserService) LoadUser(ctx context.Context, id string) (*models.UserDB, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}

	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to load user", "id", id, "err", err)
		return nil, err
	}
	return user, nil
}

// UserExists reports whether a user is stored. An absent user is an answer,
// not an error.
func (svc *UserService) UserExists(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, nil
	}

	exists, err := svc.reader.Exists(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "id", id, "err", err)
		return false, err
	}
	return exists, nil
}

// GetUsername returns the display name of a user, reading through the cache.
func (svc *UserService) GetUsername(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("%w: id is required", ErrValidation)
	}

	if svc.cache != nil {
		username, err := svc.cache.GetUsername(ctx, id)
		if err == nil {
			return username, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Warnw("username cache read failed", "id", id, "err", err)
		}
	}

	username, err := svc.reader.GetUsername(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrUserNotFound
		}
		logger.Log.Errorw("failed to get username", "id", id, "err", err)
		return "", err
	}

	if svc.cache != nil {
		if err := svc.cache.SetUsername(ctx, id, username); err != nil {
			logger.Log.Warnw("username cache write failed", "id", id, "err", err)
		}
	}

	return username, nil
}

// FriendSearch returns the public profile of a user, used before adding a friend.
func (svc *UserService) FriendSearch(ctx context.Context, id string) (*models.FriendProfile, error) {
	user, err := svc.LoadUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Profile(), nil
}
