package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/scream-jar-server/internal/logger"
	"github.com/sbilibin2017/scream-jar-server/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// UserWriter defines write operations for users.
type UserWriter interface {
	SaveWithPassword(ctx context.Context, id, username, passwordHash, wallColor string) error
	SaveWithoutPassword(ctx context.Context, id, username, wallColor string) error
}

// AuthService handles registration, profile upserts and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	cache  UsernameCache
}

// NewAuthService creates a new AuthService instance. cache may be nil.
func NewAuthService(reader UserReader, writer UserWriter, cache UsernameCache) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// Register creates a user with a password or updates an existing one.
// The stored friend list of an existing user is kept.
func (svc *AuthService) Register(ctx context.Context, id, username, password, wallColor string) error {
	if err := requireFields("id", id, "username", username, "password", password, "wallColor", wallColor); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.SaveWithPassword(ctx, id, username, string(hashedPassword), wallColor); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Errorw("user already exists", "id", id, "err", err)
			return ErrUserConflict
		}
		logger.Log.Errorw("failed to save user", "id", id, "err", err)
		return err
	}

	svc.invalidateUsername(ctx, id)
	return nil
}

// SaveProfile creates a user without a password or updates name and wall color
// of an existing one.
func (svc *AuthService) SaveProfile(ctx context.Context, id, username, wallColor string) error {
	if err := requireFields("id", id, "username", username, "wallColor", wallColor); err != nil {
		return err
	}

	if err := svc.writer.SaveWithoutPassword(ctx, id, username, wallColor); err != nil {
		logger.Log.Errorw("failed to save user profile", "id", id, "err", err)
		return err
	}

	svc.invalidateUsername(ctx, id)
	return nil
}

// Login checks the password of a user. Unknown users, users without a password
// and wrong passwords all yield ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, id, password string) error {
	if err := requireFields("id", id, "password", password); err != nil {
		return err
	}

	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Log.Warnw("login rejected", "id", id, "reason", "user does not exist")
			return ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return err
	}

	if !user.HasPassword() {
		logger.Log.Warnw("login rejected", "id", id, "reason", "no password set")
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(password)); err != nil {
		logger.Log.Warnw("login rejected", "id", id, "reason", "password mismatch")
		return ErrInvalidCredentials
	}

	return nil
}

func (svc *AuthService) invalidateUsername(ctx context.Context, id string) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.DeleteUsername(ctx, id); err != nil {
		logger.Log.Warnw("failed to invalidate cached username", "id", id, "err", err)
	}
}

// requireFields takes name/value pairs and fails on the first empty value.
func requireFields(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, pairs[i])
		}
	}
	return nil
}
