package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/scream-jar-server/internal/logger"
	"github.com/sbilibin2017/scream-jar-server/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the full user row or ErrNotFound.
func (r *UserReadRepository) GetByID(ctx context.Context, id string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, password, COALESCE(wallcolor, '') AS wallcolor, friendlist
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	// Log with query in single line, the password hash stays out of the log
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", user.ID,
		"error", err,
	)

	if err != nil {
		return nil, mapError(err)
	}

	return &user, nil
}

// Exists reports whether a user with the given id is stored.
func (r *UserReadRepository) Exists(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id)

	logger.Log.Infow(
		"query", query,
		"args", []any{id},
		"result", exists,
		"error", err,
	)

	return exists, mapError(err)
}

// GetUsername returns only the display name of a user or ErrNotFound.
func (r *UserReadRepository) GetUsername(ctx context.Context, id string) (string, error) {
	const query = `SELECT username FROM users WHERE id = $1`

	var username string
	err := r.db.GetContext(ctx, &username, query, id)

	logger.Log.Infow(
		"query", query,
		"args", []any{id},
		"result", username,
		"error", err,
	)

	if err != nil {
		return "", mapError(err)
	}
	return username, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// SaveWithPassword inserts a user or updates username, password hash and wall
// color of an existing one. The friend list is not part of the update clause
// and keeps its stored value.
func (r *UserWriteRepository) SaveWithPassword(ctx context.Context, id, username, passwordHash, wallColor string) error {
	const query = `
		INSERT INTO users (id, username, password, wallcolor, friendlist)
		VALUES ($1, $2, $3, $4, '')
		ON CONFLICT (id) DO UPDATE
		SET username = EXCLUDED.username,
		    password = EXCLUDED.password,
		    wallcolor = EXCLUDED.wallcolor
	`

	res, err := r.db.ExecContext(ctx, query, id, username, passwordHash, wallColor)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, username, "[hidden]", wallColor},
		"result", rowsAffected,
		"error", err,
	)

	return mapError(err)
}

// SaveWithoutPassword inserts a user or updates username and wall color of an
// existing one. Password and friend list are never written.
func (r *UserWriteRepository) SaveWithoutPassword(ctx context.Context, id, username, wallColor string) error {
	const query = `
		INSERT INTO users (id, username, wallcolor)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET username = EXCLUDED.username,
		    wallcolor = EXCLUDED.wallcolor
	`
	args := []any{id, username, wallColor}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return mapError(err)
}
