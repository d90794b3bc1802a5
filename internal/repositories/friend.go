package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/scream-jar-server/internal/logger"
	"github.com/sbilibin2017/scream-jar-server/internal/models"
)

// FriendListRepository reads and writes the friendlist column of a user.
// When txGetter yields a transaction the statements run inside it and the read
// locks the row until that transaction ends.
type FriendListRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFriendListRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FriendListRepository {
	return &FriendListRepository{db: db, txGetter: txGetter}
}

func (r *FriendListRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetForUpdate returns the friend list of a user or ErrNotFound.
func (r *FriendListRepository) GetForUpdate(ctx context.Context, userID string) (models.FriendList, error) {
	const query = `
		SELECT friendlist
		FROM users
		WHERE id = $1
		FOR UPDATE
	`

	var list models.FriendList
	err := sqlx.GetContext(ctx, r.executor(ctx), &list, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", list.String(),
		"error", err,
	)

	if err != nil {
		return nil, mapError(err)
	}
	return list, nil
}

// Save replaces the friend list of a user. ErrNotFound is returned when the
// user row does not exist.
func (r *FriendListRepository) Save(ctx context.Context, userID string, list models.FriendList) error {
	const query = `UPDATE users SET friendlist = $1 WHERE id = $2`
	args := []any{list.String(), userID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return mapError(err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
