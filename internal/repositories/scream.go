package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/scream-jar-server/internal/logger"
	"github.com/sbilibin2017/scream-jar-server/internal/models"
)

// ScreamWriteRepository stores new screams.
type ScreamWriteRepository struct {
	db *sqlx.DB
}

func NewScreamWriteRepository(db *sqlx.DB) *ScreamWriteRepository {
	return &ScreamWriteRepository{db: db}
}

// Save inserts a scream and returns its generated id. ErrForeignKeyViolation is
// returned when the owner does not exist.
func (r *ScreamWriteRepository) Save(ctx context.Context, userID string, categoryIndex int, content, screamDate string) (int64, error) {
	const query = `
		INSERT INTO screams (userid, categoryindex, content, screamdate)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	args := []any{userID, categoryIndex, content, screamDate}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, mapError(err)
	}
	return id, nil
}

// ScreamReadRepository reads screams.
type ScreamReadRepository struct {
	db *sqlx.DB
}

func NewScreamReadRepository(db *sqlx.DB) *ScreamReadRepository {
	return &ScreamReadRepository{db: db}
}

// ListByUserID returns the screams of a user in insertion order.
func (r *ScreamReadRepository) ListByUserID(ctx context.Context, userID string) ([]models.ScreamDB, error) {
	const query = `
		SELECT id, userid, categoryindex, content, screamdate
		FROM screams
		WHERE userid = $1
		ORDER BY id
	`

	screams := []models.ScreamDB{}
	err := r.db.SelectContext(ctx, &screams, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(screams),
		"error", err,
	)

	if err != nil {
		return nil, mapError(err)
	}
	return screams, nil
}
