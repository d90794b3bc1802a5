package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/scream-jar-server/internal/logger"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL,
		password TEXT,
		wallcolor TEXT,
		friendlist TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS screams (
		id SERIAL PRIMARY KEY,
		userid TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		categoryindex INTEGER NOT NULL,
		content TEXT NOT NULL,
		screamdate TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS screams_userid_idx ON screams (userid)`,
}

// SchemaRepository creates the tables used by the service.
type SchemaRepository struct {
	db *sqlx.DB
}

func NewSchemaRepository(db *sqlx.DB) *SchemaRepository {
	return &SchemaRepository{db: db}
}

// Initialize creates missing tables and indexes in a single transaction.
// Existing tables and their rows are left untouched, so it may be called any
// number of times.
func (r *SchemaRepository) Initialize(ctx context.Context) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return mapError(err)
	}
	defer tx.Rollback()

	for _, stmt := range schemaStatements {
		_, err := tx.ExecContext(ctx, stmt)

		logger.Log.Infow(
			"query", strings.Join(strings.Fields(stmt), " "),
			"error", err,
		)

		if err != nil {
			return mapError(err)
		}
	}

	return mapError(tx.Commit())
}
