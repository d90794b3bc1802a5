package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/scream-jar-server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreamWriteRepository_Save(t *testing.T) {
	query := regexp.QuoteMeta("INSERT INTO screams (userid, categoryindex, content, screamdate)")

	t.Run("returns generated id", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs("u1", 2, "hello", "2024-01-01").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

		id, err := NewScreamWriteRepository(db).Save(context.Background(), "u1", 2, "hello", "2024-01-01")
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("unknown owner", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs("ghost", 0, "boo", "2024-01-01").
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "screams_userid_fkey"})

		_, err := NewScreamWriteRepository(db).Save(context.Background(), "ghost", 0, "boo", "2024-01-01")
		assert.ErrorIs(t, err, ErrForeignKeyViolation)
	})
}

func TestScreamReadRepository_ListByUserID(t *testing.T) {
	query := `SELECT id, userid, categoryindex, content, screamdate\s+FROM screams\s+WHERE userid = \$1\s+ORDER BY id`

	t.Run("rows", func(t *testing.T) {
		db, mock := newMockDB(t)
		rows := sqlmock.NewRows([]string{"id", "userid", "categoryindex", "content", "screamdate"}).
			AddRow(int64(1), "u1", 2, "hello", "2024-01-01").
			AddRow(int64(2), "u1", 0, "again", "2024-01-02")
		mock.ExpectQuery(query).WithArgs("u1").WillReturnRows(rows)

		screams, err := NewScreamReadRepository(db).ListByUserID(context.Background(), "u1")
		require.NoError(t, err)
		assert.Equal(t, []models.ScreamDB{
			{ID: 1, UserID: "u1", CategoryIndex: 2, Content: "hello", ScreamDate: "2024-01-01"},
			{ID: 2, UserID: "u1", CategoryIndex: 0, Content: "again", ScreamDate: "2024-01-02"},
		}, screams)
	})

	t.Run("no rows gives empty slice", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WithArgs("u9").
			WillReturnRows(sqlmock.NewRows([]string{"id", "userid", "categoryindex", "content", "screamdate"}))

		screams, err := NewScreamReadRepository(db).ListByUserID(context.Background(), "u9")
		require.NoError(t, err)
		assert.NotNil(t, screams)
		assert.Empty(t, screams)
	})
}
