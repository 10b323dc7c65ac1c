// AngelaMos | 2026
// repository_test.go

package interaction

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ussr-leaders/backend/internal/core"
)

func newMockDB(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestRepositoryCreateInserts(t *testing.T) {
	repo, mock := newMockDB(t)
	userID := "u1"

	mock.ExpectQuery(`INSERT INTO interactions`).
		WithArgs(userID, int64(5), KindBookmark).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
			AddRow(42, time.Now()))

	i := &Interaction{UserID: &userID, LeaderID: 5, Kind: KindBookmark}
	require.NoError(t, repo.Create(context.Background(), i))
	assert.Equal(t, int64(42), i.ID)
	assert.False(t, i.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreateConflictReturnsExistingRow(t *testing.T) {
	repo, mock := newMockDB(t)
	userID := "u1"
	created := time.Now().Add(-time.Hour)

	// DO NOTHING yields no rows on conflict; the existing row is then
	// loaded so the caller never sees a zero-valued entity.
	mock.ExpectQuery(`INSERT INTO interactions`).
		WithArgs(userID, int64(5), KindBookmark).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}))
	mock.ExpectQuery(`SELECT id, created_at FROM interactions`).
		WithArgs(userID, int64(5), KindBookmark).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
			AddRow(17, created))

	i := &Interaction{UserID: &userID, LeaderID: 5, Kind: KindBookmark}
	require.NoError(t, repo.Create(context.Background(), i))
	assert.Equal(t, int64(17), i.ID)
	assert.Equal(t, created, i.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreateUnknownLeader(t *testing.T) {
	repo, mock := newMockDB(t)
	userID := "u1"

	mock.ExpectQuery(`INSERT INTO interactions`).
		WithArgs(userID, int64(404), KindLike).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	i := &Interaction{UserID: &userID, LeaderID: 404, Kind: KindLike}
	err := repo.Create(context.Background(), i)
	assert.ErrorIs(t, err, core.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
