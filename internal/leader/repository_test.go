// AngelaMos | 2026
// repository_test.go

package leader

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

func leaderRows(ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "name_ru", "name_en", "birth_year", "birth_place", "death_year",
		"death_place", "position", "achievements", "biography", "video_id",
		"portrait_url", "created_at", "updated_at",
	})
	for _, id := range ids {
		rows.AddRow(
			id, "Имя", "Name", 1900, "Москва", nil, nil,
			"должность", "достижения", "", 1, nil,
			time.Now(), time.Now(),
		)
	}
	return rows
}

func TestRepositoryList(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectQuery(`(?s)SELECT .+ FROM leaders ORDER BY id ASC`).
		WillReturnRows(leaderRows(1, 2, 3))

	leaders, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, leaders, 3)
	assert.Equal(t, int64(1), leaders[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetByIDNotFound(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectQuery(`(?s)SELECT .+ FROM leaders WHERE id = \$1`).
		WithArgs(int64(999)).
		WillReturnRows(leaderRows())

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, core.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositorySearchEscapesPattern(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectQuery(`(?s)SELECT .+ FROM leaders\s+WHERE name_ru ILIKE \$1`).
		WithArgs(`%50\%%`).
		WillReturnRows(leaderRows(1))

	leaders, err := repo.Search(context.Background(), "50%")
	require.NoError(t, err)
	assert.Len(t, leaders, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDeleteNotFound(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectExec(`DELETE FROM leaders WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, core.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetFacts(t *testing.T) {
	repo, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{
		"id", "leader_id", "fact_text", "category", "is_verified", "created_at",
	}).
		AddRow(1, 5, "факт один", nil, false, time.Now()).
		AddRow(2, 5, "факт два", nil, false, time.Now())

	mock.ExpectQuery(`SELECT (.+) FROM facts WHERE leader_id = \$1 ORDER BY id ASC`).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	facts, err := repo.GetFacts(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, facts, 2)
	assert.Equal(t, "факт один", facts[0].FactText)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositorySaveFactsKeepsExisting(t *testing.T) {
	repo, mock := newMockDB(t)

	existing := sqlmock.NewRows([]string{
		"id", "leader_id", "fact_text", "category", "is_verified", "created_at",
	}).AddRow(1, 5, "уже сохранён", nil, false, time.Now())

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM leaders WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectQuery(`SELECT (.+) FROM facts WHERE leader_id = \$1 ORDER BY id ASC`).
		WithArgs(int64(5)).
		WillReturnRows(existing)
	mock.ExpectCommit()

	// A concurrent request already stored facts; ours are discarded.
	got, err := repo.SaveFacts(context.Background(), 5, []Fact{
		{LeaderID: 5, FactText: "новый факт"},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "уже сохранён", got[0].FactText)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositorySaveFactsLocksLeaderBeforeFirstInsert(t *testing.T) {
	repo, mock := newMockDB(t)

	// First batch for a leader: the leader row lock must be taken before
	// the recheck, since an empty facts select has no rows to lock and
	// would let two writers race past each other.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM leaders WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectQuery(`SELECT (.+) FROM facts WHERE leader_id = \$1 ORDER BY id ASC`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "leader_id", "fact_text", "category", "is_verified", "created_at",
		}))
	mock.ExpectQuery(`INSERT INTO facts`).
		WithArgs(int64(5), "новый факт", nil, false).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "leader_id", "fact_text", "category", "is_verified", "created_at",
		}).AddRow(1, 5, "новый факт", nil, false, time.Now()))
	mock.ExpectCommit()

	got, err := repo.SaveFacts(context.Background(), 5, []Fact{
		{LeaderID: 5, FactText: "новый факт"},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "новый факт", got[0].FactText)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositorySaveFactsUnknownLeader(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM leaders WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.SaveFacts(context.Background(), 404, []Fact{
		{LeaderID: 404, FactText: "факт"},
	})
	assert.ErrorIs(t, err, core.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
