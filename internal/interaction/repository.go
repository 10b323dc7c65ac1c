// AngelaMos | 2026
// repository.go

package interaction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ussr-leaders/backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, i *Interaction) error
	ListBookmarks(ctx context.Context, userID string) ([]Bookmark, error)
	DeleteBookmark(ctx context.Context, userID string, leaderID int64) error
	DeleteByID(ctx context.Context, id int64) error
	Recent(ctx context.Context, limit int) ([]Interaction, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

// Create inserts the interaction. Bookmarks and likes are deduplicated
// by a partial unique index; a repeat insert resolves to the existing
// row, which keeps its original id and timestamp.
func (r *repository) Create(ctx context.Context, i *Interaction) error {
	query := `
		INSERT INTO interactions (user_id, leader_id, kind)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, leader_id, kind) WHERE kind IN ('bookmark', 'like')
		DO NOTHING
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query, i.UserID, i.LeaderID, i.Kind).
		Scan(&i.ID, &i.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r.getExisting(ctx, i)
		}
		if isForeignKeyViolation(err) {
			return core.ErrNotFound
		}
		return fmt.Errorf("create interaction: %w", err)
	}
	return nil
}

// getExisting loads the row a conflicting insert resolved to. Only
// bookmarks and likes can conflict, and both carry a user_id.
func (r *repository) getExisting(ctx context.Context, i *Interaction) error {
	query := `
		SELECT id, created_at FROM interactions
		WHERE user_id = $1 AND leader_id = $2 AND kind = $3`

	err := r.db.QueryRowxContext(ctx, query, i.UserID, i.LeaderID, i.Kind).
		Scan(&i.ID, &i.CreatedAt)
	if err != nil {
		return fmt.Errorf("get existing interaction: %w", err)
	}
	return nil
}

func (r *repository) ListBookmarks(ctx context.Context, userID string) ([]Bookmark, error) {
	query := `
		SELECT i.leader_id, l.name_ru, l.name_en, l.position, l.portrait_url,
		       i.created_at
		FROM interactions i
		JOIN leaders l ON l.id = i.leader_id
		WHERE i.user_id = $1 AND i.kind = 'bookmark'
		ORDER BY i.created_at DESC`

	bookmarks := []Bookmark{}
	if err := r.db.SelectContext(ctx, &bookmarks, query, userID); err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return bookmarks, nil
}

func (r *repository) DeleteBookmark(ctx context.Context, userID string, leaderID int64) error {
	query := `
		DELETE FROM interactions
		WHERE user_id = $1 AND leader_id = $2 AND kind = 'bookmark'`

	result, err := r.db.ExecContext(ctx, query, userID, leaderID)
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete bookmark rows affected: %w", err)
	}
	if rows == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (r *repository) DeleteByID(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM interactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete interaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete interaction rows affected: %w", err)
	}
	if rows == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (r *repository) Recent(ctx context.Context, limit int) ([]Interaction, error) {
	query := `
		SELECT id, user_id, leader_id, kind, created_at
		FROM interactions
		ORDER BY created_at DESC
		LIMIT $1`

	interactions := []Interaction{}
	if err := r.db.SelectContext(ctx, &interactions, query, limit); err != nil {
		return nil, fmt.Errorf("recent interactions: %w", err)
	}
	return interactions, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
