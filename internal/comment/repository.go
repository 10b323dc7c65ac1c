// AngelaMos | 2026
// repository.go

package comment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ussr-leaders/backend/internal/core"
)

type Repository interface {
	Create(ctx context.Context, c *Comment) error
	ListByLeader(ctx context.Context, leaderID int64) ([]Comment, error)
	GetByID(ctx context.Context, id int64) (*Comment, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Comment) error {
	query := `
		INSERT INTO comments (user_id, leader_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query, c.UserID, c.LeaderID, c.Content).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return core.ErrNotFound
		}
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

func (r *repository) ListByLeader(ctx context.Context, leaderID int64) ([]Comment, error) {
	query := `
		SELECT c.id, c.user_id, c.leader_id, c.content, c.created_at,
		       c.updated_at, u.username
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.leader_id = $1
		ORDER BY c.created_at DESC`

	comments := []Comment{}
	if err := r.db.SelectContext(ctx, &comments, query, leaderID); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Comment, error) {
	query := `
		SELECT c.id, c.user_id, c.leader_id, c.content, c.created_at,
		       c.updated_at, u.username
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1`

	var c Comment
	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &c, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete comment rows affected: %w", err)
	}
	if rows == 0 {
		return core.ErrNotFound
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
