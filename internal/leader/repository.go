// AngelaMos | 2026
// repository.go

package leader

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/ussr-leaders/backend/internal/core"
)

const leaderColumns = `id, name_ru, name_en, birth_year, birth_place, death_year,
	death_place, position, achievements, biography, video_id, portrait_url,
	created_at, updated_at`

const factColumns = `id, leader_id, fact_text, category, is_verified, created_at`

type Repository interface {
	List(ctx context.Context) ([]Leader, error)
	GetByID(ctx context.Context, id int64) (*Leader, error)
	Search(ctx context.Context, query string) ([]Leader, error)
	Create(ctx context.Context, l *Leader) error
	Update(ctx context.Context, l *Leader) error
	Delete(ctx context.Context, id int64) error
	GetFacts(ctx context.Context, leaderID int64) ([]Fact, error)
	SaveFacts(ctx context.Context, leaderID int64, facts []Fact) ([]Fact, error)
}

// repository needs the raw *sqlx.DB rather than core.DBTX because fact
// persistence opens its own transaction.
type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Leader, error) {
	query := fmt.Sprintf(`SELECT %s FROM leaders ORDER BY id ASC`, leaderColumns)

	leaders := []Leader{}
	if err := r.db.SelectContext(ctx, &leaders, query); err != nil {
		return nil, fmt.Errorf("list leaders: %w", err)
	}
	return leaders, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Leader, error) {
	query := fmt.Sprintf(`SELECT %s FROM leaders WHERE id = $1`, leaderColumns)

	var l Leader
	if err := r.db.GetContext(ctx, &l, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("get leader by id: %w", err)
	}
	return &l, nil
}

// Search matches the query case-insensitively against both names, the
// position, and the achievements text.
func (r *repository) Search(ctx context.Context, query string) ([]Leader, error) {
	pattern := "%" + escapeLike(query) + "%"

	sqlQuery := fmt.Sprintf(`
		SELECT %s FROM leaders
		WHERE name_ru ILIKE $1
		   OR name_en ILIKE $1
		   OR position ILIKE $1
		   OR achievements ILIKE $1
		ORDER BY id ASC`, leaderColumns)

	leaders := []Leader{}
	if err := r.db.SelectContext(ctx, &leaders, sqlQuery, pattern); err != nil {
		return nil, fmt.Errorf("search leaders: %w", err)
	}
	return leaders, nil
}

func (r *repository) Create(ctx context.Context, l *Leader) error {
	query := `
		INSERT INTO leaders (
			name_ru, name_en, birth_year, birth_place, death_year, death_place,
			position, achievements, biography, video_id, portrait_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		l.NameRu, l.NameEn, l.BirthYear, l.BirthPlace, l.DeathYear, l.DeathPlace,
		l.Position, l.Achievements, l.Biography, l.VideoID, l.PortraitURL,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create leader: %w", err)
	}
	return nil
}

func (r *repository) Update(ctx context.Context, l *Leader) error {
	query := `
		UPDATE leaders SET
			name_ru = $1, name_en = $2, birth_year = $3, birth_place = $4,
			death_year = $5, death_place = $6, position = $7, achievements = $8,
			biography = $9, video_id = $10, portrait_url = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		l.NameRu, l.NameEn, l.BirthYear, l.BirthPlace, l.DeathYear, l.DeathPlace,
		l.Position, l.Achievements, l.Biography, l.VideoID, l.PortraitURL, l.ID,
	).Scan(&l.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.ErrNotFound
		}
		return fmt.Errorf("update leader: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM leaders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete leader: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete leader rows affected: %w", err)
	}
	if rows == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (r *repository) GetFacts(ctx context.Context, leaderID int64) ([]Fact, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM facts WHERE leader_id = $1 ORDER BY id ASC`, factColumns)

	facts := []Fact{}
	if err := r.db.SelectContext(ctx, &facts, query, leaderID); err != nil {
		return nil, fmt.Errorf("get facts: %w", err)
	}
	return facts, nil
}

// SaveFacts persists a generated batch atomically. A concurrent request
// may have stored its own batch between our read and this write, so the
// transaction locks the leader row, re-checks, and keeps whichever batch
// landed first. Locking the parent row is what serializes the empty case:
// row locks on the facts themselves cannot block anyone when no facts
// exist yet.
func (r *repository) SaveFacts(ctx context.Context, leaderID int64, facts []Fact) ([]Fact, error) {
	var stored []Fact

	err := core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var lockedID int64
		lock := `SELECT id FROM leaders WHERE id = $1 FOR UPDATE`
		if err := tx.GetContext(ctx, &lockedID, lock, leaderID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("lock leader %d: %w", leaderID, core.ErrNotFound)
			}
			return fmt.Errorf("lock leader %d: %w", leaderID, err)
		}

		existing := []Fact{}
		query := fmt.Sprintf(
			`SELECT %s FROM facts WHERE leader_id = $1 ORDER BY id ASC`,
			factColumns)
		if err := tx.SelectContext(ctx, &existing, query, leaderID); err != nil {
			return fmt.Errorf("recheck facts: %w", err)
		}
		if len(existing) > 0 {
			stored = existing
			return nil
		}

		insert := `
			INSERT INTO facts (leader_id, fact_text, category, is_verified)
			VALUES ($1, $2, $3, $4)
			RETURNING id, leader_id, fact_text, category, is_verified, created_at`

		stored = make([]Fact, 0, len(facts))
		for _, f := range facts {
			var saved Fact
			err := tx.QueryRowxContext(ctx, insert,
				leaderID, f.FactText, f.Category, f.IsVerified,
			).StructScan(&saved)
			if err != nil {
				return fmt.Errorf("insert fact: %w", err)
			}
			stored = append(stored, saved)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
