// AngelaMos | 2026
// repository.go

package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/ussr-leaders/backend/internal/core"
)

// PopularLeader is a leader row augmented with its view count.
type PopularLeader struct {
	LeaderID    int64   `db:"leader_id"    json:"leader_id"`
	NameRu      string  `db:"name_ru"      json:"name_ru"`
	NameEn      string  `db:"name_en"      json:"name_en"`
	Position    string  `db:"position"     json:"position"`
	PortraitURL *string `db:"portrait_url" json:"portrait_url,omitempty"`
	ViewCount   int64   `db:"view_count"   json:"view_count"`
}

// ActivityRecord is an interaction joined with leader and optional user
// display fields for the operator view.
type ActivityRecord struct {
	ID        int64     `db:"id"         json:"id"`
	Kind      string    `db:"kind"       json:"kind"`
	LeaderID  int64     `db:"leader_id"  json:"leader_id"`
	NameRu    string    `db:"name_ru"    json:"name_ru"`
	Username  *string   `db:"username"   json:"username,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Repository interface {
	PopularLeaders(ctx context.Context, limit int) ([]PopularLeader, error)
	RecentActivity(ctx context.Context, limit int) ([]ActivityRecord, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) PopularLeaders(ctx context.Context, limit int) ([]PopularLeader, error) {
	query := `
		SELECT l.id AS leader_id, l.name_ru, l.name_en, l.position,
		       l.portrait_url, COUNT(i.id) AS view_count
		FROM leaders l
		LEFT JOIN interactions i ON i.leader_id = l.id AND i.kind = 'view'
		GROUP BY l.id, l.name_ru, l.name_en, l.position, l.portrait_url
		ORDER BY view_count DESC, l.id ASC
		LIMIT $1`

	leaders := []PopularLeader{}
	if err := r.db.SelectContext(ctx, &leaders, query, limit); err != nil {
		return nil, fmt.Errorf("popular leaders: %w", err)
	}
	return leaders, nil
}

func (r *repository) RecentActivity(ctx context.Context, limit int) ([]ActivityRecord, error) {
	query := `
		SELECT i.id, i.kind, i.leader_id, l.name_ru, u.username, i.created_at
		FROM interactions i
		JOIN leaders l ON l.id = i.leader_id
		LEFT JOIN users u ON u.id = i.user_id
		ORDER BY i.created_at DESC
		LIMIT $1`

	records := []ActivityRecord{}
	if err := r.db.SelectContext(ctx, &records, query, limit); err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	return records, nil
}
