// AngelaMos | 2026
// repository.go

package admin

import (
	"context"
	"fmt"

	"github.com/ussr-leaders/backend/internal/core"
)

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) ContentCounter {
	return &repository{db: db}
}

func (r *repository) ContentCounts(ctx context.Context) (ContentStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users WHERE deleted_at IS NULL) AS users,
			(SELECT COUNT(*) FROM leaders) AS leaders,
			(SELECT COUNT(*) FROM facts) AS facts,
			(SELECT COUNT(*) FROM comments) AS comments,
			(SELECT COUNT(*) FROM interactions) AS interactions`

	var stats ContentStats
	err := r.db.QueryRowxContext(ctx, query).Scan(
		&stats.Users, &stats.Leaders, &stats.Facts,
		&stats.Comments, &stats.Interactions,
	)
	if err != nil {
		return ContentStats{}, fmt.Errorf("content counts: %w", err)
	}
	return stats, nil
}
