// AngelaMos | 2026
// entity.go

package leader

import (
	"fmt"
	"time"

	"github.com/ussr-leaders/backend/internal/core"
)

type Leader struct {
	ID           int64     `db:"id"`
	NameRu       string    `db:"name_ru"`
	NameEn       string    `db:"name_en"`
	BirthYear    int       `db:"birth_year"`
	BirthPlace   string    `db:"birth_place"`
	DeathYear    *int      `db:"death_year"`
	DeathPlace   *string   `db:"death_place"`
	Position     string    `db:"position"`
	Achievements string    `db:"achievements"`
	Biography    string    `db:"biography"`
	VideoID      int       `db:"video_id"`
	PortraitURL  *string   `db:"portrait_url"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// Validate enforces year ordering: a recorded death may not precede birth.
func (l *Leader) Validate() error {
	if l.DeathYear != nil && *l.DeathYear < l.BirthYear {
		return fmt.Errorf(
			"death year %d precedes birth year %d: %w",
			*l.DeathYear,
			l.BirthYear,
			core.ErrInvalidInput,
		)
	}
	return nil
}

type Fact struct {
	ID         int64     `db:"id"`
	LeaderID   int64     `db:"leader_id"`
	FactText   string    `db:"fact_text"`
	Category   *string   `db:"category"`
	IsVerified bool      `db:"is_verified"`
	CreatedAt  time.Time `db:"created_at"`
}
