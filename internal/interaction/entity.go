// AngelaMos | 2026
// entity.go

package interaction

import (
	"time"
)

const (
	KindBookmark = "bookmark"
	KindLike     = "like"
	KindView     = "view"
)

// Interaction records a user action against a leader. UserID is nil for
// anonymous view counts.
type Interaction struct {
	ID        int64     `db:"id"`
	UserID    *string   `db:"user_id"`
	LeaderID  int64     `db:"leader_id"`
	Kind      string    `db:"kind"`
	CreatedAt time.Time `db:"created_at"`
}

// Bookmark is a bookmark row joined with the leader it points at.
type Bookmark struct {
	LeaderID    int64     `db:"leader_id"`
	NameRu      string    `db:"name_ru"`
	NameEn      string    `db:"name_en"`
	Position    string    `db:"position"`
	PortraitURL *string   `db:"portrait_url"`
	CreatedAt   time.Time `db:"created_at"`
}

func ValidKind(kind string) bool {
	switch kind {
	case KindBookmark, KindLike, KindView:
		return true
	}
	return false
}

// RequiresAuth reports whether recording this kind needs an
// authenticated user. Views may be counted anonymously.
func RequiresAuth(kind string) bool {
	return kind != KindView
}
