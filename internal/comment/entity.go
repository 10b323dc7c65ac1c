// AngelaMos | 2026
// entity.go

package comment

import (
	"time"
)

type Comment struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	LeaderID  int64     `db:"leader_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	// Username is joined in on reads for display purposes.
	Username string `db:"username"`
}
