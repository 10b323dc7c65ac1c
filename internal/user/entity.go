// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"github.com/ussr-leaders/backend/internal/core"
)

type User struct {
	ID           string     `db:"id"`
	Email        string     `db:"email"`
	Username     string     `db:"username"`
	PasswordHash string     `db:"password_hash"`
	Role         string     `db:"role"`
	IsActive     bool       `db:"is_active"`
	TokenVersion int        `db:"token_version"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

func (u *User) RoleTier() core.Role {
	return core.ParseRole(u.Role)
}

func (u *User) IsAdmin() bool {
	return u.RoleTier().AtLeast(core.RoleAdmin)
}
