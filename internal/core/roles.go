// AngelaMos | 2026
// roles.go

package core

import "fmt"

// Role is an ordered access tier. Higher roles satisfy every check a lower
// role satisfies, so authorization is always a single AtLeast comparison.
type Role int

const (
	RoleAnonymous Role = iota
	RoleUser
	RoleEditor
	RoleAdmin
)

const (
	roleAnonymousName = "anonymous"
	roleUserName      = "user"
	roleEditorName    = "editor"
	roleAdminName     = "admin"
)

func (r Role) String() string {
	switch r {
	case RoleAnonymous:
		return roleAnonymousName
	case RoleUser:
		return roleUserName
	case RoleEditor:
		return roleEditorName
	case RoleAdmin:
		return roleAdminName
	default:
		return roleAnonymousName
	}
}

func (r Role) AtLeast(min Role) bool {
	return r >= min
}

func (r Role) IsValid() bool {
	return r >= RoleAnonymous && r <= RoleAdmin
}

// ParseRole maps a stored role string to its tier. Unknown strings resolve to
// anonymous so a corrupted role can never grant elevated access.
func ParseRole(s string) Role {
	switch s {
	case roleUserName:
		return RoleUser
	case roleEditorName:
		return RoleEditor
	case roleAdminName:
		return RoleAdmin
	default:
		return RoleAnonymous
	}
}

// ParseRoleStrict rejects unknown role strings instead of degrading them.
func ParseRoleStrict(s string) (Role, error) {
	switch s {
	case roleAnonymousName:
		return RoleAnonymous, nil
	case roleUserName:
		return RoleUser, nil
	case roleEditorName:
		return RoleEditor, nil
	case roleAdminName:
		return RoleAdmin, nil
	default:
		return RoleAnonymous, fmt.Errorf("unknown role %q: %w", s, ErrInvalidInput)
	}
}
