// AngelaMos | 2026
// roles_test.go

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleOrdering(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleEditor))
	assert.True(t, RoleAdmin.AtLeast(RoleAdmin))
	assert.True(t, RoleEditor.AtLeast(RoleUser))
	assert.True(t, RoleUser.AtLeast(RoleAnonymous))

	assert.False(t, RoleUser.AtLeast(RoleEditor))
	assert.False(t, RoleEditor.AtLeast(RoleAdmin))
	assert.False(t, RoleAnonymous.AtLeast(RoleUser))
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
	}{
		{"anonymous", RoleAnonymous},
		{"user", RoleUser},
		{"editor", RoleEditor},
		{"admin", RoleAdmin},
		{"", RoleAnonymous},
		{"superuser", RoleAnonymous},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRole(tt.input), "input %q", tt.input)
	}
}

func TestParseRoleStrict(t *testing.T) {
	role, err := ParseRoleStrict("editor")
	require.NoError(t, err)
	assert.Equal(t, RoleEditor, role)

	_, err = ParseRoleStrict("superuser")
	assert.Error(t, err)

	_, err = ParseRoleStrict("")
	assert.Error(t, err)
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "anonymous", RoleAnonymous.String())
	assert.Equal(t, "user", RoleUser.String())
	assert.Equal(t, "editor", RoleEditor.String())
	assert.Equal(t, "admin", RoleAdmin.String())
}
