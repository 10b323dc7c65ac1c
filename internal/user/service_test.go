// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ussr-leaders/backend/internal/auth"
	"github.com/ussr-leaders/backend/internal/core"
)

type mockRepository struct {
	createFn        func(ctx context.Context, u *User) error
	getByIDFn       func(ctx context.Context, id string) (*User, error)
	getByEmailFn    func(ctx context.Context, email string) (*User, error)
	getByUsernameFn func(ctx context.Context, username string) (*User, error)
	updateFn        func(ctx context.Context, u *User) error
	updatePwFn      func(ctx context.Context, id, hash string) error
	incrVersionFn   func(ctx context.Context, id string) error
	softDeleteFn    func(ctx context.Context, id string) error
	listFn          func(ctx context.Context, p ListUsersParams) ([]User, int, error)
}

func (m *mockRepository) Create(ctx context.Context, u *User) error {
	return m.createFn(ctx, u)
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (*User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	return m.getByUsernameFn(ctx, username)
}

func (m *mockRepository) Update(ctx context.Context, u *User) error {
	return m.updateFn(ctx, u)
}

func (m *mockRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	return m.updatePwFn(ctx, id, hash)
}

func (m *mockRepository) IncrementTokenVersion(ctx context.Context, id string) error {
	return m.incrVersionFn(ctx, id)
}

func (m *mockRepository) SoftDelete(ctx context.Context, id string) error {
	return m.softDeleteFn(ctx, id)
}

func (m *mockRepository) List(ctx context.Context, p ListUsersParams) ([]User, int, error) {
	return m.listFn(ctx, p)
}

func TestCreateNormalizesAndDefaults(t *testing.T) {
	var created *User
	repo := &mockRepository{
		createFn: func(_ context.Context, u *User) error {
			created = u
			return nil
		},
	}
	svc := NewService(repo)

	info, err := svc.Create(context.Background(), "A@B.Com", "andropov", "hash")
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "a@b.com", created.Email)
	assert.Equal(t, "user", created.Role)
	assert.True(t, created.IsActive)
	assert.NotEmpty(t, created.ID)

	assert.Equal(t, core.RoleUser, info.Role)
}

func TestCreateTranslatesDuplicateErrors(t *testing.T) {
	repo := &mockRepository{
		createFn: func(context.Context, *User) error {
			return ErrEmailTaken
		},
	}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), "a@b.com", "andropov", "hash")
	assert.ErrorIs(t, err, auth.ErrEmailExists)

	repo.createFn = func(context.Context, *User) error {
		return ErrUsernameTaken
	}
	_, err = svc.Create(context.Background(), "a@b.com", "andropov", "hash")
	assert.ErrorIs(t, err, auth.ErrUsernameExists)
}

func TestUpdateUserRole(t *testing.T) {
	stored := &User{ID: "u1", Role: "user"}
	repo := &mockRepository{
		getByIDFn: func(context.Context, string) (*User, error) {
			return stored, nil
		},
		updateFn: func(context.Context, *User) error {
			return nil
		},
	}
	svc := NewService(repo)

	u, err := svc.UpdateUserRole(context.Background(), "u1", "editor")
	require.NoError(t, err)
	assert.Equal(t, "editor", u.Role)
}

func TestUpdateUserRoleRejectsInvalid(t *testing.T) {
	svc := NewService(&mockRepository{})

	_, err := svc.UpdateUserRole(context.Background(), "u1", "superuser")
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = svc.UpdateUserRole(context.Background(), "u1", "anonymous")
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestGetMeRequiresUserID(t *testing.T) {
	svc := NewService(&mockRepository{})

	_, err := svc.GetMe(context.Background(), "")
	assert.ErrorIs(t, err, core.ErrUnauthorized)
}

func TestCanDeleteUser(t *testing.T) {
	repo := &mockRepository{
		getByIDFn: func(_ context.Context, id string) (*User, error) {
			if id == "admin-1" {
				return &User{ID: id, Role: "admin"}, nil
			}
			return &User{ID: id, Role: "user"}, nil
		},
	}
	svc := NewService(repo)

	// Self-deletion is always allowed.
	assert.NoError(t, svc.CanDeleteUser(context.Background(), "u1", "u1"))

	// Admins may delete others.
	assert.NoError(t, svc.CanDeleteUser(context.Background(), "admin-1", "u1"))

	// Regular users may not.
	err := svc.CanDeleteUser(context.Background(), "u1", "u2")
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestRoleTier(t *testing.T) {
	assert.Equal(t, core.RoleAdmin, (&User{Role: "admin"}).RoleTier())
	assert.Equal(t, core.RoleUser, (&User{Role: "user"}).RoleTier())
	assert.Equal(t, core.RoleAnonymous, (&User{Role: "garbage"}).RoleTier())
}
