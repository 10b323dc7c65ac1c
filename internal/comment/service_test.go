// AngelaMos | 2026
// service_test.go

package comment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ussr-leaders/backend/internal/core"
)

type mockRepository struct {
	createFn       func(ctx context.Context, c *Comment) error
	listByLeaderFn func(ctx context.Context, leaderID int64) ([]Comment, error)
	getByIDFn      func(ctx context.Context, id int64) (*Comment, error)
	deleteFn       func(ctx context.Context, id int64) error
}

func (m *mockRepository) Create(ctx context.Context, c *Comment) error {
	return m.createFn(ctx, c)
}

func (m *mockRepository) ListByLeader(ctx context.Context, leaderID int64) ([]Comment, error) {
	return m.listByLeaderFn(ctx, leaderID)
}

func (m *mockRepository) GetByID(ctx context.Context, id int64) (*Comment, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func TestCreateTrimsAndStores(t *testing.T) {
	repo := &mockRepository{
		createFn: func(_ context.Context, c *Comment) error {
			c.ID = 7
			return nil
		},
		getByIDFn: func(_ context.Context, id int64) (*Comment, error) {
			return &Comment{ID: id, Content: "отличная статья", Username: "reader"}, nil
		},
	}
	svc := NewService(repo)

	c, err := svc.Create(context.Background(), "user-1", 3, "  отличная статья  ")
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.ID)
	assert.Equal(t, "reader", c.Username)
}

func TestCreateRejectsEmptyContent(t *testing.T) {
	repo := &mockRepository{
		createFn: func(context.Context, *Comment) error {
			t.Fatal("empty comment must not reach the repository")
			return nil
		},
	}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), "user-1", 3, "   ")
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestDeleteByOwner(t *testing.T) {
	deleted := false
	repo := &mockRepository{
		getByIDFn: func(_ context.Context, id int64) (*Comment, error) {
			return &Comment{ID: id, UserID: "user-1"}, nil
		},
		deleteFn: func(context.Context, int64) error {
			deleted = true
			return nil
		},
	}
	svc := NewService(repo)

	require.NoError(t, svc.Delete(context.Background(), 5, "user-1", false))
	assert.True(t, deleted)
}

func TestDeleteByAdmin(t *testing.T) {
	repo := &mockRepository{
		getByIDFn: func(_ context.Context, id int64) (*Comment, error) {
			return &Comment{ID: id, UserID: "user-1"}, nil
		},
		deleteFn: func(context.Context, int64) error {
			return nil
		},
	}
	svc := NewService(repo)

	assert.NoError(t, svc.Delete(context.Background(), 5, "admin-9", true))
}

func TestDeleteByStrangerForbidden(t *testing.T) {
	repo := &mockRepository{
		getByIDFn: func(_ context.Context, id int64) (*Comment, error) {
			return &Comment{ID: id, UserID: "user-1"}, nil
		},
		deleteFn: func(context.Context, int64) error {
			t.Fatal("forbidden delete must not reach the repository")
			return nil
		},
	}
	svc := NewService(repo)

	err := svc.Delete(context.Background(), 5, "user-2", false)
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestDeleteMissingComment(t *testing.T) {
	repo := &mockRepository{
		getByIDFn: func(context.Context, int64) (*Comment, error) {
			return nil, core.ErrNotFound
		},
	}
	svc := NewService(repo)

	err := svc.Delete(context.Background(), 5, "user-1", false)
	assert.ErrorIs(t, err, core.ErrNotFound)
}
