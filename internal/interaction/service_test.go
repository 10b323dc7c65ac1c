// AngelaMos | 2026
// service_test.go

package interaction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ussr-leaders/backend/internal/core"
)

type mockRepository struct {
	createFn         func(ctx context.Context, i *Interaction) error
	listBookmarksFn  func(ctx context.Context, userID string) ([]Bookmark, error)
	deleteBookmarkFn func(ctx context.Context, userID string, leaderID int64) error
	deleteByIDFn     func(ctx context.Context, id int64) error
	recentFn         func(ctx context.Context, limit int) ([]Interaction, error)
}

func (m *mockRepository) Create(ctx context.Context, i *Interaction) error {
	return m.createFn(ctx, i)
}

func (m *mockRepository) ListBookmarks(ctx context.Context, userID string) ([]Bookmark, error) {
	return m.listBookmarksFn(ctx, userID)
}

func (m *mockRepository) DeleteBookmark(
	ctx context.Context,
	userID string,
	leaderID int64,
) error {
	return m.deleteBookmarkFn(ctx, userID, leaderID)
}

func (m *mockRepository) DeleteByID(ctx context.Context, id int64) error {
	return m.deleteByIDFn(ctx, id)
}

func (m *mockRepository) Recent(ctx context.Context, limit int) ([]Interaction, error) {
	return m.recentFn(ctx, limit)
}

func TestRecordAnonymousView(t *testing.T) {
	var created *Interaction
	repo := &mockRepository{
		createFn: func(_ context.Context, i *Interaction) error {
			created = i
			i.ID = 1
			return nil
		},
	}
	svc := NewService(repo)

	got, err := svc.Record(context.Background(), "", 3, KindView)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	require.NotNil(t, created)
	assert.Nil(t, created.UserID)
}

func TestRecordAnonymousBookmarkRejected(t *testing.T) {
	repo := &mockRepository{
		createFn: func(context.Context, *Interaction) error {
			t.Fatal("anonymous bookmark must not reach the repository")
			return nil
		},
	}
	svc := NewService(repo)

	_, err := svc.Record(context.Background(), "", 3, KindBookmark)
	assert.ErrorIs(t, err, core.ErrUnauthorized)

	_, err = svc.Record(context.Background(), "", 3, KindLike)
	assert.ErrorIs(t, err, core.ErrUnauthorized)
}

func TestRecordUnknownKind(t *testing.T) {
	svc := NewService(&mockRepository{})

	_, err := svc.Record(context.Background(), "user-1", 3, "superlike")
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestRecordAttributesUser(t *testing.T) {
	var created *Interaction
	repo := &mockRepository{
		createFn: func(_ context.Context, i *Interaction) error {
			created = i
			return nil
		},
	}
	svc := NewService(repo)

	_, err := svc.Record(context.Background(), "user-1", 3, KindBookmark)
	require.NoError(t, err)
	require.NotNil(t, created.UserID)
	assert.Equal(t, "user-1", *created.UserID)
}

func TestRecentClampsLimit(t *testing.T) {
	var gotLimit int
	repo := &mockRepository{
		recentFn: func(_ context.Context, limit int) ([]Interaction, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	svc := NewService(repo)

	_, err := svc.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 50, gotLimit)

	_, err = svc.Recent(context.Background(), 10000)
	require.NoError(t, err)
	assert.Equal(t, 50, gotLimit)
}
