// AngelaMos | 2026
// service_test.go

package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	popularFn func(ctx context.Context, limit int) ([]PopularLeader, error)
	recentFn  func(ctx context.Context, limit int) ([]ActivityRecord, error)
}

func (m *mockRepository) PopularLeaders(ctx context.Context, limit int) ([]PopularLeader, error) {
	return m.popularFn(ctx, limit)
}

func (m *mockRepository) RecentActivity(ctx context.Context, limit int) ([]ActivityRecord, error) {
	return m.recentFn(ctx, limit)
}

func TestPopularLeadersLimitClamping(t *testing.T) {
	var gotLimit int
	svc := NewService(&mockRepository{
		popularFn: func(_ context.Context, limit int) ([]PopularLeader, error) {
			gotLimit = limit
			return nil, nil
		},
	})

	_, err := svc.PopularLeaders(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, defaultPopularLimit, gotLimit)

	_, err = svc.PopularLeaders(context.Background(), 500)
	require.NoError(t, err)
	assert.Equal(t, maxPopularLimit, gotLimit)

	_, err = svc.PopularLeaders(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, gotLimit)
}

func TestRecentActivityLimitClamping(t *testing.T) {
	var gotLimit int
	svc := NewService(&mockRepository{
		recentFn: func(_ context.Context, limit int) ([]ActivityRecord, error) {
			gotLimit = limit
			return nil, nil
		},
	})

	_, err := svc.RecentActivity(context.Background(), -1)
	require.NoError(t, err)
	assert.Equal(t, defaultActivityLimit, gotLimit)

	_, err = svc.RecentActivity(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, maxActivityLimit, gotLimit)
}
