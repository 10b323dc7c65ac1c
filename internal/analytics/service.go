// AngelaMos | 2026
// service.go

package analytics

import (
	"context"
)

const (
	defaultPopularLimit  = 10
	maxPopularLimit      = 50
	defaultActivityLimit = 25
	maxActivityLimit     = 100
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) PopularLeaders(ctx context.Context, limit int) ([]PopularLeader, error) {
	if limit <= 0 {
		limit = defaultPopularLimit
	}
	if limit > maxPopularLimit {
		limit = maxPopularLimit
	}
	return s.repo.PopularLeaders(ctx, limit)
}

func (s *Service) RecentActivity(ctx context.Context, limit int) ([]ActivityRecord, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	return s.repo.RecentActivity(ctx, limit)
}
