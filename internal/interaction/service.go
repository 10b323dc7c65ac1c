// AngelaMos | 2026
// service.go

package interaction

import (
	"context"
	"fmt"

	"github.com/ussr-leaders/backend/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record stores an interaction. userID is empty for anonymous callers,
// which is only permitted for views.
func (s *Service) Record(
	ctx context.Context,
	userID string,
	leaderID int64,
	kind string,
) (*Interaction, error) {
	if !ValidKind(kind) {
		return nil, fmt.Errorf("%w: unknown interaction kind %q", core.ErrInvalidInput, kind)
	}
	if userID == "" && RequiresAuth(kind) {
		return nil, core.ErrUnauthorized
	}

	i := &Interaction{
		LeaderID: leaderID,
		Kind:     kind,
	}
	if userID != "" {
		i.UserID = &userID
	}

	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *Service) ListBookmarks(ctx context.Context, userID string) ([]Bookmark, error) {
	return s.repo.ListBookmarks(ctx, userID)
}

func (s *Service) RemoveBookmark(ctx context.Context, userID string, leaderID int64) error {
	return s.repo.DeleteBookmark(ctx, userID, leaderID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *Service) Recent(ctx context.Context, limit int) ([]Interaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.Recent(ctx, limit)
}
