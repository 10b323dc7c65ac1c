// AngelaMos | 2026
// service.go

package comment

import (
	"context"
	"fmt"
	"strings"

	"github.com/ussr-leaders/backend/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	userID string,
	leaderID int64,
	content string,
) (*Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: comment content is empty", core.ErrInvalidInput)
	}

	c := &Comment{
		UserID:   userID,
		LeaderID: leaderID,
		Content:  content,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, c.ID)
}

func (s *Service) ListByLeader(ctx context.Context, leaderID int64) ([]Comment, error) {
	return s.repo.ListByLeader(ctx, leaderID)
}

// Delete removes a comment. Only the author or an admin may delete.
func (s *Service) Delete(ctx context.Context, id int64, userID string, isAdmin bool) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if c.UserID != userID && !isAdmin {
		return core.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
