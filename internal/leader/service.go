// AngelaMos | 2026
// service.go

package leader

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ussr-leaders/backend/internal/leader/facts"
)

// FactsSource tells the caller where a facts payload came from, so the
// handler can expose degraded-mode serving to clients.
type FactsSource string

const (
	FactsSourceStored    FactsSource = "stored"
	FactsSourceGenerated FactsSource = "generated"
	FactsSourceFallback  FactsSource = "fallback"
)

type Service struct {
	repo      Repository
	cache     Cache
	generator facts.Generator
	fallback  facts.Generator
	factCount int
	logger    *slog.Logger
}

func NewService(
	repo Repository,
	cache Cache,
	generator facts.Generator,
	fallback facts.Generator,
	factCount int,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		generator: generator,
		fallback:  fallback,
		factCount: factCount,
		logger:    logger,
	}
}

func (s *Service) List(ctx context.Context) ([]Leader, error) {
	if cached, ok := s.cache.GetLeaders(ctx, cacheKeyAll); ok {
		return cached, nil
	}

	leaders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetLeaders(ctx, cacheKeyAll, leaders)
	return leaders, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Leader, error) {
	if cached, ok := s.cache.GetLeader(ctx, id); ok {
		return cached, nil
	}

	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.SetLeader(ctx, l)
	return l, nil
}

// Search with an empty query behaves exactly like List.
func (s *Service) Search(ctx context.Context, query string) ([]Leader, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.List(ctx)
	}

	key := fmt.Sprintf(cacheKeySearch, strings.ToLower(query))
	if cached, ok := s.cache.GetLeaders(ctx, key); ok {
		return cached, nil
	}

	leaders, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	s.cache.SetLeaders(ctx, key, leaders)
	return leaders, nil
}

func (s *Service) Create(ctx context.Context, req *CreateLeaderRequest) (*Leader, error) {
	l := &Leader{
		NameRu:       req.NameRu,
		NameEn:       req.NameEn,
		BirthYear:    req.BirthYear,
		BirthPlace:   req.BirthPlace,
		DeathYear:    req.DeathYear,
		DeathPlace:   req.DeathPlace,
		Position:     req.Position,
		Achievements: req.Achievements,
		Biography:    req.Biography,
		VideoID:      req.VideoID,
		PortraitURL:  req.PortraitURL,
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, l.ID)
	return l, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateLeaderRequest) (*Leader, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyUpdate(l, req)
	if err := l.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, id)
	return l, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, id)
	return nil
}

// GetFacts returns stored facts when they exist; otherwise it generates
// a batch, persists it, and serves it. If generation fails the static
// fallback serves the request without persisting, so a later request
// can still produce and store real facts.
func (s *Service) GetFacts(ctx context.Context, leaderID int64) ([]Fact, FactsSource, error) {
	l, err := s.repo.GetByID(ctx, leaderID)
	if err != nil {
		return nil, "", err
	}

	stored, err := s.repo.GetFacts(ctx, leaderID)
	if err != nil {
		return nil, "", err
	}
	if len(stored) > 0 {
		return stored, FactsSourceStored, nil
	}

	input := facts.Leader{
		ID:        l.ID,
		NameRu:    l.NameRu,
		NameEn:    l.NameEn,
		BirthYear: l.BirthYear,
		DeathYear: l.DeathYear,
		Position:  l.Position,
		Biography: l.Biography,
	}

	generated, err := s.generator.Generate(ctx, input, s.factCount)
	if err != nil {
		s.logger.Warn("fact generation failed, serving fallback",
			slog.Int64("leader_id", leaderID),
			slog.String("error", err.Error()),
		)
		return s.serveFallback(ctx, input, leaderID)
	}

	saved, err := s.repo.SaveFacts(ctx, leaderID, toFactEntities(leaderID, generated, false))
	if err != nil {
		return nil, "", err
	}
	return saved, FactsSourceGenerated, nil
}

func (s *Service) serveFallback(
	ctx context.Context,
	input facts.Leader,
	leaderID int64,
) ([]Fact, FactsSource, error) {
	texts, err := s.fallback.Generate(ctx, input, s.factCount)
	if err != nil {
		return nil, "", fmt.Errorf("fallback facts: %w", err)
	}
	return toFactEntities(leaderID, texts, true), FactsSourceFallback, nil
}

func toFactEntities(leaderID int64, texts []string, verified bool) []Fact {
	entities := make([]Fact, 0, len(texts))
	for _, t := range texts {
		entities = append(entities, Fact{
			LeaderID:   leaderID,
			FactText:   t,
			IsVerified: verified,
		})
	}
	return entities
}

func applyUpdate(l *Leader, req *UpdateLeaderRequest) {
	if req.NameRu != nil {
		l.NameRu = *req.NameRu
	}
	if req.NameEn != nil {
		l.NameEn = *req.NameEn
	}
	if req.BirthYear != nil {
		l.BirthYear = *req.BirthYear
	}
	if req.BirthPlace != nil {
		l.BirthPlace = *req.BirthPlace
	}
	if req.DeathYear != nil {
		l.DeathYear = req.DeathYear
	}
	if req.DeathPlace != nil {
		l.DeathPlace = req.DeathPlace
	}
	if req.Position != nil {
		l.Position = *req.Position
	}
	if req.Achievements != nil {
		l.Achievements = *req.Achievements
	}
	if req.Biography != nil {
		l.Biography = *req.Biography
	}
	if req.VideoID != nil {
		l.VideoID = *req.VideoID
	}
	if req.PortraitURL != nil {
		l.PortraitURL = req.PortraitURL
	}
}
