// AngelaMos | 2026
// recommend_test.go

package leader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ussr-leaders/backend/internal/core"
)

func sovietLeaders() []Leader {
	return []Leader{
		{
			ID:        1,
			NameRu:    "Владимир Ильич Ленин",
			BirthYear: 1870,
			Position:  "Председатель Совета народных комиссаров",
		},
		{
			ID:        2,
			NameRu:    "Иосиф Виссарионович Сталин",
			BirthYear: 1878,
			Position:  "Генеральный секретарь ЦК КПСС",
		},
		{
			ID:        3,
			NameRu:    "Никита Сергеевич Хрущёв",
			BirthYear: 1894,
			Position:  "Первый секретарь ЦК КПСС",
		},
		{
			ID:        4,
			NameRu:    "Михаил Сергеевич Горбачёв",
			BirthYear: 1931,
			Position:  "Генеральный секретарь ЦК КПСС",
		},
	}
}

func recommendService(all []Leader) *Service {
	repo := &mockRepository{
		listFn: func(context.Context) ([]Leader, error) {
			return all, nil
		},
		getByIDFn: func(_ context.Context, id int64) (*Leader, error) {
			for i := range all {
				if all[i].ID == id {
					return &all[i], nil
				}
			}
			return nil, core.ErrNotFound
		},
	}
	return newTestService(repo, nil, nil, nil)
}

func TestRecommendationsRankContemporariesFirst(t *testing.T) {
	svc := recommendService(sovietLeaders())

	recs, err := svc.Recommendations(context.Background(), 1, 3)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	// Stalin (8-year gap) before Khrushchev (24) before Gorbachev (61).
	assert.Equal(t, int64(2), recs[0].ID)
	assert.Equal(t, int64(3), recs[1].ID)
	assert.Equal(t, int64(4), recs[2].ID)
}

func TestRecommendationsSharedPositionBreaksEraTies(t *testing.T) {
	all := []Leader{
		{ID: 1, NameRu: "А", BirthYear: 1900, Position: "Генеральный секретарь ЦК КПСС"},
		{ID: 2, NameRu: "Б", BirthYear: 1910, Position: "Председатель Президиума"},
		{ID: 3, NameRu: "В", BirthYear: 1910, Position: "Генеральный секретарь ЦК КПСС"},
	}
	svc := recommendService(all)

	recs, err := svc.Recommendations(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// Same era gap, but leader 3 shares the subject's position wording.
	assert.Equal(t, int64(3), recs[0].ID)
	assert.Equal(t, int64(2), recs[1].ID)
}

func TestRecommendationsExcludesSubjectAndClampsCount(t *testing.T) {
	svc := recommendService(sovietLeaders())

	recs, err := svc.Recommendations(context.Background(), 2, 0)
	require.NoError(t, err)
	assert.Len(t, recs, 3)
	for _, r := range recs {
		assert.NotEqual(t, int64(2), r.ID)
	}

	recs, err = svc.Recommendations(context.Background(), 2, 99)
	require.NoError(t, err)
	assert.Len(t, recs, 3)
}

func TestRecommendationsUnknownLeader(t *testing.T) {
	svc := recommendService(sovietLeaders())

	_, err := svc.Recommendations(context.Background(), 404, 3)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestTokenOverlap(t *testing.T) {
	assert.Equal(t, 1.0, tokenOverlap(
		"Генеральный секретарь", "генеральный секретарь"))
	assert.Equal(t, 0.0, tokenOverlap("Председатель", "секретарь"))
	assert.Equal(t, 0.0, tokenOverlap("", "секретарь"))
}
