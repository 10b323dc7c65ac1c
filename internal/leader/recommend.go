// AngelaMos | 2026
// recommend.go

package leader

import (
	"context"
	"sort"
	"strings"
)

const (
	defaultRecommendCount = 3
	maxRecommendCount     = 5
)

// Recommendations returns leaders similar to the given one, ranked by an
// era-and-role heuristic: close contemporaries score highest, and shared
// wording in position and achievements breaks ties within a period.
func (s *Service) Recommendations(
	ctx context.Context,
	id int64,
	count int,
) ([]Leader, error) {
	if count <= 0 {
		count = defaultRecommendCount
	}
	if count > maxRecommendCount {
		count = maxRecommendCount
	}

	subject, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	type scored struct {
		leader Leader
		score  float64
	}

	candidates := make([]scored, 0, len(all))
	for _, other := range all {
		if other.ID == subject.ID {
			continue
		}
		candidates = append(candidates, scored{other, similarity(subject, &other)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > count {
		candidates = candidates[:count]
	}

	recs := make([]Leader, len(candidates))
	for i, c := range candidates {
		recs[i] = c.leader
	}
	return recs, nil
}

func similarity(a, b *Leader) float64 {
	score := eraScore(a, b)
	score += tokenOverlap(a.Position, b.Position) * 0.5
	score += tokenOverlap(a.Achievements, b.Achievements) * 0.25
	return score
}

// eraScore decays with the birth-year gap: a 25-year gap halves it.
func eraScore(a, b *Leader) float64 {
	gap := a.BirthYear - b.BirthYear
	if gap < 0 {
		gap = -gap
	}
	return 1.0 / (1.0 + float64(gap)/25.0)
}

// tokenOverlap is the Jaccard index of the lowercased word sets.
func tokenOverlap(a, b string) float64 {
	as := tokenSet(a)
	bs := tokenSet(b)
	if len(as) == 0 || len(bs) == 0 {
		return 0
	}

	shared := 0
	for w := range as {
		if _, ok := bs[w]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(as)+len(bs)-shared)
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, `.,;:()«»"`)
		// Short words are mostly particles and prepositions.
		if len([]rune(w)) < 4 {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}
