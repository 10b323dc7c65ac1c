// AngelaMos | 2026
// dto.go

package leader

import (
	"time"
)

type CreateLeaderRequest struct {
	NameRu       string  `json:"name_ru"       validate:"required,max=255"`
	NameEn       string  `json:"name_en"       validate:"required,max=255"`
	BirthYear    int     `json:"birth_year"    validate:"required,gte=1000,lte=2100"`
	BirthPlace   string  `json:"birth_place"   validate:"required,max=255"`
	DeathYear    *int    `json:"death_year,omitempty"  validate:"omitempty,gte=1000,lte=2100"`
	DeathPlace   *string `json:"death_place,omitempty" validate:"omitempty,max=255"`
	Position     string  `json:"position"      validate:"required,max=500"`
	Achievements string  `json:"achievements"  validate:"required"`
	Biography    string  `json:"biography"`
	VideoID      int     `json:"video_id"      validate:"gte=0"`
	PortraitURL  *string `json:"portrait_url,omitempty" validate:"omitempty,max=500,url"`
}

type UpdateLeaderRequest struct {
	NameRu       *string `json:"name_ru,omitempty"      validate:"omitempty,min=1,max=255"`
	NameEn       *string `json:"name_en,omitempty"      validate:"omitempty,min=1,max=255"`
	BirthYear    *int    `json:"birth_year,omitempty"   validate:"omitempty,gte=1000,lte=2100"`
	BirthPlace   *string `json:"birth_place,omitempty"  validate:"omitempty,min=1,max=255"`
	DeathYear    *int    `json:"death_year,omitempty"   validate:"omitempty,gte=1000,lte=2100"`
	DeathPlace   *string `json:"death_place,omitempty"  validate:"omitempty,max=255"`
	Position     *string `json:"position,omitempty"     validate:"omitempty,min=1,max=500"`
	Achievements *string `json:"achievements,omitempty" validate:"omitempty,min=1"`
	Biography    *string `json:"biography,omitempty"`
	VideoID      *int    `json:"video_id,omitempty"     validate:"omitempty,gte=0"`
	PortraitURL  *string `json:"portrait_url,omitempty" validate:"omitempty,max=500,url"`
}

type LeaderResponse struct {
	ID           int64     `json:"id"`
	NameRu       string    `json:"name_ru"`
	NameEn       string    `json:"name_en"`
	BirthYear    int       `json:"birth_year"`
	BirthPlace   string    `json:"birth_place"`
	DeathYear    *int      `json:"death_year,omitempty"`
	DeathPlace   *string   `json:"death_place,omitempty"`
	Position     string    `json:"position"`
	Achievements string    `json:"achievements"`
	Biography    string    `json:"biography"`
	VideoID      int       `json:"video_id"`
	PortraitURL  *string   `json:"portrait_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type FactResponse struct {
	ID         int64   `json:"id"`
	LeaderID   int64   `json:"leader_id"`
	FactText   string  `json:"fact_text"`
	Category   *string `json:"category,omitempty"`
	IsVerified bool    `json:"is_verified"`
}

type FactsResponse struct {
	Facts []FactResponse `json:"facts"`
}

type SearchResponse struct {
	Results []LeaderResponse `json:"results"`
	Total   int              `json:"total"`
}

func ToLeaderResponse(l *Leader) LeaderResponse {
	return LeaderResponse{
		ID:           l.ID,
		NameRu:       l.NameRu,
		NameEn:       l.NameEn,
		BirthYear:    l.BirthYear,
		BirthPlace:   l.BirthPlace,
		DeathYear:    l.DeathYear,
		DeathPlace:   l.DeathPlace,
		Position:     l.Position,
		Achievements: l.Achievements,
		Biography:    l.Biography,
		VideoID:      l.VideoID,
		PortraitURL:  l.PortraitURL,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func ToLeaderResponseList(leaders []Leader) []LeaderResponse {
	responses := make([]LeaderResponse, 0, len(leaders))
	for _, l := range leaders {
		responses = append(responses, ToLeaderResponse(&l))
	}
	return responses
}

func ToFactResponse(f *Fact) FactResponse {
	return FactResponse{
		ID:         f.ID,
		LeaderID:   f.LeaderID,
		FactText:   f.FactText,
		Category:   f.Category,
		IsVerified: f.IsVerified,
	}
}

func ToFactResponseList(facts []Fact) []FactResponse {
	responses := make([]FactResponse, 0, len(facts))
	for _, f := range facts {
		responses = append(responses, ToFactResponse(&f))
	}
	return responses
}
