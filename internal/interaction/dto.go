// AngelaMos | 2026
// dto.go

package interaction

import (
	"time"
)

type RecordRequest struct {
	Kind string `json:"kind" validate:"required,oneof=bookmark like view"`
}

type InteractionResponse struct {
	ID        int64     `json:"id"`
	UserID    *string   `json:"user_id,omitempty"`
	LeaderID  int64     `json:"leader_id"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

type BookmarkResponse struct {
	LeaderID     int64     `json:"leader_id"`
	NameRu       string    `json:"name_ru"`
	NameEn       string    `json:"name_en"`
	Position     string    `json:"position"`
	PortraitURL  *string   `json:"portrait_url,omitempty"`
	BookmarkedAt time.Time `json:"bookmarked_at"`
}

func ToInteractionResponse(i *Interaction) InteractionResponse {
	return InteractionResponse{
		ID:        i.ID,
		UserID:    i.UserID,
		LeaderID:  i.LeaderID,
		Kind:      i.Kind,
		CreatedAt: i.CreatedAt,
	}
}

func ToBookmarkResponseList(bookmarks []Bookmark) []BookmarkResponse {
	responses := make([]BookmarkResponse, 0, len(bookmarks))
	for _, b := range bookmarks {
		responses = append(responses, BookmarkResponse{
			LeaderID:     b.LeaderID,
			NameRu:       b.NameRu,
			NameEn:       b.NameEn,
			Position:     b.Position,
			PortraitURL:  b.PortraitURL,
			BookmarkedAt: b.CreatedAt,
		})
	}
	return responses
}
