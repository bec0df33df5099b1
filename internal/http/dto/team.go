package dto

import (
	"time"

	"kra.app/feedback/internal/model"
)

type TeamRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description,omitempty"`
}

type TeamResponse struct {
	ID          int64     `json:"id,string"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	MemberCount int64     `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToTeamResponse(t *model.Team) *TeamResponse {
	return &TeamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		MemberCount: t.MemberCount,
		CreatedAt:   t.CreatedAt,
	}
}

func ToTeamResponses(teams []model.Team) []TeamResponse {
	out := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		out = append(out, *ToTeamResponse(&teams[i]))
	}
	return out
}
