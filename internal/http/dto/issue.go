package dto

import (
	"time"

	"kra.app/feedback/internal/model"
)

type CreateIssueRequest struct {
	DashboardID int64  `json:"dashboard_id,string" binding:"required"`
	ChartID     *int64 `json:"chart_id,string,omitempty"`
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"max=10000"`
}

type UpdateIssueStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type IssueResponse struct {
	ID                int64             `json:"id,string"`
	DashboardID       int64             `json:"dashboard_id,string"`
	ChartID           *int64            `json:"chart_id,string,omitempty"`
	Title             string            `json:"title"`
	Description       string            `json:"description"`
	Status            model.IssueStatus `json:"status"`
	SubmittedByUserID int64             `json:"submitted_by_user_id,string"`
	AssignedTeamID    *int64            `json:"assigned_team_id,string,omitempty"`
	SubmittedByName   string            `json:"submitted_by_name,omitempty"`
	DashboardName     string            `json:"dashboard_name,omitempty"`
	ChartName         *string           `json:"chart_name,omitempty"`
	TeamName          *string           `json:"team_name,omitempty"`
	CommentCount      *int64            `json:"comment_count,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

func ToIssueResponse(i *model.Issue) *IssueResponse {
	return &IssueResponse{
		ID:                i.ID,
		DashboardID:       i.DashboardID,
		ChartID:           i.ChartID,
		Title:             i.Title,
		Description:       i.Description,
		Status:            i.Status,
		SubmittedByUserID: i.SubmittedByUserID,
		AssignedTeamID:    i.AssignedTeamID,
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
	}
}

func ToIssueSummaryResponses(issues []model.IssueSummary) []IssueResponse {
	out := make([]IssueResponse, 0, len(issues))
	for i := range issues {
		resp := ToIssueResponse(&issues[i].Issue)
		resp.SubmittedByName = issues[i].SubmittedByName
		resp.DashboardName = issues[i].DashboardName
		resp.ChartName = issues[i].ChartName
		resp.TeamName = issues[i].TeamName
		resp.CommentCount = &issues[i].CommentCount
		out = append(out, *resp)
	}
	return out
}
