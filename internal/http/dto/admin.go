package dto

import (
	"time"

	"kra.app/feedback/internal/model"
)

type StatsResponse struct {
	BusinessUsers        int64 `json:"business_users"`
	DataScienceUsers     int64 `json:"data_science_users"`
	TotalTeams           int64 `json:"total_teams"`
	TotalDashboards      int64 `json:"total_dashboards"`
	PendingIssues        int64 `json:"pending_issues"`
	InProgressIssues     int64 `json:"in_progress_issues"`
	CompletedIssues      int64 `json:"completed_issues"`
	PendingAdminRequests int64 `json:"pending_admin_requests"`
}

func ToStatsResponse(s *model.SystemStats) *StatsResponse {
	return &StatsResponse{
		BusinessUsers:        s.BusinessUsers,
		DataScienceUsers:     s.DataScienceUsers,
		TotalTeams:           s.TotalTeams,
		TotalDashboards:      s.TotalDashboards,
		PendingIssues:        s.PendingIssues,
		InProgressIssues:     s.InProgressIssues,
		CompletedIssues:      s.CompletedIssues,
		PendingAdminRequests: s.PendingAdminRequests,
	}
}

type DashboardProgressResponse struct {
	ID               int64   `json:"id,string"`
	DashboardName    string  `json:"dashboard_name"`
	TeamName         *string `json:"team_name,omitempty"`
	TotalIssues      int64   `json:"total_issues"`
	PendingIssues    int64   `json:"pending_issues"`
	InProgressIssues int64   `json:"in_progress_issues"`
	CompletedIssues  int64   `json:"completed_issues"`
}

func ToDashboardProgressResponses(rows []model.DashboardProgress) []DashboardProgressResponse {
	out := make([]DashboardProgressResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, DashboardProgressResponse{
			ID:               p.DashboardID,
			DashboardName:    p.DashboardName,
			TeamName:         p.TeamName,
			TotalIssues:      p.TotalIssues,
			PendingIssues:    p.PendingIssues,
			InProgressIssues: p.InProgressIssues,
			CompletedIssues:  p.CompletedIssues,
		})
	}
	return out
}

type LeaderboardEntryResponse struct {
	Rank          int     `json:"rank"`
	UserID        int64   `json:"user_id,string"`
	UserName      string  `json:"user_name"`
	TeamName      *string `json:"team_name,omitempty"`
	ResponseCount int64   `json:"response_count"`
}

// ToLeaderboardResponses assumes entries are already ordered by count.
func ToLeaderboardResponses(entries []model.LeaderboardEntry) []LeaderboardEntryResponse {
	out := make([]LeaderboardEntryResponse, 0, len(entries))
	for i, e := range entries {
		out = append(out, LeaderboardEntryResponse{
			Rank:          i + 1,
			UserID:        e.UserID,
			UserName:      e.UserName,
			TeamName:      e.TeamName,
			ResponseCount: e.ResponseCount,
		})
	}
	return out
}

type CreateAdminRequestRequest struct {
	Subject     string `json:"subject" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
	DashboardID *int64 `json:"dashboard_id,string,omitempty"`
}

type ResolveAdminRequestRequest struct {
	Status        string  `json:"status" binding:"required,oneof=resolved rejected"`
	AdminResponse *string `json:"admin_response,omitempty"`
}

type AdminRequestResponse struct {
	ID                int64                    `json:"id,string"`
	SubmittedByUserID int64                    `json:"submitted_by_user_id,string"`
	SubmittedByName   string                   `json:"submitted_by_name,omitempty"`
	DashboardID       *int64                   `json:"dashboard_id,string,omitempty"`
	DashboardName     *string                  `json:"dashboard_name,omitempty"`
	Subject           string                   `json:"subject"`
	Description       string                   `json:"description"`
	Status            model.AdminRequestStatus `json:"status"`
	AdminResponse     *string                  `json:"admin_response,omitempty"`
	ResolvedByAdminID *int64                   `json:"resolved_by_admin_id,string,omitempty"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at"`
}

func ToAdminRequestResponse(r *model.AdminRequest) *AdminRequestResponse {
	return &AdminRequestResponse{
		ID:                r.ID,
		SubmittedByUserID: r.SubmittedByUserID,
		SubmittedByName:   r.SubmittedByName,
		DashboardID:       r.DashboardID,
		DashboardName:     r.DashboardName,
		Subject:           r.Subject,
		Description:       r.Description,
		Status:            r.Status,
		AdminResponse:     r.AdminResponse,
		ResolvedByAdminID: r.ResolvedByAdminID,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func ToAdminRequestResponses(requests []model.AdminRequest) []AdminRequestResponse {
	out := make([]AdminRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, *ToAdminRequestResponse(&requests[i]))
	}
	return out
}
