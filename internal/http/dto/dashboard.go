package dto

import (
	"time"

	"kra.app/feedback/internal/model"
)

type DashboardRequest struct {
	DashboardName  string  `json:"dashboard_name" binding:"required,max=255"`
	Description    *string `json:"description,omitempty"`
	AssignedTeamID *int64  `json:"assigned_team_id,string,omitempty"`
}

type DashboardResponse struct {
	ID             int64          `json:"id,string"`
	DashboardName  string         `json:"dashboard_name"`
	Description    *string        `json:"description,omitempty"`
	AssignedTeamID *int64         `json:"assigned_team_id,string,omitempty"`
	TeamName       *string        `json:"team_name,omitempty"`
	ThreadCount    int64          `json:"thread_count"`
	Priority       model.Priority `json:"priority"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// ToDashboardResponse derives priority from the row's thread count.
func ToDashboardResponse(d *model.Dashboard) *DashboardResponse {
	return &DashboardResponse{
		ID:             d.ID,
		DashboardName:  d.Name,
		Description:    d.Description,
		AssignedTeamID: d.AssignedTeamID,
		TeamName:       d.TeamName,
		ThreadCount:    d.ThreadCount,
		Priority:       model.PriorityForCount(d.ThreadCount),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func ToDashboardResponses(dashboards []model.Dashboard) []DashboardResponse {
	out := make([]DashboardResponse, 0, len(dashboards))
	for i := range dashboards {
		out = append(out, *ToDashboardResponse(&dashboards[i]))
	}
	return out
}

type CreateChartRequest struct {
	DashboardID int64   `json:"dashboard_id,string" binding:"required"`
	ChartName   string  `json:"chart_name" binding:"required,max=255"`
	Description *string `json:"description,omitempty"`
}

type UpdateChartRequest struct {
	ChartName   string  `json:"chart_name" binding:"required,max=255"`
	Description *string `json:"description,omitempty"`
}

type ChartResponse struct {
	ID          int64          `json:"id,string"`
	DashboardID int64          `json:"dashboard_id,string"`
	ChartName   string         `json:"chart_name"`
	Description *string        `json:"description,omitempty"`
	ThreadCount int64          `json:"thread_count"`
	Priority    model.Priority `json:"priority"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func ToChartResponse(c *model.Chart) *ChartResponse {
	return &ChartResponse{
		ID:          c.ID,
		DashboardID: c.DashboardID,
		ChartName:   c.Name,
		Description: c.Description,
		ThreadCount: c.ThreadCount,
		Priority:    model.PriorityForCount(c.ThreadCount),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func ToChartResponses(charts []model.Chart) []ChartResponse {
	out := make([]ChartResponse, 0, len(charts))
	for i := range charts {
		out = append(out, *ToChartResponse(&charts[i]))
	}
	return out
}
