package model

import "time"

type Dashboard struct {
	ID             int64     `json:"id"`
	Name           string    `json:"dashboard_name"`
	Description    *string   `json:"description,omitempty"`
	AssignedTeamID *int64    `json:"assigned_team_id,omitempty"`
	TeamName       *string   `json:"team_name,omitempty"`
	ThreadCount    int64     `json:"thread_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Chart struct {
	ID          int64     `json:"id"`
	DashboardID int64     `json:"dashboard_id"`
	Name        string    `json:"chart_name"`
	Description *string   `json:"description,omitempty"`
	ThreadCount int64     `json:"thread_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
