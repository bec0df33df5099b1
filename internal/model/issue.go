package model

import (
	"fmt"
	"time"
)

type IssueStatus string

const (
	IssueStatusPending    IssueStatus = "pending"
	IssueStatusInProgress IssueStatus = "in_progress"
	IssueStatusComplete   IssueStatus = "complete"
)

func ParseIssueStatus(s string) (IssueStatus, error) {
	switch st := IssueStatus(s); st {
	case IssueStatusPending, IssueStatusInProgress, IssueStatusComplete:
		return st, nil
	default:
		return "", fmt.Errorf("unknown issue status %q", s)
	}
}

// Issue is a feedback thread raised against a dashboard and optionally one of its charts.
type Issue struct {
	ID                int64       `json:"id"`
	DashboardID       int64       `json:"dashboard_id"`
	ChartID           *int64      `json:"chart_id,omitempty"`
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	Status            IssueStatus `json:"status"`
	SubmittedByUserID int64       `json:"submitted_by_user_id"`
	AssignedTeamID    *int64      `json:"assigned_team_id,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// IsClosed reports whether the thread refuses new comments.
func (i *Issue) IsClosed() bool {
	return i.Status == IssueStatusComplete
}

// IssueSummary is an issue row enriched for listings.
type IssueSummary struct {
	Issue
	SubmittedByName string
	DashboardName   string
	ChartName       *string
	TeamName        *string
	CommentCount    int64
}

type IssueFilter struct {
	DashboardID       *int64
	ChartID           *int64
	Status            *IssueStatus
	SubmittedByUserID *int64
}
