package model

import (
	"fmt"
	"time"
)

type AdminRequestStatus string

const (
	AdminRequestStatusPending  AdminRequestStatus = "pending"
	AdminRequestStatusResolved AdminRequestStatus = "resolved"
	AdminRequestStatusRejected AdminRequestStatus = "rejected"
)

func ParseAdminRequestStatus(s string) (AdminRequestStatus, error) {
	switch st := AdminRequestStatus(s); st {
	case AdminRequestStatusPending, AdminRequestStatusResolved, AdminRequestStatusRejected:
		return st, nil
	default:
		return "", fmt.Errorf("unknown admin request status %q", s)
	}
}

// AdminRequest is a message from a non-admin user asking an admin for help
// (access, new dashboards, data problems).
type AdminRequest struct {
	ID                int64
	SubmittedByUserID int64
	SubmittedByName   string
	DashboardID       *int64
	DashboardName     *string
	Subject           string
	Description       string
	Status            AdminRequestStatus
	AdminResponse     *string
	ResolvedByAdminID *int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type AdminRequestFilter struct {
	Status            *AdminRequestStatus
	SubmittedByUserID *int64
}
