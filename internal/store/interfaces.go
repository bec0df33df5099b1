package store

import (
	"context"
	"errors"

	"kra.app/feedback/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	List(ctx context.Context) ([]model.User, error)
	ListByTeam(ctx context.Context, teamID int64) ([]model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
	UpdateRole(ctx context.Context, id int64, role model.Role) (*model.User, error)
	UpdateTeam(ctx context.Context, id int64, teamID *int64) (*model.User, error)
}

// TeamStore defines the contract for team data access
type TeamStore interface {
	GetByID(ctx context.Context, id int64) (*model.Team, error)
	Create(ctx context.Context, team *model.Team) error
	Update(ctx context.Context, team *model.Team) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]model.Team, error)
}

// DashboardStore defines the contract for dashboard data access
type DashboardStore interface {
	GetByID(ctx context.Context, id int64) (*model.Dashboard, error)
	List(ctx context.Context) ([]model.Dashboard, error)
	Create(ctx context.Context, dashboard *model.Dashboard) error
	Update(ctx context.Context, dashboard *model.Dashboard) error
	Delete(ctx context.Context, id int64) error
}

// ChartStore defines the contract for chart data access
type ChartStore interface {
	GetByID(ctx context.Context, id int64) (*model.Chart, error)
	ListByDashboard(ctx context.Context, dashboardID int64) ([]model.Chart, error)
	Create(ctx context.Context, chart *model.Chart) error
	Update(ctx context.Context, chart *model.Chart) error
	Delete(ctx context.Context, id int64) error
}

// IssueStore defines the contract for issue (thread) data access
type IssueStore interface {
	GetByID(ctx context.Context, id int64) (*model.Issue, error)
	// GetForUpdate locks the row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*model.Issue, error)
	Create(ctx context.Context, issue *model.Issue) error
	List(ctx context.Context, filter model.IssueFilter) ([]model.IssueSummary, error)
	UpdateStatus(ctx context.Context, id int64, status model.IssueStatus) (*model.Issue, error)
	Delete(ctx context.Context, id int64) error
	CountByDashboard(ctx context.Context, dashboardID int64) (int64, error)
	CountByChart(ctx context.Context, chartID int64) (int64, error)
}

// CommentStore defines the contract for comment data access
type CommentStore interface {
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	Create(ctx context.Context, comment *model.Comment) error
	ListByIssue(ctx context.Context, issueID int64) ([]model.CommentWithAuthor, error)
	UpdateText(ctx context.Context, id int64, text string) (*model.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// NotificationStore defines the contract for notification data access.
// Every mutating call is scoped to the owning user.
type NotificationStore interface {
	Create(ctx context.Context, n *model.Notification) error
	ListByUser(ctx context.Context, userID int64, unreadOnly bool, limit int32) ([]model.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, id, userID int64) error
	CountUnread(ctx context.Context, userID int64) (int64, error)
}

// LeaderboardStore is append-only.
type LeaderboardStore interface {
	// Record returns false when an entry for the same comment already exists.
	Record(ctx context.Context, activity *model.LeaderboardActivity) (bool, error)
	List(ctx context.Context, action model.LeaderboardAction, limit int32) ([]model.LeaderboardEntry, error)
}

// AdminRequestStore defines the contract for admin request data access
type AdminRequestStore interface {
	GetByID(ctx context.Context, id int64) (*model.AdminRequest, error)
	Create(ctx context.Context, req *model.AdminRequest) error
	List(ctx context.Context, filter model.AdminRequestFilter) ([]model.AdminRequest, error)
	Resolve(ctx context.Context, id int64, status model.AdminRequestStatus, response *string, adminID int64) (*model.AdminRequest, error)
}

// StatsStore serves the admin overview counters.
type StatsStore interface {
	System(ctx context.Context) (*model.SystemStats, error)
	DashboardProgress(ctx context.Context) ([]model.DashboardProgress, error)
}
