package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"kra.app/feedback/common/id"
	"kra.app/feedback/common/logger"
	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/store"
)

var (
	ErrDashboardNotFound = errors.New("dashboard not found")
	ErrChartNotFound     = errors.New("chart not found")
)

type CreateIssueParams struct {
	DashboardID int64
	ChartID     *int64
	Title       string
	Description string
}

type IssueService interface {
	Create(ctx context.Context, caller *model.User, params CreateIssueParams) (*model.Issue, error)
	Get(ctx context.Context, issueID int64) (*model.Issue, error)
	List(ctx context.Context, filter model.IssueFilter) ([]model.IssueSummary, error)
	UpdateStatus(ctx context.Context, caller *model.User, issueID int64, status model.IssueStatus) (*model.Issue, error)
	Delete(ctx context.Context, caller *model.User, issueID int64) error
}

type issueService struct {
	issues     store.IssueStore
	dashboards store.DashboardStore
	charts     store.ChartStore
}

func NewIssueService(issues store.IssueStore, dashboards store.DashboardStore, charts store.ChartStore) IssueService {
	return &issueService{
		issues:     issues,
		dashboards: dashboards,
		charts:     charts,
	}
}

func (s *issueService) Create(ctx context.Context, caller *model.User, params CreateIssueParams) (*model.Issue, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, invalid("Title is required")
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:      &caller.ID,
		DashboardID: &params.DashboardID,
		Component:   "issue",
	})

	dashboard, err := s.dashboards.GetByID(ctx, params.DashboardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrDashboardNotFound
		}
		return nil, fmt.Errorf("getting dashboard: %w", err)
	}

	if params.ChartID != nil {
		chart, err := s.charts.GetByID(ctx, *params.ChartID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("getting chart: %w", err)
		}
		if chart == nil || chart.DashboardID != dashboard.ID {
			return nil, invalid("Chart does not belong to this dashboard")
		}
	}

	issue := &model.Issue{
		ID:                id.New(),
		DashboardID:       dashboard.ID,
		ChartID:           params.ChartID,
		Title:             title,
		Description:       params.Description,
		Status:            model.IssueStatusPending,
		SubmittedByUserID: caller.ID,
		AssignedTeamID:    dashboard.AssignedTeamID,
	}
	if err := s.issues.Create(ctx, issue); err != nil {
		slog.ErrorContext(ctx, "failed to create issue", "error", err)
		return nil, fmt.Errorf("creating issue: %w", err)
	}

	slog.InfoContext(ctx, "issue created", "issue_id", issue.ID)
	return issue, nil
}

func (s *issueService) Get(ctx context.Context, issueID int64) (*model.Issue, error) {
	issue, err := s.issues.GetByID(ctx, issueID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrIssueNotFound
		}
		return nil, fmt.Errorf("getting issue: %w", err)
	}
	return issue, nil
}

func (s *issueService) List(ctx context.Context, filter model.IssueFilter) ([]model.IssueSummary, error) {
	issues, err := s.issues.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing issues: %w", err)
	}
	return issues, nil
}

// canMoveIssue decides who may set an issue's status explicitly.
func canMoveIssue(caller *model.User, issue *model.Issue) (bool, error) {
	switch caller.Role {
	case model.RoleAdmin:
		return true, nil
	case model.RoleDataScience:
		return caller.InTeam(issue.AssignedTeamID), nil
	case model.RoleBusiness:
		return issue.SubmittedByUserID == caller.ID, nil
	default:
		return false, fmt.Errorf("%w: %q", model.ErrUnknownRole, caller.Role)
	}
}

func (s *issueService) UpdateStatus(ctx context.Context, caller *model.User, issueID int64, status model.IssueStatus) (*model.Issue, error) {
	issue, err := s.Get(ctx, issueID)
	if err != nil {
		return nil, err
	}

	allowed, err := canMoveIssue(caller, issue)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrForbidden
	}
	if issue.Status == status {
		return issue, nil
	}

	updated, err := s.issues.UpdateStatus(ctx, issueID, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrIssueNotFound
		}
		return nil, fmt.Errorf("updating issue status: %w", err)
	}

	slog.InfoContext(ctx, "issue status changed",
		"issue_id", issueID,
		"from", issue.Status,
		"to", status,
	)
	return updated, nil
}

func (s *issueService) Delete(ctx context.Context, caller *model.User, issueID int64) error {
	issue, err := s.Get(ctx, issueID)
	if err != nil {
		return err
	}
	if caller.Role != model.RoleAdmin && issue.SubmittedByUserID != caller.ID {
		return ErrForbidden
	}

	if err := s.issues.Delete(ctx, issueID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrIssueNotFound
		}
		return fmt.Errorf("deleting issue: %w", err)
	}

	slog.InfoContext(ctx, "issue deleted", "issue_id", issueID)
	return nil
}
