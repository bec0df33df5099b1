package store

import (
	"context"

	"kra.app/feedback/core/db/sqlc"
	"kra.app/feedback/internal/model"
)

type issueStore struct {
	queries *sqlc.Queries
}

func newIssueStore(queries *sqlc.Queries) IssueStore {
	return &issueStore{queries: queries}
}

func (s *issueStore) GetByID(ctx context.Context, id int64) (*model.Issue, error) {
	row, err := s.queries.GetIssue(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return toIssueModel(row), nil
}

func (s *issueStore) GetForUpdate(ctx context.Context, id int64) (*model.Issue, error) {
	row, err := s.queries.GetIssueForUpdate(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return toIssueModel(row), nil
}

func (s *issueStore) Create(ctx context.Context, issue *model.Issue) error {
	row, err := s.queries.CreateIssue(ctx, sqlc.CreateIssueParams{
		ID:                issue.ID,
		DashboardID:       issue.DashboardID,
		ChartID:           issue.ChartID,
		Title:             issue.Title,
		Description:       issue.Description,
		Status:            string(issue.Status),
		SubmittedByUserID: issue.SubmittedByUserID,
		AssignedTeamID:    issue.AssignedTeamID,
	})
	if err != nil {
		return err
	}
	*issue = *toIssueModel(row)
	return nil
}

func (s *issueStore) List(ctx context.Context, filter model.IssueFilter) ([]model.IssueSummary, error) {
	params := sqlc.ListIssuesParams{
		DashboardID:       filter.DashboardID,
		ChartID:           filter.ChartID,
		SubmittedByUserID: filter.SubmittedByUserID,
	}
	if filter.Status != nil {
		status := string(*filter.Status)
		params.Status = &status
	}

	rows, err := s.queries.ListIssues(ctx, params)
	if err != nil {
		return nil, err
	}

	issues := make([]model.IssueSummary, 0, len(rows))
	for _, row := range rows {
		issues = append(issues, model.IssueSummary{
			Issue: model.Issue{
				ID:                row.ID,
				DashboardID:       row.DashboardID,
				ChartID:           row.ChartID,
				Title:             row.Title,
				Description:       row.Description,
				Status:            model.IssueStatus(row.Status),
				SubmittedByUserID: row.SubmittedByUserID,
				AssignedTeamID:    row.AssignedTeamID,
				CreatedAt:         row.CreatedAt.Time,
				UpdatedAt:         row.UpdatedAt.Time,
			},
			SubmittedByName: row.SubmittedByName,
			DashboardName:   row.DashboardName,
			ChartName:       row.ChartName,
			TeamName:        row.TeamName,
			CommentCount:    row.CommentCount,
		})
	}
	return issues, nil
}

func (s *issueStore) UpdateStatus(ctx context.Context, id int64, status model.IssueStatus) (*model.Issue, error) {
	row, err := s.queries.UpdateIssueStatus(ctx, sqlc.UpdateIssueStatusParams{
		ID:     id,
		Status: string(status),
	})
	if err != nil {
		return nil, notFound(err)
	}
	return toIssueModel(row), nil
}

func (s *issueStore) Delete(ctx context.Context, id int64) error {
	return affected(s.queries.DeleteIssue(ctx, id))
}

func (s *issueStore) CountByDashboard(ctx context.Context, dashboardID int64) (int64, error) {
	return s.queries.CountIssuesByDashboard(ctx, dashboardID)
}

func (s *issueStore) CountByChart(ctx context.Context, chartID int64) (int64, error) {
	return s.queries.CountIssuesByChart(ctx, &chartID)
}

func toIssueModel(row sqlc.Issue) *model.Issue {
	return &model.Issue{
		ID:                row.ID,
		DashboardID:       row.DashboardID,
		ChartID:           row.ChartID,
		Title:             row.Title,
		Description:       row.Description,
		Status:            model.IssueStatus(row.Status),
		SubmittedByUserID: row.SubmittedByUserID,
		AssignedTeamID:    row.AssignedTeamID,
		CreatedAt:         row.CreatedAt.Time,
		UpdatedAt:         row.UpdatedAt.Time,
	}
}
