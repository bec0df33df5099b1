package store

import (
	"context"

	"kra.app/feedback/core/db/sqlc"
	"kra.app/feedback/internal/model"
)

type dashboardStore struct {
	queries *sqlc.Queries
}

func newDashboardStore(queries *sqlc.Queries) DashboardStore {
	return &dashboardStore{queries: queries}
}

func (s *dashboardStore) GetByID(ctx context.Context, id int64) (*model.Dashboard, error) {
	row, err := s.queries.GetDashboard(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return &model.Dashboard{
		ID:             row.ID,
		Name:           row.DashboardName,
		Description:    row.Description,
		AssignedTeamID: row.AssignedTeamID,
		TeamName:       row.TeamName,
		ThreadCount:    row.ThreadCount,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}, nil
}

func (s *dashboardStore) List(ctx context.Context) ([]model.Dashboard, error) {
	rows, err := s.queries.ListDashboards(ctx)
	if err != nil {
		return nil, err
	}

	dashboards := make([]model.Dashboard, 0, len(rows))
	for _, row := range rows {
		dashboards = append(dashboards, model.Dashboard{
			ID:             row.ID,
			Name:           row.DashboardName,
			Description:    row.Description,
			AssignedTeamID: row.AssignedTeamID,
			TeamName:       row.TeamName,
			ThreadCount:    row.ThreadCount,
			CreatedAt:      row.CreatedAt.Time,
			UpdatedAt:      row.UpdatedAt.Time,
		})
	}
	return dashboards, nil
}

func (s *dashboardStore) Create(ctx context.Context, dashboard *model.Dashboard) error {
	row, err := s.queries.CreateDashboard(ctx, sqlc.CreateDashboardParams{
		ID:             dashboard.ID,
		DashboardName:  dashboard.Name,
		Description:    dashboard.Description,
		AssignedTeamID: dashboard.AssignedTeamID,
	})
	if err != nil {
		return err
	}
	*dashboard = *toDashboardModel(row)
	return nil
}

func (s *dashboardStore) Update(ctx context.Context, dashboard *model.Dashboard) error {
	row, err := s.queries.UpdateDashboard(ctx, sqlc.UpdateDashboardParams{
		ID:             dashboard.ID,
		DashboardName:  dashboard.Name,
		Description:    dashboard.Description,
		AssignedTeamID: dashboard.AssignedTeamID,
	})
	if err != nil {
		return notFound(err)
	}
	*dashboard = *toDashboardModel(row)
	return nil
}

func (s *dashboardStore) Delete(ctx context.Context, id int64) error {
	return affected(s.queries.DeleteDashboard(ctx, id))
}

func toDashboardModel(row sqlc.Dashboard) *model.Dashboard {
	return &model.Dashboard{
		ID:             row.ID,
		Name:           row.DashboardName,
		Description:    row.Description,
		AssignedTeamID: row.AssignedTeamID,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
