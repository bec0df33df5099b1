package store

import (
	"context"

	"kra.app/feedback/core/db/sqlc"
	"kra.app/feedback/internal/model"
)

type chartStore struct {
	queries *sqlc.Queries
}

func newChartStore(queries *sqlc.Queries) ChartStore {
	return &chartStore{queries: queries}
}

func (s *chartStore) GetByID(ctx context.Context, id int64) (*model.Chart, error) {
	row, err := s.queries.GetChart(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return toChartModel(row), nil
}

func (s *chartStore) ListByDashboard(ctx context.Context, dashboardID int64) ([]model.Chart, error) {
	rows, err := s.queries.ListChartsByDashboard(ctx, dashboardID)
	if err != nil {
		return nil, err
	}

	charts := make([]model.Chart, 0, len(rows))
	for _, row := range rows {
		charts = append(charts, model.Chart{
			ID:          row.ID,
			DashboardID: row.DashboardID,
			Name:        row.ChartName,
			Description: row.Description,
			ThreadCount: row.ThreadCount,
			CreatedAt:   row.CreatedAt.Time,
			UpdatedAt:   row.UpdatedAt.Time,
		})
	}
	return charts, nil
}

func (s *chartStore) Create(ctx context.Context, chart *model.Chart) error {
	row, err := s.queries.CreateChart(ctx, sqlc.CreateChartParams{
		ID:          chart.ID,
		DashboardID: chart.DashboardID,
		ChartName:   chart.Name,
		Description: chart.Description,
	})
	if err != nil {
		return err
	}
	*chart = *toChartModel(row)
	return nil
}

func (s *chartStore) Update(ctx context.Context, chart *model.Chart) error {
	row, err := s.queries.UpdateChart(ctx, sqlc.UpdateChartParams{
		ID:          chart.ID,
		ChartName:   chart.Name,
		Description: chart.Description,
	})
	if err != nil {
		return notFound(err)
	}
	*chart = *toChartModel(row)
	return nil
}

func (s *chartStore) Delete(ctx context.Context, id int64) error {
	return affected(s.queries.DeleteChart(ctx, id))
}

func toChartModel(row sqlc.Chart) *model.Chart {
	return &model.Chart{
		ID:          row.ID,
		DashboardID: row.DashboardID,
		Name:        row.ChartName,
		Description: row.Description,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
