package store

import (
	"context"

	"kra.app/feedback/core/db/sqlc"
	"kra.app/feedback/internal/model"
)

type statsStore struct {
	queries *sqlc.Queries
}

func newStatsStore(queries *sqlc.Queries) StatsStore {
	return &statsStore{queries: queries}
}

func (s *statsStore) System(ctx context.Context) (*model.SystemStats, error) {
	row, err := s.queries.GetSystemStats(ctx)
	if err != nil {
		return nil, err
	}
	return &model.SystemStats{
		BusinessUsers:        row.BusinessUsers,
		DataScienceUsers:     row.DataScienceUsers,
		TotalTeams:           row.TotalTeams,
		TotalDashboards:      row.TotalDashboards,
		PendingIssues:        row.PendingIssues,
		InProgressIssues:     row.InProgressIssues,
		CompletedIssues:      row.CompletedIssues,
		PendingAdminRequests: row.PendingAdminRequests,
	}, nil
}

func (s *statsStore) DashboardProgress(ctx context.Context) ([]model.DashboardProgress, error) {
	rows, err := s.queries.ListDashboardProgress(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.DashboardProgress, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.DashboardProgress{
			DashboardID:      row.ID,
			DashboardName:    row.DashboardName,
			TeamName:         row.TeamName,
			TotalIssues:      row.TotalIssues,
			PendingIssues:    row.PendingIssues,
			InProgressIssues: row.InProgressIssues,
			CompletedIssues:  row.CompletedIssues,
		})
	}
	return out, nil
}
