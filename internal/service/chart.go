package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"kra.app/feedback/common/id"
	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/store"
)

type ChartService interface {
	ListByDashboard(ctx context.Context, dashboardID int64) ([]model.Chart, error)
	Create(ctx context.Context, dashboardID int64, name string, description *string) (*model.Chart, error)
	Update(ctx context.Context, chartID int64, name string, description *string) (*model.Chart, error)
	Delete(ctx context.Context, chartID int64) error
}

type chartService struct {
	charts     store.ChartStore
	dashboards store.DashboardStore
}

func NewChartService(charts store.ChartStore, dashboards store.DashboardStore) ChartService {
	return &chartService{charts: charts, dashboards: dashboards}
}

func (s *chartService) requireDashboard(ctx context.Context, dashboardID int64) error {
	if _, err := s.dashboards.GetByID(ctx, dashboardID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrDashboardNotFound
		}
		return fmt.Errorf("getting dashboard: %w", err)
	}
	return nil
}

func (s *chartService) ListByDashboard(ctx context.Context, dashboardID int64) ([]model.Chart, error) {
	if err := s.requireDashboard(ctx, dashboardID); err != nil {
		return nil, err
	}
	charts, err := s.charts.ListByDashboard(ctx, dashboardID)
	if err != nil {
		return nil, fmt.Errorf("listing charts: %w", err)
	}
	return charts, nil
}

func (s *chartService) Create(ctx context.Context, dashboardID int64, name string, description *string) (*model.Chart, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("Chart name is required")
	}
	if err := s.requireDashboard(ctx, dashboardID); err != nil {
		return nil, err
	}

	chart := &model.Chart{
		ID:          id.New(),
		DashboardID: dashboardID,
		Name:        name,
		Description: description,
	}
	if err := s.charts.Create(ctx, chart); err != nil {
		slog.ErrorContext(ctx, "failed to create chart", "error", err, "dashboard_id", dashboardID)
		return nil, fmt.Errorf("creating chart: %w", err)
	}
	return chart, nil
}

func (s *chartService) Update(ctx context.Context, chartID int64, name string, description *string) (*model.Chart, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("Chart name is required")
	}

	chart := &model.Chart{ID: chartID, Name: name, Description: description}
	if err := s.charts.Update(ctx, chart); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrChartNotFound
		}
		return nil, fmt.Errorf("updating chart: %w", err)
	}
	return chart, nil
}

func (s *chartService) Delete(ctx context.Context, chartID int64) error {
	if err := s.charts.Delete(ctx, chartID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrChartNotFound
		}
		return fmt.Errorf("deleting chart: %w", err)
	}
	return nil
}
