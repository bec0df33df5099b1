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

type DashboardParams struct {
	Name           string
	Description    *string
	AssignedTeamID *int64
}

type DashboardService interface {
	List(ctx context.Context) ([]model.Dashboard, error)
	Get(ctx context.Context, dashboardID int64) (*model.Dashboard, error)
	Create(ctx context.Context, params DashboardParams) (*model.Dashboard, error)
	Update(ctx context.Context, dashboardID int64, params DashboardParams) (*model.Dashboard, error)
	Delete(ctx context.Context, dashboardID int64) error
}

type dashboardService struct {
	dashboards store.DashboardStore
	teams      store.TeamStore
}

func NewDashboardService(dashboards store.DashboardStore, teams store.TeamStore) DashboardService {
	return &dashboardService{dashboards: dashboards, teams: teams}
}

func (s *dashboardService) List(ctx context.Context) ([]model.Dashboard, error) {
	dashboards, err := s.dashboards.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing dashboards: %w", err)
	}
	return dashboards, nil
}

func (s *dashboardService) Get(ctx context.Context, dashboardID int64) (*model.Dashboard, error) {
	dashboard, err := s.dashboards.GetByID(ctx, dashboardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrDashboardNotFound
		}
		return nil, fmt.Errorf("getting dashboard: %w", err)
	}
	return dashboard, nil
}

func (s *dashboardService) validate(ctx context.Context, params DashboardParams) (string, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return "", invalid("Dashboard name is required")
	}
	if params.AssignedTeamID != nil {
		if _, err := s.teams.GetByID(ctx, *params.AssignedTeamID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return "", ErrTeamNotFound
			}
			return "", fmt.Errorf("getting team: %w", err)
		}
	}
	return name, nil
}

func (s *dashboardService) Create(ctx context.Context, params DashboardParams) (*model.Dashboard, error) {
	name, err := s.validate(ctx, params)
	if err != nil {
		return nil, err
	}

	dashboard := &model.Dashboard{
		ID:             id.New(),
		Name:           name,
		Description:    params.Description,
		AssignedTeamID: params.AssignedTeamID,
	}
	if err := s.dashboards.Create(ctx, dashboard); err != nil {
		slog.ErrorContext(ctx, "failed to create dashboard", "error", err, "name", name)
		return nil, fmt.Errorf("creating dashboard: %w", err)
	}

	slog.InfoContext(ctx, "dashboard created", "dashboard_id", dashboard.ID)
	return dashboard, nil
}

func (s *dashboardService) Update(ctx context.Context, dashboardID int64, params DashboardParams) (*model.Dashboard, error) {
	name, err := s.validate(ctx, params)
	if err != nil {
		return nil, err
	}

	dashboard := &model.Dashboard{
		ID:             dashboardID,
		Name:           name,
		Description:    params.Description,
		AssignedTeamID: params.AssignedTeamID,
	}
	if err := s.dashboards.Update(ctx, dashboard); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrDashboardNotFound
		}
		return nil, fmt.Errorf("updating dashboard: %w", err)
	}
	return dashboard, nil
}

func (s *dashboardService) Delete(ctx context.Context, dashboardID int64) error {
	if err := s.dashboards.Delete(ctx, dashboardID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrDashboardNotFound
		}
		return fmt.Errorf("deleting dashboard: %w", err)
	}
	slog.InfoContext(ctx, "dashboard deleted", "dashboard_id", dashboardID)
	return nil
}
