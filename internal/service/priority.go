package service

import (
	"context"
	"log/slog"

	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/store"
)

// PriorityService derives priority from live thread counts. Nothing is cached or stored.
type PriorityService interface {
	ForDashboard(ctx context.Context, dashboardID int64) model.PriorityInfo
	ForChart(ctx context.Context, chartID int64) model.PriorityInfo
}

type priorityService struct {
	issues store.IssueStore
}

func NewPriorityService(issues store.IssueStore) PriorityService {
	return &priorityService{issues: issues}
}

// A failed count degrades to no priority rather than failing the read.
func (s *priorityService) ForDashboard(ctx context.Context, dashboardID int64) model.PriorityInfo {
	n, err := s.issues.CountByDashboard(ctx, dashboardID)
	if err != nil {
		slog.WarnContext(ctx, "failed to count dashboard threads", "error", err, "dashboard_id", dashboardID)
		return model.PriorityInfo{Priority: model.PriorityNone}
	}
	return model.PriorityInfo{Priority: model.PriorityForCount(n), ThreadCount: n}
}

func (s *priorityService) ForChart(ctx context.Context, chartID int64) model.PriorityInfo {
	n, err := s.issues.CountByChart(ctx, chartID)
	if err != nil {
		slog.WarnContext(ctx, "failed to count chart threads", "error", err, "chart_id", chartID)
		return model.PriorityInfo{Priority: model.PriorityNone}
	}
	return model.PriorityInfo{Priority: model.PriorityForCount(n), ThreadCount: n}
}
