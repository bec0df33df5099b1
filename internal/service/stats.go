package service

import (
	"context"
	"fmt"

	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/store"
)

const defaultLeaderboardLimit = 50

type StatsService interface {
	System(ctx context.Context) (*model.SystemStats, error)
	DashboardProgress(ctx context.Context) ([]model.DashboardProgress, error)
	Leaderboard(ctx context.Context, limit int32) ([]model.LeaderboardEntry, error)
}

type statsService struct {
	stats       store.StatsStore
	leaderboard store.LeaderboardStore
}

func NewStatsService(stats store.StatsStore, leaderboard store.LeaderboardStore) StatsService {
	return &statsService{stats: stats, leaderboard: leaderboard}
}

func (s *statsService) System(ctx context.Context) (*model.SystemStats, error) {
	stats, err := s.stats.System(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading system stats: %w", err)
	}
	return stats, nil
}

func (s *statsService) DashboardProgress(ctx context.Context) ([]model.DashboardProgress, error) {
	progress, err := s.stats.DashboardProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading dashboard progress: %w", err)
	}
	return progress, nil
}

func (s *statsService) Leaderboard(ctx context.Context, limit int32) ([]model.LeaderboardEntry, error) {
	if limit <= 0 || limit > defaultLeaderboardLimit {
		limit = defaultLeaderboardLimit
	}
	entries, err := s.leaderboard.List(ctx, model.LeaderboardActionResponded, limit)
	if err != nil {
		return nil, fmt.Errorf("loading leaderboard: %w", err)
	}
	return entries, nil
}
