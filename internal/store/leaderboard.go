package store

import (
	"context"

	"kra.app/feedback/core/db/sqlc"
	"kra.app/feedback/internal/model"
)

type leaderboardStore struct {
	queries *sqlc.Queries
}

func newLeaderboardStore(queries *sqlc.Queries) LeaderboardStore {
	return &leaderboardStore{queries: queries}
}

func (s *leaderboardStore) Record(ctx context.Context, activity *model.LeaderboardActivity) (bool, error) {
	n, err := s.queries.CreateLeaderboardActivity(ctx, sqlc.CreateLeaderboardActivityParams{
		ID:        activity.ID,
		UserID:    activity.UserID,
		IssueID:   activity.IssueID,
		CommentID: activity.CommentID,
		Action:    string(activity.Action),
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *leaderboardStore) List(ctx context.Context, action model.LeaderboardAction, limit int32) ([]model.LeaderboardEntry, error) {
	rows, err := s.queries.ListLeaderboard(ctx, sqlc.ListLeaderboardParams{
		Action: string(action),
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]model.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, model.LeaderboardEntry{
			UserID:        row.UserID,
			UserName:      row.UserName,
			TeamName:      row.TeamName,
			ResponseCount: row.ResponseCount,
		})
	}
	return entries, nil
}
