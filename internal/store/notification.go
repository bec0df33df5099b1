package store

import (
	"context"

	"kra.app/feedback/core/db/sqlc"
	"kra.app/feedback/internal/model"
)

type notificationStore struct {
	queries *sqlc.Queries
}

func newNotificationStore(queries *sqlc.Queries) NotificationStore {
	return &notificationStore{queries: queries}
}

func (s *notificationStore) Create(ctx context.Context, n *model.Notification) error {
	row, err := s.queries.CreateNotification(ctx, sqlc.CreateNotificationParams{
		ID:      n.ID,
		UserID:  n.UserID,
		IssueID: n.IssueID,
		Type:    string(n.Type),
		Message: n.Message,
	})
	if err != nil {
		return err
	}
	*n = *toNotificationModel(row)
	return nil
}

func (s *notificationStore) ListByUser(ctx context.Context, userID int64, unreadOnly bool, limit int32) ([]model.Notification, error) {
	rows, err := s.queries.ListNotificationsByUser(ctx, sqlc.ListNotificationsByUserParams{
		UserID:     userID,
		UnreadOnly: unreadOnly,
		RowLimit:   limit,
	})
	if err != nil {
		return nil, err
	}

	out := make([]model.Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toNotificationModel(row))
	}
	return out, nil
}

func (s *notificationStore) MarkRead(ctx context.Context, id, userID int64) error {
	return affected(s.queries.MarkNotificationRead(ctx, sqlc.MarkNotificationReadParams{
		ID:     id,
		UserID: userID,
	}))
}

func (s *notificationStore) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	return s.queries.MarkAllNotificationsRead(ctx, userID)
}

func (s *notificationStore) Delete(ctx context.Context, id, userID int64) error {
	return affected(s.queries.DeleteNotification(ctx, sqlc.DeleteNotificationParams{
		ID:     id,
		UserID: userID,
	}))
}

func (s *notificationStore) CountUnread(ctx context.Context, userID int64) (int64, error) {
	return s.queries.CountUnreadNotifications(ctx, userID)
}

func toNotificationModel(row sqlc.Notification) *model.Notification {
	return &model.Notification{
		ID:        row.ID,
		UserID:    row.UserID,
		IssueID:   row.IssueID,
		Type:      model.NotificationType(row.Type),
		Message:   row.Message,
		IsRead:    row.IsRead,
		CreatedAt: row.CreatedAt.Time,
	}
}
