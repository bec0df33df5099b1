package service

import (
	"context"
	"errors"
	"fmt"

	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/realtime"
	"kra.app/feedback/internal/store"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrLivePushDisabled     = errors.New("live push is not configured")
)

const maxNotifications = 100

type NotificationService interface {
	List(ctx context.Context, userID int64, unreadOnly bool) ([]model.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID int64) error
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, userID, notificationID int64) error
	UnreadCount(ctx context.Context, userID int64) (int64, error)
	// Stream subscribes to the user's live events. The caller must Close the subscription.
	Stream(ctx context.Context, userID int64) (*realtime.Subscription, error)
}

type notificationService struct {
	notifications store.NotificationStore
	subscriber    realtime.Subscriber
}

func NewNotificationService(notifications store.NotificationStore, subscriber realtime.Subscriber) NotificationService {
	return &notificationService{notifications: notifications, subscriber: subscriber}
}

func (s *notificationService) List(ctx context.Context, userID int64, unreadOnly bool) ([]model.Notification, error) {
	notifications, err := s.notifications.ListByUser(ctx, userID, unreadOnly, maxNotifications)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	return notifications, nil
}

// Notifications owned by someone else are reported as missing.
func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID int64) error {
	if err := s.notifications.MarkRead(ctx, notificationID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("marking notification read: %w", err)
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	n, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("marking notifications read: %w", err)
	}
	return n, nil
}

func (s *notificationService) Delete(ctx context.Context, userID, notificationID int64) error {
	if err := s.notifications.Delete(ctx, notificationID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return fmt.Errorf("deleting notification: %w", err)
	}
	return nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	n, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("counting unread notifications: %w", err)
	}
	return n, nil
}

func (s *notificationService) Stream(ctx context.Context, userID int64) (*realtime.Subscription, error) {
	sub, err := s.subscriber.Subscribe(ctx, userID)
	if err != nil {
		if errors.Is(err, realtime.ErrDisabled) {
			return nil, ErrLivePushDisabled
		}
		return nil, fmt.Errorf("subscribing to live events: %w", err)
	}
	return sub, nil
}
