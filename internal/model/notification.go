package model

import "time"

type NotificationType string

const (
	NotificationTypeReply NotificationType = "reply"
)

type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id"`
	IssueID   *int64           `json:"issue_id,omitempty"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

// Live events pushed to a user's channel.
const (
	EventNewReply = "new-reply"
)
