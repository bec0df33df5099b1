package dto

import (
	"time"

	"kra.app/feedback/internal/model"
)

type NotificationResponse struct {
	ID        int64                  `json:"id,string"`
	IssueID   *int64                 `json:"issue_id,string,omitempty"`
	Type      model.NotificationType `json:"type"`
	Message   string                 `json:"message"`
	IsRead    bool                   `json:"is_read"`
	CreatedAt time.Time              `json:"created_at"`
}

func ToNotificationResponses(notifications []model.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, NotificationResponse{
			ID:        n.ID,
			IssueID:   n.IssueID,
			Type:      n.Type,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return out
}
