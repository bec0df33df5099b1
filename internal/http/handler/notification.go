package handler

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kra.app/feedback/internal/http/dto"
	"kra.app/feedback/internal/http/middleware"
	"kra.app/feedback/internal/service"
)

const streamKeepAlive = 25 * time.Second

type NotificationHandler struct {
	notificationService service.NotificationService
	keepAlive           time.Duration
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		keepAlive:           streamKeepAlive,
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	notifications, err := h.notificationService.List(ctx, user.ID, c.Query("unread") == "true")
	if err != nil {
		writeError(c, err, "failed to list notifications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": dto.ToNotificationResponses(notifications)})
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	n, err := h.notificationService.UnreadCount(ctx, user.ID)
	if err != nil {
		writeError(c, err, "failed to count notifications")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	ctx := c.Request.Context()

	notificationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(ctx, middleware.GetUser(ctx).ID, notificationID); err != nil {
		writeError(c, err, "failed to mark notification read")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	ctx := c.Request.Context()

	n, err := h.notificationService.MarkAllRead(ctx, middleware.GetUser(ctx).ID)
	if err != nil {
		writeError(c, err, "failed to mark notifications read")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read", "updated": n})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	notificationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.notificationService.Delete(ctx, middleware.GetUser(ctx).ID, notificationID); err != nil {
		writeError(c, err, "failed to delete notification")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted successfully"})
}

// Stream relays the caller's live events as server-sent events until the client goes away.
func (h *NotificationHandler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	sub, err := h.notificationService.Stream(ctx, middleware.GetUser(ctx).ID)
	if err != nil {
		writeError(c, err, "failed to open notification stream")
		return
	}
	defer sub.Close()

	// the server's write timeout would otherwise cut long-lived streams
	if err := http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{}); err != nil {
		slog.DebugContext(ctx, "could not clear write deadline", "error", err)
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	c.Stream(func(io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-sub.Events():
			if !ok {
				return false
			}
			c.SSEvent(ev.Event, ev.Data)
			return true
		case <-ticker.C:
			c.SSEvent("ping", "")
			return true
		}
	})
}
