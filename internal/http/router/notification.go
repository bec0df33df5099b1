package router

import (
	"github.com/gin-gonic/gin"

	"kra.app/feedback/internal/http/handler"
)

func NotificationRouter(rg *gin.RouterGroup, h *handler.NotificationHandler) {
	rg.GET("", h.List)
	rg.GET("/unread-count", h.UnreadCount)
	rg.GET("/stream", h.Stream)
	rg.PUT("/read-all", h.MarkAllRead)
	rg.PUT("/:id/read", h.MarkRead)
	rg.DELETE("/:id", h.Delete)
}

func AttachmentRouter(rg *gin.RouterGroup, h *handler.AttachmentHandler) {
	rg.POST("", h.Upload)
}
