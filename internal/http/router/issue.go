package router

import (
	"github.com/gin-gonic/gin"

	"kra.app/feedback/internal/http/handler"
	"kra.app/feedback/internal/http/middleware"
	"kra.app/feedback/internal/model"
)

// IssueRouter sets up issue routes. Status changes and deletes are checked
// per issue by the service, so only creation is gated by role here.
func IssueRouter(rg *gin.RouterGroup, h *handler.IssueHandler) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("", middleware.Authorize(model.RoleBusiness, model.RoleDataScience), h.Create)
	rg.PATCH("/:id/status", h.UpdateStatus)
	rg.DELETE("/:id", h.Delete)
}
