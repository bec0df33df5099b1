package router

import (
	"github.com/gin-gonic/gin"

	"kra.app/feedback/internal/http/handler"
	"kra.app/feedback/internal/http/middleware"
	"kra.app/feedback/internal/model"
)

func TeamRouter(rg *gin.RouterGroup, h *handler.TeamHandler) {
	rg.GET("", h.List)

	admin := rg.Group("", middleware.Authorize(model.RoleAdmin))
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}
