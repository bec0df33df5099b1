package router

import (
	"github.com/gin-gonic/gin"

	"kra.app/feedback/internal/http/handler"
	"kra.app/feedback/internal/http/middleware"
	"kra.app/feedback/internal/model"
)

func DashboardRouter(rg *gin.RouterGroup, h *handler.DashboardHandler) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/priority", h.Priority)

	admin := rg.Group("", middleware.Authorize(model.RoleAdmin))
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func ChartRouter(rg *gin.RouterGroup, h *handler.DashboardHandler) {
	rg.GET("/dashboard/:dashboardId", h.ListCharts)
	rg.GET("/:id/priority", h.ChartPriority)

	admin := rg.Group("", middleware.Authorize(model.RoleAdmin))
	{
		admin.POST("", h.CreateChart)
		admin.PUT("/:id", h.UpdateChart)
		admin.DELETE("/:id", h.DeleteChart)
	}
}
