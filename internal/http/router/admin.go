package router

import (
	"github.com/gin-gonic/gin"

	"kra.app/feedback/internal/http/handler"
	"kra.app/feedback/internal/http/middleware"
	"kra.app/feedback/internal/model"
)

// AdminRouter expects rg to be restricted to admins already.
func AdminRouter(rg *gin.RouterGroup, h *handler.AdminHandler) {
	rg.GET("/stats", h.Stats)
	rg.GET("/dashboard-progress", h.DashboardProgress)
	rg.GET("/users", h.ListUsers)
	rg.PUT("/users/:id/role", h.UpdateUserRole)
	rg.PUT("/users/:id/team", h.UpdateUserTeam)
}

func AdminRequestRouter(rg *gin.RouterGroup, h *handler.AdminRequestHandler) {
	rg.GET("", h.List)
	rg.POST("", middleware.Authorize(model.RoleBusiness, model.RoleDataScience), h.Create)
	rg.PUT("/:id", middleware.Authorize(model.RoleAdmin), h.Resolve)
}
