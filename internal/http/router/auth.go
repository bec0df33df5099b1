package router

import (
	"github.com/gin-gonic/gin"

	"kra.app/feedback/internal/http/handler"
)

// AuthRouter sets up auth routes. Register and login are public.
func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler, requireAuth gin.HandlerFunc) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.GET("/me", requireAuth, h.Me)
}
