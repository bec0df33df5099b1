package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"kra.app/feedback/internal/http/handler"
	"kra.app/feedback/internal/http/middleware"
	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/service"
)

type RouterConfig struct {
	AllowOrigins []string
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authService := services.Auth()
	requireAuth := middleware.Authenticate(authService)

	api := router.Group("/api")
	{
		AuthRouter(api.Group("/auth"), handler.NewAuthHandler(authService), requireAuth)

		authed := api.Group("", requireAuth)

		CommentRouter(authed.Group("/comments"), handler.NewCommentHandler(services.Comments()))
		IssueRouter(authed.Group("/issues"), handler.NewIssueHandler(services.Issues()))

		dashboardHandler := handler.NewDashboardHandler(services.Dashboards(), services.Charts(), services.Priority())
		DashboardRouter(authed.Group("/dashboards"), dashboardHandler)
		ChartRouter(authed.Group("/charts"), dashboardHandler)

		TeamRouter(authed.Group("/teams"), handler.NewTeamHandler(services.Teams()))

		adminHandler := handler.NewAdminHandler(services.Users(), services.Stats())
		AdminRouter(authed.Group("/admin", middleware.Authorize(model.RoleAdmin)), adminHandler)
		authed.GET("/leaderboard", adminHandler.Leaderboard)

		AdminRequestRouter(authed.Group("/admin-requests"), handler.NewAdminRequestHandler(services.AdminRequests()))
		NotificationRouter(authed.Group("/notifications"), handler.NewNotificationHandler(services.Notifications()))
		AttachmentRouter(authed.Group("/attachments"), handler.NewAttachmentHandler(services.Attachments()))
	}
}
