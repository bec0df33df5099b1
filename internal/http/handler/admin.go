package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kra.app/feedback/internal/http/dto"
	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/service"
)

type AdminHandler struct {
	userService  service.UserService
	statsService service.StatsService
}

func NewAdminHandler(userService service.UserService, statsService service.StatsService) *AdminHandler {
	return &AdminHandler{userService: userService, statsService: statsService}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.statsService.System(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed to load stats")
		return
	}
	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

func (h *AdminHandler) DashboardProgress(c *gin.Context) {
	progress, err := h.statsService.DashboardProgress(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed to load dashboard progress")
		return
	}
	c.JSON(http.StatusOK, gin.H{"dashboards": dto.ToDashboardProgressResponses(progress)})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed to list users")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": dto.ToUserResponses(users)})
}

func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	role, err := model.ParseRole(req.Role)
	if err != nil {
		writeError(c, err, "invalid role")
		return
	}

	user, _, err := h.userService.SetRole(c.Request.Context(), userID, role)
	if err != nil {
		writeError(c, err, "failed to update role")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": dto.ToUserResponse(user)})
}

func (h *AdminHandler) UpdateUserTeam(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.userService.SetTeam(c.Request.Context(), userID, req.TeamID)
	if err != nil {
		writeError(c, err, "failed to update team")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": dto.ToUserResponse(user)})
}

func (h *AdminHandler) Leaderboard(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	entries, err := h.statsService.Leaderboard(c.Request.Context(), int32(limit))
	if err != nil {
		writeError(c, err, "failed to load leaderboard")
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": dto.ToLeaderboardResponses(entries)})
}
