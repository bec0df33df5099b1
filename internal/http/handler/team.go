package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kra.app/feedback/internal/http/dto"
	"kra.app/feedback/internal/service"
)

type TeamHandler struct {
	teamService service.TeamService
}

func NewTeamHandler(teamService service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.teamService.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed to list teams")
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": dto.ToTeamResponses(teams)})
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req dto.TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		writeError(c, err, "failed to create team")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"team": dto.ToTeamResponse(team)})
}

func (h *TeamHandler) Update(c *gin.Context) {
	teamID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	team, err := h.teamService.Update(c.Request.Context(), teamID, req.Name, req.Description)
	if err != nil {
		writeError(c, err, "failed to update team")
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": dto.ToTeamResponse(team)})
}

func (h *TeamHandler) Delete(c *gin.Context) {
	teamID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), teamID); err != nil {
		writeError(c, err, "failed to delete team")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully"})
}
