package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kra.app/feedback/internal/http/dto"
	"kra.app/feedback/internal/http/middleware"
	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/service"
)

type IssueHandler struct {
	issueService service.IssueService
}

func NewIssueHandler(issueService service.IssueService) *IssueHandler {
	return &IssueHandler{issueService: issueService}
}

func (h *IssueHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	issue, err := h.issueService.Create(ctx, middleware.GetUser(ctx), service.CreateIssueParams{
		DashboardID: req.DashboardID,
		ChartID:     req.ChartID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeError(c, err, "failed to create issue")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"issue": dto.ToIssueResponse(issue)})
}

func (h *IssueHandler) List(c *gin.Context) {
	var filter model.IssueFilter
	var ok bool
	if filter.DashboardID, ok = queryID(c, "dashboard_id"); !ok {
		return
	}
	if filter.ChartID, ok = queryID(c, "chart_id"); !ok {
		return
	}
	if raw := c.Query("status"); raw != "" {
		status, err := model.ParseIssueStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		filter.Status = &status
	}

	issues, err := h.issueService.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err, "failed to list issues")
		return
	}

	c.JSON(http.StatusOK, gin.H{"issues": dto.ToIssueSummaryResponses(issues)})
}

func (h *IssueHandler) Get(c *gin.Context) {
	issueID, ok := pathID(c, "id")
	if !ok {
		return
	}

	issue, err := h.issueService.Get(c.Request.Context(), issueID)
	if err != nil {
		writeError(c, err, "failed to get issue")
		return
	}

	c.JSON(http.StatusOK, gin.H{"issue": dto.ToIssueResponse(issue)})
}

func (h *IssueHandler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	issueID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateIssueStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	status, err := model.ParseIssueStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	issue, err := h.issueService.UpdateStatus(ctx, middleware.GetUser(ctx), issueID, status)
	if err != nil {
		writeError(c, err, "failed to update issue status")
		return
	}

	c.JSON(http.StatusOK, gin.H{"issue": dto.ToIssueResponse(issue)})
}

func (h *IssueHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	issueID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.issueService.Delete(ctx, middleware.GetUser(ctx), issueID); err != nil {
		writeError(c, err, "failed to delete issue")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Issue deleted successfully"})
}
