package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kra.app/feedback/internal/http/dto"
	"kra.app/feedback/internal/http/middleware"
	"kra.app/feedback/internal/model"
	"kra.app/feedback/internal/service"
)

type AdminRequestHandler struct {
	requestService service.AdminRequestService
}

func NewAdminRequestHandler(requestService service.AdminRequestService) *AdminRequestHandler {
	return &AdminRequestHandler{requestService: requestService}
}

func (h *AdminRequestHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateAdminRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	created, err := h.requestService.Create(ctx, middleware.GetUser(ctx), service.CreateAdminRequestParams{
		Subject:     req.Subject,
		Description: req.Description,
		DashboardID: req.DashboardID,
	})
	if err != nil {
		writeError(c, err, "failed to create admin request")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"request": dto.ToAdminRequestResponse(created)})
}

func (h *AdminRequestHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var status *model.AdminRequestStatus
	if raw := c.Query("status"); raw != "" {
		st, err := model.ParseAdminRequestStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		status = &st
	}

	requests, err := h.requestService.List(ctx, middleware.GetUser(ctx), status)
	if err != nil {
		writeError(c, err, "failed to list admin requests")
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": dto.ToAdminRequestResponses(requests)})
}

func (h *AdminRequestHandler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ResolveAdminRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	status, err := model.ParseAdminRequestStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	resolved, err := h.requestService.Resolve(ctx, middleware.GetUser(ctx), requestID, status, req.AdminResponse)
	if err != nil {
		writeError(c, err, "failed to resolve admin request")
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": dto.ToAdminRequestResponse(resolved)})
}
