package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kra.app/feedback/internal/http/dto"
	"kra.app/feedback/internal/service"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
	chartService     service.ChartService
	priorityService  service.PriorityService
}

func NewDashboardHandler(dashboardService service.DashboardService, chartService service.ChartService, priorityService service.PriorityService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		chartService:     chartService,
		priorityService:  priorityService,
	}
}

func (h *DashboardHandler) List(c *gin.Context) {
	dashboards, err := h.dashboardService.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed to list dashboards")
		return
	}
	c.JSON(http.StatusOK, gin.H{"dashboards": dto.ToDashboardResponses(dashboards)})
}

func (h *DashboardHandler) Get(c *gin.Context) {
	dashboardID, ok := pathID(c, "id")
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.Get(c.Request.Context(), dashboardID)
	if err != nil {
		writeError(c, err, "failed to get dashboard")
		return
	}
	c.JSON(http.StatusOK, gin.H{"dashboard": dto.ToDashboardResponse(dashboard)})
}

func (h *DashboardHandler) Priority(c *gin.Context) {
	dashboardID, ok := pathID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.priorityService.ForDashboard(c.Request.Context(), dashboardID))
}

func (h *DashboardHandler) Create(c *gin.Context) {
	var req dto.DashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	dashboard, err := h.dashboardService.Create(c.Request.Context(), service.DashboardParams{
		Name:           req.DashboardName,
		Description:    req.Description,
		AssignedTeamID: req.AssignedTeamID,
	})
	if err != nil {
		writeError(c, err, "failed to create dashboard")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"dashboard": dto.ToDashboardResponse(dashboard)})
}

func (h *DashboardHandler) Update(c *gin.Context) {
	dashboardID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.DashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	dashboard, err := h.dashboardService.Update(c.Request.Context(), dashboardID, service.DashboardParams{
		Name:           req.DashboardName,
		Description:    req.Description,
		AssignedTeamID: req.AssignedTeamID,
	})
	if err != nil {
		writeError(c, err, "failed to update dashboard")
		return
	}
	c.JSON(http.StatusOK, gin.H{"dashboard": dto.ToDashboardResponse(dashboard)})
}

func (h *DashboardHandler) Delete(c *gin.Context) {
	dashboardID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.dashboardService.Delete(c.Request.Context(), dashboardID); err != nil {
		writeError(c, err, "failed to delete dashboard")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dashboard deleted successfully"})
}

func (h *DashboardHandler) ListCharts(c *gin.Context) {
	dashboardID, ok := pathID(c, "dashboardId")
	if !ok {
		return
	}

	charts, err := h.chartService.ListByDashboard(c.Request.Context(), dashboardID)
	if err != nil {
		writeError(c, err, "failed to list charts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"charts": dto.ToChartResponses(charts)})
}

func (h *DashboardHandler) ChartPriority(c *gin.Context) {
	chartID, ok := pathID(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.priorityService.ForChart(c.Request.Context(), chartID))
}

func (h *DashboardHandler) CreateChart(c *gin.Context) {
	var req dto.CreateChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	chart, err := h.chartService.Create(c.Request.Context(), req.DashboardID, req.ChartName, req.Description)
	if err != nil {
		writeError(c, err, "failed to create chart")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"chart": dto.ToChartResponse(chart)})
}

func (h *DashboardHandler) UpdateChart(c *gin.Context) {
	chartID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	chart, err := h.chartService.Update(c.Request.Context(), chartID, req.ChartName, req.Description)
	if err != nil {
		writeError(c, err, "failed to update chart")
		return
	}
	c.JSON(http.StatusOK, gin.H{"chart": dto.ToChartResponse(chart)})
}

func (h *DashboardHandler) DeleteChart(c *gin.Context) {
	chartID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.chartService.Delete(c.Request.Context(), chartID); err != nil {
		writeError(c, err, "failed to delete chart")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Chart deleted successfully"})
}
