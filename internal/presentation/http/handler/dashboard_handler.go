package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/laundrypro-api/internal/application/service"
	"github.com/sangkips/laundrypro-api/internal/presentation/http/dto/request"
	"github.com/sangkips/laundrypro-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard and report requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats handles getting dashboard statistics
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Dashboard stats retrieved successfully", stats)
}

// Daily handles GET /reports/daily?date=
func (h *DashboardHandler) Daily(c *gin.Context) {
	var req request.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}
	summary, err := h.dashboardService.DailyReport(c.Request.Context(), req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Daily report retrieved successfully", summary)
}

// Range handles GET /reports/range?from=&to=
func (h *DashboardHandler) Range(c *gin.Context) {
	var req request.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}
	summary, err := h.dashboardService.RangeReport(c.Request.Context(), req.From, req.To)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Range report retrieved successfully", summary)
}

// Monthly handles GET /reports/monthly?year=&month=
func (h *DashboardHandler) Monthly(c *gin.Context) {
	var req request.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}
	series, err := h.dashboardService.MonthlyReport(c.Request.Context(), req.Year, req.Month)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Monthly report retrieved successfully", series)
}
