package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/laundrypro-api/internal/application/service"
	"github.com/sangkips/laundrypro-api/internal/presentation/http/dto/request"
	"github.com/sangkips/laundrypro-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles business profile requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings retrieves the business profile
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	response.OK(c, "Settings retrieved successfully", h.settingsService.GetSettings(c.Request.Context()))
}

// UpdateSettings updates the business profile
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	profile, err := h.settingsService.UpdateSettings(c.Request.Context(), req.Patch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings updated successfully", profile)
}
