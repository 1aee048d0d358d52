package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/merrickdc/cms_api/internal/service"
	"github.com/merrickdc/cms_api/internal/utils"
)

// AnalyticsHandler serves the admin dashboard aggregate.
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler constructs an AnalyticsHandler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetDashboard handles GET /api/admin/analytics
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.analyticsService.GetDashboard(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to compute analytics")
		return
	}

	utils.Success(c, 200, "Analytics retrieved", dashboard)
}
