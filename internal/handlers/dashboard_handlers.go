package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace_admin/internal/services"
	"marketplace_admin/pkg/utils"
)

// DashboardHandler serves the admin home page summary.
type DashboardHandler struct {
	dashboardService services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(ds services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds}
}

// GetDashboardSummary provides a summary of key metrics for the dashboard.
func (h *DashboardHandler) GetDashboardSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.GetDashboardSummary(utils.RequestTime(c)))
}
