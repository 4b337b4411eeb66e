package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-backend/services"
)

// DashboardController serves the admin overview statistics
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController() *DashboardController {
	return &DashboardController{
		dashboardService: services.NewDashboardService(),
	}
}

// GetDashboard retrieves the overview payload
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	overview, err := c.dashboardService.GetOverview()
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondData(ctx, http.StatusOK, overview)
}
