package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/yalejo-dev/gyie_backend/internal/core/ports/services"
	"github.com/yalejo-dev/gyie_backend/internal/dto"
)

// dashboardHandler serves the dashboard projections.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("", h.getDashboard)
		dashboard.GET("/filter", h.getFilteredDashboard)
	}
}

// getDashboard godoc
// @Summary Initial dashboard view
// @Description Projects the whole ledger into dashboard rows with dot-grouped totals.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	resp, err := h.dashboardService.ProjectForDisplay(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getFilteredDashboard godoc
// @Summary Filtered dashboard view
// @Description Projects a filtered subset of the ledger with raw totals.
// @Tags dashboard
// @Produce json
// @Param date query string false "Creation date (YYYY-MM-DD)"
// @Param name query string false "Client name fragment"
// @Param status query string false "all, cancelled or not-cancelled"
// @Param order query string false "payment-desc, payment-asc, debt-desc or debt-asc"
// @Success 200 {object} dto.FilteredDashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/filter [get]
func (h *dashboardHandler) getFilteredDashboard(c *gin.Context) {
	var criteria dto.FilterCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid filter criteria: " + err.Error()})
		return
	}

	resp, err := h.dashboardService.Project(c.Request.Context(), criteria)
	if err != nil {
		respondError(c, err, "Failed to build filtered dashboard")
		return
	}
	c.JSON(http.StatusOK, resp)
}
