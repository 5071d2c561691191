package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/yalejo-dev/gyie_backend/internal/core/ports/services"
)

// reportingHandler serves the aggregate ledger reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/top-debtors", h.topDebtors)
		reports.GET("/totals", h.totalsByKind)
		reports.GET("/oldest-debts", h.oldestDebts)
		reports.GET("/monthly", h.monthlySummary)
	}
}

func limitParam(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		return 10
	}
	return limit
}

// topDebtors godoc
// @Summary Clients with the largest pending debt
// @Tags reports
// @Produce json
// @Param limit query int false "Maximum rows" default(10)
// @Success 200 {object} dto.TopDebtorsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/top-debtors [get]
func (h *reportingHandler) topDebtors(c *gin.Context) {
	resp, err := h.reportingService.TopDebtors(c.Request.Context(), limitParam(c))
	if err != nil {
		respondError(c, err, "Failed to compute top debtors")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// totalsByKind godoc
// @Summary Ledger-wide totals per kind
// @Tags reports
// @Produce json
// @Success 200 {object} dto.KindTotalsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/totals [get]
func (h *reportingHandler) totalsByKind(c *gin.Context) {
	resp, err := h.reportingService.TotalsByKind(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute totals")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// oldestDebts godoc
// @Summary Oldest pending debts
// @Tags reports
// @Produce json
// @Param limit query int false "Maximum rows" default(10)
// @Success 200 {object} dto.OldestDebtsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/oldest-debts [get]
func (h *reportingHandler) oldestDebts(c *gin.Context) {
	resp, err := h.reportingService.OldestPendingDebts(c.Request.Context(), limitParam(c))
	if err != nil {
		respondError(c, err, "Failed to list oldest debts")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// monthlySummary godoc
// @Summary Per-month debt and payment volume
// @Tags reports
// @Produce json
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) monthlySummary(c *gin.Context) {
	resp, err := h.reportingService.MonthlySummary(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute monthly summary")
		return
	}
	c.JSON(http.StatusOK, resp)
}
