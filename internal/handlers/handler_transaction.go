package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/yalejo-dev/gyie_backend/internal/core/ports/services"
	"github.com/yalejo-dev/gyie_backend/internal/dto"
	"github.com/yalejo-dev/gyie_backend/internal/middleware"
)

// transactionHandler handles HTTP requests for the transaction ledger.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newTransactionHandler(ls portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{ledgerService: ls}
}

// registerTransactionRoutes registers all ledger routes.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newTransactionHandler(ledgerService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.registerTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/filter", h.filterTransactions)
		transactions.GET("/client/:id", h.listClientTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.POST("/:id/cancel", h.cancelDebt)
	}
}

// registerTransaction godoc
// @Summary Record a ledger entry
// @Description Records a new debt or payment on behalf of the session's employee.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.RegisterTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Client not found"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) registerTransaction(c *gin.Context) {
	var req dto.RegisterTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	employeeID, ok := middleware.GetEmployeeIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.ledgerService.RegisterTransaction(c.Request.Context(), employeeID, req)
	if err != nil {
		respondError(c, err, "Failed to register transaction")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// listTransactions godoc
// @Summary List the full ledger
// @Description Returns every ledger entry, newest first.
// @Tags transactions
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	resp, err := h.ledgerService.ListAllTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// filterTransactions godoc
// @Summary Filter the ledger
// @Description Applies the date, name, status and order facets to the ledger.
// @Tags transactions
// @Produce json
// @Param date query string false "Creation date (YYYY-MM-DD)"
// @Param name query string false "Client name fragment"
// @Param status query string false "all, cancelled or not-cancelled"
// @Param order query string false "payment-desc, payment-asc, debt-desc or debt-asc"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/filter [get]
func (h *transactionHandler) filterTransactions(c *gin.Context) {
	var criteria dto.FilterCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid filter criteria: " + err.Error()})
		return
	}

	resp, err := h.ledgerService.FilterTransactions(c.Request.Context(), criteria)
	if err != nil {
		respondError(c, err, "Failed to filter transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listClientTransactions godoc
// @Summary List a client's ledger entries
// @Description Returns every entry registered for the client, newest first.
// @Tags transactions
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/client/{id} [get]
func (h *transactionHandler) listClientTransactions(c *gin.Context) {
	resp, err := h.ledgerService.ListClientTransactions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list client transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTransaction godoc
// @Summary Get a ledger entry
// @Description Returns one entry with the client and employee names resolved.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionDetailResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	resp, err := h.ledgerService.GetTransactionDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get transaction")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// cancelDebt godoc
// @Summary Cancel a pending debt
// @Description Runs the cancel state machine. Employee-owned debts need the administrator credential before confirmation counts.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param cancel body dto.CancelDebtRequest true "Confirmation and optional admin credential"
// @Success 200 {object} dto.CancelDebtResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id}/cancel [post]
func (h *transactionHandler) cancelDebt(c *gin.Context) {
	var req dto.CancelDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.ledgerService.CancelDebt(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to cancel debt")
		return
	}
	c.JSON(http.StatusOK, resp)
}
