package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/yalejo-dev/gyie_backend/internal/core/ports/services"
	"github.com/yalejo-dev/gyie_backend/internal/dto"
	"github.com/yalejo-dev/gyie_backend/internal/middleware"
)

// authHandler handles session and admin credential requests.
type authHandler struct {
	sessionService portssvc.SessionSvcFacade
	adminService   portssvc.AdminSvcFacade
}

func newAuthHandler(session portssvc.SessionSvcFacade, admin portssvc.AdminSvcFacade) *authHandler {
	return &authHandler{
		sessionService: session,
		adminService:   admin,
	}
}

// registerAuthRoutes sets up the public authentication routes. Both are
// credential-bearing endpoints, so they share an IP rate limit.
func registerAuthRoutes(r *gin.Engine, session portssvc.SessionSvcFacade, admin portssvc.AdminSvcFacade) {
	h := newAuthHandler(session, admin)

	rate, _ := limiter.NewRateFromFormatted("10-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/auth")
	{
		auth.POST("/employee-login", limitMiddleware, h.employeeLogin)
		auth.POST("/admin/verify", limitMiddleware, h.verifyAdmin)
	}
}

// employeeLogin godoc
// @Summary Start an employee session
// @Description Issues a session token for a client flagged as an employee.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.EmployeeLoginRequest true "Employee selection"
// @Success 200 {object} dto.EmployeeLoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /auth/employee-login [post]
func (h *authHandler) employeeLogin(c *gin.Context) {
	var req dto.EmployeeLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.sessionService.StartEmployeeSession(c.Request.Context(), req.ClientID)
	if err != nil {
		respondError(c, err, "Failed to start session")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// verifyAdmin godoc
// @Summary Verify the administrator credential
// @Description Checks the given password against the stored administrator hash. Stateless; no session is created.
// @Tags auth
// @Accept json
// @Produce json
// @Param credential body dto.AdminVerifyRequest true "Administrator credential"
// @Success 200 {object} dto.AdminVerifyResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/admin/verify [post]
func (h *authHandler) verifyAdmin(c *gin.Context) {
	var req dto.AdminVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	valid, err := h.adminService.VerifyAdminPassword(c.Request.Context(), req.Password)
	if err != nil {
		respondError(c, err, "Failed to verify credential")
		return
	}
	c.JSON(http.StatusOK, dto.AdminVerifyResponse{Valid: valid})
}
