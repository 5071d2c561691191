package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/yalejo-dev/gyie_backend/internal/core/ports/services"
	"github.com/yalejo-dev/gyie_backend/internal/dto"
)

// backupHandler handles backup delivery and admin settings requests.
type backupHandler struct {
	backupService portssvc.BackupSvcFacade
	adminService  portssvc.AdminSvcFacade
}

func newBackupHandler(bs portssvc.BackupSvcFacade, as portssvc.AdminSvcFacade) *backupHandler {
	return &backupHandler{
		backupService: bs,
		adminService:  as,
	}
}

func registerBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvcFacade, adminService portssvc.AdminSvcFacade) {
	h := newBackupHandler(backupService, adminService)

	backup := rg.Group("/backup")
	{
		backup.POST("/send", h.sendBackup)
		backup.GET("/recipient", h.getRecipient)
		backup.PUT("/recipient", h.setRecipient)
	}

	admin := rg.Group("/admin")
	{
		admin.PUT("/password", h.changeAdminPassword)
	}
}

// sendBackup godoc
// @Summary Mail a ledger backup
// @Description Exports the date range and the client roster to spreadsheets and mails them to the configured recipient.
// @Tags backup
// @Accept json
// @Produce json
// @Param range body dto.SendBackupRequest true "Date range (inclusive)"
// @Success 200 {object} dto.SendBackupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /backup/send [post]
func (h *backupHandler) sendBackup(c *gin.Context) {
	var req dto.SendBackupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.backupService.SendBackup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to send backup")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getRecipient godoc
// @Summary Get the backup recipient address
// @Tags backup
// @Produce json
// @Success 200 {object} dto.BackupRecipientResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /backup/recipient [get]
func (h *backupHandler) getRecipient(c *gin.Context) {
	email, err := h.adminService.GetBackupRecipient(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get backup recipient")
		return
	}
	c.JSON(http.StatusOK, dto.BackupRecipientResponse{Email: email})
}

// setRecipient godoc
// @Summary Change the backup recipient address
// @Tags backup
// @Accept json
// @Produce json
// @Param recipient body dto.SetBackupRecipientRequest true "New recipient"
// @Success 200 {object} dto.BackupRecipientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /backup/recipient [put]
func (h *backupHandler) setRecipient(c *gin.Context) {
	var req dto.SetBackupRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.adminService.SetBackupRecipient(c.Request.Context(), req.Email); err != nil {
		respondError(c, err, "Failed to set backup recipient")
		return
	}
	c.JSON(http.StatusOK, dto.BackupRecipientResponse{Email: req.Email})
}

// changeAdminPassword godoc
// @Summary Rotate the administrator credential
// @Description Verifies the current password and stores a hash of the new one.
// @Tags admin
// @Accept json
// @Param passwords body dto.ChangeAdminPasswordRequest true "Current and new password"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/password [put]
func (h *backupHandler) changeAdminPassword(c *gin.Context) {
	var req dto.ChangeAdminPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.adminService.ChangeAdminPassword(c.Request.Context(), req); err != nil {
		respondError(c, err, "Failed to change admin password")
		return
	}
	c.Status(http.StatusNoContent)
}
