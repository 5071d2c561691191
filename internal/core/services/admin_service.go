package services

import (
	"context"
	"fmt"

	"github.com/yalejo-dev/gyie_backend/internal/apperrors"
	portsrepo "github.com/yalejo-dev/gyie_backend/internal/core/ports/repositories"
	portssvc "github.com/yalejo-dev/gyie_backend/internal/core/ports/services"
	"github.com/yalejo-dev/gyie_backend/internal/dto"
	"github.com/yalejo-dev/gyie_backend/internal/models"
	"github.com/yalejo-dev/gyie_backend/internal/utils"
)

// adminService implements the AdminSvcFacade interface. The administrator
// is a single stored credential, not a user account; verification never
// creates a session.
type adminService struct {
	BaseService
	configRepo portsrepo.ConfigRepositoryFacade
}

// NewAdminService creates the administrator credential service.
func NewAdminService(configRepo portsrepo.ConfigRepositoryFacade) portssvc.AdminSvcFacade {
	return &adminService{configRepo: configRepo}
}

var _ portssvc.AdminSvcFacade = (*adminService)(nil)

func (s *adminService) VerifyAdminPassword(ctx context.Context, password string) (bool, error) {
	hash, err := s.configRepo.GetConfigValue(ctx, models.ConfigAdminPasswordHash)
	if err != nil {
		s.LogError(ctx, err, "Failed to load admin credential hash")
		return false, err
	}
	return utils.CheckPasswordHash(password, hash), nil
}

func (s *adminService) ChangeAdminPassword(ctx context.Context, req dto.ChangeAdminPasswordRequest) error {
	valid, err := s.VerifyAdminPassword(ctx, req.CurrentPassword)
	if err != nil {
		return err
	}
	if !valid {
		return fmt.Errorf("current password rejected: %w", apperrors.ErrAuthFailed)
	}

	newHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash new admin credential")
		return err
	}

	if err := s.configRepo.SetConfigValue(ctx, models.ConfigAdminPasswordHash, newHash); err != nil {
		s.LogError(ctx, err, "Failed to store new admin credential")
		return err
	}

	s.LogInfo(ctx, "Admin credential rotated")
	return nil
}

func (s *adminService) GetBackupRecipient(ctx context.Context) (string, error) {
	email, err := s.configRepo.GetConfigValue(ctx, models.ConfigBackupRecipientEmail)
	if err != nil {
		s.LogError(ctx, err, "Failed to load backup recipient")
		return "", err
	}
	return email, nil
}

func (s *adminService) SetBackupRecipient(ctx context.Context, email string) error {
	if err := s.configRepo.SetConfigValue(ctx, models.ConfigBackupRecipientEmail, email); err != nil {
		s.LogError(ctx, err, "Failed to store backup recipient")
		return err
	}
	s.LogInfo(ctx, "Backup recipient updated")
	return nil
}
