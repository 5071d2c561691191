package services

import (
	"context"

	"github.com/yalejo-dev/gyie_backend/internal/dto"
)

// SessionSvcFacade starts and describes employee sessions.
type SessionSvcFacade interface {
	// StartEmployeeSession issues a session token for the given employee.
	StartEmployeeSession(ctx context.Context, clientID string) (*dto.EmployeeLoginResponse, error)
}

// AdminSvcFacade manages the administrator credential and backup settings.
type AdminSvcFacade interface {
	// VerifyAdminPassword checks a plaintext credential against the stored
	// hash. A wrong password is reported as valid=false, not as an error.
	VerifyAdminPassword(ctx context.Context, password string) (bool, error)

	// ChangeAdminPassword rotates the credential after verifying the
	// current one.
	ChangeAdminPassword(ctx context.Context, req dto.ChangeAdminPasswordRequest) error

	// GetBackupRecipient returns the configured backup destination.
	GetBackupRecipient(ctx context.Context) (string, error)

	// SetBackupRecipient changes the backup destination.
	SetBackupRecipient(ctx context.Context, email string) error
}
