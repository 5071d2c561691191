package dto

import "time"

// EmployeeLoginRequest starts a session for the selected employee.
type EmployeeLoginRequest struct {
	ClientID string `json:"clientID" binding:"required"`
}

// EmployeeLoginResponse returns the session token for subsequent calls.
type EmployeeLoginResponse struct {
	Token      string    `json:"token"`
	EmployeeID string    `json:"employeeID"`
	Name       string    `json:"name"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// AdminVerifyRequest checks a plaintext credential against the stored
// administrator hash. Verification is stateless; it creates no session.
type AdminVerifyRequest struct {
	Password string `json:"password" binding:"required"`
}

// AdminVerifyResponse reports the outcome of the credential check.
type AdminVerifyResponse struct {
	Valid bool `json:"valid"`
}

// ChangeAdminPasswordRequest rotates the administrator credential.
type ChangeAdminPasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}
