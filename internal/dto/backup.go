package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BackupRecipientResponse returns the configured backup destination address.
type BackupRecipientResponse struct {
	Email string `json:"email"`
}

// SetBackupRecipientRequest changes the backup destination address.
type SetBackupRecipientRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// SendBackupRequest triggers a backup over a date range (inclusive).
type SendBackupRequest struct {
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02"`
}

// BackupRow is one exported spreadsheet line: a ledger entry with its
// client and employee names already resolved.
type BackupRow struct {
	TransactionID string
	CreatedAt     time.Time
	Kind          string
	Subtype       string
	Amount        decimal.Decimal
	ClientName    string
	EmployeeName  string
	Description   string
	DebtStatus    string
}

// SendBackupResponse reports where the backup was delivered.
type SendBackupResponse struct {
	Recipient   string   `json:"recipient"`
	Attachments []string `json:"attachments"`
}
