package services

import (
	"context"

	"github.com/yalejo-dev/gyie_backend/internal/dto"
)

// BackupSvcFacade exports ledger data and mails it to the configured
// recipient.
type BackupSvcFacade interface {
	// SendBackup exports the transactions in the date range plus the
	// client roster to spreadsheets and emails both files.
	SendBackup(ctx context.Context, req dto.SendBackupRequest) (*dto.SendBackupResponse, error)
}

// SpreadsheetExporter writes ledger and client data to spreadsheet files,
// returning the path of each file it creates.
type SpreadsheetExporter interface {
	ExportTransactions(ctx context.Context, dir string, rows []dto.BackupRow) (string, error)
	ExportClients(ctx context.Context, dir string, clients []dto.ClientResponse) (string, error)
}

// BackupMailer delivers a message with file attachments.
type BackupMailer interface {
	SendWithAttachments(ctx context.Context, to, subject, htmlBody string, attachments []string) error
}
