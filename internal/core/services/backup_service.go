package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/yalejo-dev/gyie_backend/internal/apperrors"
	"github.com/yalejo-dev/gyie_backend/internal/core/domain"
	portsrepo "github.com/yalejo-dev/gyie_backend/internal/core/ports/repositories"
	portssvc "github.com/yalejo-dev/gyie_backend/internal/core/ports/services"
	"github.com/yalejo-dev/gyie_backend/internal/dto"
	"github.com/yalejo-dev/gyie_backend/internal/platform/config"
)

// backupService implements the BackupSvcFacade interface. It pulls the
// requested date range out of the ledger, writes it to a spreadsheet and
// mails the file to the configured recipient.
type backupService struct {
	BaseService
	txnRepo    portsrepo.TransactionRepositoryFacade
	clientRepo portsrepo.ClientRepositoryFacade
	admin      portssvc.AdminSvcFacade
	exporter   portssvc.SpreadsheetExporter
	mailer     portssvc.BackupMailer
	cfg        *config.Config
}

// NewBackupService creates the ledger backup service.
func NewBackupService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	clientRepo portsrepo.ClientRepositoryFacade,
	admin portssvc.AdminSvcFacade,
	exporter portssvc.SpreadsheetExporter,
	mailer portssvc.BackupMailer,
	cfg *config.Config,
) portssvc.BackupSvcFacade {
	return &backupService{
		txnRepo:    txnRepo,
		clientRepo: clientRepo,
		admin:      admin,
		exporter:   exporter,
		mailer:     mailer,
		cfg:        cfg,
	}
}

var _ portssvc.BackupSvcFacade = (*backupService)(nil)

func (s *backupService) SendBackup(ctx context.Context, req dto.SendBackupRequest) (*dto.SendBackupResponse, error) {
	from, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", req.StartDate, apperrors.ErrValidation)
	}
	until, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", req.EndDate, apperrors.ErrValidation)
	}
	if until.Before(from) {
		return nil, fmt.Errorf("end date precedes start date: %w", apperrors.ErrValidation)
	}
	// Make the range inclusive of the whole end day
	until = until.Add(24*time.Hour - time.Nanosecond)

	recipient, err := s.admin.GetBackupRecipient(ctx)
	if err != nil {
		return nil, err
	}
	if recipient == "" {
		return nil, fmt.Errorf("no backup recipient configured: %w", apperrors.ErrValidation)
	}

	txns, err := s.txnRepo.FindTransactionsInRange(ctx, from, until)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for backup")
		return nil, err
	}

	rows, err := s.buildRows(ctx, txns)
	if err != nil {
		return nil, err
	}

	txnPath, err := s.exporter.ExportTransactions(ctx, s.cfg.BackupExportDir, rows)
	if err != nil {
		s.LogError(ctx, err, "Failed to export transaction spreadsheet")
		return nil, err
	}

	clients, err := s.clientRepo.FindClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load clients for backup")
		return nil, err
	}
	clientPath, err := s.exporter.ExportClients(ctx, s.cfg.BackupExportDir, dto.ToClientResponses(clients))
	if err != nil {
		s.LogError(ctx, err, "Failed to export client spreadsheet")
		return nil, err
	}

	subject := fmt.Sprintf("Copia de seguridad GYIE %s a %s", req.StartDate, req.EndDate)
	body := backupBody(req.StartDate, req.EndDate, len(rows))
	attachments := []string{txnPath, clientPath}
	if err := s.mailer.SendWithAttachments(ctx, recipient, subject, body, attachments); err != nil {
		s.LogError(ctx, err, "Failed to mail backup", slog.String("recipient", recipient))
		return nil, err
	}

	s.LogInfo(ctx, "Backup delivered",
		slog.String("recipient", recipient),
		slog.Int("rows", len(rows)))
	return &dto.SendBackupResponse{
		Recipient:   recipient,
		Attachments: []string{filepath.Base(txnPath), filepath.Base(clientPath)},
	}, nil
}

// buildRows resolves names in one batch so the spreadsheet is readable
// without the database at hand.
func (s *backupService) buildRows(ctx context.Context, txns []domain.Transaction) ([]dto.BackupRow, error) {
	clientIDs := make([]string, 0, len(txns)*2)
	seen := make(map[string]struct{}, len(txns)*2)
	for _, t := range txns {
		for _, id := range []string{t.ClientID, t.EmployeeID} {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				clientIDs = append(clientIDs, id)
			}
		}
	}

	clients, err := s.clientRepo.FindClientsByIDs(ctx, clientIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve names for backup")
		return nil, err
	}

	nameFor := func(id string) string {
		if client, ok := clients[id]; ok {
			return client.Name
		}
		return unknownClientName
	}

	rows := make([]dto.BackupRow, len(txns))
	for i, t := range txns {
		rows[i] = dto.BackupRow{
			TransactionID: t.TransactionID,
			CreatedAt:     t.CreatedAt,
			Kind:          string(t.Kind),
			Subtype:       t.Subtype,
			Amount:        t.Amount,
			ClientName:    nameFor(t.ClientID),
			EmployeeName:  nameFor(t.EmployeeID),
			Description:   t.Description,
			DebtStatus:    string(t.DebtStatus),
		}
	}
	return rows, nil
}

// backupBody renders the short HTML summary that accompanies the attachment.
func backupBody(startDate, endDate string, rowCount int) string {
	return fmt.Sprintf(
		"<html><body><p>Copia de seguridad del libro de transacciones.</p>"+
			"<p>Periodo: <b>%s</b> a <b>%s</b></p>"+
			"<p>Registros exportados: <b>%d</b></p></body></html>",
		startDate, endDate, rowCount)
}
