package services

import (
	portsrepo "github.com/yalejo-dev/gyie_backend/internal/core/ports/repositories"
	portssvc "github.com/yalejo-dev/gyie_backend/internal/core/ports/services"
	"github.com/yalejo-dev/gyie_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	exporter portssvc.SpreadsheetExporter,
	mailer portssvc.BackupMailer,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Admin first: the ledger's cancel flow verifies the admin credential
	container.Admin = NewAdminService(repos.ConfigRepo)

	container.Ledger = NewLedgerService(repos.TransactionRepo, repos.ClientRepo, container.Admin)
	container.Dashboard = NewDashboardService(container.Ledger, repos.ClientRepo)
	container.Session = NewSessionService(repos.ClientRepo, cfg)
	container.Client = NewClientService(repos.ClientRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Backup = NewBackupService(repos.TransactionRepo, repos.ClientRepo, container.Admin, exporter, mailer, cfg)

	return container
}
