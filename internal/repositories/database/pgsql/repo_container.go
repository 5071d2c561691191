package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/yalejo-dev/gyie_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:      newPgxClientRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		ConfigRepo:      newPgxConfigRepository(dbPool),
		ReportingRepo:   newReportingRepository(dbPool),
	}
}
