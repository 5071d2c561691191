package repositories

import (
	"context"

	"github.com/yalejo-dev/gyie_backend/internal/core/domain"
)

// ReportingRepositoryFacade provides the aggregation queries behind the
// statistics panels. These are read-only projections of the ledger.
type ReportingRepositoryFacade interface {
	// TopDebtors returns the clients with the largest summed pending debt.
	TopDebtors(ctx context.Context, limit int) ([]domain.DebtorSummary, error)

	// TotalsByKind returns summed amounts per transaction kind over the
	// whole ledger, regardless of status.
	TotalsByKind(ctx context.Context) (domain.KindTotals, error)

	// OldestPendingDebts returns pending debts ordered oldest first.
	OldestPendingDebts(ctx context.Context, limit int) ([]domain.AgedDebt, error)

	// MonthlyTotals returns per-month debt and payment volume, oldest month first.
	MonthlyTotals(ctx context.Context) ([]domain.MonthlySummary, error)
}
