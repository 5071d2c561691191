package services

import (
	"context"

	"github.com/yalejo-dev/gyie_backend/internal/dto"
)

// ReportingSvcFacade exposes the aggregate ledger reports.
type ReportingSvcFacade interface {
	TopDebtors(ctx context.Context, limit int) (*dto.TopDebtorsResponse, error)
	TotalsByKind(ctx context.Context) (*dto.KindTotalsResponse, error)
	OldestPendingDebts(ctx context.Context, limit int) (*dto.OldestDebtsResponse, error)
	MonthlySummary(ctx context.Context) (*dto.MonthlySummaryResponse, error)
}
