package services

import (
	"context"

	portsrepo "github.com/yalejo-dev/gyie_backend/internal/core/ports/repositories"
	portssvc "github.com/yalejo-dev/gyie_backend/internal/core/ports/services"
	"github.com/yalejo-dev/gyie_backend/internal/dto"
)

const defaultReportLimit = 10

// reportingService implements the ReportingSvcFacade interface.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepositoryFacade
}

// NewReportingService creates the ledger reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) TopDebtors(ctx context.Context, limit int) (*dto.TopDebtorsResponse, error) {
	if limit <= 0 {
		limit = defaultReportLimit
	}
	debtors, err := s.reportingRepo.TopDebtors(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute top debtors")
		return nil, err
	}
	return &dto.TopDebtorsResponse{Debtors: debtors}, nil
}

func (s *reportingService) TotalsByKind(ctx context.Context) (*dto.KindTotalsResponse, error) {
	totals, err := s.reportingRepo.TotalsByKind(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute kind totals")
		return nil, err
	}
	return &dto.KindTotalsResponse{Totals: totals}, nil
}

func (s *reportingService) OldestPendingDebts(ctx context.Context, limit int) (*dto.OldestDebtsResponse, error) {
	if limit <= 0 {
		limit = defaultReportLimit
	}
	debts, err := s.reportingRepo.OldestPendingDebts(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list oldest pending debts")
		return nil, err
	}
	return &dto.OldestDebtsResponse{Debts: debts}, nil
}

func (s *reportingService) MonthlySummary(ctx context.Context) (*dto.MonthlySummaryResponse, error) {
	months, err := s.reportingRepo.MonthlyTotals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute monthly summary")
		return nil, err
	}
	return &dto.MonthlySummaryResponse{Months: months}, nil
}
