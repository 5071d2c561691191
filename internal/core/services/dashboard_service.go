package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/yalejo-dev/gyie_backend/internal/core/domain"
	portsrepo "github.com/yalejo-dev/gyie_backend/internal/core/ports/repositories"
	portssvc "github.com/yalejo-dev/gyie_backend/internal/core/ports/services"
	"github.com/yalejo-dev/gyie_backend/internal/dto"
	"github.com/yalejo-dev/gyie_backend/internal/utils"
)

// dashboardTimestampLayout matches the timestamp column of the dashboard
// table exactly.
const dashboardTimestampLayout = "2006-01-02-15:04:05"

// dashboardService implements the DashboardSvcFacade interface.
type dashboardService struct {
	BaseService
	ledger     portssvc.LedgerSvcFacade
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewDashboardService creates the dashboard projection service.
func NewDashboardService(ledger portssvc.LedgerSvcFacade, clientRepo portsrepo.ClientRepositoryFacade) portssvc.DashboardSvcFacade {
	return &dashboardService{
		ledger:     ledger,
		clientRepo: clientRepo,
	}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

func (s *dashboardService) ProjectForDisplay(ctx context.Context) (*dto.DashboardResponse, error) {
	txns, err := s.ledger.ListAllTransactions(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.buildRows(ctx, txns)
	if err != nil {
		return nil, err
	}
	totalDebt, totalPayment := computeTotals(txns)

	return &dto.DashboardResponse{
		Rows:         rows,
		TotalDebt:    utils.FormatThousands(totalDebt),
		TotalPayment: utils.FormatThousands(totalPayment),
	}, nil
}

func (s *dashboardService) Project(ctx context.Context, criteria dto.FilterCriteria) (*dto.FilteredDashboardResponse, error) {
	txns, err := s.ledger.FilterTransactions(ctx, criteria)
	if err != nil {
		return nil, err
	}

	rows, err := s.buildRows(ctx, txns)
	if err != nil {
		return nil, err
	}
	totalDebt, totalPayment := computeTotals(txns)

	return &dto.FilteredDashboardResponse{
		Rows:         rows,
		TotalDebt:    totalDebt,
		TotalPayment: totalPayment,
	}, nil
}

// buildRows resolves client names in one batch and projects each entry into
// its display row.
func (s *dashboardService) buildRows(ctx context.Context, txns []dto.TransactionResponse) ([]dto.DashboardRow, error) {
	clientIDs := make([]string, 0, len(txns))
	seen := make(map[string]struct{}, len(txns))
	for _, t := range txns {
		if _, ok := seen[t.ClientID]; !ok {
			seen[t.ClientID] = struct{}{}
			clientIDs = append(clientIDs, t.ClientID)
		}
	}

	clients, err := s.clientRepo.FindClientsByIDs(ctx, clientIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve client names for dashboard")
		return nil, err
	}

	rows := make([]dto.DashboardRow, len(txns))
	for i, t := range txns {
		name := unknownClientName
		if client, ok := clients[t.ClientID]; ok {
			name = client.Name
		}

		debt := decimal.Zero
		payment := decimal.Zero
		if t.Kind == string(domain.KindDebt) {
			debt = t.Amount
		} else {
			payment = t.Amount
		}

		// Every debt row carries the cancel action; the cancellation flow
		// itself decides whether the row can still be struck through.
		action := dto.ActionNone
		if t.Kind == string(domain.KindDebt) {
			action = dto.ActionCancel
		}

		rows[i] = dto.DashboardRow{
			TransactionID: t.TransactionID,
			ClientName:    name,
			Debt:          debt,
			Payment:       payment,
			Timestamp:     t.CreatedAt.Format(dashboardTimestampLayout),
			Action:        action,
			DebtStatus:    t.DebtStatus,
		}
	}
	return rows, nil
}

// computeTotals sums pending debt amounts and all payment amounts over the
// projected set. Cancelled and paid debts never count toward the debt total.
func computeTotals(txns []dto.TransactionResponse) (totalDebt, totalPayment decimal.Decimal) {
	totalDebt = decimal.Zero
	totalPayment = decimal.Zero
	for _, t := range txns {
		switch {
		case t.Kind == string(domain.KindDebt) && t.DebtStatus == string(domain.StatusPending):
			totalDebt = totalDebt.Add(t.Amount)
		case t.Kind == string(domain.KindPayment):
			totalPayment = totalPayment.Add(t.Amount)
		}
	}
	return totalDebt, totalPayment
}
