package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yalejo-dev/gyie_backend/internal/apperrors"
	"github.com/yalejo-dev/gyie_backend/internal/core/domain"
	portsrepo "github.com/yalejo-dev/gyie_backend/internal/core/ports/repositories"
	portssvc "github.com/yalejo-dev/gyie_backend/internal/core/ports/services"
	"github.com/yalejo-dev/gyie_backend/internal/dto"
)

// unknownClientName is shown when a transaction references a client row
// that can no longer be resolved.
const unknownClientName = "(desconocido)"

// ledgerService implements the LedgerSvcFacade interface.
type ledgerService struct {
	BaseService
	txnRepo    portsrepo.TransactionRepositoryFacade
	clientRepo portsrepo.ClientRepositoryFacade
	admin      portssvc.AdminSvcFacade
}

// NewLedgerService creates the transaction ledger service.
func NewLedgerService(txnRepo portsrepo.TransactionRepositoryFacade, clientRepo portsrepo.ClientRepositoryFacade, admin portssvc.AdminSvcFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		txnRepo:    txnRepo,
		clientRepo: clientRepo,
		admin:      admin,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) RegisterTransaction(ctx context.Context, employeeID string, req dto.RegisterTransactionRequest) (*dto.TransactionResponse, error) {
	if employeeID == "" {
		return nil, apperrors.ErrNoActiveSession
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("amount %s rejected: %w", req.Amount, apperrors.ErrInvalidAmount)
	}
	if !domain.ValidSubtype(req.Kind, req.Subtype) {
		return nil, fmt.Errorf("subtype %q is not valid for kind %s: %w", req.Subtype, req.Kind, apperrors.ErrValidation)
	}

	employee, err := s.clientRepo.FindClientByID(ctx, employeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve acting employee", slog.String("employee_id", employeeID))
		return nil, err
	}
	if !employee.IsEmployee {
		return nil, fmt.Errorf("client %s is not an employee: %w", employeeID, apperrors.ErrForbidden)
	}

	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("client %s: %w", req.ClientID, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to resolve client", slog.String("client_id", req.ClientID))
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		CreatedAt:     now,
		Kind:          req.Kind,
		Subtype:       req.Subtype,
		Amount:        req.Amount,
		ClientID:      req.ClientID,
		EmployeeID:    employeeID,
		Description:   req.Description,
		BalanceEffect: req.Amount,
		DebtStatus:    domain.InitialStatusForKind(req.Kind),
	}
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction registered",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("kind", string(txn.Kind)),
		slog.String("subtype", txn.Subtype))
	resp := dto.ToTransactionResponse(&txn)
	return &resp, nil
}

func (s *ledgerService) ListAllTransactions(ctx context.Context) ([]dto.TransactionResponse, error) {
	txns, err := s.txnRepo.FindAllTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}
	return dto.ToTransactionResponses(txns), nil
}

func (s *ledgerService) ListClientTransactions(ctx context.Context, clientID string) ([]dto.TransactionResponse, error) {
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve client for history", slog.String("client_id", clientID))
		}
		return nil, err
	}

	txns, err := s.txnRepo.FindTransactionsByClientID(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list client transactions", slog.String("client_id", clientID))
		return nil, err
	}
	return dto.ToTransactionResponses(txns), nil
}

// FilterTransactions narrows the full ledger by intersecting the ID sets of
// each active facet, in the fixed order date, name, status, order. The order
// facet additionally restricts the result to one kind before sorting it by
// amount.
func (s *ledgerService) FilterTransactions(ctx context.Context, criteria dto.FilterCriteria) ([]dto.TransactionResponse, error) {
	txns, err := s.txnRepo.FindAllTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transaction universe")
		return nil, err
	}

	if criteria.Date != "" {
		day, err := time.Parse("2006-01-02", criteria.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", criteria.Date, apperrors.ErrValidation)
		}
		ids, err := s.txnRepo.FindTransactionIDsByDate(ctx, day)
		if err != nil {
			s.LogError(ctx, err, "Failed to filter by date", slog.String("date", criteria.Date))
			return nil, err
		}
		txns = keepMatching(txns, ids)
	}

	if criteria.Name != "" {
		ids, err := s.txnRepo.FindTransactionIDsByClientName(ctx, criteria.Name)
		if err != nil {
			s.LogError(ctx, err, "Failed to filter by client name", slog.String("name", criteria.Name))
			return nil, err
		}
		txns = keepMatching(txns, ids)
	}

	if criteria.Status != "" && criteria.Status != dto.FilterStatusAll {
		// "not-cancelled" deliberately matches PENDING only: paid entries
		// are outside the debt-tracking view either way.
		status := domain.StatusCancelled
		if criteria.Status == dto.FilterStatusNotCancelled {
			status = domain.StatusPending
		}
		ids, err := s.txnRepo.FindTransactionIDsByStatus(ctx, status)
		if err != nil {
			s.LogError(ctx, err, "Failed to filter by status", slog.String("status", string(status)))
			return nil, err
		}
		txns = keepMatching(txns, ids)
	}

	if criteria.Order != "" {
		txns = applyOrder(txns, criteria.Order)
	}

	return dto.ToTransactionResponses(txns), nil
}

// keepMatching preserves the incoming order and keeps only transactions
// whose ID is in the facet's match set.
func keepMatching(txns []domain.Transaction, ids map[string]struct{}) []domain.Transaction {
	kept := txns[:0:0]
	for _, t := range txns {
		if _, ok := ids[t.TransactionID]; ok {
			kept = append(kept, t)
		}
	}
	return kept
}

// applyOrder restricts to the facet's kind and sorts by amount.
func applyOrder(txns []domain.Transaction, order dto.FilterOrder) []domain.Transaction {
	kind := domain.KindDebt
	if order == dto.FilterOrderPaymentAsc || order == dto.FilterOrderPaymentDesc {
		kind = domain.KindPayment
	}
	descending := order == dto.FilterOrderDebtDesc || order == dto.FilterOrderPaymentDesc

	kept := txns[:0:0]
	for _, t := range txns {
		if t.Kind == kind {
			kept = append(kept, t)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		if descending {
			return kept[i].Amount.GreaterThan(kept[j].Amount)
		}
		return kept[i].Amount.LessThan(kept[j].Amount)
	})
	return kept
}

func (s *ledgerService) GetTransactionDetail(ctx context.Context, transactionID string) (*dto.TransactionDetailResponse, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	clients, err := s.clientRepo.FindClientsByIDs(ctx, []string{txn.ClientID, txn.EmployeeID})
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve names for transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	detail := dto.TransactionDetailResponse{
		TransactionResponse: dto.ToTransactionResponse(txn),
		ClientName:          unknownClientName,
		EmployeeName:        unknownClientName,
	}
	if client, ok := clients[txn.ClientID]; ok {
		detail.ClientName = client.Name
		detail.ClientPhone = client.Phone
		detail.ClientNotes = client.Notes
	}
	if employee, ok := clients[txn.EmployeeID]; ok {
		detail.EmployeeName = employee.Name
	}
	return &detail, nil
}

// CancelDebt runs the cancellation state machine for a pending debt. A debt
// owed by an employee needs the administrator credential before the
// confirmation step is even reached.
func (s *ledgerService) CancelDebt(ctx context.Context, transactionID string, req dto.CancelDebtRequest) (*dto.CancelDebtResponse, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction for cancel", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	// Cancelling twice is a no-op, not an error
	if txn.DebtStatus == domain.StatusCancelled {
		return &dto.CancelDebtResponse{Outcome: dto.CancelOutcomeCancelled}, nil
	}
	if !txn.IsDebt() || txn.DebtStatus != domain.StatusPending {
		return &dto.CancelDebtResponse{Outcome: dto.CancelOutcomeNotCancellable}, nil
	}

	owner, err := s.clientRepo.FindClientByID(ctx, txn.ClientID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to resolve debt owner", slog.String("client_id", txn.ClientID))
		return nil, err
	}

	if owner != nil && owner.IsEmployee {
		if req.AdminPassword == nil {
			return &dto.CancelDebtResponse{Outcome: dto.CancelOutcomeRequiresAdminAuth}, nil
		}
		valid, err := s.admin.VerifyAdminPassword(ctx, *req.AdminPassword)
		if err != nil {
			s.LogError(ctx, err, "Admin verification failed during cancel", slog.String("transaction_id", transactionID))
			return nil, err
		}
		if !valid {
			s.LogInfo(ctx, "Admin credential rejected for employee debt cancel", slog.String("transaction_id", transactionID))
			return &dto.CancelDebtResponse{Outcome: dto.CancelOutcomeAuthFailed}, nil
		}
	}

	if !req.Confirmed {
		return &dto.CancelDebtResponse{Outcome: dto.CancelOutcomeNotConfirmed}, nil
	}

	if err := s.txnRepo.UpdateTransactionStatus(ctx, transactionID, domain.StatusCancelled); err != nil {
		s.LogError(ctx, err, "Failed to cancel debt", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Debt cancelled", slog.String("transaction_id", transactionID))
	return &dto.CancelDebtResponse{Outcome: dto.CancelOutcomeCancelled}, nil
}
