package services

import (
	"context"

	"github.com/yalejo-dev/gyie_backend/internal/dto"
)

// LedgerSvcFacade exposes the transaction ledger operations.
type LedgerSvcFacade interface {
	// RegisterTransaction records a new debt or payment on behalf of the
	// acting employee and returns the stored entry.
	RegisterTransaction(ctx context.Context, employeeID string, req dto.RegisterTransactionRequest) (*dto.TransactionResponse, error)

	// ListAllTransactions returns the full ledger, newest first.
	ListAllTransactions(ctx context.Context) ([]dto.TransactionResponse, error)

	// FilterTransactions applies the dashboard filter facets and returns
	// the matching entries.
	FilterTransactions(ctx context.Context, criteria dto.FilterCriteria) ([]dto.TransactionResponse, error)

	// ListClientTransactions returns one client's entries, newest first.
	ListClientTransactions(ctx context.Context, clientID string) ([]dto.TransactionResponse, error)

	// GetTransactionDetail returns one entry with the client and employee
	// names resolved.
	GetTransactionDetail(ctx context.Context, transactionID string) (*dto.TransactionDetailResponse, error)

	// CancelDebt runs the cancel state machine for a pending debt.
	CancelDebt(ctx context.Context, transactionID string, req dto.CancelDebtRequest) (*dto.CancelDebtResponse, error)
}
