package repositories

import (
	"context"
	"time"

	"github.com/yalejo-dev/gyie_backend/internal/core/domain"
)

// TransactionReader defines read operations for ledger entries.
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindAllTransactions retrieves the full ledger, newest created_at first.
	// The result is fully materialized because totals are computed over it.
	FindAllTransactions(ctx context.Context) ([]domain.Transaction, error)

	// FindTransactionsByClientID retrieves a client's transactions, newest first.
	FindTransactionsByClientID(ctx context.Context, clientID string) ([]domain.Transaction, error)

	// FindTransactionsInRange retrieves transactions created within [from, to].
	FindTransactionsInRange(ctx context.Context, from, to time.Time) ([]domain.Transaction, error)

	// FindTransactionIDsByDate returns the IDs of transactions whose created_at
	// date component equals the given day. Each filter facet queries the full
	// transaction universe; the ledger engine narrows by set intersection.
	FindTransactionIDsByDate(ctx context.Context, day time.Time) (map[string]struct{}, error)

	// FindTransactionIDsByClientName returns the IDs of transactions whose
	// client name contains the given fragment (case-insensitive).
	FindTransactionIDsByClientName(ctx context.Context, nameFragment string) (map[string]struct{}, error)

	// FindTransactionIDsByStatus returns the IDs of transactions with the
	// given debt status.
	FindTransactionIDsByStatus(ctx context.Context, status domain.DebtStatus) (map[string]struct{}, error)
}

// TransactionWriter defines write operations for ledger entries.
// The ledger is append-only: entries are inserted once and the only
// mutation is the debt status transition.
type TransactionWriter interface {
	// SaveTransaction persists a new ledger entry.
	SaveTransaction(ctx context.Context, transaction domain.Transaction) error

	// UpdateTransactionStatus sets the debt status of an existing entry.
	UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.DebtStatus) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
