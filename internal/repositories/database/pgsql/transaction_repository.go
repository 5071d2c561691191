package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yalejo-dev/gyie_backend/internal/apperrors"
	"github.com/yalejo-dev/gyie_backend/internal/core/domain"
	portsrepo "github.com/yalejo-dev/gyie_backend/internal/core/ports/repositories"
	"github.com/yalejo-dev/gyie_backend/internal/models"
	"github.com/yalejo-dev/gyie_backend/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{db: db}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, created_at, kind, subtype, amount, client_id, employee_id, description, balance_effect, debt_status`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.CreatedAt,
		&m.Kind,
		&m.Subtype,
		&m.Amount,
		&m.ClientID,
		&m.EmployeeID,
		&m.Description,
		&m.BalanceEffect,
		&m.DebtStatus,
	)
	return m, err
}

func collectTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	defer rows.Close()
	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction rows: %w", err)
	}
	return ms, nil
}

func collectTransactionIDs(rows pgx.Rows) (map[string]struct{}, error) {
	defer rows.Close()
	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan transaction ID: %w", err)
		}
		ids[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction IDs: %w", err)
	}
	return ids, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, transaction domain.Transaction) error {
	m := mapping.ToModelTransaction(transaction)
	query := `
        INSERT INTO transactions (transaction_id, created_at, kind, subtype, amount, client_id, employee_id, description, balance_effect, debt_status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		m.TransactionID,
		m.CreatedAt,
		m.Kind,
		m.Subtype,
		m.Amount,
		m.ClientID,
		m.EmployeeID,
		m.Description,
		m.BalanceEffect,
		m.DebtStatus,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.DebtStatus) error {
	query := `UPDATE transactions SET debt_status = $2 WHERE transaction_id = $1;`
	tag, err := r.db.Exec(ctx, query, transactionID, string(status))
	if err != nil {
		return fmt.Errorf("failed to update transaction %s status: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.db.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

func (r *PgxTransactionRepository) FindAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	ms, err := collectTransactions(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *PgxTransactionRepository) FindTransactionsByClientID(ctx context.Context, clientID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE client_id = $1 ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for client %s: %w", clientID, err)
	}
	ms, err := collectTransactions(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *PgxTransactionRepository) FindTransactionsInRange(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE created_at BETWEEN $1 AND $2 ORDER BY created_at;`
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in range: %w", err)
	}
	ms, err := collectTransactions(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *PgxTransactionRepository) FindTransactionIDsByDate(ctx context.Context, day time.Time) (map[string]struct{}, error) {
	query := `SELECT transaction_id FROM transactions WHERE DATE(created_at) = $1;`
	rows, err := r.db.Query(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction IDs by date: %w", err)
	}
	return collectTransactionIDs(rows)
}

func (r *PgxTransactionRepository) FindTransactionIDsByClientName(ctx context.Context, nameFragment string) (map[string]struct{}, error) {
	query := `
        SELECT t.transaction_id
        FROM transactions t
        JOIN clients c ON c.client_id = t.client_id
        WHERE c.name ILIKE '%' || $1 || '%';
    `
	rows, err := r.db.Query(ctx, query, nameFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction IDs by client name: %w", err)
	}
	return collectTransactionIDs(rows)
}

func (r *PgxTransactionRepository) FindTransactionIDsByStatus(ctx context.Context, status domain.DebtStatus) (map[string]struct{}, error) {
	query := `SELECT transaction_id FROM transactions WHERE debt_status = $1;`
	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction IDs by status: %w", err)
	}
	return collectTransactionIDs(rows)
}
