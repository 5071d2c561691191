package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yalejo-dev/gyie_backend/internal/core/domain"
	portsrepo "github.com/yalejo-dev/gyie_backend/internal/core/ports/repositories"
)

type reportingRepository struct {
	db *pgxpool.Pool
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &reportingRepository{db: db}
}

var _ portsrepo.ReportingRepositoryFacade = (*reportingRepository)(nil)

func (r *reportingRepository) TopDebtors(ctx context.Context, limit int) ([]domain.DebtorSummary, error) {
	query := `
        SELECT c.client_id, c.name, SUM(t.amount) AS total_debt
        FROM transactions t
        JOIN clients c ON c.client_id = t.client_id
        WHERE t.kind = 'DEBT' AND t.debt_status = 'PENDING'
        GROUP BY c.client_id, c.name
        ORDER BY total_debt DESC
        LIMIT $1;
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top debtors: %w", err)
	}
	defer rows.Close()

	var debtors []domain.DebtorSummary
	for rows.Next() {
		var d domain.DebtorSummary
		if err := rows.Scan(&d.ClientID, &d.Name, &d.TotalDebt); err != nil {
			return nil, fmt.Errorf("failed to scan debtor row: %w", err)
		}
		debtors = append(debtors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate debtor rows: %w", err)
	}
	return debtors, nil
}

func (r *reportingRepository) TotalsByKind(ctx context.Context) (domain.KindTotals, error) {
	// The debt total mirrors the dashboard: pending debts only. The payment
	// total covers every payment ever taken.
	query := `
        SELECT
            COALESCE(SUM(amount) FILTER (WHERE kind = 'DEBT' AND debt_status = 'PENDING'), 0) AS total_debt,
            COALESCE(SUM(amount) FILTER (WHERE kind = 'PAYMENT'), 0) AS total_payment
        FROM transactions;
    `
	var totals domain.KindTotals
	if err := r.db.QueryRow(ctx, query).Scan(&totals.Debt, &totals.Payment); err != nil {
		return domain.KindTotals{}, fmt.Errorf("failed to query kind totals: %w", err)
	}
	return totals, nil
}

func (r *reportingRepository) OldestPendingDebts(ctx context.Context, limit int) ([]domain.AgedDebt, error) {
	query := `
        SELECT c.client_id, c.name, t.created_at, t.amount
        FROM transactions t
        JOIN clients c ON c.client_id = t.client_id
        WHERE t.kind = 'DEBT' AND t.debt_status = 'PENDING'
        ORDER BY t.created_at ASC
        LIMIT $1;
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query oldest pending debts: %w", err)
	}
	defer rows.Close()

	var debts []domain.AgedDebt
	for rows.Next() {
		var d domain.AgedDebt
		if err := rows.Scan(&d.ClientID, &d.Name, &d.CreatedAt, &d.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan aged debt row: %w", err)
		}
		debts = append(debts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate aged debt rows: %w", err)
	}
	return debts, nil
}

func (r *reportingRepository) MonthlyTotals(ctx context.Context) ([]domain.MonthlySummary, error) {
	query := `
        SELECT
            TO_CHAR(created_at, 'YYYY-MM') AS month,
            COALESCE(SUM(amount) FILTER (WHERE kind = 'DEBT'), 0) AS debt,
            COALESCE(SUM(amount) FILTER (WHERE kind = 'PAYMENT'), 0) AS payment
        FROM transactions
        GROUP BY month
        ORDER BY month;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	defer rows.Close()

	var months []domain.MonthlySummary
	for rows.Next() {
		var m domain.MonthlySummary
		if err := rows.Scan(&m.Month, &m.Debt, &m.Payment); err != nil {
			return nil, fmt.Errorf("failed to scan monthly row: %w", err)
		}
		months = append(months, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly rows: %w", err)
	}
	return months, nil
}
