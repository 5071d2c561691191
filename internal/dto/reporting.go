package dto

import "github.com/yalejo-dev/gyie_backend/internal/core/domain"

// TopDebtorsResponse lists the clients with the largest pending debt.
type TopDebtorsResponse struct {
	Debtors []domain.DebtorSummary `json:"debtors"`
}

// KindTotalsResponse holds the ledger-wide totals per transaction kind.
type KindTotalsResponse struct {
	Totals domain.KindTotals `json:"totals"`
}

// OldestDebtsResponse lists pending debts, oldest first.
type OldestDebtsResponse struct {
	Debts []domain.AgedDebt `json:"debts"`
}

// MonthlySummaryResponse holds per-month debt and payment volume.
type MonthlySummaryResponse struct {
	Months []domain.MonthlySummary `json:"months"`
}
