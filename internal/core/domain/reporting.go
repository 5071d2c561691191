package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtorSummary is one row of the "clients with the most pending debt" report.
type DebtorSummary struct {
	ClientID  string          `json:"clientID"`
	Name      string          `json:"name"`
	TotalDebt decimal.Decimal `json:"totalDebt"`
}

// KindTotals holds the summed amount per transaction kind over the whole ledger.
type KindTotals struct {
	Debt    decimal.Decimal `json:"debt"`
	Payment decimal.Decimal `json:"payment"`
}

// AgedDebt is one row of the oldest-pending-debts report.
type AgedDebt struct {
	ClientID  string          `json:"clientID"`
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"createdAt"`
	Amount    decimal.Decimal `json:"amount"`
}

// MonthlySummary aggregates debt and payment volume for one calendar month.
type MonthlySummary struct {
	Month   string          `json:"month"` // YYYY-MM
	Debt    decimal.Decimal `json:"debt"`
	Payment decimal.Decimal `json:"payment"`
}
