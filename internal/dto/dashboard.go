package dto

import "github.com/shopspring/decimal"

// Dashboard action labels shown on each row.
const (
	ActionCancel = "cancel"
	ActionNone   = "none"
)

// DashboardRow is one display row of the dashboard table.
type DashboardRow struct {
	TransactionID string          `json:"transactionID"`
	ClientName    string          `json:"clientName"`
	Debt          decimal.Decimal `json:"debt"`    // Amount for debts, zero otherwise
	Payment       decimal.Decimal `json:"payment"` // Amount for payments, zero otherwise
	Timestamp     string          `json:"timestamp"`
	Action        string          `json:"action"`
	DebtStatus    string          `json:"debtStatus"`
}

// DashboardResponse is the initial-load projection: rows plus totals
// formatted with dot-grouped thousands (2000000 -> "2.000.000").
type DashboardResponse struct {
	Rows         []DashboardRow `json:"rows"`
	TotalDebt    string         `json:"totalDebt"`
	TotalPayment string         `json:"totalPayment"`
}

// FilteredDashboardResponse is the post-filter refresh projection: the same
// rows but with raw, unformatted totals.
type FilteredDashboardResponse struct {
	Rows         []DashboardRow  `json:"rows"`
	TotalDebt    decimal.Decimal `json:"totalDebt"`
	TotalPayment decimal.Decimal `json:"totalPayment"`
}
