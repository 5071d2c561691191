package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the row shape of the transactions table.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	CreatedAt     time.Time       `db:"created_at"`
	Kind          string          `db:"kind"`
	Subtype       string          `db:"subtype"`
	Amount        decimal.Decimal `db:"amount"`
	ClientID      string          `db:"client_id"`
	EmployeeID    string          `db:"employee_id"`
	Description   sql.NullString  `db:"description"`
	BalanceEffect decimal.Decimal `db:"balance_effect"`
	DebtStatus    string          `db:"debt_status"`
}
