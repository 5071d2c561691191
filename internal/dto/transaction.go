package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/yalejo-dev/gyie_backend/internal/core/domain"
)

// RegisterTransactionRequest is the payload for recording a new ledger entry.
// The acting employee is taken from the session token, never from the body.
type RegisterTransactionRequest struct {
	Kind        domain.TransactionKind `json:"kind" binding:"required,oneof=DEBT PAYMENT"`
	Subtype     string                 `json:"subtype" binding:"required"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	ClientID    string                 `json:"clientID" binding:"required"`
	Description string                 `json:"description"`
}

// FilterStatus selects transactions by debt status.
// "not-cancelled" matches PENDING only: a PAID transaction is excluded from
// both the cancelled and the not-cancelled views. This mirrors the original
// debt-centric dashboard filter and is kept on purpose.
type FilterStatus string

const (
	FilterStatusAll          FilterStatus = "all"
	FilterStatusCancelled    FilterStatus = "cancelled"
	FilterStatusNotCancelled FilterStatus = "not-cancelled"
)

// FilterOrder selects a transaction kind and a sort direction by amount.
// Applying an order restricts the result to the matching kind.
type FilterOrder string

const (
	FilterOrderPaymentDesc FilterOrder = "payment-desc"
	FilterOrderPaymentAsc  FilterOrder = "payment-asc"
	FilterOrderDebtDesc    FilterOrder = "debt-desc"
	FilterOrderDebtAsc     FilterOrder = "debt-asc"
)

// FilterCriteria carries the four independent dashboard filter facets.
// Empty facets are skipped; the facets always apply in the fixed order
// date, name, status, order.
type FilterCriteria struct {
	Date   string       `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Name   string       `form:"name"`
	Status FilterStatus `form:"status" binding:"omitempty,oneof=all cancelled not-cancelled"`
	Order  FilterOrder  `form:"order" binding:"omitempty,oneof=payment-desc payment-asc debt-desc debt-asc"`
}

// CancelDebtRequest carries the confirmation and, when the debt belongs to
// an employee, the administrator credential.
type CancelDebtRequest struct {
	Confirmed     bool    `json:"confirmed"`
	AdminPassword *string `json:"adminPassword,omitempty"`
}

// CancelDebtOutcome is the tagged result of the cancel-debt state machine.
type CancelDebtOutcome string

const (
	CancelOutcomeCancelled         CancelDebtOutcome = "CANCELLED"
	CancelOutcomeRequiresAdminAuth CancelDebtOutcome = "REQUIRES_ADMIN_AUTH"
	CancelOutcomeAuthFailed        CancelDebtOutcome = "AUTH_FAILED"
	CancelOutcomeNotConfirmed      CancelDebtOutcome = "NOT_CONFIRMED"
	CancelOutcomeNotCancellable    CancelDebtOutcome = "NOT_CANCELLABLE"
)

// CancelDebtResponse reports how the cancel-debt operation ended.
type CancelDebtResponse struct {
	Outcome CancelDebtOutcome `json:"outcome"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	CreatedAt     time.Time       `json:"createdAt"`
	Kind          string          `json:"kind"`
	Subtype       string          `json:"subtype"`
	Amount        decimal.Decimal `json:"amount"`
	ClientID      string          `json:"clientID"`
	EmployeeID    string          `json:"employeeID"`
	Description   string          `json:"description,omitempty"`
	DebtStatus    string          `json:"debtStatus"`
}

// TransactionDetailResponse is the row-detail view: the entry plus the
// resolved client and employee names.
type TransactionDetailResponse struct {
	TransactionResponse
	ClientName   string `json:"clientName"`
	ClientPhone  string `json:"clientPhone,omitempty"`
	ClientNotes  string `json:"clientNotes,omitempty"`
	EmployeeName string `json:"employeeName"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		CreatedAt:     t.CreatedAt,
		Kind:          string(t.Kind),
		Subtype:       t.Subtype,
		Amount:        t.Amount,
		ClientID:      t.ClientID,
		EmployeeID:    t.EmployeeID,
		Description:   t.Description,
		DebtStatus:    string(t.DebtStatus),
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(ts []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(ts))
	for i := range ts {
		responses[i] = ToTransactionResponse(&ts[i])
	}
	return responses
}
