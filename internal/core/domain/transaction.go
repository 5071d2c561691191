package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a ledger entry as money owed or money received.
type TransactionKind string

const (
	KindDebt    TransactionKind = "DEBT"
	KindPayment TransactionKind = "PAYMENT"
)

// DebtStatus is the settlement state of a ledger entry.
// Payments are born PAID; debts are born PENDING and may only ever
// transition to CANCELLED through the cancel-debt operation.
type DebtStatus string

const (
	StatusPending   DebtStatus = "PENDING"
	StatusPaid      DebtStatus = "PAID"
	StatusCancelled DebtStatus = "CANCELLED"
)

// Transaction subtypes. The vocabulary depends on the kind.
const (
	SubtypeFiado          = "FIADO"
	SubtypePrestamo       = "PRESTAMO"
	SubtypeNequiPendiente = "NEQUI_PENDIENTE"

	SubtypePagoDeuda     = "PAGO_DEUDA"
	SubtypeNequiRecibido = "NEQUI_RECIBIDO"
	SubtypeOtrosIngresos = "OTROS_INGRESOS"
)

var debtSubtypes = map[string]struct{}{
	SubtypeFiado:          {},
	SubtypePrestamo:       {},
	SubtypeNequiPendiente: {},
}

var paymentSubtypes = map[string]struct{}{
	SubtypePagoDeuda:     {},
	SubtypeNequiRecibido: {},
	SubtypeOtrosIngresos: {},
}

// Transaction is a single append-only ledger entry.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	CreatedAt     time.Time       `json:"createdAt"`     // Set at creation, never mutated
	Kind          TransactionKind `json:"kind"`
	Subtype       string          `json:"subtype"`
	Amount        decimal.Decimal `json:"amount"` // Always positive
	ClientID      string          `json:"clientID"`
	EmployeeID    string          `json:"employeeID"` // Client flagged as employee who performed the entry
	Description   string          `json:"description,omitempty"`
	BalanceEffect decimal.Decimal `json:"balanceEffect"` // Mirrors Amount at creation; audit only
	DebtStatus    DebtStatus      `json:"debtStatus"`
}

// InitialStatusForKind returns the debt status a new transaction of the
// given kind must carry: PAYMENT => PAID, DEBT => PENDING. No other
// kind/status combination is ever produced.
func InitialStatusForKind(kind TransactionKind) DebtStatus {
	if kind == KindPayment {
		return StatusPaid
	}
	return StatusPending
}

// ValidSubtype reports whether the subtype belongs to the kind's vocabulary.
func ValidSubtype(kind TransactionKind, subtype string) bool {
	switch kind {
	case KindDebt:
		_, ok := debtSubtypes[subtype]
		return ok
	case KindPayment:
		_, ok := paymentSubtypes[subtype]
		return ok
	default:
		return false
	}
}

// Validate checks the creation invariants of a transaction.
func (t Transaction) Validate() error {
	if t.Kind != KindDebt && t.Kind != KindPayment {
		return fmt.Errorf("unknown transaction kind %q", t.Kind)
	}
	if !ValidSubtype(t.Kind, t.Subtype) {
		return fmt.Errorf("subtype %q is not valid for kind %s", t.Subtype, t.Kind)
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount must be positive, got %s", t.Amount)
	}
	if t.ClientID == "" {
		return fmt.Errorf("client ID is required")
	}
	if t.EmployeeID == "" {
		return fmt.Errorf("employee ID is required")
	}
	if t.DebtStatus != InitialStatusForKind(t.Kind) && t.DebtStatus != StatusCancelled {
		return fmt.Errorf("status %s is not legal for kind %s", t.DebtStatus, t.Kind)
	}
	return nil
}

// IsDebt reports whether the transaction represents money owed.
func (t Transaction) IsDebt() bool {
	return t.Kind == KindDebt
}
