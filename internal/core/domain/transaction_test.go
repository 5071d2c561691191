package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/yalejo-dev/gyie_backend/internal/core/domain"
)

func TestInitialStatusForKind(t *testing.T) {
	tests := []struct {
		name string
		kind domain.TransactionKind
		want domain.DebtStatus
	}{
		{name: "payment is born paid", kind: domain.KindPayment, want: domain.StatusPaid},
		{name: "debt is born pending", kind: domain.KindDebt, want: domain.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.InitialStatusForKind(tt.kind))
		})
	}
}

func TestValidSubtype(t *testing.T) {
	tests := []struct {
		name    string
		kind    domain.TransactionKind
		subtype string
		want    bool
	}{
		{name: "fiado is a debt subtype", kind: domain.KindDebt, subtype: domain.SubtypeFiado, want: true},
		{name: "prestamo is a debt subtype", kind: domain.KindDebt, subtype: domain.SubtypePrestamo, want: true},
		{name: "nequi pendiente is a debt subtype", kind: domain.KindDebt, subtype: domain.SubtypeNequiPendiente, want: true},
		{name: "pago deuda is a payment subtype", kind: domain.KindPayment, subtype: domain.SubtypePagoDeuda, want: true},
		{name: "nequi recibido is a payment subtype", kind: domain.KindPayment, subtype: domain.SubtypeNequiRecibido, want: true},
		{name: "otros ingresos is a payment subtype", kind: domain.KindPayment, subtype: domain.SubtypeOtrosIngresos, want: true},
		{name: "debt subtype rejected for payment", kind: domain.KindPayment, subtype: domain.SubtypeFiado, want: false},
		{name: "payment subtype rejected for debt", kind: domain.KindDebt, subtype: domain.SubtypePagoDeuda, want: false},
		{name: "unknown subtype rejected", kind: domain.KindDebt, subtype: "GIFT", want: false},
		{name: "unknown kind rejected", kind: domain.TransactionKind("TRANSFER"), subtype: domain.SubtypeFiado, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ValidSubtype(tt.kind, tt.subtype))
		})
	}
}

func TestTransaction_Validate(t *testing.T) {
	valid := domain.Transaction{
		TransactionID: "txn_1",
		Kind:          domain.KindDebt,
		Subtype:       domain.SubtypeFiado,
		Amount:        decimal.NewFromInt(50000),
		ClientID:      "client_1",
		EmployeeID:    "employee_1",
		DebtStatus:    domain.StatusPending,
	}

	tests := []struct {
		name    string
		mutate  func(tx *domain.Transaction)
		wantErr string
	}{
		{
			name:   "valid debt",
			mutate: func(tx *domain.Transaction) {},
		},
		{
			name: "valid payment",
			mutate: func(tx *domain.Transaction) {
				tx.Kind = domain.KindPayment
				tx.Subtype = domain.SubtypePagoDeuda
				tx.DebtStatus = domain.StatusPaid
			},
		},
		{
			name: "cancelled debt stays valid",
			mutate: func(tx *domain.Transaction) {
				tx.DebtStatus = domain.StatusCancelled
			},
		},
		{
			name: "zero amount rejected",
			mutate: func(tx *domain.Transaction) {
				tx.Amount = decimal.Zero
			},
			wantErr: "amount must be positive",
		},
		{
			name: "negative amount rejected",
			mutate: func(tx *domain.Transaction) {
				tx.Amount = decimal.NewFromInt(-100)
			},
			wantErr: "amount must be positive",
		},
		{
			name: "missing client rejected",
			mutate: func(tx *domain.Transaction) {
				tx.ClientID = ""
			},
			wantErr: "client ID is required",
		},
		{
			name: "missing employee rejected",
			mutate: func(tx *domain.Transaction) {
				tx.EmployeeID = ""
			},
			wantErr: "employee ID is required",
		},
		{
			name: "payment cannot be pending",
			mutate: func(tx *domain.Transaction) {
				tx.Kind = domain.KindPayment
				tx.Subtype = domain.SubtypeOtrosIngresos
				tx.DebtStatus = domain.StatusPending
			},
			wantErr: "not legal for kind",
		},
		{
			name: "debt cannot be born paid",
			mutate: func(tx *domain.Transaction) {
				tx.DebtStatus = domain.StatusPaid
			},
			wantErr: "not legal for kind",
		},
		{
			name: "subtype must match kind",
			mutate: func(tx *domain.Transaction) {
				tx.Subtype = domain.SubtypeNequiRecibido
			},
			wantErr: "not valid for kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
