package mapping

import (
	"github.com/yalejo-dev/gyie_backend/internal/core/domain"
	"github.com/yalejo-dev/gyie_backend/internal/models"
)

// ToModelTransaction converts a domain.Transaction to its row representation.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		CreatedAt:     d.CreatedAt,
		Kind:          string(d.Kind),
		Subtype:       d.Subtype,
		Amount:        d.Amount,
		ClientID:      d.ClientID,
		EmployeeID:    d.EmployeeID,
		Description:   nullString(d.Description),
		BalanceEffect: d.BalanceEffect,
		DebtStatus:    string(d.DebtStatus),
	}
}

// ToDomainTransaction converts a transactions row to a domain.Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		CreatedAt:     m.CreatedAt,
		Kind:          domain.TransactionKind(m.Kind),
		Subtype:       m.Subtype,
		Amount:        m.Amount,
		ClientID:      m.ClientID,
		EmployeeID:    m.EmployeeID,
		Description:   m.Description.String,
		BalanceEffect: m.BalanceEffect,
		DebtStatus:    domain.DebtStatus(m.DebtStatus),
	}
}

// ToDomainTransactionSlice converts a slice of transactions rows.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
