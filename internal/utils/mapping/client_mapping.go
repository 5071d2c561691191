package mapping

import (
	"database/sql"

	"github.com/yalejo-dev/gyie_backend/internal/core/domain"
	"github.com/yalejo-dev/gyie_backend/internal/models"
)

// ToModelClient converts a domain.Client to its row representation.
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:   d.ClientID,
		Name:       d.Name,
		Phone:      nullString(d.Phone),
		Notes:      nullString(d.Notes),
		IsEmployee: d.IsEmployee,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// ToDomainClient converts a clients row to a domain.Client.
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:   m.ClientID,
		Name:       m.Name,
		Phone:      m.Phone.String,
		Notes:      m.Notes.String,
		IsEmployee: m.IsEmployee,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ToDomainClientSlice converts a slice of clients rows.
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
