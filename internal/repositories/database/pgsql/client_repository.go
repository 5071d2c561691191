package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yalejo-dev/gyie_backend/internal/apperrors"
	"github.com/yalejo-dev/gyie_backend/internal/core/domain"
	portsrepo "github.com/yalejo-dev/gyie_backend/internal/core/ports/repositories"
	"github.com/yalejo-dev/gyie_backend/internal/models"
	"github.com/yalejo-dev/gyie_backend/internal/utils/mapping"
)

type PgxClientRepository struct {
	db *pgxpool.Pool
}

func newPgxClientRepository(db *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{db: db}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

const clientColumns = `client_id, name, phone, notes, is_employee, created_at, updated_at`

func scanClient(row pgx.Row) (models.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID,
		&m.Name,
		&m.Phone,
		&m.Notes,
		&m.IsEmployee,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func collectClients(rows pgx.Rows) ([]models.Client, error) {
	defer rows.Close()
	var ms []models.Client
	for rows.Next() {
		m, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate client rows: %w", err)
	}
	return ms, nil
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
        INSERT INTO clients (client_id, name, phone, notes, is_employee, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		m.ClientID,
		m.Name,
		m.Phone,
		m.Notes,
		m.IsEmployee,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
        UPDATE clients
        SET name = $2, phone = $3, notes = $4, updated_at = $5
        WHERE client_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		m.ClientID,
		m.Name,
		m.Phone,
		m.Notes,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update client %s: %w", client.ClientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxClientRepository) SetEmployeeFlag(ctx context.Context, clientID string, isEmployee bool) error {
	query := `
        UPDATE clients
        SET is_employee = $2, updated_at = NOW()
        WHERE client_id = $1;
    `
	tag, err := r.db.Exec(ctx, query, clientID, isEmployee)
	if err != nil {
		return fmt.Errorf("failed to set employee flag for client %s: %w", clientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`
	m, err := scanClient(r.db.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}
	d := mapping.ToDomainClient(m)
	return &d, nil
}

func (r *PgxClientRepository) FindClientsByIDs(ctx context.Context, clientIDs []string) (map[string]domain.Client, error) {
	result := make(map[string]domain.Client, len(clientIDs))
	if len(clientIDs) == 0 {
		return result, nil
	}

	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = ANY($1);`
	rows, err := r.db.Query(ctx, query, clientIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find clients by IDs: %w", err)
	}
	ms, err := collectClients(rows)
	if err != nil {
		return nil, err
	}

	for _, m := range ms {
		result[m.ClientID] = mapping.ToDomainClient(m)
	}
	return result, nil
}

func (r *PgxClientRepository) FindClients(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY name;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	ms, err := collectClients(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainClientSlice(ms), nil
}

func (r *PgxClientRepository) FindClientsByName(ctx context.Context, nameFragment string) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE name ILIKE '%' || $1 || '%' ORDER BY name;`
	rows, err := r.db.Query(ctx, query, nameFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to search clients by name: %w", err)
	}
	ms, err := collectClients(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainClientSlice(ms), nil
}

func (r *PgxClientRepository) FindEmployees(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE is_employee ORDER BY name;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	ms, err := collectClients(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainClientSlice(ms), nil
}
