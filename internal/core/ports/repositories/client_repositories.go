package repositories

import (
	"context"

	"github.com/yalejo-dev/gyie_backend/internal/core/domain"
)

// ClientReader defines read operations for client data.
type ClientReader interface {
	// FindClientByID retrieves a specific client by ID.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// FindClientsByIDs retrieves several clients at once, keyed by ID.
	// Missing IDs are simply absent from the map.
	FindClientsByIDs(ctx context.Context, clientIDs []string) (map[string]domain.Client, error)

	// FindClients retrieves all registered clients.
	FindClients(ctx context.Context) ([]domain.Client, error)

	// FindClientsByName retrieves clients whose name contains the fragment
	// (case-insensitive).
	FindClientsByName(ctx context.Context, nameFragment string) ([]domain.Client, error)

	// FindEmployees retrieves all clients flagged as employees.
	FindEmployees(ctx context.Context) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data.
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient updates an existing client's contact details.
	UpdateClient(ctx context.Context, client domain.Client) error

	// SetEmployeeFlag flips the is_employee flag. Clearing the flag is the
	// only form of employee "deletion"; the row is never removed.
	SetEmployeeFlag(ctx context.Context, clientID string, isEmployee bool) error
}

// ClientRepositoryFacade combines all client repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
