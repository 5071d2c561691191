package services

import (
	"context"

	"github.com/yalejo-dev/gyie_backend/internal/dto"
)

// ClientSvcFacade exposes client and employee management.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	GetClientByID(ctx context.Context, clientID string) (*dto.ClientResponse, error)
	ListClients(ctx context.Context) ([]dto.ClientResponse, error)
	SearchClientsByName(ctx context.Context, name string) ([]dto.ClientResponse, error)

	// CreateEmployee registers a client with the employee flag set.
	CreateEmployee(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	ListEmployees(ctx context.Context) ([]dto.ClientResponse, error)
	UpdateEmployee(ctx context.Context, clientID string, req dto.UpdateEmployeeRequest) (*dto.ClientResponse, error)

	// DemoteEmployee clears the employee flag; the client record and its
	// transaction history stay intact.
	DemoteEmployee(ctx context.Context, clientID string) error
}
