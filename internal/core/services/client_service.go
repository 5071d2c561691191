package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/yalejo-dev/gyie_backend/internal/apperrors"
	"github.com/yalejo-dev/gyie_backend/internal/core/domain"
	portsrepo "github.com/yalejo-dev/gyie_backend/internal/core/ports/repositories"
	portssvc "github.com/yalejo-dev/gyie_backend/internal/core/ports/services"
	"github.com/yalejo-dev/gyie_backend/internal/dto"
)

// clientService implements the ClientSvcFacade interface.
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates the client and employee management service.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	return s.create(ctx, req, false)
}

func (s *clientService) CreateEmployee(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	return s.create(ctx, req, true)
}

func (s *clientService) create(ctx context.Context, req dto.CreateClientRequest, isEmployee bool) (*dto.ClientResponse, error) {
	now := time.Now()
	client := domain.Client{
		ClientID:   uuid.NewString(),
		Name:       req.Name,
		Phone:      req.Phone,
		Notes:      req.Notes,
		IsEmployee: isEmployee,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client", slog.String("client_id", client.ClientID))
		return nil, err
	}

	s.LogInfo(ctx, "Client created",
		slog.String("client_id", client.ClientID),
		slog.Bool("is_employee", isEmployee))
	resp := dto.ToClientResponse(&client)
	return &resp, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*dto.ClientResponse, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client", slog.String("client_id", clientID))
		}
		return nil, err
	}
	resp := dto.ToClientResponse(client)
	return &resp, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]dto.ClientResponse, error) {
	clients, err := s.clientRepo.FindClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, err
	}
	return dto.ToClientResponses(clients), nil
}

func (s *clientService) SearchClientsByName(ctx context.Context, name string) ([]dto.ClientResponse, error) {
	clients, err := s.clientRepo.FindClientsByName(ctx, name)
	if err != nil {
		s.LogError(ctx, err, "Failed to search clients", slog.String("name", name))
		return nil, err
	}
	return dto.ToClientResponses(clients), nil
}

func (s *clientService) ListEmployees(ctx context.Context) ([]dto.ClientResponse, error) {
	employees, err := s.clientRepo.FindEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, err
	}
	return dto.ToClientResponses(employees), nil
}

func (s *clientService) UpdateEmployee(ctx context.Context, clientID string, req dto.UpdateEmployeeRequest) (*dto.ClientResponse, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee for update", slog.String("client_id", clientID))
		}
		return nil, err
	}
	if !client.IsEmployee {
		return nil, fmt.Errorf("client %s is not an employee: %w", clientID, apperrors.ErrValidation)
	}

	client.Name = req.Name
	client.Phone = req.Phone
	client.Notes = req.Notes
	client.UpdatedAt = time.Now()

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.String("client_id", clientID))
		return nil, err
	}

	resp := dto.ToClientResponse(client)
	return &resp, nil
}

// DemoteEmployee clears the employee flag only. The client row and every
// transaction that references it stay in place, so ledger history keeps
// resolving.
func (s *clientService) DemoteEmployee(ctx context.Context, clientID string) error {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee for demotion", slog.String("client_id", clientID))
		}
		return err
	}
	if !client.IsEmployee {
		return fmt.Errorf("client %s is not an employee: %w", clientID, apperrors.ErrValidation)
	}

	if err := s.clientRepo.SetEmployeeFlag(ctx, clientID, false); err != nil {
		s.LogError(ctx, err, "Failed to clear employee flag", slog.String("client_id", clientID))
		return err
	}

	s.LogInfo(ctx, "Employee demoted to regular client", slog.String("client_id", clientID))
	return nil
}
