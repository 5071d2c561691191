package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/yalejo-dev/gyie_backend/internal/apperrors"
	"github.com/yalejo-dev/gyie_backend/internal/core/domain"
	portsrepo "github.com/yalejo-dev/gyie_backend/internal/core/ports/repositories"
	portssvc "github.com/yalejo-dev/gyie_backend/internal/core/ports/services"
	"github.com/yalejo-dev/gyie_backend/internal/dto"
	"github.com/yalejo-dev/gyie_backend/internal/platform/config"
	"github.com/yalejo-dev/gyie_backend/internal/utils"
)

// sessionService implements the SessionSvcFacade interface.
type sessionService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
	cfg        *config.Config
}

// NewSessionService creates the employee session service.
func NewSessionService(clientRepo portsrepo.ClientRepositoryFacade, cfg *config.Config) portssvc.SessionSvcFacade {
	return &sessionService{
		clientRepo: clientRepo,
		cfg:        cfg,
	}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

// StartEmployeeSession issues a session token for a client flagged as an
// employee. Non-employees cannot open a session.
func (s *sessionService) StartEmployeeSession(ctx context.Context, clientID string) (*dto.EmployeeLoginResponse, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client for login", slog.String("client_id", clientID))
		}
		return nil, err
	}
	if !client.IsEmployee {
		return nil, fmt.Errorf("client %s is not an employee: %w", clientID, apperrors.ErrForbidden)
	}

	session := domain.EmployeeSession{
		EmployeeID: client.ClientID,
		Name:       client.Name,
		StartedAt:  time.Now(),
	}

	token, err := utils.GenerateJWT(session.EmployeeID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate session token", slog.String("client_id", clientID))
		return nil, err
	}

	s.LogInfo(ctx, "Employee session started", slog.String("employee_id", session.EmployeeID))
	return &dto.EmployeeLoginResponse{
		Token:      token,
		EmployeeID: session.EmployeeID,
		Name:       session.Name,
		ExpiresAt:  session.StartedAt.Add(s.cfg.JWTExpiryDuration),
	}, nil
}
