package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/yalejo-dev/gyie_backend/internal/apperrors"
	portssvc "github.com/yalejo-dev/gyie_backend/internal/core/ports/services"
	"github.com/yalejo-dev/gyie_backend/internal/core/services"
	"github.com/yalejo-dev/gyie_backend/internal/platform/config"
	"github.com/yalejo-dev/gyie_backend/internal/utils"
)

type SessionServiceTestSuite struct {
	suite.Suite
	mockClientRepo *MockClientRepository
	cfg            *config.Config
	service        portssvc.SessionSvcFacade
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.mockClientRepo = new(MockClientRepository)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "gyie-test",
	}
	suite.service = services.NewSessionService(suite.mockClientRepo, suite.cfg)
}

func (suite *SessionServiceTestSuite) TestStartEmployeeSession_IssuesTokenForEmployee() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockClientRepo.On("FindClientByID", ctx, employeeID).Return(employeeFixture(employeeID), nil).Once()

	resp, err := suite.service.StartEmployeeSession(ctx, employeeID)

	suite.Require().NoError(err)
	suite.Equal(employeeID, resp.EmployeeID)
	suite.Equal("Ana", resp.Name)

	claims, err := utils.ParseAndValidateJWT(resp.Token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(employeeID, claims.Subject)
	suite.Equal("gyie-test", claims.Issuer)
}

func (suite *SessionServiceTestSuite) TestStartEmployeeSession_RejectsRegularClient() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(clientFixture(clientID), nil).Once()

	_, err := suite.service.StartEmployeeSession(ctx, clientID)
	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *SessionServiceTestSuite) TestStartEmployeeSession_UnknownClient() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.StartEmployeeSession(ctx, clientID)
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}
