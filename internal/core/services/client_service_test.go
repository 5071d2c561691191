package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/yalejo-dev/gyie_backend/internal/apperrors"
	"github.com/yalejo-dev/gyie_backend/internal/core/domain"
	portssvc "github.com/yalejo-dev/gyie_backend/internal/core/ports/services"
	"github.com/yalejo-dev/gyie_backend/internal/core/services"
	"github.com/yalejo-dev/gyie_backend/internal/dto"
)

type ClientServiceTestSuite struct {
	suite.Suite
	mockClientRepo *MockClientRepository
	service        portssvc.ClientSvcFacade
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockClientRepo = new(MockClientRepository)
	suite.service = services.NewClientService(suite.mockClientRepo)
}

func (suite *ClientServiceTestSuite) TestCreateClient() {
	ctx := context.Background()

	suite.mockClientRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Name == "Carlos" && !c.IsEmployee && c.ClientID != ""
	})).Return(nil).Once()

	resp, err := suite.service.CreateClient(ctx, dto.CreateClientRequest{Name: "Carlos", Phone: "3001234567"})

	suite.Require().NoError(err)
	suite.Equal("Carlos", resp.Name)
	suite.False(resp.IsEmployee)
	suite.NotEmpty(resp.ClientID)
}

func (suite *ClientServiceTestSuite) TestCreateEmployee_SetsFlag() {
	ctx := context.Background()

	suite.mockClientRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Name == "Ana" && c.IsEmployee
	})).Return(nil).Once()

	resp, err := suite.service.CreateEmployee(ctx, dto.CreateClientRequest{Name: "Ana"})

	suite.Require().NoError(err)
	suite.True(resp.IsEmployee)
}

func (suite *ClientServiceTestSuite) TestUpdateEmployee_RejectsRegularClient() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(clientFixture(clientID), nil).Once()

	_, err := suite.service.UpdateEmployee(ctx, clientID, dto.UpdateEmployeeRequest{Name: "Otro"})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "UpdateClient", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestDemoteEmployee_ClearsFlagOnly() {
	ctx := context.Background()
	employeeID := uuid.NewString()

	suite.mockClientRepo.On("FindClientByID", ctx, employeeID).Return(employeeFixture(employeeID), nil).Once()
	suite.mockClientRepo.On("SetEmployeeFlag", ctx, employeeID, false).Return(nil).Once()

	err := suite.service.DemoteEmployee(ctx, employeeID)

	suite.Require().NoError(err)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestDemoteEmployee_RejectsRegularClient() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(clientFixture(clientID), nil).Once()

	err := suite.service.DemoteEmployee(ctx, clientID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "SetEmployeeFlag", mock.Anything, mock.Anything, mock.Anything)
}

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
