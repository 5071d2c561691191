package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/yalejo-dev/gyie_backend/internal/apperrors"
	portssvc "github.com/yalejo-dev/gyie_backend/internal/core/ports/services"
	"github.com/yalejo-dev/gyie_backend/internal/dto"
	"github.com/yalejo-dev/gyie_backend/internal/handlers"
	"github.com/yalejo-dev/gyie_backend/internal/platform/config"
)

// --- Mock LedgerService ---

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) RegisterTransaction(ctx context.Context, employeeID string, req dto.RegisterTransactionRequest) (*dto.TransactionResponse, error) {
	args := m.Called(ctx, employeeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransactionResponse), args.Error(1)
}

func (m *MockLedgerService) ListAllTransactions(ctx context.Context) ([]dto.TransactionResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TransactionResponse), args.Error(1)
}

func (m *MockLedgerService) FilterTransactions(ctx context.Context, criteria dto.FilterCriteria) ([]dto.TransactionResponse, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TransactionResponse), args.Error(1)
}

func (m *MockLedgerService) ListClientTransactions(ctx context.Context, clientID string) ([]dto.TransactionResponse, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TransactionResponse), args.Error(1)
}

func (m *MockLedgerService) GetTransactionDetail(ctx context.Context, transactionID string) (*dto.TransactionDetailResponse, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransactionDetailResponse), args.Error(1)
}

func (m *MockLedgerService) CancelDebt(ctx context.Context, transactionID string, req dto.CancelDebtRequest) (*dto.CancelDebtResponse, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CancelDebtResponse), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock SessionService ---

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) StartEmployeeSession(ctx context.Context, clientID string) (*dto.EmployeeLoginResponse, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EmployeeLoginResponse), args.Error(1)
}

var _ portssvc.SessionSvcFacade = (*MockSessionService)(nil)

// --- Mock AdminService ---

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) VerifyAdminPassword(ctx context.Context, password string) (bool, error) {
	args := m.Called(ctx, password)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminService) ChangeAdminPassword(ctx context.Context, req dto.ChangeAdminPasswordRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAdminService) GetBackupRecipient(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockAdminService) SetBackupRecipient(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

var _ portssvc.AdminSvcFacade = (*MockAdminService)(nil)

// --- Mock DashboardService ---

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) ProjectForDisplay(ctx context.Context) (*dto.DashboardResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DashboardResponse), args.Error(1)
}

func (m *MockDashboardService) Project(ctx context.Context, criteria dto.FilterCriteria) (*dto.FilteredDashboardResponse, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FilteredDashboardResponse), args.Error(1)
}

var _ portssvc.DashboardSvcFacade = (*MockDashboardService)(nil)

// --- Mock ClientService ---

type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ClientResponse), args.Error(1)
}

func (m *MockClientService) GetClientByID(ctx context.Context, clientID string) (*dto.ClientResponse, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ClientResponse), args.Error(1)
}

func (m *MockClientService) ListClients(ctx context.Context) ([]dto.ClientResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ClientResponse), args.Error(1)
}

func (m *MockClientService) SearchClientsByName(ctx context.Context, name string) ([]dto.ClientResponse, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ClientResponse), args.Error(1)
}

func (m *MockClientService) CreateEmployee(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ClientResponse), args.Error(1)
}

func (m *MockClientService) ListEmployees(ctx context.Context) ([]dto.ClientResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ClientResponse), args.Error(1)
}

func (m *MockClientService) UpdateEmployee(ctx context.Context, clientID string, req dto.UpdateEmployeeRequest) (*dto.ClientResponse, error) {
	args := m.Called(ctx, clientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ClientResponse), args.Error(1)
}

func (m *MockClientService) DemoteEmployee(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

var _ portssvc.ClientSvcFacade = (*MockClientService)(nil)

// --- Mock ReportingService ---

type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TopDebtors(ctx context.Context, limit int) (*dto.TopDebtorsResponse, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TopDebtorsResponse), args.Error(1)
}

func (m *MockReportingService) TotalsByKind(ctx context.Context) (*dto.KindTotalsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.KindTotalsResponse), args.Error(1)
}

func (m *MockReportingService) OldestPendingDebts(ctx context.Context, limit int) (*dto.OldestDebtsResponse, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OldestDebtsResponse), args.Error(1)
}

func (m *MockReportingService) MonthlySummary(ctx context.Context) (*dto.MonthlySummaryResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MonthlySummaryResponse), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Mock BackupService ---

type MockBackupService struct {
	mock.Mock
}

func (m *MockBackupService) SendBackup(ctx context.Context, req dto.SendBackupRequest) (*dto.SendBackupResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SendBackupResponse), args.Error(1)
}

var _ portssvc.BackupSvcFacade = (*MockBackupService)(nil)

// --- Test Suite ---

type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockLedger  *MockLedgerService
	mockSession *MockSessionService
	mockAdmin   *MockAdminService
	jwtSecret   string
}

func (suite *TransactionHandlerTestSuite) generateTestToken(employeeID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "gyie-test",
		Subject:   employeeID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockLedger = new(MockLedgerService)
	suite.mockSession = new(MockSessionService)
	suite.mockAdmin = new(MockAdminService)

	container := &portssvc.ServiceContainer{
		Ledger:    suite.mockLedger,
		Dashboard: new(MockDashboardService),
		Session:   suite.mockSession,
		Admin:     suite.mockAdmin,
		Client:    new(MockClientService),
		Reporting: new(MockReportingService),
		Backup:    new(MockBackupService),
	}

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // no swagger routes in tests
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *TransactionHandlerTestSuite) TestRegisterTransaction_Success() {
	employeeID := uuid.NewString()
	body := dto.RegisterTransactionRequest{
		Kind:     "DEBT",
		Subtype:  "FIADO",
		Amount:   decimal.NewFromInt(25000),
		ClientID: uuid.NewString(),
	}
	expected := &dto.TransactionResponse{
		TransactionID: uuid.NewString(),
		Kind:          "DEBT",
		Subtype:       "FIADO",
		Amount:        body.Amount,
		ClientID:      body.ClientID,
		EmployeeID:    employeeID,
		DebtStatus:    "PENDING",
	}

	suite.mockLedger.On("RegisterTransaction", mock.Anything, employeeID, mock.MatchedBy(func(r dto.RegisterTransactionRequest) bool {
		return r.ClientID == body.ClientID && r.Subtype == "FIADO"
	})).Return(expected, nil).Once()

	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(employeeID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var got dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(expected.TransactionID, got.TransactionID)
	suite.Equal("PENDING", got.DebtStatus)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestRegisterTransaction_RequiresToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "RegisterTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestFilterTransactions_BindsQueryFacets() {
	employeeID := uuid.NewString()

	suite.mockLedger.On("FilterTransactions", mock.Anything, mock.MatchedBy(func(c dto.FilterCriteria) bool {
		return c.Date == "2026-08-15" && c.Name == "car" && c.Status == dto.FilterStatusNotCancelled
	})).Return([]dto.TransactionResponse{}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/filter?date=2026-08-15&name=car&status=not-cancelled", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(employeeID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestFilterTransactions_RejectsBadStatus() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/filter?status=bogus", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "FilterTransactions", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	transactionID := uuid.NewString()

	suite.mockLedger.On("GetTransactionDetail", mock.Anything, transactionID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions/"+transactionID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestCancelDebt_ReportsOutcome() {
	transactionID := uuid.NewString()

	suite.mockLedger.On("CancelDebt", mock.Anything, transactionID, mock.MatchedBy(func(r dto.CancelDebtRequest) bool {
		return r.Confirmed
	})).Return(&dto.CancelDebtResponse{Outcome: dto.CancelOutcomeRequiresAdminAuth}, nil).Once()

	payload, _ := json.Marshal(dto.CancelDebtRequest{Confirmed: true})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions/"+transactionID+"/cancel", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.CancelDebtResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(dto.CancelOutcomeRequiresAdminAuth, got.Outcome)
}

func (suite *TransactionHandlerTestSuite) TestEmployeeLogin_Public() {
	clientID := uuid.NewString()
	expected := &dto.EmployeeLoginResponse{
		Token:      "token",
		EmployeeID: clientID,
		Name:       "Ana",
		ExpiresAt:  time.Now().Add(time.Hour),
	}

	suite.mockSession.On("StartEmployeeSession", mock.Anything, clientID).Return(expected, nil).Once()

	payload, _ := json.Marshal(dto.EmployeeLoginRequest{ClientID: clientID})
	req, _ := http.NewRequest(http.MethodPost, "/auth/employee-login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestVerifyAdmin_WrongPasswordIsStill200() {
	suite.mockAdmin.On("VerifyAdminPassword", mock.Anything, "incorrecta").Return(false, nil).Once()

	payload, _ := json.Marshal(dto.AdminVerifyRequest{Password: "incorrecta"})
	req, _ := http.NewRequest(http.MethodPost, "/auth/admin/verify", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.AdminVerifyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.False(got.Valid)
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
