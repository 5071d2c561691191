package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/yalejo-dev/gyie_backend/internal/core/domain"
	"github.com/yalejo-dev/gyie_backend/internal/dto"
)

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) FindAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByClientID(ctx context.Context, clientID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, clientID)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsInRange(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, from, to)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionIDsByDate(ctx context.Context, day time.Time) (map[string]struct{}, error) {
	args := m.Called(ctx, day)
	var ids map[string]struct{}
	if args.Get(0) != nil {
		ids = args.Get(0).(map[string]struct{})
	}
	return ids, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionIDsByClientName(ctx context.Context, nameFragment string) (map[string]struct{}, error) {
	args := m.Called(ctx, nameFragment)
	var ids map[string]struct{}
	if args.Get(0) != nil {
		ids = args.Get(0).(map[string]struct{})
	}
	return ids, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionIDsByStatus(ctx context.Context, status domain.DebtStatus) (map[string]struct{}, error) {
	args := m.Called(ctx, status)
	var ids map[string]struct{}
	if args.Get(0) != nil {
		ids = args.Get(0).(map[string]struct{})
	}
	return ids, args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, transaction domain.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.DebtStatus) error {
	args := m.Called(ctx, transactionID, status)
	return args.Error(0)
}

// --- Mock ClientRepository ---

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockClientRepository) FindClientsByIDs(ctx context.Context, clientIDs []string) (map[string]domain.Client, error) {
	args := m.Called(ctx, clientIDs)
	var clients map[string]domain.Client
	if args.Get(0) != nil {
		clients = args.Get(0).(map[string]domain.Client)
	}
	return clients, args.Error(1)
}

func (m *MockClientRepository) FindClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	var clients []domain.Client
	if args.Get(0) != nil {
		clients = args.Get(0).([]domain.Client)
	}
	return clients, args.Error(1)
}

func (m *MockClientRepository) FindClientsByName(ctx context.Context, nameFragment string) ([]domain.Client, error) {
	args := m.Called(ctx, nameFragment)
	var clients []domain.Client
	if args.Get(0) != nil {
		clients = args.Get(0).([]domain.Client)
	}
	return clients, args.Error(1)
}

func (m *MockClientRepository) FindEmployees(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	var clients []domain.Client
	if args.Get(0) != nil {
		clients = args.Get(0).([]domain.Client)
	}
	return clients, args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) SetEmployeeFlag(ctx context.Context, clientID string, isEmployee bool) error {
	args := m.Called(ctx, clientID, isEmployee)
	return args.Error(0)
}

// --- Mock ConfigRepository ---

type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) GetConfigValue(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockConfigRepository) SetConfigValue(ctx context.Context, key string, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) TopDebtors(ctx context.Context, limit int) ([]domain.DebtorSummary, error) {
	args := m.Called(ctx, limit)
	var debtors []domain.DebtorSummary
	if args.Get(0) != nil {
		debtors = args.Get(0).([]domain.DebtorSummary)
	}
	return debtors, args.Error(1)
}

func (m *MockReportingRepository) TotalsByKind(ctx context.Context) (domain.KindTotals, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.KindTotals), args.Error(1)
}

func (m *MockReportingRepository) OldestPendingDebts(ctx context.Context, limit int) ([]domain.AgedDebt, error) {
	args := m.Called(ctx, limit)
	var debts []domain.AgedDebt
	if args.Get(0) != nil {
		debts = args.Get(0).([]domain.AgedDebt)
	}
	return debts, args.Error(1)
}

func (m *MockReportingRepository) MonthlyTotals(ctx context.Context) ([]domain.MonthlySummary, error) {
	args := m.Called(ctx)
	var months []domain.MonthlySummary
	if args.Get(0) != nil {
		months = args.Get(0).([]domain.MonthlySummary)
	}
	return months, args.Error(1)
}

// --- Mock AdminSvc ---

type MockAdminSvc struct {
	mock.Mock
}

func (m *MockAdminSvc) VerifyAdminPassword(ctx context.Context, password string) (bool, error) {
	args := m.Called(ctx, password)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminSvc) ChangeAdminPassword(ctx context.Context, req dto.ChangeAdminPasswordRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAdminSvc) GetBackupRecipient(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockAdminSvc) SetBackupRecipient(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// --- Mock SpreadsheetExporter ---

type MockExporter struct {
	mock.Mock
}

func (m *MockExporter) ExportTransactions(ctx context.Context, dir string, rows []dto.BackupRow) (string, error) {
	args := m.Called(ctx, dir, rows)
	return args.String(0), args.Error(1)
}

func (m *MockExporter) ExportClients(ctx context.Context, dir string, clients []dto.ClientResponse) (string, error) {
	args := m.Called(ctx, dir, clients)
	return args.String(0), args.Error(1)
}

// --- Mock BackupMailer ---

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendWithAttachments(ctx context.Context, to, subject, htmlBody string, attachments []string) error {
	args := m.Called(ctx, to, subject, htmlBody, attachments)
	return args.Error(0)
}
