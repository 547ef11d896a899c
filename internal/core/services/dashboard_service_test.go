package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/freelanceledger/freelance_ledger_app/internal/apperrors"
	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	portssvc "github.com/freelanceledger/freelance_ledger_app/internal/core/ports/services"
	"github.com/freelanceledger/freelance_ledger_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type DashboardServiceTestSuite struct {
	suite.Suite
	mockProjectRepo *MockProjectRepository
	mockExpenseRepo *MockExpenseRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.DashboardSvc
	exportSvc       portssvc.ExportSvc
	userID          string
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewDashboardService(suite.mockProjectRepo, suite.mockExpenseRepo, suite.mockAccountRepo)
	suite.exportSvc = services.NewExportService(suite.mockProjectRepo, suite.mockExpenseRepo, suite.mockAccountRepo)
	suite.userID = uuid.NewString()
}

func (suite *DashboardServiceTestSuite) snapshotFixtures() ([]domain.Project, []domain.Expense, []domain.Account) {
	projects := []domain.Project{
		{
			ProjectID:   uuid.NewString(),
			UserID:      suite.userID,
			Status:      domain.StatusInProgress,
			Terms:       domain.FixedTerms{TotalAmount: decimal.NewFromInt(200)},
			TotalAmount: decimal.NewFromInt(200),
			PaidAmount:  decimal.NewFromInt(150),
		},
		{
			ProjectID:   uuid.NewString(),
			UserID:      suite.userID,
			Status:      domain.StatusCompleted,
			Terms:       domain.FixedTerms{TotalAmount: decimal.NewFromInt(250)},
			TotalAmount: decimal.NewFromInt(250),
			PaidAmount:  decimal.NewFromInt(150),
		},
	}
	expenses := []domain.Expense{
		{ExpenseID: uuid.NewString(), UserID: suite.userID, Amount: decimal.NewFromInt(80),
			Date: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), Category: "Software"},
	}
	accounts := []domain.Account{
		{AccountID: uuid.NewString(), UserID: suite.userID, Name: "Main",
			Balance: decimal.NewFromInt(220), Type: domain.Checking},
		{AccountID: uuid.NewString(), UserID: suite.userID, Name: "Card",
			Balance: decimal.NewFromInt(-400), Type: domain.Credit},
	}
	return projects, expenses, accounts
}

// --- Test Cases ---

func (suite *DashboardServiceTestSuite) TestGetStats_FoldsSnapshot() {
	ctx := context.Background()
	projects, expenses, accounts := suite.snapshotFixtures()

	suite.mockProjectRepo.On("ListProjectsByUser", ctx, suite.userID).Return(projects, nil).Once()
	suite.mockExpenseRepo.On("ListExpensesByUser", ctx, suite.userID).Return(expenses, nil).Once()
	suite.mockAccountRepo.On("ListAccountsByUser", ctx, suite.userID).Return(accounts, nil).Once()

	stats, err := suite.service.GetStats(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(stats)
	suite.True(stats.TotalEarned.Equal(decimal.NewFromInt(300)), "expected 300, got %s", stats.TotalEarned)
	suite.True(stats.TotalPending.Equal(decimal.NewFromInt(150)))
	suite.True(stats.TotalExpenses.Equal(decimal.NewFromInt(80)))
	suite.True(stats.NetBalance.Equal(decimal.NewFromInt(220)))
	// Credit balance is excluded from the combined account total
	suite.True(stats.AccountsTotal.Equal(decimal.NewFromInt(220)))
	suite.Equal(2, stats.ProjectCount)
	suite.Equal(1, stats.ActiveProjects)
}

func (suite *DashboardServiceTestSuite) TestGetStats_EmptySnapshot() {
	ctx := context.Background()

	suite.mockProjectRepo.On("ListProjectsByUser", ctx, suite.userID).Return([]domain.Project{}, nil).Once()
	suite.mockExpenseRepo.On("ListExpensesByUser", ctx, suite.userID).Return([]domain.Expense{}, nil).Once()
	suite.mockAccountRepo.On("ListAccountsByUser", ctx, suite.userID).Return([]domain.Account{}, nil).Once()

	stats, err := suite.service.GetStats(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.True(stats.TotalEarned.IsZero())
	suite.True(stats.NetBalance.IsZero())
	suite.Equal(0, stats.ProjectCount)
}

func (suite *DashboardServiceTestSuite) TestGetStats_ProjectLoadFailure() {
	ctx := context.Background()
	storeErr := apperrors.ErrPersistence

	suite.mockProjectRepo.On("ListProjectsByUser", ctx, suite.userID).Return(nil, storeErr).Once()

	stats, err := suite.service.GetStats(ctx, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPersistence)
	suite.Nil(stats)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "ListAccountsByUser", mock.Anything, mock.Anything)
}

func (suite *DashboardServiceTestSuite) TestGetStats_MissingPrincipal() {
	stats, err := suite.service.GetStats(context.Background(), "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAuthentication)
	suite.Nil(stats)
}

func (suite *DashboardServiceTestSuite) TestExportSnapshot_ContainsAllSections() {
	ctx := context.Background()
	projects, expenses, accounts := suite.snapshotFixtures()

	suite.mockProjectRepo.On("ListProjectsByUser", ctx, suite.userID).Return(projects, nil).Once()
	suite.mockExpenseRepo.On("ListExpensesByUser", ctx, suite.userID).Return(expenses, nil).Once()
	suite.mockAccountRepo.On("ListAccountsByUser", ctx, suite.userID).Return(accounts, nil).Once()

	snapshot, err := suite.exportSvc.Snapshot(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(snapshot)
	suite.Len(snapshot.Projects, 2)
	suite.Len(snapshot.Expenses, 1)
	suite.Len(snapshot.Accounts, 2)
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
