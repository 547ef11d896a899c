package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/freelanceledger/freelance_ledger_app/internal/apperrors"
	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	portssvc "github.com/freelanceledger/freelance_ledger_app/internal/core/ports/services"
	"github.com/freelanceledger/freelance_ledger_app/internal/core/services"
	"github.com/freelanceledger/freelance_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockBudgetRepository is a mock type for the BudgetRepository interface
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) FindBudgetByCategoryAndPeriod(ctx context.Context, userID, category string, period domain.BudgetPeriod) (*domain.Budget, error) {
	args := m.Called(ctx, userID, category, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgetsByUser(ctx context.Context, userID string) ([]domain.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	args := m.Called(ctx, budgetID)
	return args.Error(0)
}

// MockExpenseRepository is a mock type for the ExpenseRepository interface
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpensesByUser(ctx context.Context, userID string) ([]domain.Expense, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo  *MockBudgetRepository
	mockExpenseRepo *MockExpenseRepository
	service         portssvc.BudgetSvc
	userID          string
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockExpenseRepo)
	suite.userID = uuid.NewString()
}

func (suite *BudgetServiceTestSuite) expense(category, amount string, date time.Time) domain.Expense {
	return domain.Expense{
		ExpenseID: uuid.NewString(),
		UserID:    suite.userID,
		Name:      category + " purchase",
		Amount:    decimal.RequireFromString(amount),
		Date:      date,
		Category:  category,
	}
}

// --- Test Cases ---

func (suite *BudgetServiceTestSuite) TestCreateBudget_Success() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Category:  "Software",
		Amount:    decimal.NewFromInt(200),
		Period:    domain.PeriodMonthly,
		StartDate: "2025-01-01",
	}

	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()

	created, err := suite.service.CreateBudget(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.BudgetID)
	suite.Equal("Software", created.Category)
	suite.Equal(domain.PeriodMonthly, created.Period)
	suite.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), created.StartDate)
	suite.Equal(suite.userID, created.CreatedBy)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestGetProgress_NoBudgetMatches() {
	ctx := context.Background()

	suite.mockBudgetRepo.On("FindBudgetByCategoryAndPeriod", ctx, suite.userID, "Travel", domain.PeriodMonthly).
		Return(nil, fmt.Errorf("%w: no budget for Travel", apperrors.ErrNotFound)).Once()

	progress, err := suite.service.GetProgress(ctx, suite.userID, "Travel", domain.PeriodMonthly)

	suite.Require().NoError(err, "a missing budget is not an error")
	suite.Nil(progress)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "ListExpensesByUser", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestGetProgress_AggregatesWindowAndCategory() {
	ctx := context.Background()
	budget := &domain.Budget{
		BudgetID:  uuid.NewString(),
		UserID:    suite.userID,
		Category:  "Software",
		Amount:    decimal.NewFromInt(200),
		Period:    domain.PeriodMonthly,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	expenses := []domain.Expense{
		suite.expense("Software", "50", time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)),
		suite.expense("Software", "30", time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)),
		// Wrong category inside the window
		suite.expense("Travel", "500", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)),
		// Right category outside the window
		suite.expense("Software", "75", time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)),
	}

	suite.mockBudgetRepo.On("FindBudgetByCategoryAndPeriod", ctx, suite.userID, "Software", domain.PeriodMonthly).
		Return(budget, nil).Once()
	suite.mockExpenseRepo.On("ListExpensesByUser", ctx, suite.userID).Return(expenses, nil).Once()

	progress, err := suite.service.GetProgress(ctx, suite.userID, "Software", domain.PeriodMonthly)

	suite.Require().NoError(err)
	suite.Require().NotNil(progress)
	suite.True(progress.Spent.Equal(decimal.NewFromInt(80)), "expected 80, got %s", progress.Spent)
	suite.True(progress.Remaining.Equal(decimal.NewFromInt(120)))
	suite.True(progress.Percentage.Equal(decimal.NewFromInt(40)))
	suite.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), progress.WindowStart)
	suite.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), progress.WindowEnd)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestGetProgress_ExpenseLoadFailure() {
	ctx := context.Background()
	budget := &domain.Budget{
		BudgetID:  uuid.NewString(),
		UserID:    suite.userID,
		Category:  "Software",
		Amount:    decimal.NewFromInt(200),
		Period:    domain.PeriodMonthly,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	storeErr := fmt.Errorf("%w: query timeout", apperrors.ErrPersistence)

	suite.mockBudgetRepo.On("FindBudgetByCategoryAndPeriod", ctx, suite.userID, "Software", domain.PeriodMonthly).
		Return(budget, nil).Once()
	suite.mockExpenseRepo.On("ListExpensesByUser", ctx, suite.userID).Return(nil, storeErr).Once()

	progress, err := suite.service.GetProgress(ctx, suite.userID, "Software", domain.PeriodMonthly)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPersistence)
	suite.Nil(progress)
}

func (suite *BudgetServiceTestSuite) TestUpdateBudget_OtherOwner() {
	ctx := context.Background()
	budget := &domain.Budget{
		BudgetID: uuid.NewString(),
		UserID:   uuid.NewString(), // not ours
		Category: "Software",
		Amount:   decimal.NewFromInt(200),
		Period:   domain.PeriodMonthly,
	}

	suite.mockBudgetRepo.On("FindBudgetByID", ctx, budget.BudgetID).Return(budget, nil).Once()

	newAmount := decimal.NewFromInt(300)
	updated, err := suite.service.UpdateBudget(ctx, suite.userID, budget.BudgetID, dto.UpdateBudgetRequest{
		Amount: &newAmount,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(updated)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "UpdateBudget", mock.Anything, mock.Anything)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
