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

// MockProjectRepository is a mock type for the ProjectRepositoryFacade interface
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjectsByUser(ctx context.Context, userID string) ([]domain.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockProjectRepository) SavePaymentAndProject(ctx context.Context, payment domain.Payment, project domain.Project) error {
	args := m.Called(ctx, payment, project)
	return args.Error(0)
}

// --- Test Suite Setup ---

type ProjectServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProjectRepository
	service  portssvc.ProjectSvcFacade
	userID   string
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProjectRepository)
	suite.service = services.NewProjectService(suite.mockRepo)
	suite.userID = uuid.NewString()
}

func (suite *ProjectServiceTestSuite) ownedHourlyProject(rate, hours string) *domain.Project {
	now := time.Now()
	return &domain.Project{
		ProjectID: uuid.NewString(),
		UserID:    suite.userID,
		Name:      "Retainer",
		Client:    "Acme",
		Status:    domain.StatusInProgress,
		Terms: domain.HourlyTerms{
			HourlyRate:  decimal.RequireFromString(rate),
			HoursLogged: decimal.RequireFromString(hours),
		},
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		TotalAmount: decimal.RequireFromString(rate).Mul(decimal.RequireFromString(hours)),
		PaidAmount:  decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     suite.userID,
			LastUpdatedAt: now,
			LastUpdatedBy: suite.userID,
		},
	}
}

// --- Test Cases ---

func (suite *ProjectServiceTestSuite) TestCreateProject_MonthlyDerivation() {
	ctx := context.Background()
	rate := decimal.NewFromInt(2000)
	weeks := 8
	req := dto.CreateProjectRequest{
		Name:                  "Platform rebuild",
		Client:                "Acme",
		ContractType:          domain.ContractMonthly,
		StartDate:             "2025-01-01",
		ContractDurationWeeks: &weeks,
		MonthlyRate:           &rate,
	}

	suite.mockRepo.On("SaveProject", ctx, mock.AnythingOfType("domain.Project")).Return(nil).Once()

	created, err := suite.service.CreateProject(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.ProjectID)
	// 2000 * 8/4 = 4000
	suite.True(created.TotalAmount.Equal(decimal.NewFromInt(4000)),
		"expected 4000, got %s", created.TotalAmount)
	suite.Require().NotNil(created.EndDate)
	suite.Equal(time.Date(2025, 2, 26, 0, 0, 0, 0, time.UTC), *created.EndDate)
	suite.True(created.PaidAmount.IsZero())
	suite.Equal(domain.StatusPending, created.Status)
	suite.Equal(suite.userID, created.CreatedBy)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestCreateProject_MonthlyWithoutDuration() {
	ctx := context.Background()
	rate := decimal.NewFromInt(2000)
	req := dto.CreateProjectRequest{
		Name:         "No duration",
		Client:       "Acme",
		ContractType: domain.ContractMonthly,
		StartDate:    "2025-01-01",
		MonthlyRate:  &rate,
	}

	created, err := suite.service.CreateProject(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProject", mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestCreateProject_MissingPrincipal() {
	ctx := context.Background()
	amount := decimal.NewFromInt(500)
	req := dto.CreateProjectRequest{
		Name:         "Anonymous",
		Client:       "Acme",
		ContractType: domain.ContractFixed,
		StartDate:    "2025-01-01",
		TotalAmount:  &amount,
	}

	created, err := suite.service.CreateProject(ctx, "", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAuthentication)
	suite.Nil(created)
}

func (suite *ProjectServiceTestSuite) TestGetProjectByID_OtherOwner() {
	ctx := context.Background()
	project := suite.ownedHourlyProject("75", "10")
	project.UserID = uuid.NewString() // someone else's project

	suite.mockRepo.On("FindProjectByID", ctx, project.ProjectID).Return(project, nil).Once()

	found, err := suite.service.GetProjectByID(ctx, suite.userID, project.ProjectID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(found)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestUpdateProject_EndDateEditDerivesDuration() {
	ctx := context.Background()
	project := suite.ownedHourlyProject("75", "10")
	endDate := "2025-02-26" // 56 days after 2025-01-01

	suite.mockRepo.On("FindProjectByID", ctx, project.ProjectID).Return(project, nil).Once()
	suite.mockRepo.On("UpdateProject", ctx, mock.AnythingOfType("domain.Project")).Return(nil).Once()

	updated, err := suite.service.UpdateProject(ctx, suite.userID, project.ProjectID, dto.UpdateProjectRequest{
		EndDate: &endDate,
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(updated.ContractDurationWeeks)
	suite.Equal(8, *updated.ContractDurationWeeks)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestUpdateProject_TypeSwitchDiscardsOldTerms() {
	ctx := context.Background()
	project := suite.ownedHourlyProject("75", "10")
	newType := domain.ContractFixed
	amount := decimal.NewFromInt(9000)

	suite.mockRepo.On("FindProjectByID", ctx, project.ProjectID).Return(project, nil).Once()
	suite.mockRepo.On("UpdateProject", ctx, mock.AnythingOfType("domain.Project")).Return(nil).Once()

	updated, err := suite.service.UpdateProject(ctx, suite.userID, project.ProjectID, dto.UpdateProjectRequest{
		ContractType: &newType,
		TotalAmount:  &amount,
	})

	suite.Require().NoError(err)
	fixed, ok := updated.Terms.(domain.FixedTerms)
	suite.Require().True(ok, "terms should be the fixed variant after the switch")
	suite.True(fixed.TotalAmount.Equal(amount))
	suite.True(updated.TotalAmount.Equal(amount))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestAddPayment_Success() {
	ctx := context.Background()
	project := suite.ownedHourlyProject("75", "10")
	project.PaidAmount = decimal.NewFromInt(100)

	suite.mockRepo.On("FindProjectByID", ctx, project.ProjectID).Return(project, nil).Once()
	suite.mockRepo.On("SavePaymentAndProject", ctx,
		mock.AnythingOfType("domain.Payment"),
		mock.AnythingOfType("domain.Project")).Return(nil).Once()

	updated, err := suite.service.AddPayment(ctx, suite.userID, project.ProjectID, dto.CreatePaymentRequest{
		Amount: decimal.NewFromInt(50),
		Date:   "2025-01-15",
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.True(updated.PaidAmount.Equal(decimal.NewFromInt(150)),
		"expected 150, got %s", updated.PaidAmount)
	suite.Require().Len(updated.Payments, 1)
	suite.NotEmpty(updated.Payments[0].PaymentID)
	suite.Equal(project.ProjectID, updated.Payments[0].ProjectID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestAddPayment_StoreFailure() {
	ctx := context.Background()
	project := suite.ownedHourlyProject("75", "10")
	storeErr := fmt.Errorf("%w: connection reset", apperrors.ErrPersistence)

	suite.mockRepo.On("FindProjectByID", ctx, project.ProjectID).Return(project, nil).Once()
	suite.mockRepo.On("SavePaymentAndProject", ctx,
		mock.AnythingOfType("domain.Payment"),
		mock.AnythingOfType("domain.Project")).Return(storeErr).Once()

	updated, err := suite.service.AddPayment(ctx, suite.userID, project.ProjectID, dto.CreatePaymentRequest{
		Amount: decimal.NewFromInt(50),
		Date:   "2025-01-15",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPersistence)
	suite.Nil(updated, "no updated state should surface when the store rejects the write")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestLogHours_RecomputesTotal() {
	ctx := context.Background()
	project := suite.ownedHourlyProject("75", "10")

	suite.mockRepo.On("FindProjectByID", ctx, project.ProjectID).Return(project, nil).Once()
	suite.mockRepo.On("UpdateProject", ctx, mock.AnythingOfType("domain.Project")).Return(nil).Once()

	updated, err := suite.service.LogHours(ctx, suite.userID, project.ProjectID, decimal.NewFromInt(100))

	suite.Require().NoError(err)
	suite.True(updated.TotalAmount.Equal(decimal.NewFromInt(7500)),
		"expected 7500, got %s", updated.TotalAmount)
	terms, ok := updated.Terms.(domain.HourlyTerms)
	suite.Require().True(ok)
	suite.True(terms.HoursLogged.Equal(decimal.NewFromInt(100)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestLogHours_NonHourlyRejected() {
	ctx := context.Background()
	project := suite.ownedHourlyProject("75", "10")
	project.Terms = domain.FixedTerms{TotalAmount: decimal.NewFromInt(5000)}

	suite.mockRepo.On("FindProjectByID", ctx, project.ProjectID).Return(project, nil).Once()

	updated, err := suite.service.LogHours(ctx, suite.userID, project.ProjectID, decimal.NewFromInt(10))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPrecondition)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateProject", mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestDeleteProject_NotFound() {
	ctx := context.Background()
	projectID := uuid.NewString()

	suite.mockRepo.On("FindProjectByID", ctx, projectID).
		Return(nil, fmt.Errorf("%w: project %s", apperrors.ErrNotFound, projectID)).Once()

	err := suite.service.DeleteProject(ctx, suite.userID, projectID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteProject", mock.Anything, mock.Anything)
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
