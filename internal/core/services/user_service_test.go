package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/freelanceledger/freelance_ledger_app/internal/apperrors"
	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	portssvc "github.com/freelanceledger/freelance_ledger_app/internal/core/ports/services"
	"github.com/freelanceledger/freelance_ledger_app/internal/core/services"
	"github.com/freelanceledger/freelance_ledger_app/internal/dto"
	"github.com/freelanceledger/freelance_ledger_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockUserRepository is a mock type for the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvc
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Email:    "Jamie@Example.COM",
		Name:     "Jamie",
		Password: "correct horse battery",
	}

	suite.mockRepo.On("FindUserByEmail", ctx, "jamie@example.com").
		Return(nil, fmt.Errorf("%w: user", apperrors.ErrNotFound)).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal("jamie@example.com", user.Email, "email should be normalized to lower case")
	suite.NotEqual(req.Password, user.PasswordHash)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Email: "jamie@example.com"}
	req := dto.RegisterUserRequest{
		Email:    "jamie@example.com",
		Name:     "Jamie",
		Password: "correct horse battery",
	}

	suite.mockRepo.On("FindUserByEmail", ctx, "jamie@example.com").Return(existing, nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(user)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct horse battery")
	suite.Require().NoError(err)
	existing := &domain.User{UserID: uuid.NewString(), Email: "jamie@example.com", PasswordHash: hash}

	suite.mockRepo.On("FindUserByEmail", ctx, "jamie@example.com").Return(existing, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "jamie@example.com", "correct horse battery")

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct horse battery")
	suite.Require().NoError(err)
	existing := &domain.User{UserID: uuid.NewString(), Email: "jamie@example.com", PasswordHash: hash}

	suite.mockRepo.On("FindUserByEmail", ctx, "jamie@example.com").Return(existing, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "jamie@example.com", "wrong")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAuthentication)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmail() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "ghost@example.com").
		Return(nil, fmt.Errorf("%w: user", apperrors.ErrNotFound)).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ghost@example.com", "anything")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAuthentication, "unknown email and wrong password look the same")
	suite.Nil(user)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
