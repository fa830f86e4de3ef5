package services_test

import (
	"context"
	"testing"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/apperrors"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/domain"
	portssvc "github.com/lautarocloudy/api-cuenta-corrientes/internal/core/ports/services"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/core/services"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/dto"
	"github.com/lautarocloudy/api-cuenta-corrientes/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	repo    *MockUserRepository
	service portssvc.UserSvcFacade
	ctx     context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.repo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.repo)
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) storedUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{UserID: "u1", Name: "Ana", Email: "ana@example.com", PasswordHash: hash, Role: domain.RoleUser}
}

func (suite *UserServiceTestSuite) TestCreateUser_DefaultsRoleAndLowercasesEmail() {
	suite.repo.On("FindUserByEmail", suite.ctx, "ana@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.repo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "ana@example.com" && u.Role == domain.RoleUser && u.PasswordHash != "secreto"
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(suite.ctx, dto.CreateUserRequest{Name: "Ana", Email: " Ana@Example.com ", Password: "secreto"}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal("admin-1", user.CreatedBy)
	suite.True(utils.CheckPasswordHash("secreto", user.PasswordHash))
	suite.repo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	suite.repo.On("FindUserByEmail", suite.ctx, "ana@example.com").Return(&domain.User{UserID: "u1"}, nil).Once()

	_, err := suite.service.CreateUser(suite.ctx, dto.CreateUserRequest{Name: "Ana", Email: "ana@example.com", Password: "secreto"}, "admin-1")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.repo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_InvalidRole() {
	_, err := suite.service.CreateUser(suite.ctx, dto.CreateUserRequest{Name: "Ana", Email: "a@b.c", Password: "secreto", Role: "root"}, "admin-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	stored := suite.storedUser("secreto")
	suite.repo.On("FindUserByEmail", suite.ctx, "ana@example.com").Return(stored, nil)
	suite.repo.On("FindUserByEmail", suite.ctx, "nadie@example.com").Return(nil, apperrors.ErrNotFound)

	user, err := suite.service.AuthenticateUser(suite.ctx, "ANA@example.com", "secreto")
	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)

	_, err = suite.service.AuthenticateUser(suite.ctx, "ana@example.com", "otra")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.AuthenticateUser(suite.ctx, "nadie@example.com", "secreto")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestSetPassword() {
	suite.repo.On("FindUserByID", suite.ctx, "u1").Return(suite.storedUser("vieja"), nil).Once()
	suite.repo.On("UpdatePassword", suite.ctx, "u1", mock.AnythingOfType("string"), "admin-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	suite.NoError(suite.service.SetPassword(suite.ctx, "u1", "nueva123", "admin-1"))
	suite.repo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestSetPassword_UnknownUser() {
	suite.repo.On("FindUserByID", suite.ctx, "u404").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.SetPassword(suite.ctx, "u404", "nueva123", "admin-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.repo.AssertNotCalled(suite.T(), "UpdatePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUser_RequiresValidRole() {
	suite.repo.On("FindUserByID", suite.ctx, "u1").Return(suite.storedUser("x"), nil).Once()

	_, err := suite.service.UpdateUser(suite.ctx, "u1", dto.UpdateUserRequest{Name: "Ana", Email: "ana@example.com", Role: "jefe"}, "admin-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.repo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
