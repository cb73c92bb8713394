package user

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/culinaryos/kitchen/internal/domain/user"
	"github.com/culinaryos/kitchen/internal/ports/inbound"
	"github.com/culinaryos/kitchen/pkg/errors"
	"github.com/culinaryos/kitchen/test/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type UserServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    *testutils.MockUserRepository
	tokens  *testutils.MockTokenIssuer
	metrics *testutils.RecordingMetrics
	service *UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repo = new(testutils.MockUserRepository)
	suite.tokens = new(testutils.MockTokenIssuer)
	suite.metrics = testutils.NewRecordingMetrics()
	suite.service = NewUserService(suite.repo, suite.tokens, suite.metrics, 4, zap.NewNop())
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.repo.AssertExpectations(suite.T())
	suite.tokens.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister() {
	suite.Run("Success", func() {
		email := gofakeit.Email()
		suite.repo.On("ExistsByEmail", suite.ctx, email).Return(false, nil).Once()
		suite.repo.On("Create", suite.ctx, mock.AnythingOfType("*user.User")).Return(nil).Once()
		suite.tokens.On("Issue", mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("string")).Return("signed-token", nil).Once()

		result, err := suite.service.Register(suite.ctx, inbound.RegisterCommand{
			Name:     "Ada Cook",
			Email:    email,
			Password: testutils.TestPassword,
		})

		suite.Require().NoError(err)
		suite.Equal("signed-token", result.Token)
		suite.Equal("Ada Cook", result.Name)
		suite.NotNil(result.DietaryPreferences)
		suite.Equal(1, suite.metrics.Registrations)
	})

	suite.Run("DuplicateEmail", func() {
		suite.repo.On("ExistsByEmail", suite.ctx, "taken@example.com").Return(true, nil).Once()

		_, err := suite.service.Register(suite.ctx, inbound.RegisterCommand{
			Name:     "Someone",
			Email:    "taken@example.com",
			Password: testutils.TestPassword,
		})

		testutils.AssertAppError(suite.T(), err, errors.CodeEmailAlreadyExists)
	})

	suite.Run("ShortPassword", func() {
		suite.repo.On("ExistsByEmail", suite.ctx, "short@example.com").Return(false, nil).Once()

		_, err := suite.service.Register(suite.ctx, inbound.RegisterCommand{
			Name:     "Short",
			Email:    "short@example.com",
			Password: "12345",
		})

		testutils.AssertAppError(suite.T(), err, errors.CodeValidationFailed)
	})
}

func (suite *UserServiceTestSuite) TestLogin() {
	u := testutils.NewUserBuilder().WithEmail("chef@example.com").MustBuild()

	suite.Run("Success", func() {
		suite.repo.On("FindByEmail", suite.ctx, "chef@example.com").Return(u, nil).Once()
		suite.tokens.On("Issue", u.ID(), u.Email()).Return("token", nil).Once()

		result, err := suite.service.Login(suite.ctx, inbound.LoginCommand{
			Email:    "chef@example.com",
			Password: testutils.TestPassword,
		})

		suite.Require().NoError(err)
		suite.Equal(u.ID(), result.ID)
		suite.Equal("token", result.Token)
	})

	suite.Run("WrongPassword", func() {
		suite.repo.On("FindByEmail", suite.ctx, "chef@example.com").Return(u, nil).Once()

		_, err := suite.service.Login(suite.ctx, inbound.LoginCommand{
			Email:    "chef@example.com",
			Password: "not-the-password",
		})

		testutils.AssertAppError(suite.T(), err, errors.CodeInvalidCredentials)
	})

	suite.Run("UnknownEmail", func() {
		suite.repo.On("FindByEmail", suite.ctx, "ghost@example.com").Return(nil, user.ErrUserNotFound).Once()

		_, err := suite.service.Login(suite.ctx, inbound.LoginCommand{
			Email:    "ghost@example.com",
			Password: testutils.TestPassword,
		})

		testutils.AssertAppError(suite.T(), err, errors.CodeInvalidCredentials)
	})
}

func (suite *UserServiceTestSuite) TestLogout() {
	suite.tokens.On("Revoke", suite.ctx, "token").Return(nil).Once()

	suite.NoError(suite.service.Logout(suite.ctx, "token"))
}

func (suite *UserServiceTestSuite) TestGetProfileUnknownUser() {
	id := uuid.New()
	suite.repo.On("FindByID", suite.ctx, id).Return(nil, user.ErrUserNotFound).Once()

	_, err := suite.service.GetProfile(suite.ctx, id)

	testutils.AssertAppError(suite.T(), err, errors.CodeUserNotFound)
}

func (suite *UserServiceTestSuite) TestChangePassword() {
	suite.Run("Success", func() {
		u := testutils.NewUserBuilder().MustBuild()
		suite.repo.On("FindByID", suite.ctx, u.ID()).Return(u, nil).Once()
		suite.repo.On("Update", suite.ctx, u).Return(nil).Once()

		err := suite.service.ChangePassword(suite.ctx, u.ID(), testutils.TestPassword, "new-secret")

		suite.Require().NoError(err)
		suite.NoError(u.CheckPassword("new-secret"))
	})

	suite.Run("WrongCurrentPassword", func() {
		u := testutils.NewUserBuilder().MustBuild()
		suite.repo.On("FindByID", suite.ctx, u.ID()).Return(u, nil).Once()

		err := suite.service.ChangePassword(suite.ctx, u.ID(), "wrong-one", "new-secret")

		testutils.AssertAppError(suite.T(), err, errors.CodeInvalidPassword)
		suite.NoError(u.CheckPassword(testutils.TestPassword))
	})
}

func (suite *UserServiceTestSuite) TestUpdateProfile() {
	suite.Run("ReplacesPreferences", func() {
		u := testutils.NewUserBuilder().MustBuild()
		name := "Renamed Chef"
		prefs := []string{"Vegetarian", "Diabetic"}
		suite.repo.On("FindByID", suite.ctx, u.ID()).Return(u, nil).Once()
		suite.repo.On("Update", suite.ctx, u).Return(nil).Once()

		dto, err := suite.service.UpdateProfile(suite.ctx, u.ID(), inbound.UpdateProfileCommand{
			Name:               &name,
			DietaryPreferences: &prefs,
		})

		suite.Require().NoError(err)
		suite.Equal("Renamed Chef", dto.Name)
		suite.Equal([]string{"vegetarian", "diabetic"}, dto.DietaryPreferences)
	})

	suite.Run("EmailTaken", func() {
		u := testutils.NewUserBuilder().MustBuild()
		email := "other@example.com"
		suite.repo.On("FindByID", suite.ctx, u.ID()).Return(u, nil).Once()
		suite.repo.On("ExistsByEmail", suite.ctx, email).Return(true, nil).Once()

		_, err := suite.service.UpdateProfile(suite.ctx, u.ID(), inbound.UpdateProfileCommand{Email: &email})

		testutils.AssertAppError(suite.T(), err, errors.CodeEmailAlreadyExists)
	})

	suite.Run("StoreFailure", func() {
		u := testutils.NewUserBuilder().MustBuild()
		pic := "https://example.com/me.png"
		suite.repo.On("FindByID", suite.ctx, u.ID()).Return(u, nil).Once()
		suite.repo.On("Update", suite.ctx, u).Return(stderrors.New("locked")).Once()

		_, err := suite.service.UpdateProfile(suite.ctx, u.ID(), inbound.UpdateProfileCommand{ProfilePicture: &pic})

		testutils.AssertAppError(suite.T(), err, errors.CodeDatabaseError)
	})
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
