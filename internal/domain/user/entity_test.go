package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type UserTestSuite struct {
	suite.Suite
}

func (suite *UserTestSuite) newUser() *User {
	u, err := NewUser("Chef@Culinary.OS ", "Chef Demo", "demo123", bcrypt.MinCost)
	require.NoError(suite.T(), err)
	return u
}

func (suite *UserTestSuite) TestNewUser() {
	suite.Run("ValidUser_ShouldHashPassword", func() {
		u := suite.newUser()

		assert.Equal(suite.T(), "chef@culinary.os", u.Email())
		assert.Equal(suite.T(), "Chef Demo", u.Name())
		assert.NotEqual(suite.T(), "demo123", u.PasswordHash())
		assert.NoError(suite.T(), u.CheckPassword("demo123"))
		assert.ErrorIs(suite.T(), u.CheckPassword("wrong"), ErrPasswordMismatch)
		assert.Empty(suite.T(), u.DietaryPreferences())
	})

	suite.Run("InvalidInput_ShouldFail", func() {
		_, err := NewUser("", "Chef", "secret1", bcrypt.MinCost)
		assert.ErrorIs(suite.T(), err, ErrEmailRequired)

		_, err = NewUser("chef.example.com", "Chef", "secret1", bcrypt.MinCost)
		assert.ErrorIs(suite.T(), err, ErrInvalidEmail)

		_, err = NewUser("chef@example.com", " ", "secret1", bcrypt.MinCost)
		assert.ErrorIs(suite.T(), err, ErrNameRequired)

		_, err = NewUser("chef@example.com", "Chef", "12345", bcrypt.MinCost)
		assert.ErrorIs(suite.T(), err, ErrPasswordTooShort)
	})
}

func (suite *UserTestSuite) TestChangePassword() {
	u := suite.newUser()

	assert.ErrorIs(suite.T(), u.ChangePassword("nope", "newsecret", bcrypt.MinCost), ErrPasswordMismatch)
	require.NoError(suite.T(), u.ChangePassword("demo123", "newsecret", bcrypt.MinCost))
	assert.NoError(suite.T(), u.CheckPassword("newsecret"))
	assert.Error(suite.T(), u.CheckPassword("demo123"))
}

func (suite *UserTestSuite) TestUpdateProfile() {
	suite.Run("PartialUpdate_ShouldKeepOtherFields", func() {
		u := suite.newUser()
		picture := "https://example.com/me.png"

		require.NoError(suite.T(), u.UpdateProfile(ProfilePatch{ProfilePicture: &picture}))

		assert.Equal(suite.T(), "Chef Demo", u.Name())
		assert.Equal(suite.T(), picture, u.ProfilePicture())
	})

	suite.Run("Preferences_ShouldBeCleaned", func() {
		u := suite.newUser()

		require.NoError(suite.T(), u.UpdateProfile(ProfilePatch{
			DietaryPreferences: []string{"Diabetic", " vegan", "diabetic", ""},
			ReplacePreferences: true,
		}))

		assert.Equal(suite.T(), []string{"diabetic", "vegan"}, u.DietaryPreferences())
		assert.True(suite.T(), u.HasDietaryPreference(DietDiabetic))
	})

	suite.Run("InvalidEmail_ShouldLeaveUserUntouched", func() {
		u := suite.newUser()
		name := "Someone Else"
		email := "broken"

		assert.ErrorIs(suite.T(), u.UpdateProfile(ProfilePatch{Name: &name, Email: &email}), ErrInvalidEmail)
		assert.Equal(suite.T(), "Chef Demo", u.Name())
	})
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}
